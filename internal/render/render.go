// Package render builds the human-readable hook output: failure banners,
// per-component guidance, and the GitMoji catalog listing. Everything here
// returns strings; the cmd layer decides where they go.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/commitcheck/commitcheck/pkg/commit"
)

const (
	ansiBlue    = "\033[00;34m"
	ansiRed     = "\033[01;31m"
	ansiYellow  = "\033[00;33m"
	ansiRestore = "\033[0m"

	conventionalURL = "https://www.conventionalcommits.org"
	gitmojiURL      = "https://gitmoji.dev/"
)

// Palette resolves ANSI codes to themselves or to empty strings when color
// is disabled.
type Palette struct {
	enabled bool
}

// NewPalette returns a palette honoring the color switch.
func NewPalette(enabled bool) Palette {
	return Palette{enabled: enabled}
}

func (p Palette) code(c string) string {
	if p.enabled {
		return c
	}
	return ""
}

func (p Palette) Blue() string    { return p.code(ansiBlue) }
func (p Palette) Red() string     { return p.code(ansiRed) }
func (p Palette) Yellow() string  { return p.code(ansiYellow) }
func (p Palette) Restore() string { return p.code(ansiRestore) }

// Fail renders the short rejection banner shown for every invalid message.
func Fail(message, format string, color bool) string {
	p := NewPalette(color)
	url := conventionalURL
	label := "Conventional Commits"
	if format == "gitmoji" {
		url = gitmojiURL
		label = "GitMoji"
	}
	lines := []string{
		fmt.Sprintf("%s[Bad commit message] >>%s %s", p.Red(), p.Restore(), strings.TrimRight(message, "\n")),
		fmt.Sprintf("%sYour commit message does not follow %s formatting%s", p.Yellow(), label, p.Restore()),
		fmt.Sprintf("%s%s%s", p.Blue(), url, p.Restore()),
	}
	return strings.Join(lines, "\n")
}

// VerboseHint nudges toward --verbose when it is off.
func VerboseHint(color bool) string {
	p := NewPalette(color)
	return fmt.Sprintf("\n%sUse the %s--verbose%s flag for more information%s",
		p.Yellow(), p.Restore(), p.Yellow(), p.Restore())
}

// BadEncoding explains the non-UTF-8 input condition.
func BadEncoding(color bool) string {
	p := NewPalette(color)
	return fmt.Sprintf(`%s[Bad commit message encoding]%s

%scommitcheck could not decode your commit message.
UTF-8 encoding is assumed, please configure git to write commit messages in UTF-8.
See %shttps://git-scm.com/docs/git-commit/#_discussion%s for more.%s`,
		p.Red(), p.Restore(), p.Yellow(), p.Blue(), p.Yellow(), p.Restore())
}

// FailVerboseConventional renders the detailed guidance for the
// Conventional grammar: the expected shape, examples, and one line per
// missing component.
func FailVerboseConventional(types, scopes, errs []string, color bool) string {
	p := NewPalette(color)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%sConventional Commit messages follow a pattern like:\n\n", p.Yellow())
	fmt.Fprintf(&b, "%s    type(scope): subject\n\n    optional extended body\n\n", p.Restore())
	fmt.Fprintf(&b, "%sExamples:\n", p.Yellow())
	fmt.Fprintf(&b, "%s    feat(api): add customer export endpoint\n", p.Restore())
	fmt.Fprintf(&b, "%s    fix!: handle expired tokens\n", p.Restore())
	fmt.Fprintf(&b, "%s    docs: update installation instructions\n\n", p.Restore())

	if len(errs) > 0 {
		fmt.Fprintf(&b, "%sPlease correct the following errors:%s\n\n", p.Yellow(), p.Restore())
		for _, name := range errs {
			switch name {
			case commit.ComponentType:
				fmt.Fprintf(&b, "%s  - Expected type from: %s%s%s\n", p.Yellow(), p.Blue(), strings.Join(types, ", "), p.Restore())
			case commit.ComponentScope:
				if len(scopes) > 0 {
					fmt.Fprintf(&b, "%s  - Expected scope from: %s%s%s\n", p.Yellow(), p.Blue(), strings.Join(scopes, ", "), p.Restore())
				} else {
					fmt.Fprintf(&b, "%s  - Expected scope in parentheses after the type%s\n", p.Yellow(), p.Restore())
				}
			case commit.ComponentDelim:
				fmt.Fprintf(&b, "%s  - Expected colon delimiter after the type, e.g. %sfeat:%s\n", p.Yellow(), p.Restore(), p.Restore())
			case commit.ComponentSubject:
				fmt.Fprintf(&b, "%s  - Expected subject after a single space, e.g. %sfeat: add thing%s\n", p.Yellow(), p.Restore(), p.Restore())
			case commit.ComponentSep:
				fmt.Fprintf(&b, "%s  - Expected exactly one blank line between the subject and the body%s\n", p.Yellow(), p.Restore())
			default:
				fmt.Fprintf(&b, "%s  - Expected value for %s%s%s but found none.%s\n", p.Yellow(), p.Restore(), name, p.Yellow(), p.Restore())
			}
		}
	}

	writeRetryFooter(&b, p, conventionalURL)
	return b.String()
}

// FailVerboseGitmoji renders the detailed guidance for the GitMoji grammar.
func FailVerboseGitmoji(emojis, errs []string, color bool) string {
	p := NewPalette(color)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%sGitMoji commit messages follow a pattern like:\n\n", p.Yellow())
	fmt.Fprintf(&b, "%s    <emoji> <description>\n\n    optional extended body\n\n", p.Restore())
	fmt.Fprintf(&b, "%sExamples:\n", p.Yellow())
	fmt.Fprintf(&b, "%s    🔖 Use latest versions of all items\n", p.Restore())
	fmt.Fprintf(&b, "%s    ⚡️ Slightly upsize build storage\n", p.Restore())
	fmt.Fprintf(&b, "%s    🔧 Update enabled items directory\n\n", p.Restore())

	if len(errs) > 0 {
		fmt.Fprintf(&b, "%sPlease correct the following errors:%s\n\n", p.Yellow(), p.Restore())
		for _, name := range errs {
			switch name {
			case commit.ComponentEmoji:
				fmt.Fprintf(&b, "%s  - Expected GitMoji emoji at the start. Examples: %s%s...%s\n",
					p.Yellow(), p.Blue(), strings.Join(sample(emojis, 10), " "), p.Restore())
			case commit.ComponentDescription:
				fmt.Fprintf(&b, "%s  - Expected description after the emoji (e.g., 'Fix authentication bug')%s\n", p.Yellow(), p.Restore())
			case commit.ComponentSep:
				fmt.Fprintf(&b, "%s  - Expected exactly one blank line between the description and the body%s\n", p.Yellow(), p.Restore())
			default:
				fmt.Fprintf(&b, "%s  - Expected value for %s%s%s but found none.%s\n", p.Yellow(), p.Restore(), name, p.Yellow(), p.Restore())
			}
		}
	}

	writeRetryFooter(&b, p, gitmojiURL)
	return b.String()
}

// CatalogTable lists catalog entries with the glyph column aligned. Emoji
// glyphs are mostly double-width, but not all; runewidth keeps the
// description column straight either way.
func CatalogTable(entries []commit.CatalogEntry, color bool) string {
	p := NewPalette(color)

	glyphCol := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e.Glyph); w > glyphCol {
			glyphCol = w
		}
	}

	var b strings.Builder
	for _, e := range entries {
		pad := glyphCol - runewidth.StringWidth(e.Glyph)
		fmt.Fprintf(&b, "%s%s%s%s  %s\n", p.Blue(), e.Glyph, p.Restore(), strings.Repeat(" ", pad), e.Description)
	}
	return b.String()
}

func writeRetryFooter(b *strings.Builder, p Palette, url string) {
	fmt.Fprintf(b, "\n%sRun:%s\n\n", p.Yellow(), p.Restore())
	fmt.Fprintf(b, "    git commit --edit --file=.git/COMMIT_EDITMSG\n\n")
	fmt.Fprintf(b, "%sto edit the commit message and retry the commit.%s\n", p.Yellow(), p.Restore())
	fmt.Fprintf(b, "\n%sConvention reference: %s%s%s\n", p.Yellow(), p.Blue(), url, p.Restore())
}

func sample(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
