package commit

import (
	"regexp"
	"strings"
)

// Gitmoji matches commit messages against the GitMoji convention:
// <emoji> <description>, plus an optional body. The emoji replaces the
// textual type and there is no scope.
// https://gitmoji.dev
type Gitmoji struct {
	emojis []string

	re    *regexp.Regexp
	order []string
}

// NewGitmoji compiles a matcher for the given emoji allow-list. A nil list
// uses the built-in catalog; an explicitly supplied list, however
// restrictive, is used verbatim. Glyphs are matched literally, so variation
// selector and zero-width-joiner sequences must appear exactly as listed.
func NewGitmoji(emojis []string) *Gitmoji {
	if emojis == nil {
		emojis = DefaultEmojis()
	}
	g := &Gitmoji{emojis: append([]string(nil), emojis...)}
	g.re = regexp.MustCompile(g.pattern())
	_, g.order = matchComponents(g.re, "")
	return g
}

// Emojis returns the active allow-list in catalog order.
func (g *Gitmoji) Emojis() []string {
	return append([]string(nil), g.emojis...)
}

// Match runs the grammar against the cleaned message and returns the
// per-component captures.
func (g *Gitmoji) Match(text string) MatchResult {
	result, _ := matchComponents(g.re, Clean(text))
	return result
}

// IsValid reports whether the message satisfies the grammar: an allow-listed
// emoji, a description, and a body that is either absent or separated from
// the header by one blank line.
func (g *Gitmoji) IsValid(text string) bool {
	m := g.Match(text)
	return m.Has(ComponentEmoji) &&
		m.Has(ComponentDescription) &&
		(!m.Has(ComponentBody) || (m.Has(ComponentMulti) && m.Has(ComponentSep)))
}

// Errors returns the names of missing grammar components in declaration
// order, with the same downstream suppression as the Conventional matcher:
// no emoji suppresses description/body, and no body content suppresses the
// multi/sep sub-components.
func (g *Gitmoji) Errors(text string) []string {
	m := g.Match(text)

	suppress := make(map[string]bool)
	if !m.Has(ComponentEmoji) {
		suppress[ComponentDescription] = true
		suppress[ComponentBody] = true
	}
	if !m.Has(ComponentBody) {
		// The body is optional, so its absence is never an error.
		suppress[ComponentBody] = true
		suppress[ComponentMulti] = true
		suppress[ComponentSep] = true
	}

	return missingComponents(m, g.order, suppress)
}

func (g *Gitmoji) pattern() string {
	quoted := make([]string, len(g.emojis))
	for i, e := range g.emojis {
		quoted[i] = regexp.QuoteMeta(e)
	}
	var b strings.Builder
	b.WriteString(`(?m)^(?P<emoji>`)
	b.WriteString(strings.Join(quoted, "|"))
	b.WriteString(`)?(?P<description> .+$)?(?P<body>`)
	b.WriteString(bodyPattern)
	b.WriteString(`)?`)
	return b.String()
}

// IsGitmoji reports whether text matches GitMoji formatting. Pass nil for
// the built-in catalog.
func IsGitmoji(text string, emojis []string) bool {
	return NewGitmoji(emojis).IsValid(text)
}
