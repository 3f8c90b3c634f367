package commit

import (
	"strings"

	"github.com/kyokomi/emoji/v2"
)

// CatalogEntry pairs a GitMoji glyph with its intended use.
type CatalogEntry struct {
	Glyph       string
	Description string
}

// defaultCatalog is the GitMoji catalog from https://gitmoji.dev. Several
// glyphs carry a variation selector (U+FE0F) and one a zero-width joiner;
// messages must use the exact sequence listed here.
var defaultCatalog = []CatalogEntry{
	{"🎨", "Improve structure / format of the code"},
	{"⚡️", "Improve performance"},
	{"🔥", "Remove code or files"},
	{"🐛", "Fix a bug"},
	{"🚑️", "Critical hotfix"},
	{"✨", "Introduce new features"},
	{"📝", "Add or update documentation"},
	{"🚀", "Deploy stuff"},
	{"💄", "Add or update the UI and style files"},
	{"🎉", "Begin a project"},
	{"✅", "Add, update, or pass tests"},
	{"🔒️", "Fix security or privacy issues"},
	{"🔐", "Add or update secrets"},
	{"🔖", "Release / Version tags"},
	{"🚨", "Fix compiler / linter warnings"},
	{"🚧", "Work in progress"},
	{"💚", "Fix CI Build"},
	{"⬇️", "Downgrade dependencies"},
	{"⬆️", "Upgrade dependencies"},
	{"📌", "Pin dependencies to specific versions"},
	{"👷", "Add or update CI build system"},
	{"📈", "Add or update analytics or track code"},
	{"♻️", "Refactor code"},
	{"➕", "Add a dependency"},
	{"➖", "Remove a dependency"},
	{"🔧", "Add or update configuration files"},
	{"🔨", "Add or update development scripts"},
	{"🌐", "Internationalization and localization"},
	{"✏️", "Fix typos"},
	{"💩", "Write bad code that needs to be improved"},
	{"⏪️", "Revert changes"},
	{"🔀", "Merge branches"},
	{"📦️", "Add or update compiled files or packages"},
	{"👽️", "Update code due to external API changes"},
	{"🚚", "Move or rename resources"},
	{"📄", "Add or update license"},
	{"💥", "Introduce breaking changes"},
	{"🍱", "Add or update assets"},
	{"♿️", "Improve accessibility"},
	{"💡", "Add or update comments in source code"},
	{"🍻", "Write code drunkenly"},
	{"💬", "Add or update text and literals"},
	{"🗃️", "Perform database related changes"},
	{"🔊", "Add or update logs"},
	{"🔇", "Remove logs"},
	{"👥", "Add or update contributor(s)"},
	{"🚸", "Improve user experience / usability"},
	{"🏗️", "Make architectural changes"},
	{"📱", "Work on responsive design"},
	{"🤡", "Mock things"},
	{"🥚", "Add or update an easter egg"},
	{"🙈", "Add or update a .gitignore file"},
	{"📸", "Add or update snapshots"},
	{"⚗️", "Perform experiments"},
	{"🔍️", "Improve SEO"},
	{"🏷️", "Add or update types"},
	{"🌱", "Add or update seed files"},
	{"🚩", "Add, update, or remove feature flags"},
	{"🥅", "Catch errors"},
	{"💫", "Add or update animations and transitions"},
	{"🗑️", "Deprecate code that needs to be cleaned up"},
	{"🛂", "Work on code related to authorization, roles and permissions"},
	{"🩹", "Simple fix for a non-critical issue"},
	{"🧐", "Data exploration/inspection"},
	{"⚰️", "Remove dead code"},
	{"🧪", "Add a failing test"},
	{"👔", "Add or update business logic"},
	{"🩺", "Add or update healthcheck"},
	{"🧱", "Infrastructure related changes"},
	{"🧑‍💻", "Improve developer experience"},
	{"💸", "Add sponsorships or money related infrastructure"},
	{"🧵", "Add or update code related to multithreading or concurrency"},
	{"🦺", "Add or update code related to validation"},
	{"✈️", "Improve offline support"},
}

// Catalog returns the built-in GitMoji catalog in its canonical order.
func Catalog() []CatalogEntry {
	return append([]CatalogEntry(nil), defaultCatalog...)
}

// DefaultEmojis returns the glyphs of the built-in catalog.
func DefaultEmojis() []string {
	glyphs := make([]string, len(defaultCatalog))
	for i, entry := range defaultCatalog {
		glyphs[i] = entry.Glyph
	}
	return glyphs
}

// ResolveEmojis expands :shortcode: entries (e.g. ":bookmark:") into their
// glyphs and passes literal glyphs through unchanged. Unknown shortcodes are
// kept verbatim so the mismatch shows up in validation output rather than
// being silently dropped.
func ResolveEmojis(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	resolved := make([]string, len(entries))
	for i, entry := range entries {
		if strings.HasPrefix(entry, ":") && strings.HasSuffix(entry, ":") && len(entry) > 2 {
			if glyph := strings.TrimSpace(emoji.Emojize(entry)); glyph != entry {
				resolved[i] = glyph
				continue
			}
		}
		resolved[i] = entry
	}
	return resolved
}
