package commit

import (
	"regexp"
	"sort"
	"strings"
)

// ConventionalTypes are the two types mandated by the Conventional Commits
// specification. Any configured type list that shares no member with this
// pair gets the pair unioned in.
var ConventionalTypes = []string{"feat", "fix"}

// DefaultTypes is the type vocabulary used when none is configured.
var DefaultTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix",
	"perf", "refactor", "revert", "style", "test",
}

// bodyPattern matches an optional extended body. A body is well-formed only
// when exactly one blank line separates it from the header; the sep group
// captures that separator so validation can tell the two cases apart.
const bodyPattern = `(?P<multi>\r?\n(?P<sep>^$\r?\n)?.+)?`

// Conventional matches commit messages against the Conventional Commits
// grammar: type(scope)!: subject, plus an optional body.
// https://www.conventionalcommits.org
type Conventional struct {
	types         []string
	scopeOptional bool
	scopes        []string

	re    *regexp.Regexp
	order []string
}

// NewConventional compiles a matcher for the given configuration. A nil or
// empty types list falls back to DefaultTypes; a nil scopes list accepts any
// parenthesized scope content. The returned matcher is immutable and safe
// for concurrent use.
func NewConventional(types []string, scopeOptional bool, scopes []string) *Conventional {
	c := &Conventional{
		types:         normalizeTypes(types),
		scopeOptional: scopeOptional,
		scopes:        sortedCopy(scopes),
	}
	c.re = regexp.MustCompile(c.pattern())
	_, c.order = matchComponents(c.re, "")
	return c
}

// Types returns the effective type vocabulary after defaulting rules.
func (c *Conventional) Types() []string {
	return append([]string(nil), c.types...)
}

// Match runs the grammar against the cleaned message and returns the
// per-component captures.
func (c *Conventional) Match(text string) MatchResult {
	result, _ := matchComponents(c.re, Clean(text))
	return result
}

// IsValid reports whether the message satisfies the grammar: a known type,
// a scope when scopes are mandatory, the colon delimiter, a subject, and a
// body that is either absent or separated from the header by one blank line.
func (c *Conventional) IsValid(text string) bool {
	m := c.Match(text)
	return m.Has(ComponentType) &&
		(c.scopeOptional || m.Has(ComponentScope)) &&
		m.Has(ComponentDelim) &&
		m.Has(ComponentSubject) &&
		(!m.Has(ComponentBody) || (m.Has(ComponentMulti) && m.Has(ComponentSep)))
}

// Errors returns the names of missing grammar components in declaration
// order. A missing type suppresses delim/subject/body: a valid type must
// come first, so those components never match once the type fails and
// reporting them would be redundant noise. Optional scopes are never
// reported, and body sub-components are only reported when body content
// exists.
func (c *Conventional) Errors(text string) []string {
	m := c.Match(text)

	suppress := make(map[string]bool)
	if !m.Has(ComponentType) {
		suppress[ComponentDelim] = true
		suppress[ComponentSubject] = true
		suppress[ComponentBody] = true
	}
	if c.scopeOptional {
		suppress[ComponentScope] = true
	}
	if !m.Has(ComponentBody) {
		// The body is optional, so its absence is never an error.
		suppress[ComponentBody] = true
		suppress[ComponentMulti] = true
		suppress[ComponentSep] = true
	}

	return missingComponents(m, c.order, suppress)
}

func (c *Conventional) pattern() string {
	var b strings.Builder
	b.WriteString(`(?m)^(?P<type>`)
	b.WriteString(caseInsensitiveAlternation(c.types))
	b.WriteString(`)?(?P<scope>`)
	b.WriteString(c.scopePattern())
	b.WriteString(`)?(?P<delim>!?:)?(?P<subject> .+$)?(?P<body>`)
	b.WriteString(bodyPattern)
	b.WriteString(`)?`)
	return b.String()
}

// scopePattern accepts any word/space/slash/colon/comma/dash run in
// parentheses, or, when an allow-list is configured, one or more allow-listed
// keywords separated by : , - or / with optional whitespace.
func (c *Conventional) scopePattern() string {
	if len(c.scopes) == 0 {
		return `\([\w /:,-]+\)`
	}
	scopes := caseInsensitiveAlternation(c.scopes)
	return `\(\s*` + scopes + `(?:\s*(?::|,|-|/)\s*` + scopes + `)*\s*\)`
}

// normalizeTypes applies the configuration fallback rules: empty means the
// default vocabulary, and a list sharing nothing with feat/fix gets both
// unioned in so the core Conventional Commits types always work.
func normalizeTypes(types []string) []string {
	if len(types) == 0 {
		return sortedCopy(DefaultTypes)
	}
	mandatory := false
	for _, t := range types {
		for _, ct := range ConventionalTypes {
			if t == ct {
				mandatory = true
			}
		}
	}
	if !mandatory {
		types = append(append([]string(nil), ConventionalTypes...), types...)
	}
	return sortedCopy(types)
}

func sortedCopy(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := append([]string(nil), items...)
	sort.Strings(out)
	return out
}

func caseInsensitiveAlternation(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = regexp.QuoteMeta(item)
	}
	return `(?i:` + strings.Join(quoted, "|") + `)`
}

// IsConventional reports whether text matches Conventional Commits
// formatting. Pass nil types or scopes for the defaults.
func IsConventional(text string, types []string, scopeOptional bool, scopes []string) bool {
	return NewConventional(types, scopeOptional, scopes).IsValid(text)
}
