package commit

import "regexp"

// Grammar component identifiers reported by Errors. These are stable names
// consumed by renderers and hook output.
const (
	ComponentType        = "type"
	ComponentScope       = "scope"
	ComponentDelim       = "delim"
	ComponentSubject     = "subject"
	ComponentBody        = "body"
	ComponentMulti       = "multi"
	ComponentSep         = "sep"
	ComponentEmoji       = "emoji"
	ComponentDescription = "description"
)

// MatchResult maps grammar component names to their captured text. A missing
// or empty capture means the component is absent from the message.
type MatchResult map[string]string

// Has reports whether the named component captured any text.
func (m MatchResult) Has(name string) bool {
	return m[name] != ""
}

// matchComponents runs the grammar expression against cleaned text and
// returns per-component captures plus the component names in declaration
// order. The grammar is fully optional, so a match always exists; an empty
// result means nothing beyond position zero matched.
func matchComponents(re *regexp.Regexp, cleaned string) (MatchResult, []string) {
	names := make([]string, 0, re.NumSubexp())
	for _, name := range re.SubexpNames() {
		if name != "" {
			names = append(names, name)
		}
	}

	result := make(MatchResult, len(names))
	sub := re.FindStringSubmatch(cleaned)
	if sub == nil {
		return result, names
	}
	for i, name := range re.SubexpNames() {
		if name != "" {
			result[name] = sub[i]
		}
	}
	return result, names
}

// missingComponents derives the ordered error list from a match: every
// component that captured nothing, minus the ones in suppress. Suppression
// keeps the list free of noise about components that are structurally
// unreachable once an earlier component already failed.
func missingComponents(result MatchResult, order []string, suppress map[string]bool) []string {
	var missing []string
	for _, name := range order {
		if suppress[name] || result.Has(name) {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}
