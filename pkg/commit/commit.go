// Package commit implements commit message normalization and grammar
// matching for the Conventional Commits and GitMoji conventions.
//
// The package is pure: callers hand in raw commit text plus configuration
// and receive a validity verdict and the ordered list of missing grammar
// components. File reading, flag parsing, and rendering live elsewhere.
package commit

import "regexp"

// Git inserts a scissors line into verbose commit templates; everything from
// that line to end of input is discarded by git and must be ignored here too.
var verboseTrailerRe = regexp.MustCompile(`(?ms)^# -{24} >8 -{24}\r?\n.*\z`)

// Comment lines are removed together with their line terminator.
var commentRe = regexp.MustCompile(`(?m)^#.*\r?\n?`)

var (
	autosquashRe = regexp.MustCompile(`(?s)^(?:amend|fixup|squash)! .*$`)
	mergeRe      = regexp.MustCompile(`(?i)^merge\b`)
)

// Clean strips git-generated content from a commit message: first the
// verbose-commit trailer (the scissors line and everything after it), then
// every remaining comment line. Cleaning is idempotent.
func Clean(text string) string {
	text = verboseTrailerRe.ReplaceAllString(text, "")
	return commentRe.ReplaceAllString(text, "")
}

// HasAutosquashPrefix reports whether the cleaned message starts with one of
// the git-rebase autosquash markers (amend!, fixup!, squash!).
// See https://git-scm.com/docs/git-rebase.
func HasAutosquashPrefix(text string) bool {
	return autosquashRe.MatchString(Clean(text))
}

// IsMerge reports whether the cleaned message is a merge commit header, such
// as "Merge branch ...", "Merge pull request ...", or "Merge tag ...".
// See https://git-scm.com/docs/git-merge.
func IsMerge(text string) bool {
	return mergeRe.MatchString(Clean(text))
}
