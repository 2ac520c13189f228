package semverbump

import "strings"

const breakingChangeMarker = "breaking change:"

var (
	majorPrefixes = []string{"feat!:", "fix!:"}
	minorPrefixes = []string{"feat:"}
	patchPrefixes = []string{"fix:", "docs:", "style:", "refactor:", "test:", "chore:"}
)

// Classify maps a commit message to a bump type using conventional commit
// prefixes. Matching ignores case and surrounding whitespace; the first rule
// that matches wins:
//
//   - "breaking change:" anywhere, or a "feat!:" / "fix!:" prefix: major
//   - "feat:" prefix: minor
//   - "fix:", "docs:", "style:", "refactor:", "test:", "chore:" prefix: patch
//   - anything else: patch
//
// Blank messages must be rejected by the caller before classifying.
func Classify(message string) BumpType {
	msg := strings.ToLower(strings.TrimSpace(message))

	if strings.Contains(msg, breakingChangeMarker) || hasAnyPrefix(msg, majorPrefixes) {
		return BumpMajor
	}
	if hasAnyPrefix(msg, minorPrefixes) {
		return BumpMinor
	}
	if hasAnyPrefix(msg, patchPrefixes) {
		return BumpPatch
	}
	return BumpPatch
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
