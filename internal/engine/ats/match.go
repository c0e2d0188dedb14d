package ats

import (
	"regexp"
	"strings"
)

// containsToken reports whether token appears in text bounded by
// start-of-string/space on the left and space/end-of-string on the right.
// This keeps ".net" from matching inside "internet protocol".
func containsToken(text, token string) bool {
	if token == "" || text == "" {
		return false
	}
	re := regexp.MustCompile(`(?i)(^|\s)` + regexp.QuoteMeta(token) + `(\s|$)`)
	return re.MatchString(text)
}

// ContainsKeyword reports whether the keyword, or any of its known
// synonym/abbreviation variants, appears in the normalized text as a whole
// word-boundary-delimited phrase.
func ContainsKeyword(normalizedText, keyword string) bool {
	for _, v := range VariantsOf(keyword) {
		if containsToken(normalizedText, v) {
			return true
		}
	}
	return false
}

// PartitionKeywords splits keywords into found/missing buckets relative to
// the normalized CV text. Every keyword lands in exactly one bucket; both
// slices are non-nil so JSON output renders [] rather than null.
func PartitionKeywords(normalizedText string, keywords []string) (found, missing []string) {
	found = []string{}
	missing = []string{}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		if ContainsKeyword(normalizedText, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return found, missing
}
