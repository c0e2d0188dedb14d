// Package ats implements the deterministic resume/job-description matching
// core: text normalization, PDF text extraction, keyword canonicalization,
// JD keyword mining, word-boundary matching, and the fixed scoring rubric.
//
// Every function in this package is a pure function of its inputs, with no
// shared state and no I/O except the injected vision fallback in Extract.
package ats

import (
	"regexp"
	"strings"
)

// sectionHeadings are resume headings that PDF extractors frequently emit
// letter-spaced ("E X P E R I E N C E"). Collapsed via dictionary before
// the generic spaced-run fallback.
var sectionHeadings = []string{
	"professional experience",
	"work experience",
	"experience",
	"employment history",
	"education",
	"skills",
	"technical skills",
	"summary",
	"professional summary",
	"projects",
	"certifications",
	"languages",
	"achievements",
	"objective",
}

// spacedHeadingRes holds one case-insensitive pattern per known heading,
// matching its letter-spaced form (word gaps spaced twice).
var spacedHeadingRes = buildSpacedHeadingRes()

func buildSpacedHeadingRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(sectionHeadings))
	for _, h := range sectionHeadings {
		res = append(res, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(letterSpace(h))))
	}
	return res
}

// spacedRunRe matches any 4+ letter run with single characters separated by
// single spaces, e.g. "J A V A" or "P R O F I L E".
var spacedRunRe = regexp.MustCompile(`(?:\b[A-Za-z] ){3,}[A-Za-z]\b`)

// pageSeparatorRe matches page-break artifacts like "-- 1 of 2 --" or
// "Page 2 of 3" that extraction leaves between pages.
var pageSeparatorRe = regexp.MustCompile(`(?im)^\s*(?:-+\s*)?(?:page\s+)?\d+\s+of\s+\d+(?:\s*-+)?\s*$`)

var (
	disallowedRe = regexp.MustCompile(`[^a-z0-9+#./\-\s]+`)
	// trailingDotRe strips sentence-ending dots. A dot is only meaningful
	// inside a token (".net", "node.js"); at a word boundary it is punctuation
	// and would break matching ("postgresql." vs "postgresql").
	trailingDotRe = regexp.MustCompile(`\.+(\s|$)`)
	spaceRunRe    = regexp.MustCompile(`[ \t]+`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// asciiFolder converts curly quotes and unicode dashes to ASCII equivalents.
var asciiFolder = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'",
	"“", `"`, "”", `"`, "„", `"`,
	"–", "-", "—", "-", "−", "-",
	" ", " ",
)

// CollapseSpacedRuns rejoins letter-spaced sequences into solid words,
// preserving case. Known section headings go first: their letter-spaced form
// uses double spaces at word gaps ("w o r k  e x p e r i e n c e"), which
// the dictionary turns back into single word breaks. The generic fallback
// then collapses any remaining 4+ letter single-spaced run.
func CollapseSpacedRuns(text string) string {
	for _, re := range spacedHeadingRes {
		text = re.ReplaceAllStringFunc(text, despace)
	}
	return spacedRunRe.ReplaceAllStringFunc(text, func(run string) string {
		return strings.ReplaceAll(run, " ", "")
	})
}

// despace removes letter-spacing: double spaces mark word gaps, single
// spaces separate letters.
func despace(m string) string {
	m = strings.ReplaceAll(m, "  ", "\x00")
	m = strings.ReplaceAll(m, " ", "")
	return strings.ReplaceAll(m, "\x00", " ")
}

// letterSpace renders "skills" as "s k i l l s"; word gaps become double
// spaces so "work experience" matches "w o r k  e x p e r i e n c e".
func letterSpace(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r == ' ' {
			b.WriteByte(' ')
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize canonicalizes text for keyword matching: collapses letter-spaced
// runs, lowercases, folds curly quotes/dashes to ASCII, strips everything
// outside [a-z0-9+#./\-\s] (keeping chars meaningful to tech terms like
// "c++", ".net", "ci/cd"), and collapses whitespace to single spaces.
//
// Idempotent: Normalize(Normalize(s)) == Normalize(s). Spaced runs are
// collapsed again after punctuation stripping because stripping can create
// new single-letter runs ("a*b*c*d" → "a b c d").
func Normalize(text string) string {
	text = asciiFolder.Replace(text)
	text = strings.ToLower(text)
	text = CollapseSpacedRuns(text)
	text = disallowedRe.ReplaceAllString(text, " ")
	text = trailingDotRe.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")
	text = CollapseSpacedRuns(text)
	return strings.Join(strings.Fields(text), " ")
}

// CleanExtracted tidies raw extractor output while preserving line structure
// (the formatting scorer needs bullets and headings on their own lines):
// collapses spaced headings, drops page-separator lines, trims intra-line
// space runs and excess blank lines.
func CleanExtracted(text string) string {
	text = CollapseSpacedRuns(text)
	text = pageSeparatorRe.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
