package ats

import (
	"regexp"
	"strings"
)

// formattingHeadings are the section names the formatting scorer looks for.
// Smaller than the normalizer's dictionary: only the sections whose presence
// signals a machine-parseable resume structure.
var formattingHeadings = []string{
	"summary", "experience", "education", "skills", "projects", "languages",
}

var (
	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe  = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	bulletRe = regexp.MustCompile(`(?m)^\s*[•●▪◦·\-*]\s+\S`)
)

// ScoreFormatting heuristically rates the structural quality of extracted
// CV text on [0,100]: a proxy for "is this a well-structured, parseable
// resume", not a judgment of content. Additive: base 35, up to +20 for
// length, +6 per recognized section heading, up to +10 for bullet density,
// +6 for contact indicators.
func ScoreFormatting(rawText string) int {
	score := 35

	switch n := len(rawText); {
	case n > 1200:
		score += 20
	case n > 700:
		score += 12
	case n > 400:
		score += 6
	}

	lower := strings.ToLower(rawText)
	for _, h := range formattingHeadings {
		if hasHeading(lower, h) {
			score += 6
		}
	}

	switch bullets := len(bulletRe.FindAllString(rawText, -1)); {
	case bullets >= 10:
		score += 10
	case bullets >= 5:
		score += 6
	case bullets >= 2:
		score += 3
	}

	if hasContactInfo(lower) {
		score += 6
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// hasHeading checks the literal heading plus its letter-spaced form, which
// covers both "EXPERIENCE" and the "E X P E R I E N C E" artifacts of
// spacing-preserving PDF extraction. Input is already lowercased, so the
// caps-spaced variant folds into the spaced one.
func hasHeading(lowerText, heading string) bool {
	return strings.Contains(lowerText, heading) ||
		strings.Contains(lowerText, letterSpace(heading))
}

// hasContactInfo looks for email/phone/profile/location markers.
func hasContactInfo(lowerText string) bool {
	return emailRe.MatchString(lowerText) ||
		phoneRe.MatchString(lowerText) ||
		strings.Contains(lowerText, "linkedin") ||
		strings.Contains(lowerText, "github.com") ||
		strings.Contains(lowerText, "location:")
}
