package ats

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Sub-score maxima. The allocation is fixed: changing a weight changes the
// product's scoring contract, not an implementation detail.
const (
	maxKeywordPts    = 40
	maxTitlePts      = 15
	maxQuantifiedPts = 15
	maxEducationPts  = 10
	maxExperiencePts = 10
	maxSkillsPts     = 10
	maxFormattingPts = 10
)

// Rubric is the deterministic 100-point compatibility breakdown. Total is
// always the clamped sum of the sub-scores, and Explanation enumerates each
// sub-score with its max so callers can audit how a total was reached.
type Rubric struct {
	Total          int    `json:"total"`
	KeywordPts     int    `json:"keyword_pts"`
	TitlePts       int    `json:"title_pts"`
	QuantifiedPts  int    `json:"quantified_pts"`
	EducationPts   int    `json:"education_pts"`
	ExperiencePts  int    `json:"experience_pts"`
	SkillsPts      int    `json:"skills_pts"`
	FormattingPts  int    `json:"formatting_pts"`
	KeywordRatePct int    `json:"keyword_rate_pct"`
	Explanation    string `json:"explanation"`
}

var (
	// roleLineRe spots a role phrase ("Senior Backend Engineer") in a JD line.
	roleLineRe = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|architect|manager|analyst|scientist|designer|consultant|administrator|specialist|technician|lead|director)\b`)

	// roleLinePrefixRe strips label prefixes like "Job Title:" or "Role -".
	roleLinePrefixRe = regexp.MustCompile(`(?i)^(job\s*title|title|role|position)\s*[:\-–—]\s*`)

	// seniorityWords are modifiers excluded from single-word title matching:
	// matching "Senior" alone says nothing about role alignment.
	seniorityWords = map[string]bool{
		"senior": true, "junior": true, "staff": true, "principal": true,
		"lead": true, "mid": true, "level": true, "head": true,
	}

	// quantifiedRes detect quantified achievements: percentages, currency,
	// "reduced X by N", and counts with units.
	quantifiedRes = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?\s*%`),
		regexp.MustCompile(`[$€£]\s?\d[\d,.]*\s*(?:k|m|b|million|billion)?`),
		regexp.MustCompile(`(?i)\b(?:reduced|increased|improved|grew|cut|saved|decreased|boosted|scaled|accelerated)\b[^.\n]{0,50}?\bby\s+\d+`),
		regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:k|m|x)\b`),
		regexp.MustCompile(`(?i)\b\d+\+?\s*(?:users|customers|clients|requests|transactions|downloads|engineers|developers|people|teams|services|servers|years)\b`),
	}

	educationMarkersRe = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|b\.?sc|m\.?sc|b\.?s|m\.?s|mba|degree|university|college|diploma|certified|certification|certificate)\b`)
	educationRequireRe = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|degree|certification|certified)\b`)

	yearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)
)

// ScoreRubric computes the deterministic 0-100 compatibility score from the
// keyword buckets, the raw CV/JD texts, and the formatting-quality score.
// Pure and total: any string inputs produce a valid Rubric; empty inputs
// fall through to the zero/default branches.
func ScoreRubric(cvText, jdText string, found, missing []string, formattingQuality int) Rubric {
	var r Rubric

	normCV := Normalize(cvText)
	cvEmpty := strings.TrimSpace(cvText) == ""
	jdEmpty := strings.TrimSpace(jdText) == ""

	// Keyword match: 0-40, proportional to the found rate.
	totalKW := len(found) + len(missing)
	if totalKW > 0 {
		rate := float64(len(found)) / float64(totalKW)
		r.KeywordPts = int(math.Round(rate * maxKeywordPts))
		r.KeywordRatePct = int(math.Round(rate * 100))
	}

	r.TitlePts = scoreTitleAlignment(normCV, jdText)
	r.QuantifiedPts = scoreQuantified(cvText)
	r.EducationPts = scoreEducation(cvEmpty, cvText, jdText)
	r.ExperiencePts = scoreExperienceYears(jdEmpty, cvText, jdText)

	// Skills completeness reuses the keyword rate with coarser tiers.
	switch {
	case totalKW == 0:
		r.SkillsPts = 2
	case r.KeywordRatePct >= 80:
		r.SkillsPts = maxSkillsPts
	case r.KeywordRatePct >= 50:
		r.SkillsPts = 6
	default:
		r.SkillsPts = 2
	}

	r.FormattingPts = int(math.Round(float64(formattingQuality) / 100 * maxFormattingPts))

	sum := r.KeywordPts + r.TitlePts + r.QuantifiedPts + r.EducationPts +
		r.ExperiencePts + r.SkillsPts + r.FormattingPts
	if sum > 100 {
		sum = 100
	}
	if sum < 0 {
		sum = 0
	}
	r.Total = sum

	r.Explanation = fmt.Sprintf(
		"Keyword match: %d/%d (%d%% of %d keywords). Title alignment: %d/%d. "+
			"Quantified achievements: %d/%d. Education fit: %d/%d. "+
			"Experience fit: %d/%d. Skills completeness: %d/%d. "+
			"Formatting: %d/%d. Total: %d/100.",
		r.KeywordPts, maxKeywordPts, r.KeywordRatePct, totalKW,
		r.TitlePts, maxTitlePts,
		r.QuantifiedPts, maxQuantifiedPts,
		r.EducationPts, maxEducationPts,
		r.ExperiencePts, maxExperiencePts,
		r.SkillsPts, maxSkillsPts,
		r.FormattingPts, maxFormattingPts,
		r.Total,
	)
	return r
}

// InferTargetRole returns the JD's target role phrase: the first line
// containing a role noun, stripped of label prefixes and trailing separators.
func InferTargetRole(jdText string) string {
	for _, line := range strings.Split(jdText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 80 {
			continue
		}
		if !roleLineRe.MatchString(line) {
			continue
		}
		line = roleLinePrefixRe.ReplaceAllString(line, "")
		if idx := strings.IndexAny(line, "|–—("); idx > 0 {
			line = line[:idx]
		}
		return strings.TrimSpace(line)
	}
	return ""
}

// scoreTitleAlignment: 15 if the JD's inferred role phrase appears whole in
// the CV, 8 if any significant word of it does, else 0.
func scoreTitleAlignment(normCV, jdText string) int {
	role := Normalize(InferTargetRole(jdText))
	if role == "" || normCV == "" {
		return 0
	}
	if containsToken(normCV, role) {
		return maxTitlePts
	}
	for _, word := range strings.Fields(role) {
		if len(word) < 4 || seniorityWords[word] {
			continue
		}
		if containsToken(normCV, word) {
			return 8
		}
	}
	return 0
}

// scoreQuantified counts distinct metric mentions in the CV and maps the
// count onto 0/5/10/15.
func scoreQuantified(cvText string) int {
	unique := make(map[string]bool)
	for _, re := range quantifiedRes {
		for _, m := range re.FindAllString(cvText, -1) {
			unique[strings.ToLower(strings.TrimSpace(m))] = true
		}
	}
	switch n := len(unique); {
	case n >= 5:
		return maxQuantifiedPts
	case n >= 3:
		return 10
	case n >= 1:
		return 5
	default:
		return 0
	}
}

// scoreEducation compares education/cert markers in the CV against what the
// JD requires. An empty CV scores 0; there is nothing to credit.
func scoreEducation(cvEmpty bool, cvText, jdText string) int {
	if cvEmpty {
		return 0
	}
	cvHas := educationMarkersRe.MatchString(cvText)
	jdRequires := educationRequireRe.MatchString(jdText)
	switch {
	case jdRequires && cvHas:
		return maxEducationPts
	case !jdRequires && cvHas:
		return 8
	case jdRequires && !cvHas:
		return 0
	default:
		return 5
	}
}

// scoreExperienceYears compares the first "N years" requirement in the JD
// against the first "N years" claim in the CV. Only the first mention on
// each side is modeled; multiple role-specific requirements are not.
func scoreExperienceYears(jdEmpty bool, cvText, jdText string) int {
	if jdEmpty {
		return 0
	}
	required, reqOK := firstYears(jdText)
	if !reqOK {
		// JD states no explicit year requirement.
		return 7
	}
	claimed, claimOK := firstYears(cvText)
	if !claimOK {
		return 2
	}
	switch diff := claimed - required; {
	case diff >= 0:
		return maxExperiencePts
	case diff == -1:
		return 7
	case diff == -2:
		return 3
	default:
		return 0
	}
}

// firstYears extracts the first "N years" number from text.
func firstYears(text string) (int, bool) {
	m := yearsRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil {
		return 0, false
	}
	return n, true
}
