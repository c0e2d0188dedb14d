package ats

// Report is the full deterministic analysis of a CV against a JD.
type Report struct {
	KeywordsFound     []string `json:"keywords_found"`
	KeywordsMissing   []string `json:"keywords_missing"`
	FormattingQuality int      `json:"formatting_quality"`
	Rubric            Rubric   `json:"rubric"`
}

// Analyze runs the deterministic pipeline: JD keyword extraction, CV keyword
// partition, formatting heuristics, and the 100-point rubric. No I/O and no
// LLM involved: the same inputs always give the same Report.
func Analyze(cvText, jdText string) Report {
	keywords := ExtractJDKeywords(jdText)
	found, missing := PartitionKeywords(Normalize(cvText), keywords)
	formatting := ScoreFormatting(cvText)
	return Report{
		KeywordsFound:     found,
		KeywordsMissing:   missing,
		FormattingQuality: formatting,
		Rubric:            ScoreRubric(cvText, jdText, found, missing, formatting),
	}
}
