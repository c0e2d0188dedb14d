package engine

// --- Tool input types ---

type ATSCheckInput struct {
	CV             string `json:"cv,omitempty" jsonschema:"Resume plain text. Use this OR document, not both"`
	Document       string `json:"document,omitempty" jsonschema:"Base64-encoded resume file (PDF or image)"`
	MediaType      string `json:"media_type,omitempty" jsonschema:"MIME type of document: application/pdf, image/png, image/jpeg"`
	JobDescription string `json:"job_description" jsonschema:"Job description text or HTML"`
	SkipNarrative  bool   `json:"skip_narrative,omitempty" jsonschema:"Skip the LLM advisory pass and return deterministic analysis only"`
}

type ExtractTextInput struct {
	Document  string `json:"document" jsonschema:"Base64-encoded file (PDF or image)"`
	MediaType string `json:"media_type,omitempty" jsonschema:"MIME type: application/pdf, image/png, image/jpeg"`
}

type JDKeywordsInput struct {
	JobDescription string `json:"job_description" jsonschema:"Job description text or HTML to mine for skill keywords"`
}

// --- Output types (JSON responses) ---

// SectionScores presents the rubric as per-section percentages for clients
// that render progress bars rather than a point breakdown.
type SectionScores struct {
	SkillsMatch         int `json:"skills_match"`
	ExperienceRelevance int `json:"experience_relevance"`
	EducationFit        int `json:"education_fit"`
	FormattingQuality   int `json:"formatting_quality"`
}

type ATSCheckOutput struct {
	ATSScore            int           `json:"ats_score"`
	ATSScoreExplanation string        `json:"ats_score_explanation"`
	KeywordRatePct      int           `json:"keyword_rate_pct"`
	KeywordsFound       []string      `json:"keywords_found"`
	KeywordsMissing     []string      `json:"keywords_missing"`
	SectionScores       SectionScores `json:"section_scores"`
	Issues              []string      `json:"issues,omitempty"`
	QuickWins           []string      `json:"quick_wins,omitempty"`
	Suggestions         []string      `json:"suggestions,omitempty"`
	Recommendation      string        `json:"recommendation,omitempty"`
}

type ExtractTextOutput struct {
	Text              string `json:"text"`
	Chars             int    `json:"chars"`
	Strategy          string `json:"strategy"`
	FormattingQuality int    `json:"formatting_quality"`
}

type JDKeywordsOutput struct {
	Keywords   []string            `json:"keywords"`
	Vocabulary []string            `json:"vocabulary"`
	Heuristic  []string            `json:"heuristic"`
	Variants   map[string][]string `json:"variants,omitempty"`
	Count      int                 `json:"count"`
}
