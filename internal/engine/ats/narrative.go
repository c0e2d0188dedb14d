package ats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// NarrativeResult is the LLM-written advisory layer on top of a Report.
// The numeric fields are always overwritten with deterministic values after
// parsing; only the prose fields come from the model.
type NarrativeResult struct {
	ATSScore        int      `json:"ats_score"`
	KeywordsFound   []string `json:"keywords_found"`
	KeywordsMissing []string `json:"keywords_missing"`
	Issues          []string `json:"issues"`
	QuickWins       []string `json:"quick_wins"`
	Suggestions     []string `json:"suggestions"`
	Recommendation  string   `json:"recommendation"`
}

const narrativePrompt = `You are an ATS (applicant tracking system) expert reviewing a resume against a job description.

RESUME:
%s

JOB DESCRIPTION:
%s

COMPUTED ATS SCORE: %d/100
SCORE BREAKDOWN: %s
KEYWORDS FOUND: %s
KEYWORDS MISSING: %s

Based on the computed analysis above, provide actionable feedback:

1. "issues" — 2-5 concrete problems holding this resume back for this job (missing keywords, weak sections, formatting risks). Be specific to this resume, not generic.

2. "quick_wins" — 2-4 changes the candidate can make in under an hour (add a missing keyword they plausibly have, rephrase a bullet, add a metric).

3. "suggestions" — 2-4 deeper improvements requiring real work (projects, certifications, restructuring sections).

4. "recommendation" — 2-3 sentences: overall verdict and the single most impactful next step.

Return a JSON object with this exact structure:
{
  "ats_score": <echo back the computed score>,
  "keywords_found": <echo back the found keywords as an array>,
  "keywords_missing": <echo back the missing keywords as an array>,
  "issues": ["<issue>"],
  "quick_wins": ["<quick win>"],
  "suggestions": ["<suggestion>"],
  "recommendation": "<verdict and next step>"
}

Return ONLY the JSON object, no markdown, no explanation.`

// GenerateNarrative asks the LLM for advisory prose around a deterministic
// Report. The score and keyword lists in the result are always the computed
// ones, whatever the model echoed back.
func GenerateNarrative(ctx context.Context, cvText, jdText string, rep Report) (*NarrativeResult, error) {
	cvTrunc := engine.TruncateRunes(cvText, 4000, "")
	jdTrunc := engine.TruncateRunes(jdText, 3000, "")

	prompt := fmt.Sprintf(narrativePrompt,
		cvTrunc, jdTrunc,
		rep.Rubric.Total, rep.Rubric.Explanation,
		strings.Join(rep.KeywordsFound, ", "),
		strings.Join(rep.KeywordsMissing, ", "),
	)

	raw, err := engine.CallLLM(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ats narrative LLM: %w", err)
	}

	var result NarrativeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("ats narrative parse: %w (raw: %s)", err, engine.TruncateAtWord(raw, 200))
	}

	// Override with computed values — don't trust LLM for these.
	result.ATSScore = rep.Rubric.Total
	result.KeywordsFound = rep.KeywordsFound
	result.KeywordsMissing = rep.KeywordsMissing

	return &result, nil
}
