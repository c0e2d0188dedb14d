package atsserver

import (
	"testing"

	"github.com/anatolykoptev/go_ats/internal/engine/ats"
)

func TestSectionScores(t *testing.T) {
	rep := ats.Report{
		FormattingQuality: 85,
		Rubric: ats.Rubric{
			KeywordRatePct: 75,
			TitlePts:       15,
			QuantifiedPts:  10,
			ExperiencePts:  7,
			EducationPts:   8,
		},
	}

	got := sectionScores(rep)

	if got.SkillsMatch != 75 {
		t.Errorf("SkillsMatch = %d, want 75", got.SkillsMatch)
	}
	// (15+10+7)/40 = 80%
	if got.ExperienceRelevance != 80 {
		t.Errorf("ExperienceRelevance = %d, want 80", got.ExperienceRelevance)
	}
	if got.EducationFit != 80 {
		t.Errorf("EducationFit = %d, want 80", got.EducationFit)
	}
	if got.FormattingQuality != 85 {
		t.Errorf("FormattingQuality = %d, want 85", got.FormattingQuality)
	}
}

func TestSectionScoresZero(t *testing.T) {
	got := sectionScores(ats.Report{})
	if got.SkillsMatch != 0 || got.ExperienceRelevance != 0 || got.EducationFit != 0 || got.FormattingQuality != 0 {
		t.Errorf("zero report produced non-zero sections: %+v", got)
	}
}

func TestBuildOutput(t *testing.T) {
	rep := ats.Analyze(
		"Senior Backend Engineer, 6 years of Go, Docker and PostgreSQL. BSc CS. Cut costs by 20%.",
		"Senior Backend Engineer\n- 5+ years\n- Go, Docker, PostgreSQL\n- Bachelor degree",
	)
	out := buildOutput(rep)

	if out.ATSScore != rep.Rubric.Total {
		t.Errorf("ATSScore = %d, want %d", out.ATSScore, rep.Rubric.Total)
	}
	if out.ATSScoreExplanation == "" {
		t.Error("explanation must be populated")
	}
	if out.KeywordsFound == nil || out.KeywordsMissing == nil {
		t.Error("keyword buckets must be non-nil")
	}
	if out.KeywordRatePct != rep.Rubric.KeywordRatePct {
		t.Errorf("KeywordRatePct = %d, want %d", out.KeywordRatePct, rep.Rubric.KeywordRatePct)
	}
	// Narrative fields are not set by the deterministic path.
	if out.Recommendation != "" || out.Issues != nil {
		t.Errorf("unexpected narrative fields: %+v", out)
	}
}
