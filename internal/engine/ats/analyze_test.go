package ats

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

const analyzeJD = `Senior Backend Engineer

Requirements:
- 5+ years of backend experience
- Go and PostgreSQL in production
- Docker and Kubernetes
- Bachelor degree in Computer Science
`

func TestAnalyze(t *testing.T) {
	rep := Analyze(richResume, analyzeJD)

	// Every JD keyword lands in exactly one bucket.
	keywords := ExtractJDKeywords(analyzeJD)
	require.Equal(t, len(keywords), len(rep.KeywordsFound)+len(rep.KeywordsMissing))

	for _, kw := range []string{"golang", "postgresql", "docker", "kubernetes"} {
		require.Contains(t, rep.KeywordsFound, kw)
	}

	require.GreaterOrEqual(t, rep.FormattingQuality, 0)
	require.LessOrEqual(t, rep.FormattingQuality, 100)

	// Strong CV against a matching JD should score well across the board.
	require.GreaterOrEqual(t, rep.Rubric.Total, 70)
	require.LessOrEqual(t, rep.Rubric.Total, 100)
	require.Equal(t, 15, rep.Rubric.TitlePts)
	require.Equal(t, 10, rep.Rubric.ExperiencePts)
	require.Equal(t, 10, rep.Rubric.EducationPts)
	require.NotEmpty(t, rep.Rubric.Explanation)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	rep := Analyze("", "")

	require.NotNil(t, rep.KeywordsFound)
	require.NotNil(t, rep.KeywordsMissing)
	require.Empty(t, rep.KeywordsFound)
	require.Empty(t, rep.KeywordsMissing)

	// Empty text still gets the formatting base, which feeds the rubric.
	require.Equal(t, 35, rep.FormattingQuality)
	require.LessOrEqual(t, rep.Rubric.Total, 10, "empty inputs must score in the single digits")
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := Analyze(richResume, analyzeJD)
	b := Analyze(richResume, analyzeJD)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Analyze not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestAnalyzeMismatchScoresLow(t *testing.T) {
	cv := "Pastry chef with a passion for sourdough and laminated doughs."
	strong := Analyze(richResume, analyzeJD)
	weak := Analyze(cv, analyzeJD)
	require.Less(t, weak.Rubric.Total, strong.Rubric.Total)
}
