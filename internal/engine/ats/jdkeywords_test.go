package ats

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

const sampleJD = `Senior Backend Engineer

We are looking for an experienced engineer to join our platform team.

Requirements:
- 5+ years of backend development experience
- Strong proficiency in Python and Django
- Experience with PostgreSQL and Redis
- Deployed services on k8s in production
- CI/CD pipelines, ideally GitHub Actions
- OpenTelemetry pipeline
- Excellent communication skills
- Bachelor degree in Computer Science or related field

We offer:
- Competitive salary
- Remote friendly culture
`

func TestExtractJDKeywords(t *testing.T) {
	got := ExtractJDKeywords(sampleJD)

	for _, want := range []string{"python", "django", "postgresql", "redis", "kubernetes", "ci/cd", "github actions"} {
		if !slices.Contains(got, want) {
			t.Errorf("missing expected keyword %q in %v", want, got)
		}
	}

	// Chunk pass recovers terms outside the known vocabulary.
	if !slices.Contains(got, "opentelemetry pipeline") {
		t.Errorf("chunk pass missed JD-specific term, got %v", got)
	}
}

func TestExtractJDKeywordsByPass(t *testing.T) {
	vocab, heuristic := ExtractJDKeywordsByPass(sampleJD)

	if !slices.Contains(vocab, "python") || !slices.Contains(vocab, "postgresql") {
		t.Errorf("vocabulary pass missing stack terms: %v", vocab)
	}
	if !slices.Contains(heuristic, "opentelemetry pipeline") {
		t.Errorf("heuristic pass missing JD-specific term: %v", heuristic)
	}
	for _, kw := range heuristic {
		if slices.Contains(vocab, kw) {
			t.Errorf("keyword %q reported by both passes", kw)
		}
	}

	union := ExtractJDKeywords(sampleJD)
	if len(union) != len(vocab)+len(heuristic) {
		t.Errorf("union size %d != %d + %d", len(union), len(vocab), len(heuristic))
	}
}

func TestExtractJDKeywordsRejectsBoilerplate(t *testing.T) {
	got := ExtractJDKeywords(sampleJD)
	for _, kw := range got {
		for _, bad := range []string{"communication", "salary", "we offer", "degree", "years of"} {
			if strings.Contains(kw, bad) {
				t.Errorf("boilerplate leaked into keywords: %q", kw)
			}
		}
	}
}

func TestExtractJDKeywordsRejectsDurations(t *testing.T) {
	got := ExtractJDKeywords("Requirements:\n- 5+ years\n- 6 months\n- Docker\n")
	for _, kw := range got {
		if strings.Contains(kw, "years") || strings.Contains(kw, "months") {
			t.Errorf("duration leaked into keywords: %q", kw)
		}
	}
	if !slices.Contains(got, "docker") {
		t.Errorf("expected docker, got %v", got)
	}
}

func TestExtractJDKeywordsDedup(t *testing.T) {
	got := ExtractJDKeywords("Docker experience required. We love Docker. docker, DOCKER.")
	count := 0
	for _, kw := range got {
		if kw == "docker" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("docker appears %d times in %v", count, got)
	}
}

func TestExtractJDKeywordsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&sb, "- tool%d-cli automation\n", i)
	}
	sb.WriteString("- python, java, golang, rust, docker, kubernetes, terraform, ansible\n")

	got := ExtractJDKeywords(sb.String())
	if len(got) > 40 {
		t.Errorf("keyword cap exceeded: %d", len(got))
	}
	for _, kw := range got {
		if len(kw) > 40 {
			t.Errorf("keyword over length cap: %q", kw)
		}
	}
}

func TestExtractJDKeywordsEmpty(t *testing.T) {
	got := ExtractJDKeywords("   \n  ")
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestExtractJDKeywordsNormalized(t *testing.T) {
	got := ExtractJDKeywords("Requirements: KUBERNETES, Docker!")
	for _, kw := range got {
		if kw != Normalize(kw) {
			t.Errorf("keyword %q is not normalized", kw)
		}
	}
}
