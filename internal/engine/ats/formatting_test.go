package ats

import (
	"strings"
	"testing"
)

const richResume = `Jane Smith
jane.smith@example.com | +1 (555) 123-4567 | linkedin.com/in/janesmith

SUMMARY
Backend engineer with 8 years building distributed systems in Go and Python.

EXPERIENCE
Acme Corp, Senior Backend Engineer
- Designed and shipped a payments API handling 2M requests per day
- Reduced p99 latency by 40% through query optimization
- Led migration of 30 services to Kubernetes
- Mentored 4 junior engineers
- Built CI/CD pipelines with GitHub Actions

Initech, Backend Engineer
- Implemented event-driven order processing on Kafka
- Cut infrastructure costs by $200k per year
- Introduced contract testing across 12 services

EDUCATION
BSc Computer Science, State University

SKILLS
Go, Python, PostgreSQL, Redis, Kafka, Docker, Kubernetes, Terraform

PROJECTS
- opensourced a rate limiter library with 2k GitHub stars
`

func TestScoreFormattingBounds(t *testing.T) {
	inputs := []string{"", "short", richResume, strings.Repeat("x", 5000)}
	for _, in := range inputs {
		got := ScoreFormatting(in)
		if got < 0 || got > 100 {
			t.Errorf("ScoreFormatting out of bounds: %d for %q...", got, in[:min(20, len(in))])
		}
	}
}

func TestScoreFormattingEmptyBaseline(t *testing.T) {
	if got := ScoreFormatting(""); got != 35 {
		t.Errorf("empty text = %d, want base 35", got)
	}
}

func TestScoreFormattingRichResume(t *testing.T) {
	got := ScoreFormatting(richResume)
	if got < 85 {
		t.Errorf("well-structured resume scored %d, want >= 85", got)
	}
}

func TestScoreFormattingRewardsStructure(t *testing.T) {
	flat := strings.Repeat("worked on software projects and delivered features ", 30)
	if flat2, rich := ScoreFormatting(flat), ScoreFormatting(richResume); flat2 >= rich {
		t.Errorf("flat text (%d) scored >= structured resume (%d)", flat2, rich)
	}
}

func TestScoreFormattingSpacedHeadings(t *testing.T) {
	spaced := "E X P E R I E N C E\nbuilt systems\n\nE D U C A T I O N\nBSc"
	plain := "EXPERIENCE\nbuilt systems\n\nEDUCATION\nBSc"
	if s, p := ScoreFormatting(spaced), ScoreFormatting(plain); s != p {
		t.Errorf("spaced headings scored %d, plain scored %d; want equal", s, p)
	}
}

func TestScoreFormattingContactInfo(t *testing.T) {
	base := "EXPERIENCE\ndid things for a while in several places over the years"
	withContact := base + "\nreach me at someone@example.com"
	if b, c := ScoreFormatting(base), ScoreFormatting(withContact); c <= b {
		t.Errorf("contact info did not raise score: %d vs %d", b, c)
	}
}

func TestScoreFormattingBullets(t *testing.T) {
	base := "EXPERIENCE\n" + strings.Repeat("shipped features on schedule\n", 12)
	bulleted := "EXPERIENCE\n" + strings.Repeat("- shipped features on schedule\n", 12)
	if b, bl := ScoreFormatting(base), ScoreFormatting(bulleted); bl <= b {
		t.Errorf("bullets did not raise score: %d vs %d", b, bl)
	}
}

func TestHasHeading(t *testing.T) {
	if !hasHeading("experience at acme", "experience") {
		t.Error("literal heading not found")
	}
	if !hasHeading("e x p e r i e n c e", "experience") {
		t.Error("letter-spaced heading not found")
	}
	if hasHeading("inexperienced but eager", "education") {
		t.Error("false positive heading")
	}
}
