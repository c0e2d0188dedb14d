package atsserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// minCVChars is the floor below which extracted text is too thin to score.
const minCVChars = 100

func registerATSCheck(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_check",
		Description: "Score a resume against a job description the way an applicant tracking system would. Accepts resume as plain text or a base64 PDF/image. Returns a deterministic 0-100 score with per-section breakdown, keywords found/missing, and (unless skipped) LLM-written issues, quick wins, and suggestions.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ATSCheckInput) (*mcp.CallToolResult, engine.ATSCheckOutput, error) {
		if input.JobDescription == "" {
			return nil, engine.ATSCheckOutput{}, errors.New("job_description is required")
		}
		if input.CV == "" && input.Document == "" {
			return nil, engine.ATSCheckOutput{}, errors.New("cv or document is required")
		}

		cvText, err := resolveCV(ctx, input)
		if err != nil {
			return nil, engine.ATSCheckOutput{}, err
		}

		jdText := input.JobDescription
		if engine.LooksLikeHTML(jdText) {
			jdText = engine.PlainTextFromHTML(jdText)
		}
		if engine.Cfg.MaxCVChars > 0 {
			cvText = engine.TruncateRunes(cvText, engine.Cfg.MaxCVChars, "")
		}
		if engine.Cfg.MaxJDChars > 0 {
			jdText = engine.TruncateRunes(jdText, engine.Cfg.MaxJDChars, "")
		}

		cacheKey := engine.CacheKey("ats_check",
			ats.Normalize(cvText), ats.Normalize(jdText),
			fmt.Sprintf("narrative=%t", !input.SkipNarrative))
		if out, ok := toolutil.CacheLoadJSON[engine.ATSCheckOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		engine.IncrATSChecks()
		rep := ats.Analyze(cvText, jdText)
		out := buildOutput(rep)

		if !input.SkipNarrative && engine.Cfg.LLMClient != nil {
			err := engine.TrackOperation(ctx, "ats_check_narrative", func(ctx context.Context) error {
				nr, err := ats.GenerateNarrative(ctx, cvText, jdText, rep)
				if err != nil {
					return err
				}
				out.Issues = nr.Issues
				out.QuickWins = nr.QuickWins
				out.Suggestions = nr.Suggestions
				out.Recommendation = nr.Recommendation
				return nil
			})
			if err != nil {
				// Deterministic result still stands without the prose.
				slog.Warn("ats_check: narrative failed", slog.Any("error", err))
			}
		}

		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// resolveCV returns the resume text from either the direct cv field or the
// uploaded document.
func resolveCV(ctx context.Context, input engine.ATSCheckInput) (string, error) {
	if input.CV != "" {
		return input.CV, nil
	}

	data, err := toolutil.DecodeDocument(input.Document)
	if err != nil {
		return "", err
	}
	mediaType := input.MediaType
	if mediaType == "" {
		mediaType = toolutil.MediaTypeFromDataURL(input.Document)
	}

	engine.IncrExtractRequests()
	text := ats.Extract(ctx, data, mediaType, visionFallback())
	if len(text) < minCVChars {
		engine.IncrExtractFallbacks()
		return "", fmt.Errorf("could not extract enough text from the document (%d chars); paste the CV text instead", len(text))
	}
	return text, nil
}

// visionFallback returns the vision OCR hook, or nil when no vision model is
// configured.
func visionFallback() ats.VisionFunc {
	if engine.Cfg.VisionModel == "" {
		return nil
	}
	return engine.CallVision
}

// buildOutput maps a deterministic report onto the tool response shape.
func buildOutput(rep ats.Report) engine.ATSCheckOutput {
	return engine.ATSCheckOutput{
		ATSScore:            rep.Rubric.Total,
		ATSScoreExplanation: rep.Rubric.Explanation,
		KeywordRatePct:      rep.Rubric.KeywordRatePct,
		KeywordsFound:       rep.KeywordsFound,
		KeywordsMissing:     rep.KeywordsMissing,
		SectionScores:       sectionScores(rep),
	}
}

// sectionScores rescales rubric points onto 0-100 per-section percentages.
// Experience relevance pools the title, quantified-achievement, and years
// sub-scores (40 points combined).
func sectionScores(rep ats.Report) engine.SectionScores {
	r := rep.Rubric
	experience := float64(r.TitlePts+r.QuantifiedPts+r.ExperiencePts) / 40 * 100
	return engine.SectionScores{
		SkillsMatch:         r.KeywordRatePct,
		ExperienceRelevance: int(math.Round(experience)),
		EducationFit:        r.EducationPts * 10,
		FormattingQuality:   rep.FormattingQuality,
	}
}
