package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJDKeywords(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "jd_keywords",
		Description: "Extract the skill and technology keywords from a job description (text or HTML). Returns up to 40 normalized keywords: known stack terms plus JD-specific technical phrases, deduplicated, boilerplate filtered out.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.JDKeywordsInput) (*mcp.CallToolResult, engine.JDKeywordsOutput, error) {
		if input.JobDescription == "" {
			return nil, engine.JDKeywordsOutput{}, errors.New("job_description is required")
		}

		jdText := input.JobDescription
		if engine.LooksLikeHTML(jdText) {
			jdText = engine.PlainTextFromHTML(jdText)
		}
		if engine.Cfg.MaxJDChars > 0 {
			jdText = engine.TruncateRunes(jdText, engine.Cfg.MaxJDChars, "")
		}

		cacheKey := engine.CacheKey("jd_keywords", ats.Normalize(jdText))
		if out, ok := toolutil.CacheLoadJSON[engine.JDKeywordsOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		engine.IncrJDKeywordCalls()
		vocab, heuristic := ats.ExtractJDKeywordsByPass(jdText)
		keywords := make([]string, 0, len(vocab)+len(heuristic))
		keywords = append(keywords, vocab...)
		keywords = append(keywords, heuristic...)

		variants := make(map[string][]string, len(keywords))
		for _, kw := range keywords {
			if v := ats.VariantsOf(kw); len(v) > 1 {
				variants[kw] = v
			}
		}

		out := engine.JDKeywordsOutput{
			Keywords:   keywords,
			Vocabulary: vocab,
			Heuristic:  heuristic,
			Variants:   variants,
			Count:      len(keywords),
		}
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
