package atsserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractText(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_extract_text",
		Description: "Extract plain text from a base64-encoded PDF or image document. Tries the PDF text layer first, then raw content-stream recovery, then vision OCR for images. Returns the extracted text, the strategy that produced it, and a formatting quality score.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractTextInput) (*mcp.CallToolResult, engine.ExtractTextOutput, error) {
		if input.Document == "" {
			return nil, engine.ExtractTextOutput{}, errors.New("document is required")
		}

		data, err := toolutil.DecodeDocument(input.Document)
		if err != nil {
			return nil, engine.ExtractTextOutput{}, err
		}
		mediaType := input.MediaType
		if mediaType == "" {
			mediaType = toolutil.MediaTypeFromDataURL(input.Document)
		}

		engine.IncrExtractRequests()
		text, strategy := ats.ExtractDetailed(ctx, data, mediaType, visionFallback())
		if text == "" {
			engine.IncrExtractFallbacks()
			return nil, engine.ExtractTextOutput{}, errors.New("no text could be extracted from the document")
		}
		return nil, engine.ExtractTextOutput{
			Text:              text,
			Chars:             len(text),
			Strategy:          strategy,
			FormattingQuality: ats.ScoreFormatting(text),
		}, nil
	})
}
