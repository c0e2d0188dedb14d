package engine

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// Honors the configured rate limit before dispatching.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", errors.New("llm: client not configured")
	}
	if llmLimiter != nil {
		if err := llmLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

const visionPrompt = `Extract ALL text from this resume image. Preserve the document structure: section headings on their own lines, bullet points as lines starting with "-", contact details as given. Output plain text only, no commentary.`

// visionRequest is the OpenAI-compatible multimodal chat payload.
type visionRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type visionMessage struct {
	Role    string       `json:"role"`
	Content []visionPart `json:"content"`
}

type visionPart struct {
	Type     string       `json:"type"`
	Text     string       `json:"text,omitempty"`
	ImageURL *visionImage `json:"image_url,omitempty"`
}

type visionImage struct {
	URL string `json:"url"`
}

type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CallVision OCRs an image document through the configured multimodal model.
// Goes over raw HTTP rather than the chat client: the image payload needs the
// multimodal content-part format the text client doesn't expose.
func CallVision(ctx context.Context, data []byte, mediaType string) (string, error) {
	if cfg.VisionModel == "" || cfg.LLMAPIBase == "" {
		return "", errors.New("vision: not configured")
	}
	if llmLimiter != nil {
		if err := llmLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	metrics.VisionCalls.Add(1)

	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(data))
	payload, err := json.Marshal(visionRequest{
		Model: cfg.VisionModel,
		Messages: []visionMessage{{
			Role: "user",
			Content: []visionPart{
				{Type: "text", Text: visionPrompt},
				{Type: "image_url", ImageURL: &visionImage{URL: dataURL}},
			},
		}},
		MaxTokens: cfg.LLMMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("vision: marshal: %w", err)
	}

	url := strings.TrimRight(cfg.LLMAPIBase, "/") + "/chat/completions"
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+cfg.LLMAPIKey)
		return client.Do(req)
	})
	if err != nil {
		metrics.VisionErrors.Add(1)
		return "", fmt.Errorf("vision: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.VisionErrors.Add(1)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("vision: status %d: %s", resp.StatusCode, Truncate(strings.TrimSpace(string(body)), 200))
	}

	var out visionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.VisionErrors.Add(1)
		return "", fmt.Errorf("vision: decode: %w", err)
	}
	if len(out.Choices) == 0 {
		metrics.VisionErrors.Add(1)
		return "", errors.New("vision: empty response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
