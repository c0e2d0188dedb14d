package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "json fence",
			raw:  "```json\n{\"ats_score\": 70}\n```",
			want: `{"ats_score": 70}`,
		},
		{
			name: "bare fence",
			raw:  "```\nplain text\n```",
			want: "plain text",
		},
		{
			name: "no fence",
			raw:  `{"ats_score": 70}`,
			want: `{"ats_score": 70}`,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n{\"a\": 1}\n  ",
			want: `{"a": 1}`,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.raw); got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisionRequestShape(t *testing.T) {
	payload, err := json.Marshal(visionRequest{
		Model: "test-vision",
		Messages: []visionMessage{{
			Role: "user",
			Content: []visionPart{
				{Type: "text", Text: "extract"},
				{Type: "image_url", ImageURL: &visionImage{URL: "data:image/png;base64,AAAA"}},
			},
		}},
		MaxTokens: 100,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(payload)
	for _, want := range []string{
		`"model":"test-vision"`,
		`"role":"user"`,
		`"type":"image_url"`,
		`"url":"data:image/png;base64,AAAA"`,
		`"max_tokens":100`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("payload missing %s: %s", want, s)
		}
	}

	// Text parts must not leak an empty image_url key.
	if strings.Contains(s, `"image_url":null`) {
		t.Errorf("text part serialized a null image_url: %s", s)
	}
}

func TestVisionResponseParse(t *testing.T) {
	raw := `{"choices":[{"message":{"content":"EXPERIENCE\n- built APIs"}}]}`
	var out visionResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Choices) != 1 {
		t.Fatalf("choices = %d, want 1", len(out.Choices))
	}
	if !strings.HasPrefix(out.Choices[0].Message.Content, "EXPERIENCE") {
		t.Errorf("unexpected content: %q", out.Choices[0].Message.Content)
	}
}
