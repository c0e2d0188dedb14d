// Package toolutil provides shared helper functions for go_ats MCP tools.
package toolutil

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
)

// DecodeDocument decodes a base64-encoded document field. Accepts both bare
// base64 and data-URL form ("data:application/pdf;base64,...") and tolerates
// embedded whitespace from clients that wrap long payloads.
func DecodeDocument(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}
	encoded = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Some clients emit URL-safe alphabet.
		data, err = base64.URLEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, fmt.Errorf("document is not valid base64: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("document is empty")
	}
	return data, nil
}

// MediaTypeFromDataURL extracts the MIME type from a data-URL document field.
// Returns "" when the field is bare base64.
func MediaTypeFromDataURL(encoded string) string {
	if !strings.HasPrefix(encoded, "data:") {
		return ""
	}
	rest := encoded[len("data:"):]
	if idx := strings.IndexAny(rest, ";,"); idx >= 0 {
		return rest[:idx]
	}
	return ""
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	return engine.CacheLoadJSON[T](ctx, key)
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	engine.CacheStoreJSON(ctx, key, v)
}
