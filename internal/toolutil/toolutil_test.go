package toolutil

import (
	"encoding/base64"
	"testing"
)

func TestDecodeDocument(t *testing.T) {
	raw := []byte("%PDF-1.4 test content")
	encoded := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"bare base64", encoded, false},
		{"data url", "data:application/pdf;base64," + encoded, false},
		{"wrapped with newlines", encoded[:8] + "\n" + encoded[8:], false},
		{"not base64", "!!! definitely not base64 !!!", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDocument(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != string(raw) {
				t.Errorf("decoded %q, want %q", got, raw)
			}
		})
	}
}

func TestDecodeDocumentURLSafe(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0xfe, 0x01}
	encoded := base64.URLEncoding.EncodeToString(raw)
	got, err := DecodeDocument(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("decoded % x, want % x", got, raw)
	}
}

func TestMediaTypeFromDataURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:application/pdf;base64,AAAA", "application/pdf"},
		{"data:image/png;base64,AAAA", "image/png"},
		{"AAAA", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MediaTypeFromDataURL(tt.in); got != tt.want {
			t.Errorf("MediaTypeFromDataURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
