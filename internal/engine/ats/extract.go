package ats

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"context"
	"encoding/hex"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/ledongthuc/pdf"
)

const (
	// maxExtractChars caps extractor output for model-context safety.
	maxExtractChars = 12000

	// usableMinChars is the early-exit threshold: a strategy result at least
	// this long that also mentions a resume section word wins immediately.
	usableMinChars = 300

	// visionMinChars: below this (or without section words) the vision
	// fallback is considered for image uploads.
	visionMinChars = 350
)

// VisionFunc is the optional multimodal fallback for image-only documents.
// Injected so the extractor stays pure and testable; errors are logged and
// swallowed here, never surfaced.
type VisionFunc func(ctx context.Context, data []byte, mediaType string) (string, error)

// resumeSectionWords indicate that extracted text is structured resume
// content rather than binary noise.
var resumeSectionWords = []string{
	"experience", "education", "skills", "summary",
	"projects", "employment", "qualifications",
}

// extractStrategy pairs a named extraction attempt with its fn. The chain is
// an ordered list evaluated with early exit, not nested conditionals, so
// each strategy stays independently testable.
type extractStrategy struct {
	name string
	fn   func(data []byte) string
}

var pdfStrategies = []extractStrategy{
	{"structured", extractStructured},
	{"content-stream", extractContentStreams},
	{"raw-strings", extractRawStrings},
}

// Extract converts an uploaded document to best-effort plain text. It never
// returns an error: every strategy failure is swallowed and the longest
// cleaned result wins, possibly the empty string. The caller decides whether
// the result is sufficient input.
//
// PDFs walk the strategy chain; image uploads go straight to the vision
// fallback; anything else is treated as UTF-8 text.
func Extract(ctx context.Context, data []byte, mediaType string, vision VisionFunc) string {
	text, _ := ExtractDetailed(ctx, data, mediaType, vision)
	return text
}

// ExtractDetailed is Extract plus the name of the strategy that produced the
// winning text ("structured", "content-stream", "raw-strings", "vision",
// "plain-text", or "" when nothing yielded text).
func ExtractDetailed(ctx context.Context, data []byte, mediaType string, vision VisionFunc) (string, string) {
	if len(data) == 0 {
		return "", ""
	}

	var best, winner string
	switch {
	case isPDF(data, mediaType):
		for _, s := range pdfStrategies {
			out := CleanExtracted(runStrategy(s, data))
			if len(out) > len(best) {
				best = out
				winner = s.name
			}
			if len(best) >= usableMinChars && hasSectionWord(best) {
				slog.Debug("extract: strategy accepted",
					slog.String("strategy", s.name), slog.Int("chars", len(best)))
				break
			}
		}
	case isImage(mediaType):
		// No text layer to parse; vision below is the only path.
	default:
		best = CleanExtracted(string(data))
		if best != "" {
			winner = "plain-text"
		}
	}

	if vision != nil && isImage(mediaType) &&
		(len(best) < visionMinChars || !hasSectionWord(best)) {
		if txt, err := vision(ctx, data, mediaType); err != nil {
			slog.Warn("extract: vision fallback failed", slog.Any("error", err))
		} else if cleaned := CleanExtracted(txt); len(cleaned) > len(best) {
			best = cleaned
			winner = "vision"
		}
	}

	if best == "" {
		winner = ""
	}
	return truncateChars(best, maxExtractChars), winner
}

// runStrategy executes one extraction attempt, converting panics from
// malformed input into an empty result. ledongthuc/pdf panics on some
// corrupt xref tables.
func runStrategy(s extractStrategy, data []byte) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("extract: strategy panic", slog.String("strategy", s.name), slog.Any("panic", r))
			out = ""
		}
	}()
	return s.fn(data)
}

func hasSectionWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range resumeSectionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func isPDF(data []byte, mediaType string) bool {
	return strings.Contains(strings.ToLower(mediaType), "pdf") ||
		bytes.HasPrefix(data, []byte("%PDF"))
}

func isImage(mediaType string) bool {
	return strings.HasPrefix(strings.ToLower(mediaType), "image/")
}

func truncateChars(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// --- Strategy 1: structured text-layer parse ---

func extractStructured(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		slog.Debug("extract: structured parse failed", slog.Any("error", err))
		return ""
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Debug("extract: page parse failed", slog.Int("page", i), slog.Any("error", err))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// --- Strategy 2: content-stream regex extraction ---

var (
	btEtRe       = regexp.MustCompile(`(?s)BT(.*?)ET`)
	parenTextRe  = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)
	hexTextRe    = regexp.MustCompile(`<([0-9a-fA-F\s]+)>`)
	rawStringRe  = regexp.MustCompile(`\(([ -~]{4,})\)`)
	streamMarker = []byte("stream")
	endMarker    = []byte("endstream")
)

// extractContentStreams scans BT...ET text-rendering blocks in decoded
// content streams, pulling parenthesis-delimited strings, hex strings
// (UTF-16BE where plausible, 1-byte-per-char otherwise), and TJ array
// operands. Duplicate fragments (repeated headers/footers) are dropped.
func extractContentStreams(data []byte) string {
	seen := make(map[string]bool)
	var blocks []string
	for _, buf := range decodedStreams(data) {
		for _, block := range btEtRe.FindAllSubmatch(buf, -1) {
			var frags []string
			for _, m := range parenTextRe.FindAllSubmatch(block[1], -1) {
				if frag := unescapePDFString(string(m[1])); frag != "" && !seen[frag] {
					seen[frag] = true
					frags = append(frags, frag)
				}
			}
			for _, m := range hexTextRe.FindAllSubmatch(block[1], -1) {
				if frag := decodeHexString(string(m[1])); frag != "" && !seen[frag] {
					seen[frag] = true
					frags = append(frags, frag)
				}
			}
			if len(frags) > 0 {
				blocks = append(blocks, strings.Join(frags, " "))
			}
		}
	}
	return strings.Join(blocks, "\n")
}

// --- Strategy 3: raw printable-string scan ---

// extractRawStrings is the last resort before vision: any parenthesized
// printable-ASCII run of 4+ chars anywhere in the decoded streams.
func extractRawStrings(data []byte) string {
	seen := make(map[string]bool)
	var lines []string
	for _, buf := range decodedStreams(data) {
		for _, m := range rawStringRe.FindAllSubmatch(buf, -1) {
			frag := unescapePDFString(string(m[1]))
			if frag == "" || seen[frag] {
				continue
			}
			seen[frag] = true
			lines = append(lines, frag)
		}
	}
	return strings.Join(lines, "\n")
}

// decodedStreams returns the raw document plus every stream body it can
// locate, flate/zlib-inflated where possible. Streams that fail to inflate
// are kept raw since uncompressed content streams are valid PDF too.
func decodedStreams(data []byte) [][]byte {
	out := [][]byte{data}
	rest := data
	offset := 0
	for {
		i := bytes.Index(rest, streamMarker)
		if i < 0 {
			break
		}
		start := offset + i + len(streamMarker)
		body := data[start:]
		body = bytes.TrimPrefix(body, []byte("\r\n"))
		body = bytes.TrimPrefix(body, []byte("\n"))
		end := bytes.Index(body, endMarker)
		if end < 0 {
			break
		}
		out = append(out, inflate(body[:end]))
		consumed := start - offset + end + len(endMarker)
		if consumed >= len(rest) {
			break
		}
		rest = rest[consumed:]
		offset += consumed
	}
	return out
}

func inflate(stream []byte) []byte {
	if zr, err := zlib.NewReader(bytes.NewReader(stream)); err == nil {
		if decoded, err := io.ReadAll(io.LimitReader(zr, 4*1024*1024)); err == nil && len(decoded) > 0 {
			zr.Close()
			return decoded
		}
		zr.Close()
	}
	fr := flate.NewReader(bytes.NewReader(stream))
	defer fr.Close()
	if decoded, err := io.ReadAll(io.LimitReader(fr, 4*1024*1024)); err == nil && len(decoded) > 0 {
		return decoded
	}
	return stream
}

// unescapePDFString resolves PDF literal-string escapes: \n \r \t \( \) \\
// and octal \ddd. Non-printable results are dropped.
func unescapePDFString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b', 'f':
			// ignore
		case '(', ')', '\\':
			b.WriteByte(s[i])
		case '0', '1', '2', '3', '4', '5', '6', '7':
			val := int(s[i] - '0')
			for j := 0; j < 2 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7'; j++ {
				i++
				val = val*8 + int(s[i]-'0')
			}
			if val >= 32 && val < 127 {
				b.WriteByte(byte(val))
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return strings.TrimSpace(b.String())
}

// decodeHexString decodes a PDF hex string. Tries UTF-16BE first (BOM or a
// zero-byte pattern on even positions), falling back to 1 byte per char.
func decodeHexString(s string) string {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		s += "0"
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) == 0 {
		return ""
	}
	if looksUTF16BE(raw) {
		if decoded := decodeUTF16BE(raw); decoded != "" {
			return decoded
		}
	}
	var b strings.Builder
	for _, c := range raw {
		if c >= 32 && c < 127 {
			b.WriteByte(c)
		}
	}
	return strings.TrimSpace(b.String())
}

func looksUTF16BE(raw []byte) bool {
	if len(raw) < 2 || len(raw)%2 != 0 {
		return false
	}
	if raw[0] == 0xFE && raw[1] == 0xFF {
		return true
	}
	zeros := 0
	for i := 0; i < len(raw); i += 2 {
		if raw[i] == 0 {
			zeros++
		}
	}
	return zeros*2 >= len(raw)/2
}

func decodeUTF16BE(raw []byte) string {
	if raw[0] == 0xFE && raw[1] == 0xFF {
		raw = raw[2:]
	}
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	units := make([]uint16, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
	}
	return strings.TrimSpace(string(utf16.Decode(units)))
}
