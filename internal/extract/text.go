package extract

import (
	"strings"
	"unicode/utf8"
)

// TextExtractor handles plain text and is the default for unknown kinds.
// It cannot fail: invalid UTF-8 is sanitized rather than rejected.
type TextExtractor struct{}

// Extract normalizes the payload as UTF-8 text.
func (e *TextExtractor) Extract(data []byte) (*ExtractedText, error) {
	text := string(data)
	var warnings []string
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
		warnings = append(warnings, "invalid UTF-8 sequences replaced")
	}

	return &ExtractedText{
		Text: normalizeText(text),
		Metadata: Metadata{
			ExtractionMethod: "plain-text",
			Warnings:         warnings,
		},
	}, nil
}
