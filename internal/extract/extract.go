// Package extract turns raw document bytes into normalized plain text.
// One extractor exists per document kind; each wraps a decoding library
// and reports failures as *ExtractionError so the fallback chain can
// substitute placeholder text instead of surfacing them.
package extract

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/detect"
)

// Metadata describes how the text was obtained.
type Metadata struct {
	ExtractionMethod string   `json:"extractionMethod"`
	Pages            int      `json:"pages,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// ExtractedText is the normalized output of a format extractor.
type ExtractedText struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// ExtractionError represents a per-format decode failure.
type ExtractionError struct {
	Kind    detect.Kind
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Extractor produces text from one document format.
type Extractor interface {
	Extract(data []byte) (*ExtractedText, error)
}

// ForKind returns the extractor responsible for a document kind.
// Unknown kinds get the plain-text extractor.
func ForKind(kind detect.Kind) Extractor {
	switch kind {
	case detect.KindPDF:
		return &PDFExtractor{}
	case detect.KindDOCX:
		return &OfficeExtractor{Kind: detect.KindDOCX}
	case detect.KindDOC:
		return &OfficeExtractor{Kind: detect.KindDOC}
	case detect.KindRTF:
		return &OfficeExtractor{Kind: detect.KindRTF}
	default:
		return &TextExtractor{}
	}
}

// FallbackPlaceholder is substituted for the text of a document whose
// extractor failed, so downstream stages always receive non-empty input.
const FallbackPlaceholder = "Unable to extract text from the uploaded document."

// Run extracts text for a detected kind, absorbing extractor failures.
// On failure the result carries the placeholder text and a warning tag;
// the error is reported alongside for logging but the result is always
// usable.
func Run(kind detect.Kind, data []byte) (*ExtractedText, error) {
	result, err := ForKind(kind).Extract(data)
	if err == nil {
		return result, nil
	}
	return &ExtractedText{
		Text: FallbackPlaceholder,
		Metadata: Metadata{
			ExtractionMethod: string(kind) + "-failed",
			Warnings:         []string{err.Error()},
		},
	}, err
}

// normalizeText collapses runs of blank lines and trims trailing spaces,
// keeping line structure intact for the section segmenter.
func normalizeText(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
