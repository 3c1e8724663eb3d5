package extract

import (
	"bytes"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-analyzer/internal/detect"
)

// PDFExtractor extracts plain text from PDF bytes using ledongthuc/pdf.
// The library wants a file path, so the payload goes through a temp file.
type PDFExtractor struct{}

// Extract decodes the PDF and returns its plain text with a page count.
func (e *PDFExtractor) Extract(data []byte) (*ExtractedText, error) {
	tmpFile, err := os.CreateTemp("", "resume-analyzer-*.pdf")
	if err != nil {
		return nil, &ExtractionError{Kind: detect.KindPDF, Message: "creating temp file", Cause: err}
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, bytes.NewReader(data)); err != nil {
		tmpFile.Close()
		return nil, &ExtractionError{Kind: detect.KindPDF, Message: "writing temp file", Cause: err}
	}
	tmpFile.Close() // Close before reading.

	f, reader, err := pdf.Open(tmpFile.Name())
	if err != nil {
		return nil, &ExtractionError{Kind: detect.KindPDF, Message: "opening PDF", Cause: err}
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, &ExtractionError{Kind: detect.KindPDF, Message: "extracting plain text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return nil, &ExtractionError{Kind: detect.KindPDF, Message: "reading text buffer", Cause: err}
	}

	return &ExtractedText{
		Text: normalizeText(buf.String()),
		Metadata: Metadata{
			ExtractionMethod: "pdf-parse",
			Pages:            reader.NumPage(),
		},
	}, nil
}
