package extract

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv"

	"github.com/jonathan/resume-analyzer/internal/detect"
)

// OfficeExtractor handles the word-processor formats (docx, doc, rtf)
// through docconv.
type OfficeExtractor struct {
	Kind detect.Kind
}

// Extract converts the document to plain text.
func (e *OfficeExtractor) Extract(data []byte) (*ExtractedText, error) {
	var (
		text string
		meta map[string]string
		err  error
	)

	r := bytes.NewReader(data)
	switch e.Kind {
	case detect.KindDOCX:
		text, meta, err = docconv.ConvertDocx(r)
	case detect.KindDOC:
		text, meta, err = docconv.ConvertDoc(r)
	case detect.KindRTF:
		text, meta, err = docconv.ConvertRTF(r)
	default:
		return nil, &ExtractionError{Kind: e.Kind, Message: "unsupported office format"}
	}
	if err != nil {
		return nil, &ExtractionError{Kind: e.Kind, Message: "converting document", Cause: err}
	}

	result := &ExtractedText{
		Text: normalizeText(text),
		Metadata: Metadata{
			ExtractionMethod: fmt.Sprintf("%s-convert", e.Kind),
		},
	}
	if pages, ok := meta["PageCount"]; ok {
		// docconv reports page counts as strings; best effort only.
		fmt.Sscanf(pages, "%d", &result.Metadata.Pages)
	}
	return result, nil
}
