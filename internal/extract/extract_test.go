package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/detect"
)

func TestTextExtractor_PlainText(t *testing.T) {
	result, err := (&TextExtractor{}).Extract([]byte("John Smith\nEngineer\n"))
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nEngineer", result.Text)
	assert.Equal(t, "plain-text", result.Metadata.ExtractionMethod)
	assert.Empty(t, result.Metadata.Warnings)
}

func TestTextExtractor_SanitizesInvalidUTF8(t *testing.T) {
	result, err := (&TextExtractor{}).Extract([]byte{'h', 'i', 0xFF, 0xFE})
	require.NoError(t, err)
	assert.Contains(t, result.Text, "hi")
	require.Len(t, result.Metadata.Warnings, 1)
}

func TestTextExtractor_CollapsesBlankRuns(t *testing.T) {
	result, err := (&TextExtractor{}).Extract([]byte("a\n\n\n\nb"))
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", result.Text)
}

func TestForKind_Mapping(t *testing.T) {
	assert.IsType(t, &PDFExtractor{}, ForKind(detect.KindPDF))
	assert.IsType(t, &OfficeExtractor{}, ForKind(detect.KindDOCX))
	assert.IsType(t, &OfficeExtractor{}, ForKind(detect.KindDOC))
	assert.IsType(t, &OfficeExtractor{}, ForKind(detect.KindRTF))
	assert.IsType(t, &TextExtractor{}, ForKind(detect.KindTXT))
}

func TestRun_FailureSubstitutesPlaceholder(t *testing.T) {
	// Garbage bytes are not a valid PDF; Run must still return usable text.
	result, err := Run(detect.KindPDF, []byte("not a pdf at all"))
	assert.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, FallbackPlaceholder, result.Text)
	assert.Equal(t, "pdf-failed", result.Metadata.ExtractionMethod)
	require.NotEmpty(t, result.Metadata.Warnings)
}

func TestRun_TextNeverFails(t *testing.T) {
	result, err := Run(detect.KindTXT, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Text)
}

func TestExtractionError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &ExtractionError{Kind: detect.KindDOCX, Message: "boom", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "docx")
}
