package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_DeclaredMIMEWins(t *testing.T) {
	kind := Detect([]byte("plain words"), "application/pdf", "resume.txt")
	assert.Equal(t, KindPDF, kind)
}

func TestDetect_MIMEParametersStripped(t *testing.T) {
	kind := Detect([]byte("hello"), "text/plain; charset=utf-8", "")
	assert.Equal(t, KindTXT, kind)
}

func TestDetect_ExtensionFallback(t *testing.T) {
	kind := Detect([]byte("not magic"), "", "cv.docx")
	assert.Equal(t, KindDOCX, kind)
}

func TestDetect_ExtensionCaseInsensitive(t *testing.T) {
	kind := Detect(nil, "", "Resume.PDF")
	assert.Equal(t, KindPDF, kind)
}

func TestDetect_MagicBytesPDF(t *testing.T) {
	data := append([]byte{0x25, 0x50, 0x44, 0x46}, []byte("-1.7 rest of file")...)
	kind := Detect(data, "", "")
	assert.Equal(t, KindPDF, kind)
}

func TestDetect_MagicBytesPDFIgnoresDeclaredGarbage(t *testing.T) {
	// An unknown declared MIME must not block signature detection.
	data := append([]byte{0x25, 0x50, 0x44, 0x46}, []byte("...")...)
	kind := Detect(data, "application/octet-stream", "upload.bin")
	assert.Equal(t, KindPDF, kind)
}

func TestDetect_MagicBytesZIPIsDOCX(t *testing.T) {
	kind := Detect([]byte{0x50, 0x4B, 0x03, 0x04}, "", "")
	assert.Equal(t, KindDOCX, kind)
}

func TestDetect_MagicBytesOLEIsDOC(t *testing.T) {
	kind := Detect([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}, "", "")
	assert.Equal(t, KindDOC, kind)
}

func TestDetect_RTFSignature(t *testing.T) {
	kind := Detect([]byte(`{\rtf1\ansi hello}`), "", "")
	assert.Equal(t, KindRTF, kind)
}

func TestDetect_DefaultsToText(t *testing.T) {
	kind := Detect([]byte("John Smith\nSoftware Engineer"), "", "")
	assert.Equal(t, KindTXT, kind)
}

func TestDetect_EmptyInputDefaultsToText(t *testing.T) {
	kind := Detect(nil, "", "")
	assert.Equal(t, KindTXT, kind)
}
