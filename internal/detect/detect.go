// Package detect classifies raw document bytes into a format kind.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind is a supported document format.
type Kind string

// Supported document kinds.
const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindDOC  Kind = "doc"
	KindRTF  Kind = "rtf"
	KindTXT  Kind = "txt"
)

// mimeTable maps declared MIME types to kinds. Exact match only.
var mimeTable = map[string]Kind{
	"application/pdf":    KindPDF,
	"application/x-pdf":  KindPDF,
	"application/msword": KindDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": KindDOCX,
	"application/rtf":  KindRTF,
	"text/rtf":         KindRTF,
	"text/plain":       KindTXT,
	"text/x-markdown":  KindTXT,
	"text/markdown":    KindTXT,
	"application/text": KindTXT,
}

// extTable maps filename extensions to kinds.
var extTable = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindDOCX,
	".doc":  KindDOC,
	".rtf":  KindRTF,
	".txt":  KindTXT,
	".text": KindTXT,
	".md":   KindTXT,
}

// Magic byte signatures checked against the start of the payload.
var (
	magicPDF = []byte{0x25, 0x50, 0x44, 0x46} // %PDF
	magicZIP = []byte{0x50, 0x4B}             // PK, DOCX container
	magicOLE = []byte{0xD0, 0xCF, 0x11, 0xE0} // legacy DOC
	magicRTF = []byte(`{\rtf`)
)

// Detect resolves the format of a document. Resolution order: declared
// MIME type, filename extension, magic bytes, then plain text. It never
// fails; unresolvable input is classified as txt.
func Detect(data []byte, mimeType, filename string) Kind {
	if kind, ok := mimeTable[normalizeMIME(mimeType)]; ok {
		return kind
	}

	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		if kind, ok := extTable[ext]; ok {
			return kind
		}
	}

	switch {
	case bytes.HasPrefix(data, magicPDF):
		return KindPDF
	case bytes.HasPrefix(data, magicOLE):
		return KindDOC
	case bytes.HasPrefix(data, magicZIP):
		return KindDOCX
	case bytes.HasPrefix(data, magicRTF):
		return KindRTF
	}

	return KindTXT
}

// normalizeMIME lowercases the declared type and strips any parameters
// (e.g. "text/plain; charset=utf-8").
func normalizeMIME(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}
	return mimeType
}
