package types

// Document is the ephemeral input to one analysis request: raw bytes
// plus whatever the caller declared about them. When Text is set the
// caller pasted plain text and Data is ignored.
type Document struct {
	Data     []byte
	MIMEType string
	Filename string
	Text     string
}

// IsText reports whether the document is pasted text rather than bytes.
func (d Document) IsText() bool {
	return d.Text != ""
}
