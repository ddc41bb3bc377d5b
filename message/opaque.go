package message

import (
	"bytes"
	"io"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/param"
	"github.com/zostay/go-eml/message/transfer"
)

// Opaque is a leaf part: a header and some content. The content is kept
// unencoded. Any Content-Transfer-Encoding named in the header is applied when
// the part is written.
type Opaque struct {
	header  *header.Header
	content []byte
}

// NewOpaque returns a leaf part with a copy of the given header and content.
func NewOpaque(h *header.Header, content []byte) *Opaque {
	return &Opaque{
		header:  h.Clone(),
		content: bytes.Clone(content),
	}
}

// NewLeaf returns a leaf part with the given Content-Type and, unless te is
// transfer.None, the given Content-Transfer-Encoding.
func NewLeaf(ct *param.Value, te string, content []byte) *Opaque {
	h := &header.Header{}
	h.SetContentType(ct)
	if te != transfer.None {
		h.SetTransferEncoding(te)
	}

	return &Opaque{
		header:  h,
		content: bytes.Clone(content),
	}
}

// NewAttachment returns a base64 encoded leaf part marked as an attachment
// with the given file name. The content is not read from anywhere; the caller
// supplies the bytes.
func NewAttachment(filename, mediaType string, content []byte) *Opaque {
	ct := param.New(mediaType, map[string]string{param.Name: filename})
	m := NewLeaf(ct, transfer.Base64, content)
	m.header.SetParamValue(header.ContentDisposition,
		param.New("attachment", map[string]string{param.Filename: filename}))
	return m
}

// WriteTo writes the header, a blank line and the content with its transfer
// encoding applied.
func (m *Opaque) WriteTo(w io.Writer) (int64, error) {
	total, err := m.header.WriteTo(w)
	if err != nil {
		return total, err
	}

	bn, err := io.WriteString(w, m.header.Break().String())
	total += int64(bn)
	if err != nil {
		return total, err
	}

	cw := &countWriter{w: w}
	tw := transfer.ApplyTransferEncoding(m.header, cw)
	if _, err := tw.Write(m.content); err != nil {
		return total + cw.n, err
	}
	err = tw.Close()
	return total + cw.n, err
}

// IsMultipart always returns false.
func (m *Opaque) IsMultipart() bool {
	return false
}

// GetHeader returns a copy of the part header.
func (m *Opaque) GetHeader() *header.Header {
	return m.header.Clone()
}

// GetReader returns a new reader over the unencoded content.
func (m *Opaque) GetReader() io.Reader {
	return bytes.NewReader(m.content)
}

// GetParts always returns nil.
func (m *Opaque) GetParts() []Part {
	return nil
}

// Content returns a copy of the unencoded content.
func (m *Opaque) Content() []byte {
	return bytes.Clone(m.content)
}

// countWriter counts the bytes that reach the underlying writer, which is
// different from the bytes given to an encoder.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
