package transfer

import (
	"io"
	"mime/quotedprintable"
)

// NewQuotedPrintableEncoder encodes a part body as quoted-printable. Soft line
// breaks are CRLF, so the output can go straight into a message. Close must be
// called to flush the last line; it does not close w.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	return &writer{quotedprintable.NewWriter(w), true}
}

// NewQuotedPrintableDecoder reverses NewQuotedPrintableEncoder. Both hard and
// soft line breaks may be CRLF or LF.
func NewQuotedPrintableDecoder(r io.Reader) io.Reader {
	return quotedprintable.NewReader(r)
}
