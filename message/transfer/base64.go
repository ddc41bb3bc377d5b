package transfer

import (
	"encoding/base64"
	"io"
)

const defaultBase64LineLength = 76

var defaultBase64LineBreak = []byte("\r\n")

// newlineWriter inserts a line break after every "every" bytes written.
type newlineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (nw *newlineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if nw.acc == nw.every {
			if _, err := nw.w.Write(nw.lbr); err != nil {
				return n, err
			}
			nw.acc = 0
		}

		chunk := b
		if room := nw.every - nw.acc; len(chunk) > room {
			chunk = chunk[:room]
		}

		wn, err := nw.w.Write(chunk)
		n += wn
		nw.acc += wn
		if err != nil {
			return n, err
		}
		b = b[wn:]
	}

	return n, nil
}

// NewBase64Encoder will translate all bytes written to the returned
// io.WriteCloser into base64 encoding and write those to the given io.Writer,
// breaking lines at 76 characters with CRLF. You must call Close to flush the
// final block. Closing does not close w.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	return &writer{
		base64.NewEncoder(base64.StdEncoding, &newlineWriter{
			every: defaultBase64LineLength,
			lbr:   defaultBase64LineBreak,
			w:     w,
		}), true,
	}
}

// NewBase64Decoder will translate all bytes read from the given io.Reader as
// base64 and return the binary data to the returned io.Reader. Line breaks in
// the input are ignored.
func NewBase64Decoder(r io.Reader) io.Reader {
	return base64.NewDecoder(base64.StdEncoding, r)
}
