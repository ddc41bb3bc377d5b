package transfer

import "io"

// NewAsIsEncoder is the encoder for 7bit, 8bit and binary parts, and for parts
// that name no encoding at all. Leaf bodies are written through it unchanged.
// Closing the result never closes w.
func NewAsIsEncoder(w io.Writer) io.WriteCloser {
	return &writer{w, false}
}

// NewAsIsDecoder is the decoder paired with NewAsIsEncoder. It returns r.
func NewAsIsDecoder(r io.Reader) io.Reader {
	return r
}
