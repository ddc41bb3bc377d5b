package message

import (
	"io"

	"github.com/zostay/go-eml/message/header"
)

// Part is a MIME entity that can be placed in a Multipart. Each Part is either
// a branch or a leaf.
//
// A branch Part is a *Multipart. IsMultipart returns true and GetParts returns
// the nested parts. GetReader returns nil.
//
// A leaf Part is an *Opaque. IsMultipart returns false, GetParts returns nil and
// GetReader returns a reader over the content before any transfer encoding.
//
// WriteTo writes the entity header, a blank line and the encoded body. Parts
// hold bytes rather than streams, so WriteTo may be called any number of times
// and always writes the same bytes.
type Part interface {
	io.WriterTo

	// IsMultipart returns true if this Part is a branch with nested parts.
	IsMultipart() bool

	// GetHeader returns a copy of the entity header.
	GetHeader() *header.Header

	// GetReader returns the leaf content or nil for a branch.
	GetReader() io.Reader

	// GetParts returns the nested parts of a branch or nil for a leaf.
	GetParts() []Part
}
