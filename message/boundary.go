package message

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// BoundaryPrefix starts every boundary made by RandomBoundary.
	BoundaryPrefix = "----=_Part_"

	// MaxBoundaryLength is the longest boundary RFC 2046 allows.
	MaxBoundaryLength = 70

	boundaryRandomBytes = 16
)

// ErrBadBoundary is returned by NewBoundary when the string is not a legal
// multipart boundary.
var ErrBadBoundary = errors.New("illegal multipart boundary")

// Boundary is a multipart boundary that has been checked against RFC 2046:
// 1 to 70 characters drawn from the bchars set, not ending in a space.
type Boundary string

// isBChar reports whether c may appear in a boundary (RFC 2046 bcharsnospace
// plus space).
func isBChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("'()+_,-./:=? ", c) >= 0
}

// NewBoundary checks s and returns it as a Boundary. The error wraps
// ErrBadBoundary.
func NewBoundary(s string) (Boundary, error) {
	switch {
	case s == "":
		return "", fmt.Errorf("%w: empty", ErrBadBoundary)
	case len(s) > MaxBoundaryLength:
		return "", fmt.Errorf("%w: %d characters is longer than %d", ErrBadBoundary, len(s), MaxBoundaryLength)
	case s[len(s)-1] == ' ':
		return "", fmt.Errorf("%w: ends in a space", ErrBadBoundary)
	}

	for i := 0; i < len(s); i++ {
		if !isBChar(s[i]) {
			return "", fmt.Errorf("%w: character %q is not allowed", ErrBadBoundary, s[i])
		}
	}

	return Boundary(s), nil
}

// String returns the boundary as a string.
func (b Boundary) String() string {
	return string(b)
}

// Delimiter returns the line that starts each part: "--" plus the boundary.
func (b Boundary) Delimiter() string {
	return "--" + string(b)
}

// CloseDelimiter returns the line that ends the multipart body.
func (b Boundary) CloseDelimiter() string {
	return "--" + string(b) + "--"
}

// randomHex reads n bytes from r and returns them lower-case hex encoded. A
// short read panics: the callers build fixed-format values and have no error
// to report.
func randomHex(r io.Reader, n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic(fmt.Sprintf("unable to read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}

// RandomBoundary reads 16 bytes from r and returns the boundary
// "----=_Part_" followed by those bytes in lower-case hex. It panics if r
// cannot supply the bytes.
func RandomBoundary(r io.Reader) Boundary {
	b, err := NewBoundary(BoundaryPrefix + randomHex(r, boundaryRandomBytes))
	if err != nil {
		panic(err)
	}
	return b
}

// GenerateBoundary returns a RandomBoundary drawn from crypto/rand.
func GenerateBoundary() Boundary {
	return RandomBoundary(rand.Reader)
}
