package message

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/param"
)

// Multipart subtypes this package knows how to build.
const (
	Alternative = "alternative"
	Mixed       = "mixed"
	Related     = "related"
)

// Errors wrapped by a *MultipartError.
var (
	// ErrEmptySubtype is returned when no multipart subtype is given.
	ErrEmptySubtype = errors.New("multipart subtype is empty")

	// ErrTooFewParts is returned when there are not enough parts for the
	// subtype: at least one in general, at least two for alternative.
	ErrTooFewParts = errors.New("too few parts for multipart")

	// ErrNilPart is returned when one of the parts is nil.
	ErrNilPart = errors.New("multipart contains a nil part")

	// ErrBoundaryInContent is returned when the delimiter line appears inside
	// one of the parts.
	ErrBoundaryInContent = errors.New("multipart boundary occurs inside a part")
)

// MultipartError is returned by NewMultipart. It unwraps to one of the errors
// above or to ErrBadBoundary.
type MultipartError struct {
	Subtype string
	Err     error
}

// Error describes the problem.
func (e *MultipartError) Error() string {
	return fmt.Sprintf("multipart/%s: %v", e.Subtype, e.Err)
}

// Unwrap returns the cause.
func (e *MultipartError) Unwrap() error {
	return e.Err
}

// Multipart is a multipart MIME entity: an ordered list of parts under a
// subtype and a boundary. A Multipart is immutable once built.
type Multipart struct {
	subtype  string
	boundary Boundary
	parts    []Part
}

// minParts returns the smallest number of parts a subtype may carry.
func minParts(subtype string) int {
	if subtype == Alternative {
		return 2
	}
	return 1
}

// NewMultipart checks and builds a Multipart. The subtype is lower-cased. The
// parts slice is copied, so the caller may reuse it. The boundary is checked
// again, and every part is rendered once to make sure the boundary delimiter
// does not occur inside it.
func NewMultipart(subtype string, parts []Part, boundary Boundary) (*Multipart, error) {
	subtype = strings.ToLower(strings.TrimSpace(subtype))
	fail := func(err error) (*Multipart, error) {
		return nil, &MultipartError{Subtype: subtype, Err: err}
	}

	if subtype == "" {
		return fail(ErrEmptySubtype)
	}

	if _, err := NewBoundary(string(boundary)); err != nil {
		return fail(err)
	}

	if len(parts) < minParts(subtype) {
		return fail(fmt.Errorf("%w: %d given, %d required", ErrTooFewParts, len(parts), minParts(subtype)))
	}

	delim := []byte(boundary.Delimiter())
	for i, part := range parts {
		if part == nil {
			return fail(fmt.Errorf("%w: part %d", ErrNilPart, i))
		}

		buf := &bytes.Buffer{}
		if _, err := part.WriteTo(buf); err != nil {
			return fail(err)
		}

		if bytes.Contains(buf.Bytes(), delim) {
			return fail(fmt.Errorf("%w: part %d", ErrBoundaryInContent, i))
		}
	}

	return &Multipart{
		subtype:  subtype,
		boundary: boundary,
		parts:    append([]Part(nil), parts...),
	}, nil
}

// Subtype returns the multipart subtype, e.g., "alternative".
func (mm *Multipart) Subtype() string {
	return mm.subtype
}

// Boundary returns the boundary separating the parts.
func (mm *Multipart) Boundary() Boundary {
	return mm.boundary
}

// ContentType returns "multipart/<subtype>" with the boundary parameter.
func (mm *Multipart) ContentType() *param.Value {
	return param.New("multipart/"+mm.subtype, map[string]string{
		param.Boundary: mm.boundary.String(),
	})
}

// WriteBodyTo writes the multipart body: each part preceded by a delimiter
// line, then the close delimiter. Lines end in CRLF.
func (mm *Multipart) WriteBodyTo(w io.Writer) (int64, error) {
	br := header.CRLF.String()
	var n int64

	write := func(s string) error {
		wn, err := io.WriteString(w, s)
		n += int64(wn)
		return err
	}

	for _, part := range mm.parts {
		if err := write(mm.boundary.Delimiter() + br); err != nil {
			return n, err
		}

		pn, err := part.WriteTo(w)
		n += pn
		if err != nil {
			return n, err
		}

		if err := write(br); err != nil {
			return n, err
		}
	}

	err := write(mm.boundary.CloseDelimiter() + br)
	return n, err
}

// Render returns the multipart body as text.
func (mm *Multipart) Render() string {
	return string(mm.Bytes())
}

// Bytes returns the multipart body.
func (mm *Multipart) Bytes() []byte {
	buf := &bytes.Buffer{}
	_, _ = mm.WriteBodyTo(buf)
	return buf.Bytes()
}

// WriteTo writes the entity as a nested part: the Content-Type header, a blank
// line and the body.
func (mm *Multipart) WriteTo(w io.Writer) (int64, error) {
	hn, err := mm.GetHeader().WriteTo(w)
	if err != nil {
		return hn, err
	}

	bn, err := io.WriteString(w, header.CRLF.String())
	n := hn + int64(bn)
	if err != nil {
		return n, err
	}

	pn, err := mm.WriteBodyTo(w)
	return n + pn, err
}

// IsMultipart always returns true.
func (mm *Multipart) IsMultipart() bool {
	return true
}

// GetHeader returns a new header holding the Content-Type.
func (mm *Multipart) GetHeader() *header.Header {
	h := &header.Header{}
	h.SetContentType(mm.ContentType())
	return h
}

// GetReader always returns nil.
func (mm *Multipart) GetReader() io.Reader {
	return nil
}

// GetParts returns a copy of the parts slice.
func (mm *Multipart) GetParts() []Part {
	return append([]Part(nil), mm.parts...)
}
