// Package field holds a single header field and knows how to fold it for
// output.
package field

import (
	"strings"
)

// Field is a single header field: a name and an unfolded body.
type Field struct {
	name string
	body string
}

// New constructs a new field. Any CR or LF in the name or body is replaced with
// a space so that a field always renders as exactly one (possibly folded)
// header line.
func New(name, body string) *Field {
	return &Field{
		name: strings.TrimSpace(clean(name)),
		body: strings.TrimSpace(clean(body)),
	}
}

func clean(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Map(func(c rune) rune {
		if c == '\r' || c == '\n' {
			return ' '
		}
		return c
	}, s)
}

// Name returns the field name with the casing it was given.
func (f *Field) Name() string {
	return f.name
}

// Body returns the unfolded field body.
func (f *Field) Body() string {
	return f.body
}

// Match returns true if the field has the given name, ignoring case.
func (f *Field) Match(name string) bool {
	return strings.EqualFold(f.name, name)
}

// SetBody replaces the field body.
func (f *Field) SetBody(body string) {
	f.body = strings.TrimSpace(clean(body))
}

// String returns the field as "Name: body" without folding or line break.
func (f *Field) String() string {
	return f.name + ": " + f.body
}

// Bytes returns String as bytes.
func (f *Field) Bytes() []byte {
	return []byte(f.String())
}

// Clone returns a copy of the field.
func (f *Field) Clone() *Field {
	return &Field{f.name, f.body}
}
