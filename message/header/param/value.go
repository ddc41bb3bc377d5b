package param

import (
	"mime"
	"sort"
	"strings"
)

const (
	// Charset is the name of the charset parameter of a Content-Type.
	Charset = "charset"

	// Boundary is the name of the boundary parameter of a multipart
	// Content-Type.
	Boundary = "boundary"

	// Filename is the name of the filename parameter of a Content-Disposition.
	Filename = "filename"

	// Name is the name of the name parameter some mail readers still expect
	// on the Content-Type of an attachment.
	Name = "name"
)

// Value represents a parameterized header field body, such as the body of a
// Content-Type header. A Value cannot be changed in place. Use Modify to derive
// a new Value from an old one.
type Value struct {
	v  string
	ps map[string]string
}

// Parse takes a header field body and parses it into a Value.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{mt, ps}, nil
}

// New creates a new Value from the primary value and zero or more maps of
// parameters. Later maps win when the same parameter is named twice. Parameter
// names are stored lower-cased.
func New(v string, pss ...map[string]string) *Value {
	ps := make(map[string]string)
	for _, m := range pss {
		for k, pv := range m {
			ps[strings.ToLower(k)] = pv
		}
	}
	return &Value{v, ps}
}

// Modifier is a change to apply to a Value when calling Modify.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets the named parameter.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[strings.ToLower(name)] = value
	}
}

// Delete is a Modifier that removes the named parameter.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, strings.ToLower(name))
	}
}

// Modify clones the Value, applies the given changes in order and returns the
// clone:
//
//	v := param.New("multipart/mixed", map[string]string{"boundary": "abc"})
//	nv := param.Modify(v, param.Change("multipart/alternative"))
func Modify(pv *Value, changes ...Modifier) *Value {
	c := pv.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

// Value returns the primary value, the part before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// MediaType is a synonym for Value, e.g., "text/html" or "multipart/mixed".
func (pv *Value) MediaType() string {
	return pv.v
}

// Presentation is a synonym for Value for use with Content-Disposition,
// e.g., "inline" or "attachment".
func (pv *Value) Presentation() string {
	return pv.v
}

// Type returns the part of the media type before the slash or an empty string
// if there is no slash. For "image/jpeg" this is "image".
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash or an empty
// string if there is no slash. For "text/html" this is "html".
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns a copy of the parameters.
func (pv *Value) Parameters() map[string]string {
	ps := make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		ps[k] = v
	}
	return ps
}

// Parameter returns the value of the named parameter or an empty string.
func (pv *Value) Parameter(k string) string {
	return pv.ps[strings.ToLower(k)]
}

// Charset returns the charset parameter.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the boundary parameter.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// Filename returns the filename parameter.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// String returns the header field body: the primary value followed by the
// parameters sorted by name. Parameter values are quoted when RFC 2045 requires
// it, so a boundary like "----=_Part_1" comes out as boundary="----=_Part_1".
func (pv *Value) String() string {
	if s := mime.FormatMediaType(pv.v, pv.ps); s != "" {
		return s
	}

	// FormatMediaType refuses values it cannot express as tokens or quoted
	// strings. Fall back to the plain form rather than losing the header.
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	var buf strings.Builder
	buf.WriteString(pv.v)
	for _, k := range pks {
		buf.WriteString("; ")
		buf.WriteString(k)
		buf.WriteString("=")
		buf.WriteString(pv.ps[k])
	}
	return buf.String()
}

// Bytes returns String as a slice of bytes.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	return &Value{pv.v, pv.Parameters()}
}

// Equal reports whether both values render the same header body.
func (pv *Value) Equal(o *Value) bool {
	if pv == nil || o == nil {
		return pv == o
	}
	return pv.String() == o.String()
}
