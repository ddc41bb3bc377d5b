package header

import (
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-eml/message/header/field"
	"github.com/zostay/go-eml/message/header/param"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrIndexOutOfRange is returned when a field index is not in the header.
	ErrIndexOutOfRange = errors.New("header field index is out of range")
)

// These are the standard field names this module writes. Lookups are always
// case-insensitive, so these only decide the casing used on output.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentDisposition      = "Content-Disposition"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	ContentType             = "Content-Type"
	Date                    = "Date"
	From                    = "From"
	MessageID               = "Message-ID"
	MIMEVersion             = "MIME-Version"
	ReplyTo                 = "Reply-To"
	Sender                  = "Sender"
	Subject                 = "Subject"
	To                      = "To"
)

// Even more custom date formats, built from those seen in the wild that the
// usual parsers have trouble with.
const (
	// UnixDateWithEarlyYear is a weird one, eh?
	UnixDateWithEarlyYear = "Mon Jan 02 15:04:05 2006 MST"
)

// Header is an ordered list of header fields. Names are matched without regard
// to case, but the casing given when a field was added is kept for output.
// Duplicate names are allowed; the Set methods collapse duplicates of the name
// they set and leave every other field alone.
//
// The zero value is an empty header that renders with CRLF line breaks and the
// default fold encoding.
type Header struct {
	lbr    Break
	vf     *field.FoldEncoding
	fields []*field.Field
}

// New returns a header holding the given name/value pairs in order. It panics
// if given an odd number of strings.
func New(pairs ...string) *Header {
	if len(pairs)%2 != 0 {
		panic("header.New requires name/value pairs")
	}

	h := &Header{fields: make([]*field.Field, 0, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		h.Add(pairs[i], pairs[i+1])
	}
	return h
}

// Break returns the line break used when writing the header. It defaults to
// CRLF.
func (h *Header) Break() Break {
	if h.lbr == Meh {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break used when writing the header.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
}

// FoldEncoding returns the fold encoding used when writing the header.
func (h *Header) FoldEncoding() *field.FoldEncoding {
	if h.vf == nil {
		return field.DefaultFoldEncoding
	}
	return h.vf
}

// SetFoldEncoding changes the fold encoding used when writing the header.
func (h *Header) SetFoldEncoding(vf *field.FoldEncoding) {
	h.vf = vf
}

// Clone returns a deep copy of the header. A nil header clones to an empty
// one.
func (h *Header) Clone() *Header {
	if h == nil {
		return &Header{}
	}

	fs := make([]*field.Field, len(h.fields))
	for i, f := range h.fields {
		fs[i] = f.Clone()
	}

	return &Header{
		lbr:    h.lbr,
		vf:     h.vf,
		fields: fs,
	}
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	if h == nil {
		return 0
	}
	return len(h.fields)
}

// GetField returns the field at the given index or nil.
func (h *Header) GetField(i int) *field.Field {
	if i < 0 || i >= h.Len() {
		return nil
	}
	return h.fields[i]
}

// ListFields returns copies of all the fields in order.
func (h *Header) ListFields() []*field.Field {
	fs := make([]*field.Field, h.Len())
	for i := range fs {
		fs[i] = h.fields[i].Clone()
	}
	return fs
}

// GetIndexesNamed returns the indexes of all fields with the given name.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i := 0; i < h.Len(); i++ {
		if h.fields[i].Match(name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Has returns true if at least one field has the given name.
func (h *Header) Has(name string) bool {
	for i := 0; i < h.Len(); i++ {
		if h.fields[i].Match(name) {
			return true
		}
	}
	return false
}

// Add appends a new field to the end of the header, even if a field with that
// name already exists.
func (h *Header) Add(name, body string) {
	h.fields = append(h.fields, field.New(name, body))
}

// DeleteField removes the field at the given index.
func (h *Header) DeleteField(i int) error {
	if i < 0 || i >= h.Len() {
		return ErrIndexOutOfRange
	}
	h.fields = append(h.fields[:i], h.fields[i+1:]...)
	return nil
}

// Delete removes every field with the given name and returns how many were
// removed.
func (h *Header) Delete(name string) int {
	return h.Filter(func(f *field.Field) bool { return !f.Match(name) })
}

// Filter keeps only the fields for which keep returns true, preserving their
// order, and returns the number of fields removed.
func (h *Header) Filter(keep func(*field.Field) bool) int {
	if h.Len() == 0 {
		return 0
	}

	kept := h.fields[:0]
	for _, f := range h.fields {
		if keep(f) {
			kept = append(kept, f)
		}
	}

	n := len(h.fields) - len(kept)
	for i := len(kept); i < len(h.fields); i++ {
		h.fields[i] = nil
	}
	h.fields = kept
	return n
}

// Get retrieves the body of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple fields with the given name, it
// will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.fields[ixs[0]].Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll returns the bodies of every field with the given name in order. It
// returns nil with ErrNoSuchField if there are none.
func (h *Header) GetAll(name string) ([]string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(ixs))
	for i, ix := range ixs {
		bs[i] = h.fields[ix].Body()
	}
	return bs, nil
}

// Set will replace all existing header fields with the given name with a single
// header field with the given name and body. If the field already exists on the
// header, then the first occurrence will be replaced in place (keeping its
// original name casing) and any other occurrences will be deleted. If the field
// does not exist, it will be appended to the end of the header.
func (h *Header) Set(name, body string) {
	ixs := h.GetIndexesNamed(name)

	if len(ixs) == 0 {
		h.Add(name, body)
		return
	}

	for i := len(ixs) - 1; i > 0; i-- {
		// ignore out of range errors, we don't make that mistake here
		_ = h.DeleteField(ixs[i])
	}

	h.fields[ixs[0]].SetBody(body)
}

// ParseTime is a function that provides the time parsing used by GetTime() and
// GetDate() to parse dates to be used on any field body. This will attempt to
// parse the date using the format specified by RFC 5322 first and fallback to
// parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// GetTime parses the named field as a date.
func (h *Header) GetTime(name string) (time.Time, error) {
	body, err := h.Get(name)
	if err != nil {
		return time.Time{}, err
	}

	return ParseTime(body)
}

// SetTime replaces the named field with the time formatted per RFC 5322.
func (h *Header) SetTime(name string, body time.Time) {
	h.Set(name, body.Format(time.RFC1123Z))
}

// GetAddressList parses the named field as a list of addresses.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	return addr.ParseEmailAddressList(body)
}

// GetParamValue parses the named field as a param.Value.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	return param.Parse(body)
}

// SetParamValue replaces the named field with the given param.Value.
func (h *Header) SetParamValue(name string, body *param.Value) {
	h.Set(name, body.String())
}

// GetContentType returns the Content-Type as a param.Value.
func (h *Header) GetContentType() (*param.Value, error) {
	return h.GetParamValue(ContentType)
}

// SetContentType replaces the Content-Type.
func (h *Header) SetContentType(v *param.Value) {
	h.SetParamValue(ContentType, v)
}

// GetMediaType returns the media type of the Content-Type without parameters.
func (h *Header) GetMediaType() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.MediaType(), nil
}

// GetBoundary returns the boundary parameter of the Content-Type.
func (h *Header) GetBoundary() (string, error) {
	pv, err := h.GetContentType()
	if err != nil {
		return "", err
	}
	return pv.Boundary(), nil
}

// GetTransferEncoding returns the Content-Transfer-Encoding.
func (h *Header) GetTransferEncoding() (string, error) {
	return h.Get(ContentTransferEncoding)
}

// SetTransferEncoding replaces the Content-Transfer-Encoding.
func (h *Header) SetTransferEncoding(te string) {
	h.Set(ContentTransferEncoding, te)
}

// GetMessageID returns the Message-ID.
func (h *Header) GetMessageID() (string, error) {
	return h.Get(MessageID)
}

// SetMessageID replaces the Message-ID.
func (h *Header) SetMessageID(id string) {
	h.Set(MessageID, id)
}

// GetSubject returns the Subject.
func (h *Header) GetSubject() (string, error) {
	return h.Get(Subject)
}

// SetSubject replaces the Subject.
func (h *Header) SetSubject(s string) {
	h.Set(Subject, s)
}

// GetDate returns the Date as a time.Time.
func (h *Header) GetDate() (time.Time, error) {
	return h.GetTime(Date)
}

// SetDate replaces the Date.
func (h *Header) SetDate(d time.Time) {
	h.SetTime(Date, d)
}

// String returns the header as it would be written by WriteTo.
func (h *Header) String() string {
	var buf strings.Builder
	_, _ = h.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes every field, folded by the fold encoding and terminated by
// the line break. It does not write the blank line that ends a header block.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	vf := h.FoldEncoding()
	lbr := h.Break().String()

	var total int64
	for i := 0; i < h.Len(); i++ {
		n, err := io.WriteString(w, vf.Fold(h.fields[i], lbr))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}
