package email

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header/param"
	"github.com/zostay/go-eml/message/transfer"
)

// Charset names the character set of a leaf body.
type Charset string

// UTF8 is the charset used whenever none is given.
const UTF8 Charset = "utf-8"

// ErrUnsupportedBody is returned by BodyOf for values it cannot turn into a
// Body.
var ErrUnsupportedBody = errors.New("value cannot be used as an email body")

// Body is the content of an email. The implementations are *TextBody,
// *HTMLBody and *MultipartBody.
type Body interface {
	// ContentType returns the value of the Content-Type header.
	ContentType() *param.Value

	// TransferEncoding returns the Content-Transfer-Encoding and true, or an
	// empty string and false when the body has none.
	TransferEncoding() (string, bool)

	// Content returns the body as text. For a leaf this is the stored bytes
	// decoded from the charset. For a multipart it is the rendered MIME body.
	Content() string

	// Data returns the body bytes to put on the wire.
	Data() []byte

	// Part returns the body as a MIME part for nesting in a multipart.
	Part() message.Part

	isBody()
}

// leaf holds what text and HTML bodies have in common.
type leaf struct {
	mediaType string
	data      []byte
	charset   Charset
}

func newLeaf(mediaType string, data []byte, charset Charset) leaf {
	if charset == "" {
		charset = UTF8
	}
	return leaf{mediaType, bytes.Clone(data), charset}
}

// Charset returns the charset of the body.
func (l *leaf) Charset() Charset {
	return l.charset
}

// ContentType returns "<media type>; charset=<charset>".
func (l *leaf) ContentType() *param.Value {
	return param.New(l.mediaType, map[string]string{
		param.Charset: string(l.charset),
	})
}

// TransferEncoding always returns 7bit.
func (l *leaf) TransferEncoding() (string, bool) {
	return transfer.Bit7, true
}

// Content decodes the stored bytes using the charset. Decoding never fails:
// bytes that are not valid in the charset, or any bytes at all when the
// charset is unknown, come out as U+FFFD replacement characters where they
// cannot be read as UTF-8.
func (l *leaf) Content() string {
	return decode(l.data, l.charset)
}

// Data returns a copy of the stored bytes, unchanged.
func (l *leaf) Data() []byte {
	return bytes.Clone(l.data)
}

// Part returns a 7bit leaf part holding the stored bytes.
func (l *leaf) Part() message.Part {
	return message.NewLeaf(l.ContentType(), transfer.Bit7, l.data)
}

func (l *leaf) isBody() {}

func decode(data []byte, charset Charset) string {
	if enc, err := htmlindex.Get(strings.TrimSpace(string(charset))); err == nil {
		if s, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(s)
		}
	}

	s, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(s)
}

// TextBody is a text/plain body.
type TextBody struct{ leaf }

// Text returns a text/plain body holding a copy of b in the given charset. An
// empty charset means UTF8.
func Text(b []byte, charset Charset) *TextBody {
	return &TextBody{newLeaf("text/plain", b, charset)}
}

// TextString returns a UTF-8 text/plain body.
func TextString(s string) *TextBody {
	return Text([]byte(s), UTF8)
}

// HTMLBody is a text/html body.
type HTMLBody struct{ leaf }

// HTML returns a text/html body holding a copy of b in the given charset. An
// empty charset means UTF8.
func HTML(b []byte, charset Charset) *HTMLBody {
	return &HTMLBody{newLeaf("text/html", b, charset)}
}

// HTMLString returns a UTF-8 text/html body.
func HTMLString(s string) *HTMLBody {
	return HTML([]byte(s), UTF8)
}

// MultipartBody is a multipart/* body.
type MultipartBody struct {
	mm *message.Multipart
}

// Multipart wraps a multipart as a Body. It panics if mm is nil.
func Multipart(mm *message.Multipart) *MultipartBody {
	if mm == nil {
		panic("email.Multipart requires a multipart")
	}
	return &MultipartBody{mm}
}

// Multipart returns the wrapped multipart.
func (b *MultipartBody) Multipart() *message.Multipart {
	return b.mm
}

// ContentType returns the multipart's own Content-Type, which carries the
// subtype and boundary.
func (b *MultipartBody) ContentType() *param.Value {
	return b.mm.ContentType()
}

// TransferEncoding always returns false. Each part carries its own encoding.
func (b *MultipartBody) TransferEncoding() (string, bool) {
	return "", false
}

// Content returns the rendered multipart body.
func (b *MultipartBody) Content() string {
	return b.mm.Render()
}

// Data returns the rendered multipart body as bytes.
func (b *MultipartBody) Data() []byte {
	return b.mm.Bytes()
}

// Part returns the multipart itself.
func (b *MultipartBody) Part() message.Part {
	return b.mm
}

func (b *MultipartBody) isBody() {}

// BodyOf turns a loosely typed value into a Body: a string becomes a UTF-8
// text body, a []byte becomes a UTF-8 text body, a *message.Multipart becomes
// a multipart body and a Body is returned as-is. Anything else, including a nil
// Body, returns ErrUnsupportedBody.
func BodyOf(v any) (Body, error) {
	switch b := v.(type) {
	case *TextBody:
		if b != nil {
			return b, nil
		}
	case *HTMLBody:
		if b != nil {
			return b, nil
		}
	case *MultipartBody:
		if b != nil {
			return b, nil
		}
	case string:
		return TextString(b), nil
	case []byte:
		return Text(b, UTF8), nil
	case *message.Multipart:
		if b != nil {
			return Multipart(b), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedBody, v)
}
