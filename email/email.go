package email

import (
	"errors"
	"time"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/param"
)

// ErrEmptyRecipients is returned when an Email is built without any To
// recipients.
var ErrEmptyRecipients = errors.New("email has no recipients")

// Email is a validated, immutable outgoing message.
type Email struct {
	to      addr.AddressList
	from    addr.Address
	replyTo addr.Address
	cc      addr.AddressList
	bcc     addr.AddressList
	subject string
	body    Body
	headers *header.Header
	date    time.Time
}

// Option sets an optional part of an Email during construction.
type Option func(*Email)

// WithReplyTo sets the Reply-To address.
func WithReplyTo(a addr.Address) Option {
	return func(e *Email) {
		e.replyTo = a
	}
}

// WithCc sets the Cc recipients. Calling it with no addresses still marks Cc as
// present, with an empty list.
func WithCc(as ...addr.Address) Option {
	return func(e *Email) {
		e.cc = append(addr.AddressList{}, as...)
	}
}

// WithBcc sets the Bcc recipients. Calling it with no addresses still marks Bcc
// as present, with an empty list.
func WithBcc(as ...addr.Address) Option {
	return func(e *Email) {
		e.bcc = append(addr.AddressList{}, as...)
	}
}

// WithHeader appends a header field. Fields may repeat. Content-Type and
// Content-Transfer-Encoding given here are replaced by the values the Body
// declares. A Message-ID given here is used as the Message-ID of the message.
func WithHeader(name, value string) Option {
	return func(e *Email) {
		e.headers.Add(name, value)
	}
}

// WithHeaders appends every field of h in order.
func WithHeaders(h *header.Header) Option {
	return func(e *Email) {
		for _, f := range h.ListFields() {
			e.headers.Add(f.Name(), f.Body())
		}
	}
}

// WithDate fixes the origination date. Without it, the date is taken when the
// email is put on the wire.
func WithDate(d time.Time) Option {
	return func(e *Email) {
		e.date = d
	}
}

// New builds an Email. The only validation performed is that to is not
// empty, which fails with ErrEmptyRecipients. The body is required but not
// checked here: an Email with a nil body has no MIME fields, and
// wire.Project refuses it.
func New(
	to addr.AddressList,
	from addr.Address,
	subject string,
	body Body,
	opts ...Option,
) (*Email, error) {
	if len(to) == 0 {
		return nil, ErrEmptyRecipients
	}

	e := &Email{
		to:      append(addr.AddressList{}, to...),
		from:    from,
		subject: subject,
		body:    body,
		headers: &header.Header{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// NewText builds an Email with a UTF-8 text/plain body.
func NewText(to addr.AddressList, from addr.Address, subject, text string, opts ...Option) (*Email, error) {
	return New(to, from, subject, TextString(text), opts...)
}

// NewHTML builds an Email with a UTF-8 text/html body.
func NewHTML(to addr.AddressList, from addr.Address, subject, html string, opts ...Option) (*Email, error) {
	return New(to, from, subject, HTMLString(html), opts...)
}

// NewAlternative builds an Email with a multipart/alternative body holding
// text and html. It fails with a *message.MultipartError if the multipart
// cannot be built, or with ErrEmptyRecipients.
func (f Factory) NewAlternative(
	to addr.AddressList,
	from addr.Address,
	subject, text, html string,
	opts ...Option,
) (*Email, error) {
	mm, err := f.Alternative(text, html)
	if err != nil {
		return nil, err
	}

	return New(to, from, subject, Multipart(mm), opts...)
}

// NewAlternative calls Factory.NewAlternative using crypto/rand.
func NewAlternative(
	to addr.AddressList,
	from addr.Address,
	subject, text, html string,
	opts ...Option,
) (*Email, error) {
	return Factory{}.NewAlternative(to, from, subject, text, html, opts...)
}

// To returns a copy of the To recipients. It always holds at least one.
func (e *Email) To() addr.AddressList {
	return append(addr.AddressList{}, e.to...)
}

// From returns the sender.
func (e *Email) From() addr.Address {
	return e.from
}

// ReplyTo returns the Reply-To address or nil.
func (e *Email) ReplyTo() addr.Address {
	return e.replyTo
}

func cloneList(al addr.AddressList) addr.AddressList {
	if al == nil {
		return nil
	}
	return append(addr.AddressList{}, al...)
}

// Cc returns a copy of the Cc recipients. It returns nil when Cc was never
// set and an empty list when it was set to nothing.
func (e *Email) Cc() addr.AddressList {
	return cloneList(e.cc)
}

// Bcc returns a copy of the Bcc recipients, with the same nil and empty
// distinction as Cc.
func (e *Email) Bcc() addr.AddressList {
	return cloneList(e.bcc)
}

// Subject returns the subject.
func (e *Email) Subject() string {
	return e.subject
}

// Body returns the body.
func (e *Email) Body() Body {
	return e.body
}

// Date returns the date given with WithDate and true, or the zero time and
// false.
func (e *Email) Date() (time.Time, bool) {
	return e.date, !e.date.IsZero()
}

// AdditionalHeaders returns a copy of the header fields given with WithHeader
// and WithHeaders, in order.
func (e *Email) AdditionalHeaders() *header.Header {
	return e.headers.Clone()
}

// ContentType returns the Content-Type of the body, or nil without a body.
func (e *Email) ContentType() *param.Value {
	if e.body == nil {
		return nil
	}
	return e.body.ContentType()
}

// TransferEncoding returns the Content-Transfer-Encoding of the body, if any.
func (e *Email) TransferEncoding() (string, bool) {
	if e.body == nil {
		return "", false
	}
	return e.body.TransferEncoding()
}

// AllHeaders returns the additional header fields with the MIME fields of the
// body merged in. Content-Type is set from the body, replacing any field of
// that name in place or appending it. Content-Transfer-Encoding is set the same
// way, but only when the body declares one. Every other field keeps its order,
// casing and duplicates.
func (e *Email) AllHeaders() *header.Header {
	h := e.headers.Clone()
	MergeMIMEHeaders(h, e.body)
	return h
}

// MergeMIMEHeaders sets the Content-Type, and the Content-Transfer-Encoding if
// the body has one, on h. A nil body leaves h alone.
func MergeMIMEHeaders(h *header.Header, body Body) {
	if body == nil {
		return
	}

	h.SetContentType(body.ContentType())
	if te, ok := body.TransferEncoding(); ok {
		h.SetTransferEncoding(te)
	}
}
