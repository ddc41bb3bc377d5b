package wire

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-eml/email"
	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header"
)

var (
	// ErrNoAddress is wrapped by an AddressError when a required address is
	// missing.
	ErrNoAddress = errors.New("no address given")

	// ErrNoBody is returned when the email has a nil Body.
	ErrNoBody = errors.New("email has no body")
)

// AddressError is returned by Project when an address on the email is not a
// valid addr-spec.
type AddressError struct {
	// Field is the header the address belongs to, e.g., "To".
	Field   string
	Address string
	Err     error
}

// Error describes the problem.
func (e *AddressError) Error() string {
	return fmt.Sprintf("%s address %q: %v", e.Field, e.Address, e.Err)
}

// Unwrap returns the cause.
func (e *AddressError) Unwrap() error {
	return e.Err
}

type projector struct {
	now  func() time.Time
	rand io.Reader
}

// Option changes how Project works.
type Option func(*projector)

// WithClock sets the clock used for the Date of emails built without one.
func WithClock(now func() time.Time) Option {
	return func(p *projector) {
		p.now = now
	}
}

// WithRand sets the source of randomness used to generate a Message-ID.
func WithRand(r io.Reader) Option {
	return func(p *projector) {
		p.rand = r
	}
}

// Project builds the wire message for e.
//
// Each address is checked again and converted into a message.Mailbox. The
// Message-ID is taken from a Message-ID header on e when there is one,
// otherwise a random one is made for the domain of the From address. The Date
// is the one e was built with, or the current time. The header carries the
// MIME fields of the body and the rest of the additional fields of e. Bcc
// recipients go into the envelope only. Groups in To, Cc or Bcc are flattened
// into their member mailboxes.
//
// It fails with ErrNoBody when e has a nil Body and with an *AddressError when
// an address does not check out.
func Project(e *email.Email, opts ...Option) (*message.Message, error) {
	p := &projector{
		now:  time.Now,
		rand: rand.Reader,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p.project(e)
}

func (p *projector) project(e *email.Email) (*message.Message, error) {
	if e.Body() == nil {
		return nil, ErrNoBody
	}

	from, err := mailbox(header.From, e.From())
	if err != nil {
		return nil, err
	}

	to, err := mailboxList(header.To, e.To())
	if err != nil {
		return nil, err
	}

	cc, err := mailboxList(header.Cc, e.Cc())
	if err != nil {
		return nil, err
	}

	bcc, err := mailboxList(header.Bcc, e.Bcc())
	if err != nil {
		return nil, err
	}

	var replyTo *message.Mailbox
	if e.ReplyTo() != nil {
		rt, err := mailbox(header.ReplyTo, e.ReplyTo())
		if err != nil {
			return nil, err
		}
		replyTo = &rt
	}

	h := e.AllHeaders()
	msgID := userMessageID(h)
	if msgID == "" {
		msgID = message.RandomMessageID(from.Domain(), p.rand)
	}
	h.Delete(header.MessageID)

	date, ok := e.Date()
	if !ok {
		date = p.now()
	}

	return message.NewMessage(message.Fields{
		From:      from,
		To:        to,
		Cc:        cc,
		Bcc:       bcc,
		ReplyTo:   replyTo,
		Date:      date,
		Subject:   e.Subject(),
		MessageID: msgID,
		Body:      e.Body().Data(),
		Header:    h,
	}), nil
}

// userMessageID returns the first non-blank Message-ID field of h, or an
// empty string.
func userMessageID(h *header.Header) string {
	ids, err := h.GetAll(header.MessageID)
	if err != nil {
		return ""
	}

	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			return id
		}
	}
	return ""
}

// mailbox checks the addr-spec of a and copies it with its display name.
func mailbox(field string, a addr.Address) (message.Mailbox, error) {
	if a == nil {
		return message.Mailbox{}, &AddressError{Field: field, Err: ErrNoAddress}
	}

	spec := a.Address()
	if _, err := addr.ParseEmailAddrSpec(spec); err != nil {
		return message.Mailbox{}, &AddressError{Field: field, Address: spec, Err: err}
	}

	return message.Mailbox{
		DisplayName: a.DisplayName(),
		Address:     spec,
	}, nil
}

// mailboxList converts every address in al. A group is replaced by its
// members. A nil list stays nil.
func mailboxList(field string, al addr.AddressList) (message.MailboxList, error) {
	if al == nil {
		return nil, nil
	}

	ml := make(message.MailboxList, 0, len(al))
	for _, a := range al {
		if g, ok := a.(*addr.Group); ok {
			for _, mb := range g.MailboxList() {
				m, err := mailbox(field, mb)
				if err != nil {
					return nil, err
				}
				ml = append(ml, m)
			}
			continue
		}

		m, err := mailbox(field, a)
		if err != nil {
			return nil, err
		}
		ml = append(ml, m)
	}
	return ml, nil
}
