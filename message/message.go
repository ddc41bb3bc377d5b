package message

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/field"
)

// MIMEVersion is the value written to the MIME-Version header.
const MIMEVersion = "1.0"

// structuralFields are the fields a Message writes itself from its own
// values. Fields with these names in the additional header are never written,
// which also keeps a stray Bcc from leaking into the header block.
var structuralFields = []string{
	header.Bcc,
	header.Cc,
	header.Date,
	header.From,
	header.MessageID,
	header.MIMEVersion,
	header.ReplyTo,
	header.Subject,
	header.To,
}

func isStructural(f *field.Field) bool {
	for _, name := range structuralFields {
		if f.Match(name) {
			return true
		}
	}
	return false
}

// Fields holds everything needed to build a Message.
type Fields struct {
	From      Mailbox
	To        MailboxList
	Cc        MailboxList
	Bcc       MailboxList
	ReplyTo   *Mailbox
	Date      time.Time
	Subject   string
	MessageID string
	Body      []byte

	// Header holds any other fields to write after the standard ones, in
	// order, e.g., Content-Type.
	Header *header.Header
}

// Message is a complete RFC 5322 message ready to be written to an .eml file
// or handed to a transport. It is immutable.
//
// Bcc recipients are part of the envelope only. They are returned by Bcc and
// Envelope but are never written into the header block.
type Message struct {
	from      Mailbox
	to        MailboxList
	cc        MailboxList
	bcc       MailboxList
	replyTo   *Mailbox
	date      time.Time
	subject   string
	messageID string
	body      []byte
	header    *header.Header
}

// NewMessage copies the given fields into a new Message.
func NewMessage(f Fields) *Message {
	m := &Message{
		from:      f.From,
		to:        cloneList(f.To),
		cc:        cloneList(f.Cc),
		bcc:       cloneList(f.Bcc),
		date:      f.Date,
		subject:   f.Subject,
		messageID: f.MessageID,
		body:      bytes.Clone(f.Body),
		header:    f.Header.Clone(),
	}

	if f.ReplyTo != nil {
		rt := *f.ReplyTo
		m.replyTo = &rt
	}

	return m
}

func cloneList(ml MailboxList) MailboxList {
	if ml == nil {
		return nil
	}
	return append(MailboxList{}, ml...)
}

// From returns the author.
func (m *Message) From() Mailbox { return m.from }

// To returns the primary recipients.
func (m *Message) To() MailboxList { return cloneList(m.to) }

// Cc returns the carbon copy recipients or nil if there are none.
func (m *Message) Cc() MailboxList { return cloneList(m.cc) }

// Bcc returns the blind carbon copy recipients or nil if there are none.
func (m *Message) Bcc() MailboxList { return cloneList(m.bcc) }

// ReplyTo returns the reply-to mailbox or nil.
func (m *Message) ReplyTo() *Mailbox {
	if m.replyTo == nil {
		return nil
	}
	rt := *m.replyTo
	return &rt
}

// Date returns the origination date.
func (m *Message) Date() time.Time { return m.date }

// Subject returns the subject.
func (m *Message) Subject() string { return m.subject }

// MessageID returns the Message-ID exactly as it will be written.
func (m *Message) MessageID() string { return m.messageID }

// Body returns a copy of the body bytes.
func (m *Message) Body() []byte { return bytes.Clone(m.body) }

// AdditionalHeader returns a copy of the additional header fields given at
// construction.
func (m *Message) AdditionalHeader() *header.Header { return m.header.Clone() }

// Header returns the header block that WriteTo writes: Date, From, Reply-To,
// To, Cc, Subject, Message-ID and MIME-Version, followed by the additional
// fields. There is never a Bcc field.
func (m *Message) Header() *header.Header {
	h := &header.Header{}
	if m.header != nil {
		h.SetBreak(m.header.Break())
		h.SetFoldEncoding(m.header.FoldEncoding())
	}

	h.SetDate(m.date)
	h.Set(header.From, m.from.String())
	if m.replyTo != nil {
		h.Set(header.ReplyTo, m.replyTo.String())
	}
	h.Set(header.To, m.to.String())
	if len(m.cc) > 0 {
		h.Set(header.Cc, m.cc.String())
	}
	h.SetSubject(m.subject)
	if m.messageID != "" {
		h.SetMessageID(m.messageID)
	}
	h.Set(header.MIMEVersion, MIMEVersion)

	for _, f := range m.header.ListFields() {
		if isStructural(f) {
			continue
		}
		h.Add(f.Name(), f.Body())
	}

	return h
}

// Envelope is the SMTP envelope of a message: the reverse path and every
// recipient, including Bcc.
type Envelope struct {
	From string
	To   []string
}

// Envelope returns the sender address and the recipients from To, Cc and Bcc
// in that order. An address listed more than once (ignoring case) is only
// included the first time.
func (m *Message) Envelope() Envelope {
	seen := map[string]bool{}
	rcpts := make([]string, 0, len(m.to)+len(m.cc)+len(m.bcc))
	for _, ml := range []MailboxList{m.to, m.cc, m.bcc} {
		for _, a := range ml.Addresses() {
			k := strings.ToLower(a)
			if seen[k] {
				continue
			}
			seen[k] = true
			rcpts = append(rcpts, a)
		}
	}

	return Envelope{
		From: m.from.Address,
		To:   rcpts,
	}
}

// WriteTo writes the header block, a blank line and the body.
func (m *Message) WriteTo(w io.Writer) (int64, error) {
	h := m.Header()
	n, err := h.WriteTo(w)
	if err != nil {
		return n, err
	}

	bn, err := io.WriteString(w, h.Break().String())
	n += int64(bn)
	if err != nil {
		return n, err
	}

	wn, err := w.Write(m.body)
	return n + int64(wn), err
}

// Bytes returns the message as written by WriteTo.
func (m *Message) Bytes() []byte {
	buf := &bytes.Buffer{}
	_, _ = m.WriteTo(buf)
	return buf.Bytes()
}

// String returns the message as written by WriteTo.
func (m *Message) String() string {
	return string(m.Bytes())
}
