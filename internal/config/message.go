package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zostay/go-addr/pkg/addr"

	"github.com/zostay/go-eml/email"
	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header"
)

// ErrNoBody is returned when a message definition has neither text nor HTML.
var ErrNoBody = errors.New("message has no text or html body")

// Message defines an email to build.
type Message struct {
	From        string        `yaml:"from"`
	To          []string      `yaml:"to"`
	Cc          []string      `yaml:"cc"`
	Bcc         []string      `yaml:"bcc"`
	ReplyTo     string        `yaml:"reply_to"`
	Subject     string        `yaml:"subject"`
	Date        string        `yaml:"date"`
	Text        string        `yaml:"text"`
	HTML        string        `yaml:"html"`
	Headers     []HeaderField `yaml:"headers"`
	Attachments []Attachment  `yaml:"attachments"`
}

// HeaderField is an additional header field.
type HeaderField struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Attachment names a file to attach.
type Attachment struct {
	Path        string `yaml:"path"`
	Filename    string `yaml:"filename"`
	ContentType string `yaml:"content_type"`
}

func parseList(field string, ss []string) (addr.AddressList, error) {
	var al addr.AddressList
	for _, s := range ss {
		as, err := email.ParseAddressList(s)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", field, s, err)
		}
		al = append(al, as...)
	}
	return al, nil
}

// Email builds the email described by m. With both text and html the body is
// multipart/alternative. Attachments wrap the body in a multipart/mixed, read
// from disk at this point.
func (m *Message) Email(f email.Factory) (*email.Email, error) {
	to, err := parseList(header.To, m.To)
	if err != nil {
		return nil, err
	}

	from, err := email.ParseAddress(m.From)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", header.From, m.From, err)
	}

	var opts []email.Option
	if m.ReplyTo != "" {
		rt, err := email.ParseAddress(m.ReplyTo)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", header.ReplyTo, m.ReplyTo, err)
		}
		opts = append(opts, email.WithReplyTo(rt))
	}

	if len(m.Cc) > 0 {
		cc, err := parseList(header.Cc, m.Cc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, email.WithCc(cc...))
	}

	if len(m.Bcc) > 0 {
		bcc, err := parseList(header.Bcc, m.Bcc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, email.WithBcc(bcc...))
	}

	if m.Date != "" {
		d, err := header.ParseTime(m.Date)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", header.Date, m.Date, err)
		}
		opts = append(opts, email.WithDate(d))
	}

	for _, hf := range m.Headers {
		opts = append(opts, email.WithHeader(hf.Name, hf.Value))
	}

	body, err := m.body(f)
	if err != nil {
		return nil, err
	}

	return email.New(to, from, m.Subject, body, opts...)
}

func (m *Message) body(f email.Factory) (email.Body, error) {
	var body email.Body
	switch {
	case m.Text != "" && m.HTML != "":
		mm, err := f.Alternative(m.Text, m.HTML)
		if err != nil {
			return nil, err
		}
		body = email.Multipart(mm)
	case m.HTML != "":
		body = email.HTMLString(m.HTML)
	case m.Text != "":
		body = email.TextString(m.Text)
	default:
		return nil, ErrNoBody
	}

	if len(m.Attachments) == 0 {
		return body, nil
	}

	parts := []message.Part{body.Part()}
	for _, a := range m.Attachments {
		p, err := a.Part()
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}

	mm, err := f.Mixed(parts...)
	if err != nil {
		return nil, err
	}
	return email.Multipart(mm), nil
}

// Part reads the file and returns it as a base64 attachment part. The
// filename defaults to the base name of the path and the content type to
// application/octet-stream.
func (a Attachment) Part() (message.Part, error) {
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	name := a.Filename
	if name == "" {
		name = filepath.Base(a.Path)
	}

	ct := a.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	return message.NewAttachment(name, ct, content), nil
}
