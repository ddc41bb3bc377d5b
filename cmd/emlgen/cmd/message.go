package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-eml/email"
	"github.com/zostay/go-eml/internal/config"
	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/wire"
)

// messageFlags are the flags describing a message. Any flag given overrides
// the same setting from the config file.
type messageFlags struct {
	msg     config.Message
	headers []string
	attach  []string
}

func (mf *messageFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&mf.msg.From, "from", "", "sender address")
	f.StringSliceVar(&mf.msg.To, "to", nil, "recipient addresses")
	f.StringSliceVar(&mf.msg.Cc, "cc", nil, "carbon copy addresses")
	f.StringSliceVar(&mf.msg.Bcc, "bcc", nil, "blind carbon copy addresses, envelope only")
	f.StringVar(&mf.msg.ReplyTo, "reply-to", "", "reply-to address")
	f.StringVar(&mf.msg.Subject, "subject", "", "subject line")
	f.StringVar(&mf.msg.Date, "date", "", "origination date, defaults to now")
	f.StringVar(&mf.msg.Text, "text", "", "text/plain body")
	f.StringVar(&mf.msg.HTML, "html", "", "text/html body")
	f.StringArrayVar(&mf.headers, "header", nil, `additional header as "Name: value"`)
	f.StringArrayVar(&mf.attach, "attach", nil, "file to attach")
}

// resolve merges the flags that were set over the configured message.
func (mf *messageFlags) resolve(cmd *cobra.Command, base config.Message) config.Message {
	m := base
	f := cmd.Flags()

	strs := map[string]*string{
		"from":     &m.From,
		"reply-to": &m.ReplyTo,
		"subject":  &m.Subject,
		"date":     &m.Date,
		"text":     &m.Text,
		"html":     &m.HTML,
	}
	flagStrs := map[string]string{
		"from":     mf.msg.From,
		"reply-to": mf.msg.ReplyTo,
		"subject":  mf.msg.Subject,
		"date":     mf.msg.Date,
		"text":     mf.msg.Text,
		"html":     mf.msg.HTML,
	}
	for name, p := range strs {
		if f.Changed(name) {
			*p = flagStrs[name]
		}
	}

	if f.Changed("to") {
		m.To = mf.msg.To
	}
	if f.Changed("cc") {
		m.Cc = mf.msg.Cc
	}
	if f.Changed("bcc") {
		m.Bcc = mf.msg.Bcc
	}

	for _, h := range mf.headers {
		name, value, _ := strings.Cut(h, ":")
		m.Headers = append(m.Headers, config.HeaderField{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}

	for _, path := range mf.attach {
		m.Attachments = append(m.Attachments, config.Attachment{Path: path})
	}

	return m
}

// project builds the email and its wire message.
func (o *rootOptions) project(cmd *cobra.Command, mf *messageFlags) (*email.Email, *message.Message, error) {
	def := mf.resolve(cmd, o.cfg.Message)

	e, err := def.Email(email.Factory{})
	if err != nil {
		return nil, nil, err
	}

	m, err := wire.Project(e)
	if err != nil {
		return nil, nil, err
	}

	return e, m, nil
}
