// Package eml builds outgoing email messages and writes them as RFC 5322 text.
//
// The work is split by layer. The email package holds the message as the
// application thinks of it: recipients, a sender, a subject and a Body, which
// is text, HTML or a multipart built by email.Factory. The message package
// holds the MIME and RFC 5322 side: leaf parts, multipart entities with their
// boundaries, and the finished message.Message. The wire package connects the
// two. It turns an email.Email into a message.Message, generating a Message-ID
// and a Date when needed and keeping Bcc recipients in the envelope only.
//
//	e, err := email.NewAlternative(to, from, "Hello", "Hi", "<p>Hi</p>")
//	if err != nil {
//		return err
//	}
//
//	m, err := wire.Project(e)
//	if err != nil {
//		return err
//	}
//
//	_, err = m.WriteTo(f)
//
// The emlgen command under cmd/ does the same from flags or a YAML file.
package eml
