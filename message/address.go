package message

import (
	"strings"
)

// Mailbox is an address in the form written to a message header and used in
// the SMTP envelope: an optional display name and an addr-spec.
type Mailbox struct {
	DisplayName string
	Address     string
}

// Domain returns the part of the address after the last "@", or an empty
// string if there is none.
func (m Mailbox) Domain() string {
	if ix := strings.LastIndexByte(m.Address, '@'); ix >= 0 {
		return m.Address[ix+1:]
	}
	return ""
}

// String returns the mailbox as written in a header: the bare address when
// there is no display name, otherwise `name <address>` with the name quoted
// when it holds anything but atoms and spaces.
func (m Mailbox) String() string {
	if m.DisplayName == "" {
		return m.Address
	}
	return formatDisplayName(m.DisplayName) + " <" + m.Address + ">"
}

// isAtext reports whether c is allowed in an RFC 5322 atom.
func isAtext(c rune) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.ContainsRune("!#$%&'*+-/=?^_`{|}~", c)
}

func formatDisplayName(name string) string {
	plain := true
	for _, c := range name {
		if c != ' ' && !isAtext(c) {
			plain = false
			break
		}
	}
	if plain {
		return name
	}

	var buf strings.Builder
	buf.WriteByte('"')
	for _, c := range name {
		if c == '"' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(c)
	}
	buf.WriteByte('"')
	return buf.String()
}

// MailboxList renders mailboxes as a comma separated header body.
type MailboxList []Mailbox

// String joins the mailboxes with ", ".
func (ml MailboxList) String() string {
	ss := make([]string, len(ml))
	for i, m := range ml {
		ss[i] = m.String()
	}
	return strings.Join(ss, ", ")
}

// Addresses returns just the addr-spec of each mailbox.
func (ml MailboxList) Addresses() []string {
	as := make([]string, len(ml))
	for i, m := range ml {
		as[i] = m.Address
	}
	return as
}
