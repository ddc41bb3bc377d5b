package message

import (
	"crypto/rand"
	"io"
)

const messageIDRandomBytes = 16

// RandomMessageID reads 16 bytes from r and returns a Message-ID of the form
// "<32 hex digits@domain>". It panics if r cannot supply the bytes.
func RandomMessageID(domain string, r io.Reader) string {
	return "<" + randomHex(r, messageIDRandomBytes) + "@" + domain + ">"
}

// GenerateMessageID returns a RandomMessageID drawn from crypto/rand.
func GenerateMessageID(domain string) string {
	return RandomMessageID(domain, rand.Reader)
}
