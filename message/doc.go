// Package message holds the MIME and RFC 5322 building blocks used to put an
// email on the wire.
//
// A leaf part is an *Opaque: a header and unencoded content. A *Multipart
// joins parts under a subtype and a Boundary. Both implement Part, so a
// multipart/mixed can hold a multipart/alternative. Every Part holds bytes, so
// writing one is repeatable.
//
// A *Message is the finished product: addresses, date, subject, Message-ID,
// body bytes and any further header fields. WriteTo renders it with CRLF line
// breaks and folded header lines. Bcc recipients travel in the Envelope and are
// never written to the header block.
//
// Random values (boundaries and Message-IDs) are read from an io.Reader so that
// tests can supply fixed bytes. The Generate* helpers use crypto/rand.
package message
