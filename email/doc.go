// Package email models an outgoing email as an immutable, validated value.
//
// A Body is one of three things: a *TextBody, an *HTMLBody or a
// *MultipartBody. No other implementations exist, so a type switch over those
// three is exhaustive. Leaf bodies carry their charset and are always declared
// 7bit; the bytes are never re-encoded. A multipart body declares no transfer
// encoding of its own.
//
// An Email adds recipients, a sender, a subject and any extra header fields to
// a Body. The only thing New checks is that there is at least one To
// recipient; address syntax is the job of github.com/zostay/go-addr, which
// produced the addresses in the first place.
//
// Use package wire to turn an Email into a *message.Message for writing.
package email
