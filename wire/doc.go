// Package wire turns an email.Email into a message.Message ready to be written
// out as RFC 5322 text or handed to a transport along with its envelope.
package wire
