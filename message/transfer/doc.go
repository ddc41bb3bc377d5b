// Package transfer maps Content-Transfer-Encoding names to streaming encoders
// and decoders. Only quoted-printable and base64 change any bytes. The 7bit,
// 8bit and binary encodings (and no encoding at all) pass bytes through as-is:
// declaring 7bit is a promise the content already is 7-bit safe, not a request
// to make it so.
package transfer
