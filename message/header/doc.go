// Package header provides the ordered, case-insensitive header used for both
// message headers and MIME part headers.
//
// Fields keep the order and name casing they were added with. Lookups ignore
// case. The Set methods replace every field of a name with a single field in
// the position of the first one, which is what you want for singular fields
// like Content-Type. Add appends, which is what you want for fields that may
// repeat.
//
// Output always folds long lines at whitespace and ends each line with the
// configured Break (CRLF by default).
package header
