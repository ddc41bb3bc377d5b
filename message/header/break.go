package header

// Break is the line break written after each header line.
type Break string

// Line breaks a Header can be written with. Messages on the wire use CRLF, and
// CRLF is the default. LF is handy for .eml files meant for Unix tools.
const (
	Meh  Break = ""         // unset, means CRLF
	CRLF Break = "\x0d\x0a" // \r\n - Network linebreak
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
