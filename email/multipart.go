package email

import (
	"crypto/rand"
	"io"

	"github.com/zostay/go-eml/message"
)

// Factory builds multipart bodies with fresh random boundaries. The zero value
// reads randomness from crypto/rand. Set Rand to supply fixed bytes in tests.
type Factory struct {
	Rand io.Reader
}

func (f Factory) boundary() message.Boundary {
	r := f.Rand
	if r == nil {
		r = rand.Reader
	}
	return message.RandomBoundary(r)
}

// Alternative returns a multipart/alternative holding a UTF-8 text/plain part
// followed by a UTF-8 text/html part, both 7bit. The order matters: readers
// show the last part they understand, so the HTML comes last.
func (f Factory) Alternative(text, html string) (*message.Multipart, error) {
	return message.NewMultipart(message.Alternative, []message.Part{
		TextString(text).Part(),
		HTMLString(html).Part(),
	}, f.boundary())
}

// Mixed returns a multipart/mixed holding the parts in the order given.
func (f Factory) Mixed(parts ...message.Part) (*message.Multipart, error) {
	return message.NewMultipart(message.Mixed, parts, f.boundary())
}

// Alternative calls Factory.Alternative using crypto/rand.
func Alternative(text, html string) (*message.Multipart, error) {
	return Factory{}.Alternative(text, html)
}

// Mixed calls Factory.Mixed using crypto/rand.
func Mixed(parts ...message.Part) (*message.Multipart, error) {
	return Factory{}.Mixed(parts...)
}
