package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/message/header"
)

func TestBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{}, header.Meh.Bytes())
	assert.Equal(t, []byte{0x0d, 0x0a}, header.CRLF.Bytes())
	assert.Equal(t, "\n", header.LF.String())

	h := &header.Header{}
	assert.Equal(t, header.CRLF, h.Break(), "unset break renders as CRLF")
	h.SetBreak(header.LF)
	assert.Equal(t, header.LF, h.Break())
}
