package message_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/header"
	"github.com/zostay/go-eml/message/header/param"
	"github.com/zostay/go-eml/message/transfer"
)

func textPart(s string) *message.Opaque {
	return message.NewLeaf(
		param.New("text/plain", map[string]string{param.Charset: "utf-8"}),
		transfer.Bit7,
		[]byte(s),
	)
}

func TestNewLeaf(t *testing.T) {
	t.Parallel()

	p := textPart("Test message.")

	assert.False(t, p.IsMultipart())
	assert.Nil(t, p.GetParts())

	const expect = "Content-Type: text/plain; charset=utf-8\r\n" +
		"Content-Transfer-Encoding: 7bit\r\n" +
		"\r\n" +
		"Test message."

	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		n, err := p.WriteTo(buf)
		assert.NoError(t, err)
		assert.Equal(t, int64(len(expect)), n)
		assert.Equal(t, expect, buf.String(), "WriteTo is repeatable")
	}

	c, err := io.ReadAll(p.GetReader())
	assert.NoError(t, err)
	assert.Equal(t, []byte("Test message."), c)
	assert.Equal(t, []byte("Test message."), p.Content())

	h := p.GetHeader()
	h.Set(header.ContentType, "text/html")
	mt, err := p.GetHeader().GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", mt, "GetHeader returns a copy")
}

func TestNewLeaf_NoEncoding(t *testing.T) {
	t.Parallel()

	p := message.NewLeaf(param.New("text/plain"), transfer.None, []byte("x"))
	assert.False(t, p.GetHeader().Has(header.ContentTransferEncoding))
}

func TestNewOpaque(t *testing.T) {
	t.Parallel()

	h := header.New("Content-Type", "text/plain", "X-Custom", "yes")
	content := []byte("abc")
	p := message.NewOpaque(h, content)

	h.Set("X-Custom", "no")
	content[0] = 'z'

	v, err := p.GetHeader().Get("X-Custom")
	assert.NoError(t, err)
	assert.Equal(t, "yes", v)
	assert.Equal(t, []byte("abc"), p.Content())
}

func TestNewAttachment(t *testing.T) {
	t.Parallel()

	p := message.NewAttachment("hello.txt", "text/plain", []byte("hello world"))

	buf := &bytes.Buffer{}
	_, err := p.WriteTo(buf)
	require.NoError(t, err)

	assert.Equal(t,
		"Content-Type: text/plain; name=hello.txt\r\n"+
			"Content-Transfer-Encoding: base64\r\n"+
			"Content-Disposition: attachment; filename=hello.txt\r\n"+
			"\r\n"+
			"aGVsbG8gd29ybGQ=",
		buf.String())

	// GetReader returns the unencoded content
	c, err := io.ReadAll(p.GetReader())
	assert.NoError(t, err)
	assert.Equal(t, "hello world", string(c))
}
