package email_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/email"
	"github.com/zostay/go-eml/message"
)

var boundaryRe = regexp.MustCompile(`^----=_Part_[0-9a-f]{32}$`)

func TestAlternative(t *testing.T) {
	t.Parallel()

	mm, err := email.Alternative("plain words", "<p>html words</p>")
	require.NoError(t, err)

	assert.Equal(t, message.Alternative, mm.Subtype())
	assert.Regexp(t, boundaryRe, mm.Boundary().String())
	assert.Equal(t, "multipart/alternative", mm.ContentType().MediaType())
	assert.Equal(t, mm.Boundary().String(), mm.ContentType().Boundary())

	parts := mm.GetParts()
	require.Len(t, parts, 2)
	mt, err := parts[0].GetHeader().GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", mt)
	mt, err = parts[1].GetHeader().GetMediaType()
	assert.NoError(t, err)
	assert.Equal(t, "text/html", mt)

	out := mm.Render()
	assert.Less(t, strings.Index(out, "plain words"), strings.Index(out, "<p>html words</p>"))
	assert.True(t, strings.HasSuffix(out, mm.Boundary().CloseDelimiter()+"\r\n"))
}

func TestAlternative_FreshBoundary(t *testing.T) {
	t.Parallel()

	a, err := email.Alternative("x", "<p>x</p>")
	require.NoError(t, err)
	b, err := email.Alternative("x", "<p>x</p>")
	require.NoError(t, err)

	assert.NotEqual(t, a.Boundary(), b.Boundary())
}

func TestFactory_Deterministic(t *testing.T) {
	t.Parallel()

	seed := bytes.Repeat([]byte{0xAB}, 16)
	f := email.Factory{Rand: bytes.NewReader(seed)}

	mm, err := f.Alternative("x", "<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, message.Boundary("----=_Part_"+strings.Repeat("ab", 16)), mm.Boundary())
}

func TestMixed(t *testing.T) {
	t.Parallel()

	att := message.NewAttachment("a.bin", "application/octet-stream", []byte{1, 2, 3})
	mm, err := email.Mixed(email.TextString("first").Part(), att)
	require.NoError(t, err)

	assert.Equal(t, message.Mixed, mm.Subtype())
	parts := mm.GetParts()
	require.Len(t, parts, 2)
	assert.Same(t, att, parts[1])

	_, err = email.Mixed()
	var merr *message.MultipartError
	assert.ErrorAs(t, err, &merr)
	assert.ErrorIs(t, err, message.ErrTooFewParts)
}
