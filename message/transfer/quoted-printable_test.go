package transfer_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message/transfer"
)

func TestQuotedPrintable_LeafBody(t *testing.T) {
	t.Parallel()

	body := "Caf\xc3\xa9 menu: 2=1 " + strings.Repeat("x", 80)

	w := &bytes.Buffer{}
	enc := transfer.NewQuotedPrintableEncoder(w)
	_, err := enc.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	out := w.String()
	assert.True(t, strings.HasPrefix(out, "Caf=C3=A9 menu: 2=3D1 "))
	assert.Contains(t, out, "=\r\n")
	for _, line := range strings.Split(out, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}

	db, err := io.ReadAll(transfer.NewQuotedPrintableDecoder(bytes.NewReader(w.Bytes())))
	assert.NoError(t, err)
	assert.Equal(t, body, string(db))
}

func TestQuotedPrintable_Lookup(t *testing.T) {
	t.Parallel()

	tc, ok := transfer.Lookup("Quoted-Printable")
	require.True(t, ok)

	w := &bytes.Buffer{}
	enc := tc.Encoder(w)
	_, err := enc.Write([]byte{0x3d, 0x3e, 0x3f})
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	assert.Equal(t, "=3D>?", w.String())
}
