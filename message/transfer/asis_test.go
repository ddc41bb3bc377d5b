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

// closeRecorder notes whether Close reached the destination.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestAsIs_LeafBody(t *testing.T) {
	t.Parallel()

	body := "Dear Rita,\r\n\r\nLunch at noon? caf\xc3\xa9 \x80\xff\r\n"

	dst := &closeRecorder{}
	enc := transfer.NewAsIsEncoder(dst)
	n, err := io.Copy(enc, strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), n)

	assert.NoError(t, enc.Close())
	assert.False(t, dst.closed)
	assert.Equal(t, body, dst.String())

	db, err := io.ReadAll(transfer.NewAsIsDecoder(strings.NewReader(body)))
	assert.NoError(t, err)
	assert.Equal(t, []byte(body), db)
}
