package field_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message/header/field"
)

func TestNewFoldEncoding(t *testing.T) {
	t.Parallel()

	_, err := field.NewFoldEncoding(3)
	assert.ErrorIs(t, err, field.ErrFoldLengthTooShort)

	vf, err := field.NewFoldEncoding(field.DoNotFold)
	require.NoError(t, err)
	assert.Equal(t, field.DoNotFold, vf.PreferredFoldLength())
}

func TestFoldEncoding_Fold(t *testing.T) {
	t.Parallel()

	short := field.New("Subject", "hello world")
	assert.Equal(t, "Subject: hello world\r\n", field.DefaultFoldEncoding.Fold(short, "\r\n"))

	words := strings.Repeat("lorem ipsum ", 12)
	long := field.New("Subject", words)
	out := field.DefaultFoldEncoding.Fold(long, "\r\n")

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	require.Greater(t, len(lines), 1)
	for i, line := range lines {
		assert.LessOrEqual(t, len(line), field.DefaultPreferredFoldLength)
		if i > 0 {
			assert.True(t, strings.HasPrefix(line, " "), "continuation starts with whitespace")
		}
	}

	assert.Equal(t, long.String(), strings.ReplaceAll(strings.TrimSuffix(out, "\r\n"), "\r\n", ""))

	assert.Equal(t, long.String()+"\n", field.DoNotFoldEncoding.Fold(long, "\n"))
}

func TestFoldEncoding_Fold_LongWord(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("x", 100)
	f := field.New("X-Token", word+" tail")
	out := field.DefaultFoldEncoding.Fold(f, "\r\n")
	assert.Equal(t, "X-Token: "+word+"\r\n tail\r\n", out)
}
