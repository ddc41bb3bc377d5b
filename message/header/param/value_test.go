package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message/header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := param.Parse("test:plain")
	assert.Error(t, err)

	mt, err := param.Parse("text")
	require.NoError(t, err)

	assert.Equal(t, "text", mt.MediaType())
	assert.Equal(t, "", mt.Type())
	assert.Equal(t, "", mt.Subtype())
	assert.Equal(t, "text", mt.Presentation())
	assert.Equal(t, map[string]string{}, mt.Parameters())

	mt, err = param.Parse(`multipart/alternative; boundary="----=_Part_abc"`)
	require.NoError(t, err)

	assert.Equal(t, "multipart", mt.Type())
	assert.Equal(t, "alternative", mt.Subtype())
	assert.Equal(t, "----=_Part_abc", mt.Boundary())
}

func TestNew(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain", map[string]string{
		"Charset": "utf-8",
	})

	assert.Equal(t, "text/plain", mt.MediaType())
	assert.Equal(t, "utf-8", mt.Charset())
	assert.Equal(t, "text/plain; charset=utf-8", mt.String())
}

func TestModify(t *testing.T) {
	t.Parallel()

	mt := param.New("text/json")
	assert.Equal(t, "text/json", mt.String())

	nmt := param.Modify(mt,
		param.Set(param.Boundary, "abc123"),
		param.Change("application/json"),
	)
	assert.Equal(t, "application/json; boundary=abc123", nmt.String())
	assert.Equal(t, "text/json", mt.String(), "original is untouched")

	nmt = param.Modify(nmt,
		param.Change("text/x-json"),
		param.Set(param.Charset, "utf-8"),
		param.Delete(param.Boundary),
	)
	assert.Equal(t, "text/x-json; charset=utf-8", nmt.String())
	assert.Equal(t, []byte("text/x-json; charset=utf-8"), nmt.Bytes())
}

func TestValue_String_Quoting(t *testing.T) {
	t.Parallel()

	mt := param.New("multipart/mixed", map[string]string{
		param.Boundary: "----=_Part_0123",
	})
	assert.Equal(t, `multipart/mixed; boundary="----=_Part_0123"`, mt.String())

	back, err := param.Parse(mt.String())
	require.NoError(t, err)
	assert.True(t, mt.Equal(back))
}

func TestValue_Parameter(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain", map[string]string{
		"boundary": "abc123",
		"charset":  "latin1",
		"blah":     "BLOOP",
	})

	assert.Equal(t, "abc123", mt.Boundary())
	assert.Equal(t, "latin1", mt.Charset())
	assert.Equal(t, "BLOOP", mt.Parameter("BLAH"))
	assert.Equal(t, "", mt.Filename())

	ps := mt.Parameters()
	ps["charset"] = "changed"
	assert.Equal(t, "latin1", mt.Charset())
}
