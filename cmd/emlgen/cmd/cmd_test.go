package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/cmd/emlgen/cmd"
	"github.com/zostay/go-eml/internal/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root := cmd.NewRootCmd()
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuild_Flags(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	out, logs, err := run(t, "build",
		"--from", "s@x.com",
		"--to", "r@x.com",
		"--bcc", "hidden@x.com",
		"--subject", "S",
		"--date", "Sat, 06 May 2023 07:08:09 +0000",
		"--text", "Hi",
		"--header", "X-Mailer: emlgen",
	)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Date: Sat, 06 May 2023 07:08:09 +0000\r\nFrom: s@x.com\r\nTo: r@x.com\r\nSubject: S\r\n"))
	assert.Regexp(t, regexp.MustCompile(`Message-ID: <[0-9a-f]{32}@x\.com>\r\n`), out)
	assert.Contains(t, out, "X-Mailer: emlgen\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\nHi"))
	assert.NotContains(t, out, "hidden@x.com")

	assert.Contains(t, logs, "message written")
	assert.Contains(t, logs, "recipients=2")
}

func TestBuild_ConfigFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "msg.yaml")
	outPath := filepath.Join(dir, "out.eml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
logging:
  level: error
message:
  from: s@x.com
  to: [r@x.com]
  subject: From file
  text: plain
  html: <p>rich</p>
`), 0o600))

	_, logs, err := run(t, "build", "-f", cfgPath, "--subject", "Override", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, logs)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "Subject: Override\r\n")
	assert.Contains(t, s, "multipart/alternative")
	assert.Less(t, strings.Index(s, "plain"), strings.Index(s, "<p>rich</p>"))
}

func TestBuild_Errors(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	_, _, err := run(t, "build", "--from", "s@x.com", "--text", "Hi")
	assert.Error(t, err)

	_, _, err = run(t, "build", "--from", "s@x.com", "--to", "r@x.com", "--text", "Hi", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrBadLogLevel)
}

func TestInspect(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	out, _, err := run(t, "inspect",
		"--from", "s@x.com",
		"--to", "r@x.com",
		"--cc", "c@x.com",
		"--bcc", "b@x.com",
		"--text", "Hi there",
		"--html", "<p>Hi there</p>",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "envelope to:   r@x.com, c@x.com, b@x.com\n")
	assert.Regexp(t, `\[0\] multipart/alternative boundary=----=_Part_[0-9a-f]{32}\n`, out)
	assert.Contains(t, out, "  [0] text/plain 7bit 8 bytes \"Hi there\"\n")
	assert.Contains(t, out, "  [1] text/html 7bit 15 bytes \"<p>Hi there</p>\"\n")
}

func TestMessageID(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	out, _, err := run(t, "message-id", "-n", "3", "example.com")
	require.NoError(t, err)

	ids := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Regexp(t, `^<[0-9a-f]{32}@example\.com>$`, id)
	}
	assert.NotEqual(t, ids[0], ids[1])

	_, _, err = run(t, "message-id")
	assert.Error(t, err)
}
