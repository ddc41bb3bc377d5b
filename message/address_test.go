package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/message"
)

func TestMailbox(t *testing.T) {
	t.Parallel()

	m := message.Mailbox{Address: "s@x.com"}
	assert.Equal(t, "s@x.com", m.String())
	assert.Equal(t, "x.com", m.Domain())

	m.DisplayName = "Sterling Hanenkamp"
	assert.Equal(t, "Sterling Hanenkamp <s@x.com>", m.String())

	m.DisplayName = `Hanenkamp, "Sterling"`
	assert.Equal(t, `"Hanenkamp, \"Sterling\"" <s@x.com>`, m.String())

	assert.Equal(t, "", message.Mailbox{Address: "local"}.Domain())
}

func TestMailboxList(t *testing.T) {
	t.Parallel()

	ml := message.MailboxList{
		{Address: "a@x.com"},
		{DisplayName: "B", Address: "b@x.com"},
	}
	assert.Equal(t, "a@x.com, B <b@x.com>", ml.String())
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ml.Addresses())
}
