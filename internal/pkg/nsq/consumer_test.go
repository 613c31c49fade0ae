package nsq

import (
	"errors"
	"testing"

	"github.com/nsqio/go-nsq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(body string) *nsq.Message {
	var id nsq.MessageID
	copy(id[:], "0123456789abcdef")
	return nsq.NewMessage(id, []byte(body))
}

func TestWrapHandler(t *testing.T) {
	t.Run("passes body through", func(t *testing.T) {
		var got []byte
		h := wrapHandler("otp.email", func(message []byte) error {
			got = message
			return nil
		})

		require.NoError(t, h.HandleMessage(newMessage(`{"code":"123456"}`)))
		assert.Equal(t, `{"code":"123456"}`, string(got))
	})

	t.Run("returns handler error so the message is requeued", func(t *testing.T) {
		h := wrapHandler("otp.sms", func(message []byte) error {
			return errors.New("twilio down")
		})

		assert.EqualError(t, h.HandleMessage(newMessage(`{}`)), "twilio down")
	})

	t.Run("skips empty messages", func(t *testing.T) {
		called := false
		h := wrapHandler("otp.sms", func(message []byte) error {
			called = true
			return nil
		})

		assert.NoError(t, h.HandleMessage(newMessage("")))
		assert.False(t, called)
	})
}

func TestUnmarshalMessage(t *testing.T) {
	var v struct {
		Recipient string `json:"recipient"`
	}
	require.NoError(t, UnmarshalMessage([]byte(`{"recipient":"a@b.co"}`), &v))
	assert.Equal(t, "a@b.co", v.Recipient)

	assert.Error(t, UnmarshalMessage([]byte(`not json`), &v))
}
