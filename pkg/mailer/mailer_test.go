package mailer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMessageBuild(t *testing.T) {
	msg := Message{
		From:     "orders@flavorfeast.test",
		FromName: "Flavor Feast",
		To:       "alice@example.com",
		Subject:  "Order #7 Status Update\r\nBcc: evil@example.com",
		HTMLBody: "<p>hi</p>",
	}

	raw := string(msg.build(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))

	assert.Contains(t, raw, "From: \"Flavor Feast\" <orders@flavorfeast.test>\r\n")
	assert.Contains(t, raw, "To: <alice@example.com>\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>"))
	assert.NotContains(t, raw, "\r\nBcc:")
}

func TestMessageValidate(t *testing.T) {
	ok := Message{From: "a@x.com", To: "b@y.com"}
	assert.NoError(t, ok.validate())

	bad := Message{From: "a@x.com", To: "not-an-address"}
	assert.ErrorIs(t, bad.validate(), ErrInvalidAddress)
}

func TestLogSender(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sender := NewLogSender(zap.New(core))

	err := sender.Send(context.Background(), Message{
		From: "orders@flavorfeast.test", To: "alice@example.com", Subject: "hello", HTMLBody: "<p>x</p>",
	})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "alice@example.com", entries[0].ContextMap()["to"])
}

func TestSMTPSender_RejectsInvalidAddressBeforeDialing(t *testing.T) {
	sender := &SMTPSender{host: "127.0.0.1", port: 1, timeout: time.Second}

	err := sender.Send(context.Background(), Message{From: "a@x.com", To: "nope"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
