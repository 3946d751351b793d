//go:build unit

package mail_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopbot/internal/infra/mail"
	"shopbot/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledMailerDropsMessages(t *testing.T) {
	m := mail.NewMailer(config.MailConfig{Enabled: false}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.False(t, m.Enabled())
	require.NoError(t, m.Send(context.Background(), mail.Message{To: "dono@loja.test", Subject: "x", Body: "y"}))
}

func TestEnabledMailerRejectsBadAddress(t *testing.T) {
	m := mail.NewMailer(config.MailConfig{Enabled: true, Host: "localhost", Port: 2525, From: "shopbot@localhost", Security: "none"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := m.Send(context.Background(), mail.Message{To: "not an address", Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set to")
}
