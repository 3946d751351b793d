//go:build unit

package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"shopbot/internal/domain/customer"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/owner"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/infra/mail"
	"shopbot/internal/infra/notify"
	notifymock "shopbot/tests/mock/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func sale() purchase.Notice {
	return purchase.Notice{
		CustomerName:  "Ana",
		CustomerPhone: "5511999990000",
		CategoryName:  "Streaming 30d",
		Price:         money.Cents(4990),
		BalanceAfter:  money.Cents(5010),
		At:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifySaleUsesBothChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	text := notifymock.NewMockTextSender(ctrl)
	mailer := notifymock.NewMockMailSender(ctrl)
	o := owner.Owner{ID: uuid.New(), PhoneNumberID: "PNID", NotifyPhone: "5511977770000", NotifyEmail: "dono@loja.test"}

	text.EXPECT().SendText(gomock.Any(), "PNID", "5511977770000", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			assert.Contains(t, body, "Nova venda: Streaming 30d")
			assert.Contains(t, body, "R$ 49.90")
			return nil
		})
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mail.Message) error {
			assert.Equal(t, "dono@loja.test", msg.To)
			assert.Equal(t, "Nova venda: Streaming 30d", msg.Subject)
			return nil
		})

	require.NoError(t, notify.NewNotifier(text, mailer, discard).NotifySale(context.Background(), o, sale()))
}

func TestNotifyTriesEveryChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	text := notifymock.NewMockTextSender(ctrl)
	mailer := notifymock.NewMockMailSender(ctrl)
	o := owner.Owner{ID: uuid.New(), PhoneNumberID: "PNID", NotifyPhone: "5511977770000", NotifyEmail: "dono@loja.test"}

	text.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("window closed"))
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	err := notify.NewNotifier(text, mailer, discard).NotifySupportRequest(context.Background(), o, customer.Customer{Phone: "5511999990000"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "whatsapp:"))
}

func TestNotifySkipsUnconfiguredChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	text := notifymock.NewMockTextSender(ctrl)
	mailer := notifymock.NewMockMailSender(ctrl)
	o := owner.Owner{ID: uuid.New(), PhoneNumberID: "PNID", NotifyEmail: "dono@loja.test"}

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mail.Message) error {
			assert.Equal(t, "5511999990000 (5511999990000) pediu atendimento.", msg.Body)
			return nil
		})

	require.NoError(t, notify.NewNotifier(text, mailer, discard).NotifySupportRequest(context.Background(), o, customer.Customer{Phone: "5511999990000"}))
}
