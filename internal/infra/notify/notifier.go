package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shopbot/internal/domain/customer"
	"shopbot/internal/domain/owner"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/infra/mail"
)

type TextSender interface {
	SendText(ctx context.Context, from, to, body string) error
}

type MailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

// Notifier tells the merchant about sales and support requests on WhatsApp
// and by email, whichever the owner has configured. Both channels are tried
// even when one fails.
type Notifier struct {
	text   TextSender
	mail   MailSender
	logger *slog.Logger
}

func NewNotifier(text TextSender, mail MailSender, logger *slog.Logger) *Notifier {
	return &Notifier{text: text, mail: mail, logger: logger.With(slog.String("component", "notify"))}
}

func (n *Notifier) NotifySale(ctx context.Context, o owner.Owner, notice purchase.Notice) error {
	body := fmt.Sprintf("Nova venda: %s\nCliente: %s (%s)\nValor: R$ %s\nSaldo restante: R$ %s\n%s",
		notice.CategoryName,
		notice.CustomerName,
		notice.CustomerPhone,
		notice.Price,
		notice.BalanceAfter,
		notice.At.Format("02/01/2006 15:04"),
	)
	return n.deliver(ctx, o, "Nova venda: "+notice.CategoryName, body)
}

func (n *Notifier) NotifySupportRequest(ctx context.Context, o owner.Owner, c customer.Customer) error {
	body := fmt.Sprintf("%s (%s) pediu atendimento.", c.DisplayName(), c.Phone)
	return n.deliver(ctx, o, "Pedido de atendimento", body)
}

func (n *Notifier) deliver(ctx context.Context, o owner.Owner, subject, body string) error {
	var errList []error
	if o.HasNotifyPhone() && n.text != nil {
		if err := n.text.SendText(ctx, o.PhoneNumberID, o.NotifyPhone, body); err != nil {
			errList = append(errList, fmt.Errorf("whatsapp: %w", err))
		}
	}
	if o.HasNotifyEmail() && n.mail != nil {
		if err := n.mail.Send(ctx, mail.Message{To: o.NotifyEmail, Subject: subject, Body: body}); err != nil {
			errList = append(errList, fmt.Errorf("email: %w", err))
		}
	}
	if len(errList) > 0 {
		n.logger.Warn("owner notification incomplete", "owner_id", o.ID.String(), "failures", len(errList))
	}
	return errors.Join(errList...)
}
