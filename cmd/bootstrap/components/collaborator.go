package components

import (
	"errors"
	"io/fs"
	"log/slog"

	"shopbot/internal/infra/mail"
	"shopbot/internal/infra/notify"
	"shopbot/internal/infra/payment"
	"shopbot/internal/infra/whatsapp"
	"shopbot/internal/pkg/clock"
	"shopbot/internal/pkg/config"
	"shopbot/internal/usecase/flow"

	"go.uber.org/fx"
)

var CollaboratorModule = fx.Module("collaborator",
	fx.Provide(
		fx.Annotate(
			NewWhatsAppClient,
			fx.As(new(flow.Messenger)),
			fx.As(new(notify.TextSender)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(new(notify.MailSender)),
		),
		fx.Annotate(
			notify.NewNotifier,
			fx.As(new(flow.Notifier)),
		),
		NewPaymentTiers,
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(flow.Payments)),
		),
	),
)

func NewWhatsAppClient(cfg config.Config, logger *slog.Logger) *whatsapp.Client {
	return whatsapp.NewClient(cfg.WhatsApp.APIBaseURL, cfg.WhatsApp.AccessToken, cfg.WhatsApp.Timeout, logger)
}

func NewMailer(cfg config.Config, logger *slog.Logger) *mail.Mailer {
	return mail.NewMailer(cfg.Mail, logger)
}

// NewPaymentTiers loads the tiers file. A missing file means no add-balance
// options, not a failed start.
func NewPaymentTiers(cfg config.Config, logger *slog.Logger) (*payment.Tiers, error) {
	tiers, err := payment.LoadTiers(cfg.Payments.TiersFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("payment tiers file not found, add-balance disabled", "path", cfg.Payments.TiersFile)
		return payment.ParseTiers(nil)
	}
	return tiers, err
}

func NewPaymentGateway(cfg config.Config, tiers *payment.Tiers, clk clock.Clock, logger *slog.Logger) *payment.Gateway {
	chargers := map[string]payment.Charger{}
	if cfg.Payments.MercadoPagoToken != "" {
		mp := payment.NewMercadoPago(
			cfg.Payments.MercadoPagoBaseURL,
			cfg.Payments.MercadoPagoToken,
			cfg.Payments.PayerEmail,
			cfg.Payments.ChargeExpiry,
			cfg.Payments.Timeout,
			clk,
			logger,
		)
		chargers[payment.ProviderPix] = mp
		chargers[payment.ProviderCheckout] = mp
	}
	return payment.NewGateway(tiers, chargers)
}
