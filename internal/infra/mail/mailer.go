package mail

import (
	"context"
	"log/slog"

	"shopbot/internal/pkg/config"
	"shopbot/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends through one SMTP relay. A disabled mailer accepts and drops
// everything.
type Mailer struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

func NewMailer(cfg config.MailConfig, logger *slog.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger.With(slog.String("component", "mail"))}
}

func (m *Mailer) Enabled() bool { return m.cfg.Enabled }

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if !m.cfg.Enabled {
		m.logger.Debug("mail disabled, dropping message", "subject", msg.Subject)
		return nil
	}

	out := gomail.NewMsg()
	if err := out.From(m.cfg.From); err != nil {
		return errs.Wrap(err, "set from")
	}
	if err := out.To(msg.To); err != nil {
		return errs.Wrap(err, "set to")
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Body)
	out.SetMessageID()

	client, err := gomail.NewClient(m.cfg.Host, m.options()...)
	if err != nil {
		return errs.Wrap(err, "create smtp client")
	}
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return errs.Wrap(err, "send email")
	}
	return nil
}

func (m *Mailer) options() []gomail.Option {
	opts := []gomail.Option{gomail.WithPort(m.cfg.Port)}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}
	switch m.cfg.Security {
	case "tls":
		opts = append(opts, gomail.WithSSLPort(false), gomail.WithTLSPolicy(gomail.TLSMandatory))
	case "starttls":
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}
	return opts
}
