package payment

import (
	"strings"
	"time"

	"shopbot/internal/domain/money"

	"github.com/google/uuid"
)

type Provider struct {
	Key   string
	Label string
}

type ChargeRequest struct {
	OwnerID       uuid.UUID
	Provider      string
	Amount        money.Cents
	CustomerID    int64
	CustomerPhone string
	CustomerName  string
	// idempotency key forwarded to the provider
	Reference string
}

// Charge is what the provider handed back. Instructions are relayed to the
// customer as-is.
type Charge struct {
	ProviderRef string
	TicketURL   string
	QRCode      string
	ExpiresAt   time.Time
}

// Instructions renders the charge for a chat message: the ticket link first,
// then the copy-paste code when present.
func (c Charge) Instructions() []string {
	var out []string
	if c.TicketURL != "" {
		out = append(out, c.TicketURL)
	}
	if strings.TrimSpace(c.QRCode) != "" {
		out = append(out, c.QRCode)
	}
	return out
}

// Offers reports whether amount is one of tiers.
func Offers(tiers []money.Cents, amount money.Cents) bool {
	for _, t := range tiers {
		if t == amount {
			return true
		}
	}
	return false
}
