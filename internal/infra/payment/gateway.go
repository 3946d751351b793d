package payment

import (
	"context"

	"shopbot/internal/domain/money"
	domain "shopbot/internal/domain/payment"
	"shopbot/internal/pkg/errs"

	"github.com/google/uuid"
)

// Charger creates a charge at one payment provider.
type Charger interface {
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error)
}

// Gateway routes charges to the provider client and re-checks the amount
// against the configured tiers.
type Gateway struct {
	tiers    *Tiers
	chargers map[string]Charger
}

func NewGateway(tiers *Tiers, chargers map[string]Charger) *Gateway {
	return &Gateway{tiers: tiers, chargers: chargers}
}

func (g *Gateway) Providers(ownerID uuid.UUID) []domain.Provider {
	all := g.tiers.Providers(ownerID)
	out := make([]domain.Provider, 0, len(all))
	for _, p := range all {
		if _, ok := g.chargers[p.Key]; ok {
			out = append(out, p)
		}
	}
	return out
}

func (g *Gateway) Tiers(ownerID uuid.UUID, provider string) []money.Cents {
	if _, ok := g.chargers[provider]; !ok {
		return nil
	}
	return g.tiers.Tiers(ownerID, provider)
}

func (g *Gateway) CreateCharge(ctx context.Context, req domain.ChargeRequest) (*domain.Charge, error) {
	charger, ok := g.chargers[req.Provider]
	if !ok {
		return nil, errs.ErrUnknownProvider
	}
	if !domain.Offers(g.Tiers(req.OwnerID, req.Provider), req.Amount) {
		return nil, errs.ErrAmountNotOffered
	}
	return charger.Charge(ctx, req)
}
