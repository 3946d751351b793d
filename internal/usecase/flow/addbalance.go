package flow

import (
	"context"
	"strconv"
	"strings"

	"shopbot/internal/domain/money"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/payment"
	"shopbot/internal/domain/replyid"
)

func (e *engine) showProviders(ctx context.Context, req *request) (Outcome, error) {
	providers := req.scope.paymentProviders()
	if len(providers) == 0 {
		e.say(ctx, req, msgNoProviders)
		return e.mainMenu(ctx, req)
	}
	rows := make([]outbound.Row, 0, len(providers))
	for _, p := range providers {
		rows = append(rows, outbound.Row{ID: replyid.PaymentMethod(p.Key), Title: p.Label})
	}
	e.list(ctx, req, outbound.List{
		Body:        msgChooseProvider,
		ButtonLabel: labelProviders,
		Sections:    []outbound.Section{{Rows: rows}},
	})
	return OutcomeHandled, nil
}

func (e *engine) showTiers(ctx context.Context, req *request, provider string) (Outcome, error) {
	tiers := req.scope.paymentTiers(provider)
	if len(tiers) == 0 {
		e.say(ctx, req, msgNoProviders)
		return e.mainMenu(ctx, req)
	}
	rows := make([]outbound.Row, 0, len(tiers))
	for _, t := range tiers {
		rows = append(rows, outbound.Row{ID: replyid.AddBalance(provider, t.Int64()), Title: amountTitle(t)})
	}
	e.list(ctx, req, outbound.List{
		Body:        msgChooseAmount + "\n" + req.scope.providerLabel(provider),
		ButtonLabel: labelAmounts,
		Sections:    []outbound.Section{{Rows: rows}},
	})
	return OutcomeHandled, nil
}

// createCharge only accepts amounts that are configured right now, so stale
// or hand-crafted reply ids cannot open arbitrary charges. Balance is
// credited later by the payment confirmation callback.
func (e *engine) createCharge(ctx context.Context, req *request, provider string, amountCents int64) (Outcome, error) {
	amount := money.Cents(amountCents)
	if !amount.IsPositive() || !payment.Offers(req.scope.paymentTiers(provider), amount) {
		req.log.Info("rejected add-balance amount", "provider", provider, "amount", amount.String())
		e.say(ctx, req, msgAmountRejected)
		return e.showTiers(ctx, req, provider)
	}

	charge, err := e.payments.CreateCharge(ctx, payment.ChargeRequest{
		OwnerID:       req.owner.ID,
		Provider:      provider,
		Amount:        amount,
		CustomerID:    req.customer.ID,
		CustomerPhone: req.customer.Phone,
		CustomerName:  req.customer.DisplayName(),
		Reference:     chargeReference(req),
	})
	if err != nil {
		req.log.Warn("charge creation failed", "error", err, "provider", provider)
		e.say(ctx, req, msgChargeFailed)
		return e.mainMenu(ctx, req)
	}

	e.say(ctx, req, msgChargeCreated+"\n"+req.scope.providerLabel(provider)+": "+amountTitle(amount))
	for _, line := range charge.Instructions() {
		e.say(ctx, req, line)
	}
	req.log.Info("charge created", "provider", provider, "provider_ref", charge.ProviderRef, "amount", amount.String())
	return OutcomeHandled, nil
}

// chargeReference is stable across redeliveries of the same provider message.
func chargeReference(req *request) string {
	return strings.Join([]string{
		req.owner.ID.String(),
		strconv.FormatInt(req.customer.ID, 10),
		req.msg.ProviderMessageID,
	}, ":")
}
