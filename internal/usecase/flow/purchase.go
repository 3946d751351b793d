package flow

import (
	"context"

	"shopbot/internal/domain/catalog"
	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/money"
	"shopbot/internal/domain/purchase"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/errs"
	"shopbot/internal/usecase/commands"
)

// purchase sells one unit of a category against the customer's balance.
// Once a unit is reserved it is released exactly once on every path that
// does not end in a recorded sale.
func (e *engine) purchase(ctx context.Context, req *request, categoryID int64) (Outcome, error) {
	cat, err := req.scope.category(ctx, categoryID)
	if infra.IsNotFound(err) {
		e.say(ctx, req, msgCategoryGone)
		return e.mainMenu(ctx, req)
	}
	if err != nil {
		return OutcomeFailed, err
	}
	if !cat.Active {
		e.say(ctx, req, msgCategoryGone)
		return e.mainMenu(ctx, req)
	}
	// the ledger refuses blocked customers too, but free categories never reach it
	if req.customer.Blocked {
		e.say(ctx, req, msgBlocked)
		_, _ = e.mainMenu(ctx, req)
		return OutcomeHandled, nil
	}

	unit, err := e.catalog.OldestAvailableUnit(ctx, cat.ID)
	if infra.IsNotFound(err) {
		e.say(ctx, req, msgOutOfStock)
		return e.mainMenu(ctx, req)
	}
	if err != nil {
		return OutcomeFailed, err
	}

	res, err := e.inventory.Reserve(ctx, unit.ID)
	if err != nil {
		return OutcomeFailed, err
	}
	if !res.Reserved {
		req.log.Info("reservation lost", "product_id", unit.ID)
		e.say(ctx, req, msgOutOfStock)
		return e.mainMenu(ctx, req)
	}

	balance, ok, err := e.charge(ctx, req, cat, res)
	if err != nil || !ok {
		return OutcomeHandled, err
	}

	rec, err := purchase.NewRecord(req.owner.ID, req.customer.ID, cat.ID, unit.ID, cat.Price, balance, e.clock.Now())
	if err == nil {
		err = e.purchases.Record(ctx, rec)
	}
	if err != nil {
		req.log.Error("purchase record failed, compensating", "error", err, "product_id", unit.ID)
		e.refund(ctx, req, cat.Price)
		e.release(ctx, req, res)
		e.say(ctx, req, msgPurchaseFailed)
		_, _ = e.mainMenu(ctx, req)
		return OutcomeFailed, nil
	}
	req.scope.forget(cat.ID)

	req.log.Info("purchase completed",
		"purchase_id", rec.ID().String(),
		"category_id", cat.ID,
		"product_id", unit.ID,
		"price", cat.Price.String(),
	)
	e.say(ctx, req, purchaseConfirmation(cat.Name, cat.Price, balance))
	e.deliver(ctx, req, unit)
	e.notifySale(ctx, req, cat, balance)
	_, _ = e.mainMenu(ctx, req)
	return OutcomeHandled, nil
}

// charge debits the category price. ok is false when the debit was refused;
// the reservation has then already been released and the customer told why.
func (e *engine) charge(ctx context.Context, req *request, cat *catalog.Category, res *commands.Reservation) (money.Cents, bool, error) {
	if !cat.Price.IsPositive() {
		return req.customer.Balance, true, nil
	}

	result, err := e.ledger.Debit(ctx, req.owner.ID, req.customer.ID, cat.Price)
	if err != nil {
		e.release(ctx, req, res)
		return 0, false, err
	}
	if result.OK {
		return result.Balance, true, nil
	}

	e.release(ctx, req, res)
	req.log.Info("debit refused", "reason", result.Reason.String(), "category_id", cat.ID)
	switch result.Reason {
	case ledger.ReasonBlocked:
		e.say(ctx, req, msgBlocked)
	case ledger.ReasonNotFound:
		e.say(ctx, req, msgCustomerMissing)
	default:
		e.say(ctx, req, insufficientBalance(cat.Price, result.Balance, result.Shortfall(cat.Price)))
	}
	_, _ = e.mainMenu(ctx, req)
	return 0, false, nil
}

func (e *engine) release(ctx context.Context, req *request, res *commands.Reservation) {
	if err := e.inventory.Release(ctx, res); err != nil {
		// a double release or a vanished product means the stock
		// bookkeeping is off; keep it loud
		req.log.Error("failed to release reservation", "error", err, "product_id", res.ProductID)
	}
}

func (e *engine) refund(ctx context.Context, req *request, amount money.Cents) {
	if !amount.IsPositive() {
		return
	}
	if _, err := e.ledger.Credit(ctx, req.owner.ID, req.customer.ID, amount); err != nil {
		req.log.Error("failed to refund debit", "error", err, "amount", amount.String())
	}
}

func (e *engine) deliver(ctx context.Context, req *request, unit *catalog.Product) {
	if !unit.HasPayload() {
		return
	}
	if unit.Media != nil {
		e.media(ctx, req, unit.Media, unit.Content)
		return
	}
	e.say(ctx, req, unit.Content)
}

func (e *engine) notifySale(ctx context.Context, req *request, cat *catalog.Category, balance money.Cents) {
	if e.notifier == nil {
		return
	}
	n := purchase.Notice{
		CustomerName:  req.customer.DisplayName(),
		CustomerPhone: req.customer.Phone,
		CategoryName:  cat.Name,
		Price:         cat.Price,
		BalanceAfter:  balance,
		At:            e.clock.Now(),
	}
	if err := e.notifier.NotifySale(ctx, req.owner, n); err != nil {
		req.log.Warn("sale notification failed", "error", errs.Wrap(err, "notify sale"))
	}
}
