package flow

import (
	"context"
	"strconv"
	"strings"

	"shopbot/internal/domain/customer"
	domflow "shopbot/internal/domain/flow"
	"shopbot/internal/domain/inbound"
	"shopbot/internal/domain/ledger"
	"shopbot/internal/domain/outbound"
	"shopbot/internal/domain/replyid"
	"shopbot/internal/infra"
	"shopbot/internal/pkg/errs"
)

func (e *engine) adminAskLookup(ctx context.Context, req *request, purpose domflow.LookupPurpose) (domflow.State, Outcome, error) {
	next := domflow.AwaitingCustomerLookup{Purpose: purpose}
	e.promptCancelable(ctx, req, promptFor(next))
	return next, OutcomeHandled, nil
}

func (e *engine) adminShowCustomer(ctx context.Context, req *request, id int64) (domflow.State, Outcome, error) {
	c, err := e.customers.ByID(ctx, req.owner.ID, id)
	if err != nil {
		return e.customerEditFailed(ctx, req, err)
	}
	return e.customerCard(ctx, req, c)
}

// customerCard shows the edit card and waits for a choice, typed or tapped.
func (e *engine) customerCard(ctx context.Context, req *request, c *customer.Customer) (domflow.State, Outcome, error) {
	block := labelBlock
	if c.Blocked {
		block = labelUnblock
	}
	e.buttons(ctx, req, customerCard(c), []outbound.Button{
		{ID: replyid.AdminCustomerName(c.ID), Title: labelName},
		{ID: replyid.AdminCustomerBalance(c.ID), Title: labelBalance},
		{ID: replyid.AdminCustomerBlock(c.ID), Title: block},
	})
	return domflow.AwaitingCustomerEditChoice{CustomerID: c.ID}, OutcomeHandled, nil
}

func (e *engine) adminAskCustomer(ctx context.Context, req *request, id int64, next domflow.State) (domflow.State, Outcome, error) {
	c, err := e.customers.ByID(ctx, req.owner.ID, id)
	if err != nil {
		return e.customerEditFailed(ctx, req, err)
	}
	return e.askCustomer(ctx, req, c, next)
}

func (e *engine) askCustomer(ctx context.Context, req *request, c *customer.Customer, next domflow.State) (domflow.State, Outcome, error) {
	if _, ok := next.(domflow.AwaitingCustomerBalanceDelta); ok && c.Blocked {
		e.say(ctx, req, msgCustomerBlockedNow)
		return e.customerCard(ctx, req, c)
	}
	e.promptCancelable(ctx, req, customerCard(c)+"\n\n"+promptFor(next))
	return next, OutcomeHandled, nil
}

func (e *engine) adminToggleBlocked(ctx context.Context, req *request, id int64) (domflow.State, Outcome, error) {
	blocked, err := e.customerEditor.ToggleBlocked(ctx, req.owner.ID, id)
	if err != nil {
		return e.customerEditFailed(ctx, req, err)
	}
	req.log.Info("customer block toggled", "customer_id", id, "blocked", blocked)
	return e.showCustomerDone(ctx, req, id)
}

func (e *engine) adminLookupCustomer(ctx context.Context, req *request, p domflow.AwaitingCustomerLookup, text string) (domflow.State, Outcome, error) {
	c, err := e.lookupCustomer(ctx, req, text)
	if isCustomerGone(err) {
		return e.reprompt(ctx, req, p, msgCustomerNotFound)
	}
	if err != nil {
		return nil, OutcomeFailed, err
	}
	if p.Purpose == domflow.LookupBalance {
		return e.askCustomer(ctx, req, c, domflow.AwaitingCustomerBalanceDelta{CustomerID: c.ID})
	}
	return e.customerCard(ctx, req, c)
}

// lookupCustomer reads the input as a phone number first and falls back to
// the numeric customer id.
func (e *engine) lookupCustomer(ctx context.Context, req *request, text string) (*customer.Customer, error) {
	phone := inbound.NormalizePhone(text)
	if phone == "" {
		return nil, errs.ErrCustomerNotFound
	}
	c, err := e.customers.ByPhone(ctx, req.owner.ID, phone)
	if !isCustomerGone(err) {
		return c, err
	}
	if strings.TrimSpace(text) != phone {
		return nil, err
	}
	id, perr := strconv.ParseInt(phone, 10, 64)
	if perr != nil || id <= 0 {
		return nil, err
	}
	return e.customers.ByID(ctx, req.owner.ID, id)
}

func (e *engine) adminEditChoice(ctx context.Context, req *request, p domflow.AwaitingCustomerEditChoice, text string) (domflow.State, Outcome, error) {
	switch domflow.ParseEditChoice(text) {
	case domflow.ChoiceName:
		return e.adminAskCustomer(ctx, req, p.CustomerID, domflow.AwaitingCustomerName{CustomerID: p.CustomerID})
	case domflow.ChoiceBalance:
		return e.adminAskCustomer(ctx, req, p.CustomerID, domflow.AwaitingCustomerBalanceDelta{CustomerID: p.CustomerID})
	case domflow.ChoiceBlock:
		return e.adminToggleBlocked(ctx, req, p.CustomerID)
	default:
		return e.reprompt(ctx, req, p, msgUnrecognizedOption)
	}
}

func (e *engine) adminRenameCustomer(ctx context.Context, req *request, p domflow.AwaitingCustomerName, text string) (domflow.State, Outcome, error) {
	name, err := domflow.ParseName(text)
	if err != nil {
		return e.reprompt(ctx, req, p, msgInvalidName)
	}
	if err := e.customerEditor.Rename(ctx, req.owner.ID, p.CustomerID, name); err != nil {
		return e.customerEditFailed(ctx, req, err)
	}
	return e.showCustomerDone(ctx, req, p.CustomerID)
}

// adminAdjustBalance goes through the ledger so manual debits obey the same
// floor and block rules as purchases.
func (e *engine) adminAdjustBalance(ctx context.Context, req *request, p domflow.AwaitingCustomerBalanceDelta, text string) (domflow.State, Outcome, error) {
	delta, err := domflow.ParseBalanceDelta(text)
	if err != nil {
		return e.reprompt(ctx, req, p, msgInvalidDelta)
	}

	if delta.IsPositive() {
		if _, err := e.ledger.Credit(ctx, req.owner.ID, p.CustomerID, delta); err != nil {
			return e.customerEditFailed(ctx, req, err)
		}
		req.log.Info("balance credited by admin", "customer_id", p.CustomerID, "amount", delta.String())
		return e.showCustomerDone(ctx, req, p.CustomerID)
	}

	amount := -delta
	result, err := e.ledger.Debit(ctx, req.owner.ID, p.CustomerID, amount)
	if err != nil {
		return nil, OutcomeFailed, err
	}
	switch {
	case result.OK:
		req.log.Info("balance debited by admin", "customer_id", p.CustomerID, "amount", amount.String())
		return e.showCustomerDone(ctx, req, p.CustomerID)
	case result.Reason == ledger.ReasonInsufficient:
		return e.reprompt(ctx, req, p, insufficientBalance(amount, result.Balance, result.Shortfall(amount)))
	case result.Reason == ledger.ReasonBlocked:
		e.say(ctx, req, msgCustomerBlockedNow)
		outcome, err := e.adminMenu(ctx, req)
		return domflow.None{}, outcome, err
	default:
		return e.adminCustomerGone(ctx, req)
	}
}

// showCustomerDone re-displays the customer after an applied edit and ends
// the flow.
func (e *engine) showCustomerDone(ctx context.Context, req *request, id int64) (domflow.State, Outcome, error) {
	c, err := e.customers.ByID(ctx, req.owner.ID, id)
	if err != nil {
		return e.customerEditFailed(ctx, req, err)
	}
	_, outcome, err := e.customerCard(ctx, req, c)
	return domflow.None{}, outcome, err
}

func (e *engine) customerEditFailed(ctx context.Context, req *request, err error) (domflow.State, Outcome, error) {
	if isCustomerGone(err) {
		return e.adminCustomerGone(ctx, req)
	}
	return nil, OutcomeFailed, err
}

func (e *engine) adminCustomerGone(ctx context.Context, req *request) (domflow.State, Outcome, error) {
	e.say(ctx, req, msgAdminCustomerGone)
	outcome, err := e.adminMenu(ctx, req)
	return domflow.None{}, outcome, err
}

func isCustomerGone(err error) bool {
	return err != nil && (infra.IsNotFound(err) || errs.Is(err, errs.ErrCustomerNotFound))
}
