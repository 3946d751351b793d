package ledger

import (
	"shopbot/internal/domain/money"
)

// Reason says why a debit did not happen.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInsufficient
	ReasonBlocked
	ReasonNotFound
)

func (r Reason) String() string {
	switch r {
	case ReasonInsufficient:
		return "insufficient"
	case ReasonBlocked:
		return "blocked"
	case ReasonNotFound:
		return "not_found"
	default:
		return "none"
	}
}

// DebitResult is either a success carrying the new balance or a failure
// carrying the reason and the balance observed when it failed.
type DebitResult struct {
	OK         bool
	Reason     Reason
	CustomerID int64
	Balance    money.Cents
}

func Succeeded(customerID int64, newBalance money.Cents) DebitResult {
	return DebitResult{OK: true, CustomerID: customerID, Balance: newBalance}
}

func Failed(customerID int64, reason Reason, observed money.Cents) DebitResult {
	return DebitResult{Reason: reason, CustomerID: customerID, Balance: observed}
}

// Shortfall is only meaningful for ReasonInsufficient.
func (r DebitResult) Shortfall(price money.Cents) money.Cents {
	if r.Reason != ReasonInsufficient {
		return 0
	}
	return money.Shortfall(price, r.Balance)
}
