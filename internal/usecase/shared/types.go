package shared

import (
	"shopbot/internal/domain/money"
)

// BalanceSnapshot is what a failed conditional debit is classified against.
type BalanceSnapshot struct {
	Balance money.Cents
	Blocked bool
}

type TranscriptDirection string

const (
	TranscriptInbound  TranscriptDirection = "inbound"
	TranscriptOutbound TranscriptDirection = "outbound"
)

type TranscriptEntry struct {
	Direction TranscriptDirection
	Body      string
	MediaID   string
}
