package flow

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// State is what the next free-text message of a conversation means. The
// variants below are the only implementations.
type State interface {
	Kind() Kind
	isState()
}

type Kind string

const (
	KindNone                         Kind = "none"
	KindAwaitingCategoryRename       Kind = "awaiting_category_rename"
	KindAwaitingCategoryPrice        Kind = "awaiting_category_price"
	KindAwaitingCategorySku          Kind = "awaiting_category_sku"
	KindAwaitingCustomerLookup       Kind = "awaiting_customer_lookup"
	KindAwaitingCustomerEditChoice   Kind = "awaiting_customer_edit_choice"
	KindAwaitingCustomerName         Kind = "awaiting_customer_name"
	KindAwaitingCustomerBalanceDelta Kind = "awaiting_customer_balance_delta"
)

// LookupPurpose says where a customer lookup leads once the customer is found.
type LookupPurpose string

const (
	LookupEdit    LookupPurpose = "edit"
	LookupBalance LookupPurpose = "balance"
)

type None struct{}

type AwaitingCategoryRename struct{ CategoryID int64 }

type AwaitingCategoryPrice struct{ CategoryID int64 }

type AwaitingCategorySku struct{ CategoryID int64 }

type AwaitingCustomerLookup struct{ Purpose LookupPurpose }

type AwaitingCustomerEditChoice struct{ CustomerID int64 }

type AwaitingCustomerName struct{ CustomerID int64 }

type AwaitingCustomerBalanceDelta struct{ CustomerID int64 }

func (None) Kind() Kind                         { return KindNone }
func (AwaitingCategoryRename) Kind() Kind       { return KindAwaitingCategoryRename }
func (AwaitingCategoryPrice) Kind() Kind        { return KindAwaitingCategoryPrice }
func (AwaitingCategorySku) Kind() Kind          { return KindAwaitingCategorySku }
func (AwaitingCustomerLookup) Kind() Kind       { return KindAwaitingCustomerLookup }
func (AwaitingCustomerEditChoice) Kind() Kind   { return KindAwaitingCustomerEditChoice }
func (AwaitingCustomerName) Kind() Kind         { return KindAwaitingCustomerName }
func (AwaitingCustomerBalanceDelta) Kind() Kind { return KindAwaitingCustomerBalanceDelta }

func (None) isState()                         {}
func (AwaitingCategoryRename) isState()       {}
func (AwaitingCategoryPrice) isState()        {}
func (AwaitingCategorySku) isState()          {}
func (AwaitingCustomerLookup) isState()       {}
func (AwaitingCustomerEditChoice) isState()   {}
func (AwaitingCustomerName) isState()         {}
func (AwaitingCustomerBalanceDelta) isState() {}

// IsNone treats a nil State the same as None.
func IsNone(s State) bool {
	return s == nil || s.Kind() == KindNone
}

type record struct {
	Kind       Kind          `json:"kind"`
	CategoryID int64         `json:"category_id,omitempty"`
	CustomerID int64         `json:"customer_id,omitempty"`
	Purpose    LookupPurpose `json:"purpose,omitempty"`
}

// Encode serializes a state for storage. nil encodes as None.
func Encode(s State) []byte {
	var r record
	switch v := s.(type) {
	case AwaitingCategoryRename:
		r = record{Kind: v.Kind(), CategoryID: v.CategoryID}
	case AwaitingCategoryPrice:
		r = record{Kind: v.Kind(), CategoryID: v.CategoryID}
	case AwaitingCategorySku:
		r = record{Kind: v.Kind(), CategoryID: v.CategoryID}
	case AwaitingCustomerLookup:
		r = record{Kind: v.Kind(), Purpose: v.Purpose}
	case AwaitingCustomerEditChoice:
		r = record{Kind: v.Kind(), CustomerID: v.CustomerID}
	case AwaitingCustomerName:
		r = record{Kind: v.Kind(), CustomerID: v.CustomerID}
	case AwaitingCustomerBalanceDelta:
		r = record{Kind: v.Kind(), CustomerID: v.CustomerID}
	default:
		r = record{Kind: KindNone}
	}
	b, _ := json.Marshal(r)
	return b
}

// Decode is lenient: empty, corrupt or unknown records come back as None so a
// bad row can never wedge a conversation.
func Decode(b []byte) State {
	if len(b) == 0 {
		return None{}
	}
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return None{}
	}
	switch r.Kind {
	case KindAwaitingCategoryRename:
		return AwaitingCategoryRename{CategoryID: r.CategoryID}
	case KindAwaitingCategoryPrice:
		return AwaitingCategoryPrice{CategoryID: r.CategoryID}
	case KindAwaitingCategorySku:
		return AwaitingCategorySku{CategoryID: r.CategoryID}
	case KindAwaitingCustomerLookup:
		p := r.Purpose
		if p != LookupBalance {
			p = LookupEdit
		}
		return AwaitingCustomerLookup{Purpose: p}
	case KindAwaitingCustomerEditChoice:
		return AwaitingCustomerEditChoice{CustomerID: r.CustomerID}
	case KindAwaitingCustomerName:
		return AwaitingCustomerName{CustomerID: r.CustomerID}
	case KindAwaitingCustomerBalanceDelta:
		return AwaitingCustomerBalanceDelta{CustomerID: r.CustomerID}
	default:
		return None{}
	}
}

// Conversation is the persisted per-(owner, sender) session. CustomerID is
// the sender's phone in digits.
type Conversation struct {
	OwnerID            uuid.UUID
	CustomerID         string
	SupportHandoffOpen bool
	Pending            State
	UpdatedAt          time.Time
}

// Idle is the state of a conversation that has never been seen.
func Idle(ownerID uuid.UUID, customerID string) Conversation {
	return Conversation{OwnerID: ownerID, CustomerID: customerID, Pending: None{}}
}

func (c Conversation) HasPending() bool {
	return !IsNone(c.Pending)
}
