package owner

import (
	"github.com/google/uuid"
)

// Owner is the merchant a bot number belongs to. Every conversation is scoped
// to exactly one owner.
type Owner struct {
	ID            uuid.UUID
	Name          string
	PhoneNumberID string
	BotNumber     string
	NotifyPhone   string
	NotifyEmail   string
	Active        bool
}

// HasNotifyPhone reports whether sale/support notifications can go out over WhatsApp.
func (o Owner) HasNotifyPhone() bool { return o.NotifyPhone != "" }

func (o Owner) HasNotifyEmail() bool { return o.NotifyEmail != "" }

type Admin struct {
	ID       int64
	OwnerID  uuid.UUID
	Phone    string
	Name     string
	IsActive bool
}
