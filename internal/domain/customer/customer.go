package customer

import (
	"time"

	"shopbot/internal/domain/money"

	"github.com/google/uuid"
)

type Customer struct {
	ID        int64
	OwnerID   uuid.UUID
	Phone     string
	Name      string
	Balance   money.Cents
	Blocked   bool
	CreatedAt time.Time
}

// DisplayName falls back to the phone when the customer never told us a name.
func (c Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Phone
}
