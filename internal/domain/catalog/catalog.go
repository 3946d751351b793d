package catalog

import (
	"time"

	"shopbot/internal/domain/money"

	"github.com/google/uuid"
)

// Category is what customers pick from; its units live in Product rows.
type Category struct {
	ID          int64
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       money.Cents
	SKU         string
	Active      bool
	// units with stock > 0
	Available int
	UpdatedAt time.Time
}

func (c Category) InStock() bool { return c.Available > 0 }

func (c Category) Purchasable() bool { return c.Active && c.InStock() }

// Product is one sellable unit (or a pool of identical units when stock > 1).
type Product struct {
	ID         int64
	CategoryID int64
	Content    string
	Media      *Media
	Stock      int
	UpdatedAt  time.Time
}

type Media struct {
	URL      string
	MimeType string
	Filename string
}

// HasPayload reports whether there is anything to deliver after a sale.
func (p Product) HasPayload() bool {
	return p.Content != "" || p.Media != nil
}

// Page is a window over the owner's categories for list rendering.
type Page struct {
	Items      []Category
	Offset     int
	NextOffset int
	HasMore    bool
}

// PageSize matches the WhatsApp list message row limit, minus one row for
// the "more" entry.
const PageSize = 9
