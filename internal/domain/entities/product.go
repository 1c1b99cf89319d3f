package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Product represents a sellable item in a creator's catalog.
type Product struct {
	ID       uuid.UUID `json:"id"`
	SellerID uuid.UUID `json:"sellerId"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Currency    string `json:"currency"`

	Published        bool `json:"published"`
	Adult            bool `json:"adult"`
	AffiliateEnabled bool `json:"affiliateEnabled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// Visible reports whether a product can be surfaced to buyers.
func (p *Product) Visible() bool {
	return p.Published && !p.DeletedAt.Valid
}
