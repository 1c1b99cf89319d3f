package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantAccount is the vendor-side account representation for a creator.
// Created once per creator unless explicitly reset by an administrator.
type MerchantAccount struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creatorId"`

	Processor       string `json:"processor"`
	VendorAccountID string `json:"vendorAccountId"`
	Country         string `json:"country"`
	Currency        string `json:"currency"`

	// ChargeProcessorVerifiedAt is the liveness timestamp. Webhook events for
	// accounts without it predate usable state and are ignored.
	ChargeProcessorVerifiedAt null.Time `json:"chargeProcessorVerifiedAt,omitempty"`

	ChargesEnabled bool `json:"chargesEnabled"`
	PayoutsEnabled bool `json:"payoutsEnabled"`

	// RequestedCapabilities is the capability set last requested on the vendor
	// side. Evolves via webhooks; extras already requested are preserved.
	RequestedCapabilities []string `json:"requestedCapabilities"`

	// SyncedProfileID and SyncedBankAccountID record the compliance profile
	// version and vendor bank-account id last pushed to the vendor. They are
	// the previous-state snapshot that the diff/update builder runs against.
	SyncedProfileID     null.String `json:"-"`
	SyncedBankAccountID null.String `json:"-"`

	DeauthorizedAt null.Time `json:"deauthorizedAt,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	DeletedAt      null.Time `json:"-"`
}

// Live reports whether the account has completed initial provisioning.
func (m *MerchantAccount) Live() bool {
	return m.ChargeProcessorVerifiedAt.Valid
}

// Active reports whether the account is still connected to the vendor.
func (m *MerchantAccount) Active() bool {
	return !m.DeauthorizedAt.Valid && !m.DeletedAt.Valid
}
