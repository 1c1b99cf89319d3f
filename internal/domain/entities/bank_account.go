package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BankAccountType distinguishes checking from savings destinations for
// countries whose bank shape requires it.
type BankAccountType string

const (
	BankAccountTypeChecking BankAccountType = "checking"
	BankAccountTypeSavings  BankAccountType = "savings"
)

// BankAccountRecord is a currency/country-scoped payout destination. Vendor
// identifiers are populated only after successful vendor registration.
// Exactly one record is active per creator; superseded ones are soft-deleted
// and keep their vendor identifiers for audit.
type BankAccountRecord struct {
	ID        uuid.UUID `json:"id"`
	CreatorID uuid.UUID `json:"creatorId"`

	Country  string `json:"country"`
	Currency string `json:"currency"`

	AccountNumber     string      `json:"-"`
	RoutingNumber     null.String `json:"-"`
	AccountHolderName null.String `json:"accountHolderName,omitempty"`
	AccountType       null.String `json:"accountType,omitempty"`

	VendorBankAccountID null.String `json:"vendorBankAccountId,omitempty"`
	Fingerprint         null.String `json:"-"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// Last4 returns the last four digits of the account number for display.
func (b *BankAccountRecord) Last4() string {
	if len(b.AccountNumber) < 4 {
		return b.AccountNumber
	}
	return b.AccountNumber[len(b.AccountNumber)-4:]
}
