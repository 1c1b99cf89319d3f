package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MerchantAccount struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index"`

	Processor       string `gorm:"type:varchar(50);not null"`
	VendorAccountID string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Country         string `gorm:"type:varchar(2);not null"`
	Currency        string `gorm:"type:varchar(3);not null"`

	ChargeProcessorVerifiedAt *time.Time

	ChargesEnabled bool `gorm:"not null;default:false"`
	PayoutsEnabled bool `gorm:"not null;default:false"`

	// Comma-separated capability identifiers.
	RequestedCapabilities string `gorm:"type:text"`

	SyncedProfileID     *string `gorm:"type:uuid"`
	SyncedBankAccountID *string `gorm:"type:varchar(255)"`

	DeauthorizedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

type BankAccountRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatorID uuid.UUID `gorm:"type:uuid;not null;index"`

	Country  string `gorm:"type:varchar(2);not null"`
	Currency string `gorm:"type:varchar(3);not null"`

	AccountNumber     string  `gorm:"type:varchar(64);not null"`
	RoutingNumber     *string `gorm:"type:varchar(32)"`
	AccountHolderName *string `gorm:"type:varchar(255)"`
	AccountType       *string `gorm:"type:varchar(20)"`

	VendorBankAccountID *string `gorm:"type:varchar(255)"`
	Fingerprint         *string `gorm:"type:varchar(255)"`

	Active    bool `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type WebhookEvent struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	VendorEventID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	EventType     string    `gorm:"type:varchar(100);not null"`
	Payload       string    `gorm:"type:jsonb"`
	CreatedAt     time.Time
}
