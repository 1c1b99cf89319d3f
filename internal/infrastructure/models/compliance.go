package models

import (
	"time"

	"github.com/google/uuid"
)

type ComplianceProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	EntityType string    `gorm:"type:varchar(20);not null"`
	Country    string    `gorm:"type:varchar(2);not null"`

	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`

	BusinessName      *string `gorm:"type:varchar(255)"`
	BusinessStructure *string `gorm:"type:varchar(50)"`

	StreetAddress string  `gorm:"type:varchar(255);not null"`
	City          string  `gorm:"type:varchar(100);not null"`
	State         *string `gorm:"type:varchar(100)"`
	ZipCode       string  `gorm:"type:varchar(20);not null"`

	Phone *string `gorm:"type:varchar(30)"`
	Email *string `gorm:"type:varchar(255)"`

	TaxID       *string `gorm:"type:varchar(50)"`
	DateOfBirth *time.Time

	JobTitle         *string `gorm:"type:varchar(100)"`
	OwnershipPercent *float64

	FirstNameKana      *string `gorm:"type:varchar(100)"`
	LastNameKana       *string `gorm:"type:varchar(100)"`
	FirstNameKanji     *string `gorm:"type:varchar(100)"`
	LastNameKanji      *string `gorm:"type:varchar(100)"`
	BuildingNumber     *string `gorm:"type:varchar(50)"`
	StreetAddressKana  *string `gorm:"type:varchar(255)"`
	StreetAddressKanji *string `gorm:"type:varchar(255)"`

	Current   bool `gorm:"not null;default:false;index"`
	CreatedAt time.Time
}

type ComplianceInfoRequest struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatorID         uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantAccountID uuid.UUID `gorm:"type:uuid;not null"`

	Field   string `gorm:"type:varchar(255);not null"`
	Partial bool   `gorm:"not null;default:false"`

	DueAt *time.Time
	State string `gorm:"type:varchar(20);not null;default:'requested';index"`

	VendorErrorCode   *string `gorm:"type:varchar(100)"`
	VendorErrorReason *string `gorm:"type:text"`

	LastEmailedAt *time.Time
	EmailCount    int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
