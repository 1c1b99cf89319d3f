package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LegalEntityType represents the legal entity type of a compliance profile
type LegalEntityType string

const (
	EntityTypeIndividual LegalEntityType = "individual"
	EntityTypeCompany    LegalEntityType = "company"
)

// BusinessStructure tags a company subtype. Only sole proprietorships carry
// a structure tag on the vendor side.
type BusinessStructure string

const (
	StructureSoleProprietorship BusinessStructure = "sole_proprietorship"
	StructureCorporation        BusinessStructure = "corporation"
	StructureLLC                BusinessStructure = "llc"
)

// ComplianceProfile is an immutable snapshot of a creator's declared legal
// identity. Each update creates a new version; at most one is current per
// creator and history is retained for diffing.
type ComplianceProfile struct {
	ID         uuid.UUID       `json:"id"`
	CreatorID  uuid.UUID       `json:"creatorId"`
	EntityType LegalEntityType `json:"entityType"`
	Country    string          `json:"country"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	BusinessName      null.String `json:"businessName,omitempty"`
	BusinessStructure null.String `json:"businessStructure,omitempty"`

	StreetAddress string      `json:"streetAddress"`
	City          string      `json:"city"`
	State         null.String `json:"state,omitempty"`
	ZipCode       string      `json:"zipCode"`

	Phone null.String `json:"phone,omitempty"`
	Email null.String `json:"email,omitempty"`

	// TaxID is stored in full; display surfaces derive a last-4 form elsewhere.
	TaxID       null.String `json:"-"`
	DateOfBirth null.Time   `json:"dateOfBirth,omitempty"`

	// Representative details for companies
	JobTitle         null.String  `json:"jobTitle,omitempty"`
	OwnershipPercent null.Float64 `json:"ownershipPercent,omitempty"`

	// Phonetic / non-Latin script variants (Japan)
	FirstNameKana      null.String `json:"firstNameKana,omitempty"`
	LastNameKana       null.String `json:"lastNameKana,omitempty"`
	FirstNameKanji     null.String `json:"firstNameKanji,omitempty"`
	LastNameKanji      null.String `json:"lastNameKanji,omitempty"`
	BuildingNumber     null.String `json:"buildingNumber,omitempty"`
	StreetAddressKanji null.String `json:"streetAddressKanji,omitempty"`
	StreetAddressKana  null.String `json:"streetAddressKana,omitempty"`

	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsCompany reports whether the profile declares a company entity type.
func (p *ComplianceProfile) IsCompany() bool {
	return p.EntityType == EntityTypeCompany
}

// FullName returns the person's full name, used as a payout display fallback
// when a company profile reverts to an individual one.
func (p *ComplianceProfile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
