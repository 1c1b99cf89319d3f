package usecases

import (
	"strings"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/vendorapi"
)

// clean trims surrounding whitespace. Every string that reaches the vendor
// payload goes through it.
func clean(s string) string {
	return strings.TrimSpace(s)
}

// buildAccountParams maps a compliance profile, bank account, and terms
// agreement onto the vendor's account-creation payload shape. Pure function;
// prerequisite checks happen in the caller.
func buildAccountParams(
	profile *entities.ComplianceProfile,
	bank *entities.BankAccountRecord,
	terms *entities.TermsAgreement,
	cfg CountryConfig,
) *vendorapi.AccountParams {
	params := &vendorapi.AccountParams{
		Country:         profile.Country,
		DefaultCurrency: cfg.Currency,
		Capabilities:    cfg.Tier.Capabilities(),
		TOSAcceptance: &vendorapi.TOSAcceptanceParams{
			Date: terms.AcceptedAt.Unix(),
			IP:   clean(terms.IP),
		},
		BusinessProfile: businessProfileParams(profile),
		ExternalAccount: buildBankAccountParams(bank, profile, cfg),
		Metadata: map[string]string{
			"creator_id": profile.CreatorID.String(),
			"profile_id": profile.ID.String(),
		},
	}

	if cfg.RecipientServiceAgreement {
		params.TOSAcceptance.ServiceAgreement = "recipient"
	}

	if profile.IsCompany() {
		params.BusinessType = "company"
		params.Company = companyParams(profile, cfg)
		params.Representative = personParams(profile, cfg, true)
	} else {
		params.BusinessType = "individual"
		params.Individual = personParams(profile, cfg, false)
	}

	return params
}

func businessProfileParams(profile *entities.ComplianceProfile) *vendorapi.BusinessProfileParams {
	name := clean(profile.BusinessName.String)
	if name == "" {
		name = clean(profile.FullName())
	}
	return &vendorapi.BusinessProfileParams{Name: name}
}

func companyParams(profile *entities.ComplianceProfile, cfg CountryConfig) *vendorapi.CompanyParams {
	p := &vendorapi.CompanyParams{
		Name:    clean(profile.BusinessName.String),
		TaxID:   clean(profile.TaxID.String),
		Phone:   clean(profile.Phone.String),
		Address: addressParams(profile, cfg),
	}
	if profile.BusinessStructure.String == string(entities.StructureSoleProprietorship) {
		structure := string(entities.StructureSoleProprietorship)
		p.Structure = &structure
	}
	return p
}

func personParams(profile *entities.ComplianceProfile, cfg CountryConfig, representative bool) *vendorapi.PersonParams {
	p := &vendorapi.PersonParams{
		FirstName: clean(profile.FirstName),
		LastName:  clean(profile.LastName),
		Email:     clean(profile.Email.String),
		Phone:     clean(profile.Phone.String),
		Address:   addressParams(profile, cfg),
		IDNumber:  "",
	}

	// Individuals carry the tax id on the person block; companies carry it on
	// the company block instead.
	if !representative {
		p.IDNumber = clean(profile.TaxID.String)
	}

	// DOB is always a full triple, never partial.
	if profile.DateOfBirth.Valid {
		dob := profile.DateOfBirth.Time
		p.DOB = &vendorapi.DOBParams{
			Day:   dob.Day(),
			Month: int(dob.Month()),
			Year:  dob.Year(),
		}
	}

	if cfg.ScriptFields {
		p.FirstNameKana = clean(profile.FirstNameKana.String)
		p.LastNameKana = clean(profile.LastNameKana.String)
		p.FirstNameKanji = clean(profile.FirstNameKanji.String)
		p.LastNameKanji = clean(profile.LastNameKanji.String)
		if profile.StreetAddressKana.Valid {
			p.AddressKana = &vendorapi.AddressParams{
				Line1:      clean(profile.StreetAddressKana.String),
				Line2:      clean(profile.BuildingNumber.String),
				City:       clean(profile.City),
				PostalCode: clean(profile.ZipCode),
			}
		}
		if profile.StreetAddressKanji.Valid {
			p.AddressKanji = &vendorapi.AddressParams{
				Line1:      clean(profile.StreetAddressKanji.String),
				Line2:      clean(profile.BuildingNumber.String),
				City:       clean(profile.City),
				PostalCode: clean(profile.ZipCode),
			}
		}
	}

	if representative {
		p.Relationship = &vendorapi.RelationshipParams{
			Representative:   true,
			Owner:            profile.OwnershipPercent.Float64 >= 25,
			Title:            clean(profile.JobTitle.String),
			PercentOwnership: profile.OwnershipPercent.Float64,
		}
	}

	return p
}

func addressParams(profile *entities.ComplianceProfile, cfg CountryConfig) *vendorapi.AddressParams {
	a := &vendorapi.AddressParams{
		Line1:      clean(profile.StreetAddress),
		City:       clean(profile.City),
		PostalCode: clean(profile.ZipCode),
	}
	if !cfg.OmitsState {
		a.State = clean(profile.State.String)
	}
	return a
}

// buildBankAccountParams maps the payout destination onto the vendor's bank
// block, following the country's bank-detail shape.
func buildBankAccountParams(
	bank *entities.BankAccountRecord,
	profile *entities.ComplianceProfile,
	cfg CountryConfig,
) *vendorapi.BankAccountParams {
	p := &vendorapi.BankAccountParams{
		Country:       bank.Country,
		Currency:      bank.Currency,
		AccountNumber: clean(bank.AccountNumber),
	}

	if cfg.Bank == BankShapeRoutingAndAccount {
		p.RoutingNumber = clean(bank.RoutingNumber.String)
	}
	if cfg.RequiresAccountHolderName {
		p.AccountHolderName = clean(bank.AccountHolderName.String)
		if profile.IsCompany() {
			p.AccountHolderType = "company"
		} else {
			p.AccountHolderType = "individual"
		}
	}
	if cfg.RequiresAccountType {
		accountType := clean(bank.AccountType.String)
		if accountType == "" {
			accountType = string(entities.BankAccountTypeChecking)
		}
		p.AccountType = accountType
	}

	return p
}
