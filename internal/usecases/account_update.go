package usecases

import (
	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/vendorapi"
)

// buildUpdateParams computes the minimal update payload between the previous
// profile snapshot (the version last pushed to the vendor) and the current
// one. Only changed top-level sections appear; omitted sections are never
// sent as nulls.
//
// vendorCapabilities is the capability set currently requested on the vendor
// account; extras the mapper doesn't know about are preserved via union.
func buildUpdateParams(
	prev, curr *entities.ComplianceProfile,
	vendorCapabilities []string,
	cfg CountryConfig,
) *vendorapi.AccountParams {
	params := &vendorapi.AccountParams{
		Capabilities: unionCapabilities(cfg.Tier.Capabilities(), vendorCapabilities),
	}

	entityTypeChanged := prev == nil || prev.EntityType != curr.EntityType

	switch {
	case curr.IsCompany():
		if entityTypeChanged {
			// individual -> company: individual-only fields are omitted
			// entirely, never sent as null.
			params.BusinessType = "company"
			params.Company = companyParams(curr, cfg)
			params.Representative = personParams(curr, cfg, true)
			params.BusinessProfile = businessProfileParams(curr)
			return params
		}
		if companyChanged(prev, curr) {
			params.Company = companyUpdateParams(prev, curr, cfg)
		}
		if personChanged(prev, curr) {
			params.Representative = personParams(curr, cfg, true)
		}
	default:
		if prev == nil {
			params.BusinessType = "individual"
			params.Individual = personParams(curr, cfg, false)
			params.BusinessProfile = businessProfileParams(curr)
			return params
		}
		if entityTypeChanged {
			// company -> individual: company-only fields are omitted, and the
			// display name falls back to the person's full name.
			params.BusinessType = "individual"
			params.Individual = personParams(curr, cfg, false)
			params.BusinessProfile = &vendorapi.BusinessProfileParams{Name: clean(curr.FullName())}
			return params
		}
		if personChanged(prev, curr) {
			params.Individual = personParams(curr, cfg, false)
		}
	}

	if businessProfileChanged(prev, curr) {
		params.BusinessProfile = businessProfileParams(curr)
	}

	return params
}

// companyUpdateParams builds the company section for an in-place company
// update, clearing the structure tag when the profile moved away from a
// tagged subtype.
func companyUpdateParams(prev, curr *entities.ComplianceProfile, cfg CountryConfig) *vendorapi.CompanyParams {
	p := companyParams(curr, cfg)
	if p.Structure == nil && prev != nil &&
		prev.BusinessStructure.String == string(entities.StructureSoleProprietorship) {
		cleared := ""
		p.Structure = &cleared
	}
	return p
}

// unionCapabilities merges the required set with whatever the vendor account
// already has requested, preserving extras and dropping duplicates.
func unionCapabilities(required, existing []string) []string {
	seen := make(map[string]bool, len(required)+len(existing))
	out := make([]string, 0, len(required)+len(existing))
	for _, c := range required {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range existing {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func personChanged(prev, curr *entities.ComplianceProfile) bool {
	if prev == nil {
		return true
	}
	return prev.FirstName != curr.FirstName ||
		prev.LastName != curr.LastName ||
		prev.Email != curr.Email ||
		prev.Phone != curr.Phone ||
		prev.TaxID != curr.TaxID ||
		prev.DateOfBirth != curr.DateOfBirth ||
		prev.JobTitle != curr.JobTitle ||
		prev.OwnershipPercent != curr.OwnershipPercent ||
		addressChanged(prev, curr) ||
		scriptFieldsChanged(prev, curr)
}

func companyChanged(prev, curr *entities.ComplianceProfile) bool {
	if prev == nil {
		return true
	}
	return prev.BusinessName != curr.BusinessName ||
		prev.BusinessStructure != curr.BusinessStructure ||
		prev.TaxID != curr.TaxID ||
		prev.Phone != curr.Phone ||
		addressChanged(prev, curr)
}

func businessProfileChanged(prev, curr *entities.ComplianceProfile) bool {
	if prev == nil {
		return true
	}
	return prev.BusinessName != curr.BusinessName
}

func addressChanged(prev, curr *entities.ComplianceProfile) bool {
	return prev.StreetAddress != curr.StreetAddress ||
		prev.City != curr.City ||
		prev.State != curr.State ||
		prev.ZipCode != curr.ZipCode ||
		prev.Country != curr.Country
}

func scriptFieldsChanged(prev, curr *entities.ComplianceProfile) bool {
	return prev.FirstNameKana != curr.FirstNameKana ||
		prev.LastNameKana != curr.LastNameKana ||
		prev.FirstNameKanji != curr.FirstNameKanji ||
		prev.LastNameKanji != curr.LastNameKanji ||
		prev.StreetAddressKana != curr.StreetAddressKana ||
		prev.StreetAddressKanji != curr.StreetAddressKanji ||
		prev.BuildingNumber != curr.BuildingNumber
}
