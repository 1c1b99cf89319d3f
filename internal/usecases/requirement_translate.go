package usecases

import (
	"strings"
	"time"

	"github.com/volatiletech/null/v8"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/vendorapi"
)

// ParsedRequirement is one deduplicated vendor requirement translated to an
// internal field name.
type ParsedRequirement struct {
	Field string

	// VendorField is the raw requirement string the field was derived from,
	// kept for risk classification and operator visibility.
	VendorField string

	Partial bool
	DueAt   null.Time
	Error   *vendorapi.RequirementError
}

// requirementKind partitions requirements by the action they demand.
type requirementKind int

const (
	kindStandard requirementKind = iota
	kindRemediation
	kindSuspension
)

// Risk requirement patterns, matched by prefix against the raw vendor string.
// Enumerated explicitly so a new vendor format surfaces as kindStandard
// (verbatim field, generic email) instead of being silently misclassified.
var remediationPatterns = []string{
	"intellectual_property_usage",
	"identity_verification",
	"credit_review",
}

var suspensionPatterns = []string{
	"supportability_rejection_appeal",
	"rejection_appeal",
}

func classifyRequirement(vendorField string) requirementKind {
	for _, p := range suspensionPatterns {
		if strings.HasPrefix(vendorField, p) {
			return kindSuspension
		}
	}
	for _, p := range remediationPatterns {
		if strings.HasPrefix(vendorField, p) {
			return kindRemediation
		}
	}
	return kindStandard
}

// requirementTranslator maps vendor requirement strings to internal field
// names. Person-scoped requirements are resolved against the account's person
// list fetched from the vendor.
type requirementTranslator struct {
	persons map[string]*vendorapi.Person
}

func newRequirementTranslator(persons []*vendorapi.Person) *requirementTranslator {
	byID := make(map[string]*vendorapi.Person, len(persons))
	for _, p := range persons {
		byID[p.ID] = p
	}
	return &requirementTranslator{persons: byID}
}

// Parse flattens the account's requirement tiers into a deduplicated list.
// Currently-due and past-due fields carry the tier's deadline; eventually-due
// fields carry none; future requirements carry their own deadline.
// Alternatives contribute both sides under their originating tier's deadline.
func (t *requirementTranslator) Parse(reqs, future *vendorapi.Requirements) []ParsedRequirement {
	acc := newRequirementAccumulator()
	t.parseTier(acc, reqs)
	t.parseTier(acc, future)
	return acc.list()
}

// ParseCapability reconciles a capability-scoped requirement list the same
// way as whole-account requirements.
func (t *requirementTranslator) ParseCapability(reqs *vendorapi.Requirements) []ParsedRequirement {
	acc := newRequirementAccumulator()
	t.parseTier(acc, reqs)
	return acc.list()
}

func (t *requirementTranslator) parseTier(acc *requirementAccumulator, reqs *vendorapi.Requirements) {
	if reqs == nil {
		return
	}
	deadline := null.Time{}
	if reqs.CurrentDeadline > 0 {
		deadline = null.TimeFrom(time.Unix(reqs.CurrentDeadline, 0).UTC())
	}

	for _, f := range reqs.CurrentlyDue {
		acc.add(t.translate(f), deadline, findRequirementError(reqs.Errors, f))
	}
	for _, f := range reqs.PastDue {
		acc.add(t.translate(f), deadline, findRequirementError(reqs.Errors, f))
	}
	for _, f := range reqs.EventuallyDue {
		acc.add(t.translate(f), null.Time{}, findRequirementError(reqs.Errors, f))
	}
	for _, alt := range reqs.Alternatives {
		for _, f := range alt.AlternativeFields {
			acc.add(t.translate(f), deadline, findRequirementError(reqs.Errors, f))
		}
		for _, f := range alt.OriginalFields {
			acc.add(t.translate(f), deadline, findRequirementError(reqs.Errors, f))
		}
	}
}

// translate resolves one raw vendor requirement string.
func (t *requirementTranslator) translate(vendorField string) ParsedRequirement {
	scope, leaf := splitRequirement(vendorField)

	switch scope {
	case "individual":
		if field, partial, ok := translatePersonLeaf(leaf); ok {
			return ParsedRequirement{Field: field, VendorField: vendorField, Partial: partial}
		}
	case "company":
		if field, ok := translateCompanyLeaf(leaf); ok {
			return ParsedRequirement{Field: field, VendorField: vendorField}
		}
	case "business_profile":
		switch leaf {
		case "url":
			return ParsedRequirement{Field: entities.FieldURL, VendorField: vendorField}
		case "product_description", "mcc":
			return ParsedRequirement{Field: entities.FieldProductDescription, VendorField: vendorField}
		}
	case "":
		switch leaf {
		case "external_account":
			return ParsedRequirement{Field: entities.FieldBankAccount, VendorField: vendorField}
		}
	default:
		if strings.HasPrefix(scope, "person_") {
			// Person-scoped requirements on company accounts. The person list
			// confirms the id refers to someone attached to this account; an
			// unknown person stays verbatim for operator review.
			if _, known := t.persons[scope]; known {
				if field, partial, ok := translatePersonLeaf(leaf); ok {
					return ParsedRequirement{Field: field, VendorField: vendorField, Partial: partial}
				}
			}
		}
	}

	// Unrecognized strings are preserved verbatim, never dropped.
	return ParsedRequirement{Field: vendorField, VendorField: vendorField}
}

// splitRequirement splits "individual.dob.day" into ("individual", "dob.day").
// A string with no dot has an empty scope.
func splitRequirement(vendorField string) (scope, leaf string) {
	i := strings.Index(vendorField, ".")
	if i < 0 {
		return "", vendorField
	}
	return vendorField[:i], vendorField[i+1:]
}

func translatePersonLeaf(leaf string) (field string, partial bool, ok bool) {
	switch leaf {
	case "dob.day", "dob.month", "dob.year":
		return entities.FieldDateOfBirth, false, true
	case "id_number":
		return entities.FieldTaxID, false, true
	case "ssn_last_4":
		// Last-4 satisfies the same underlying field partially.
		return entities.FieldTaxID, true, true
	case "first_name", "last_name",
		"first_name_kana", "last_name_kana",
		"first_name_kanji", "last_name_kanji":
		return entities.FieldName, false, true
	case "phone":
		return entities.FieldPhone, false, true
	case "email":
		return entities.FieldEmail, false, true
	case "verification.document", "verification.additional_document":
		return entities.FieldIdentityDocument, false, true
	}
	if strings.HasPrefix(leaf, "address.") ||
		strings.HasPrefix(leaf, "address_kana.") ||
		strings.HasPrefix(leaf, "address_kanji.") {
		return entities.FieldAddress, false, true
	}
	return "", false, false
}

func translateCompanyLeaf(leaf string) (field string, ok bool) {
	switch leaf {
	case "name", "name_kana", "name_kanji":
		return entities.FieldBusinessName, true
	case "tax_id":
		return entities.FieldBusinessTaxID, true
	case "phone":
		return entities.FieldBusinessPhone, true
	case "verification.document":
		return entities.FieldCompanyDocument, true
	case "owners_provided", "ownership_declaration":
		return entities.FieldOwnershipDeclaration, true
	}
	if strings.HasPrefix(leaf, "address.") ||
		strings.HasPrefix(leaf, "address_kana.") ||
		strings.HasPrefix(leaf, "address_kanji.") {
		return entities.FieldBusinessAddress, true
	}
	return "", false
}

func findRequirementError(errs []*vendorapi.RequirementError, vendorField string) *vendorapi.RequirementError {
	for _, e := range errs {
		if e != nil && e.Requirement == vendorField {
			return e
		}
	}
	return nil
}

// requirementAccumulator deduplicates by internal field while keeping
// insertion order. A full-value request beats a partial one for the same
// field, and the earliest concrete deadline wins.
type requirementAccumulator struct {
	order  []string
	byName map[string]*ParsedRequirement
}

func newRequirementAccumulator() *requirementAccumulator {
	return &requirementAccumulator{byName: make(map[string]*ParsedRequirement)}
}

func (a *requirementAccumulator) add(req ParsedRequirement, dueAt null.Time, reqErr *vendorapi.RequirementError) {
	req.DueAt = dueAt
	req.Error = reqErr

	existing, ok := a.byName[req.Field]
	if !ok {
		a.order = append(a.order, req.Field)
		copied := req
		a.byName[req.Field] = &copied
		return
	}

	if existing.Partial && !req.Partial {
		existing.Partial = false
		existing.VendorField = req.VendorField
	}
	if req.DueAt.Valid && (!existing.DueAt.Valid || req.DueAt.Time.Before(existing.DueAt.Time)) {
		existing.DueAt = req.DueAt
	}
	if existing.Error == nil && req.Error != nil {
		existing.Error = req.Error
	}
}

func (a *requirementAccumulator) list() []ParsedRequirement {
	out := make([]ParsedRequirement, 0, len(a.order))
	for _, field := range a.order {
		out = append(out, *a.byName[field])
	}
	return out
}
