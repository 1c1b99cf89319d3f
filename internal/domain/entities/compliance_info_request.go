package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InfoRequestState is the lifecycle of a compliance info request.
// requested -> provided (creator supplies the field) or
// requested -> expired (due date passes).
type InfoRequestState string

const (
	InfoRequestStateRequested InfoRequestState = "requested"
	InfoRequestStateProvided  InfoRequestState = "provided"
	InfoRequestStateExpired   InfoRequestState = "expired"
)

// Internal compliance field names. Vendor requirement strings translate to
// these; unrecognized vendor strings are preserved verbatim as field names so
// operators can still see and act on them.
const (
	FieldTaxID                = "tax_id"
	FieldDateOfBirth          = "date_of_birth"
	FieldName                 = "name"
	FieldAddress              = "address"
	FieldPhone                = "phone"
	FieldEmail                = "email"
	FieldIdentityDocument     = "identity_document"
	FieldBankAccount          = "bank_account"
	FieldBusinessName         = "business_name"
	FieldBusinessTaxID        = "business_tax_id"
	FieldBusinessAddress      = "business_address"
	FieldBusinessPhone        = "business_phone"
	FieldCompanyDocument      = "company_document"
	FieldOwnershipDeclaration = "ownership_declaration"
	FieldURL                  = "url"
	FieldProductDescription   = "product_description"
)

// ComplianceInfoRequest is a typed record of an outstanding or resolved vendor
// verification requirement. Created and resolved entirely by webhook
// processing; never created speculatively.
type ComplianceInfoRequest struct {
	ID                uuid.UUID `json:"id"`
	CreatorID         uuid.UUID `json:"creatorId"`
	MerchantAccountID uuid.UUID `json:"merchantAccountId"`

	Field string `json:"field"`

	// Partial marks that a partial value satisfies the requirement
	// (e.g. SSN last 4 instead of the full id number).
	Partial bool `json:"partial"`

	DueAt null.Time        `json:"dueAt,omitempty"`
	State InfoRequestState `json:"state"`

	VendorErrorCode   null.String `json:"vendorErrorCode,omitempty"`
	VendorErrorReason null.String `json:"vendorErrorReason,omitempty"`

	// Email-sent history used for resend suppression.
	LastEmailedAt null.Time `json:"lastEmailedAt,omitempty"`
	EmailCount    int       `json:"emailCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Open reports whether the request still awaits the creator.
func (r *ComplianceInfoRequest) Open() bool {
	return r.State == InfoRequestStateRequested
}
