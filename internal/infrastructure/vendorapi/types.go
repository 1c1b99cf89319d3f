package vendorapi

import "encoding/json"

// Account types the vendor manages itself. The platform only provisions
// custom accounts; events for other types are recognized and ignored.
const (
	AccountTypeCustom   = "custom"
	AccountTypeExpress  = "express"
	AccountTypeStandard = "standard"
)

// Account is the vendor-side merchant account representation. Fields are
// decoded defensively: unknown or absent fields default to zero values.
type Account struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Country         string            `json:"country"`
	DefaultCurrency string            `json:"default_currency"`
	BusinessType    string            `json:"business_type"`
	ChargesEnabled  bool              `json:"charges_enabled"`
	PayoutsEnabled  bool              `json:"payouts_enabled"`
	Capabilities    map[string]string `json:"capabilities"`
	Metadata        map[string]string `json:"metadata"`

	Requirements       *Requirements `json:"requirements"`
	FutureRequirements *Requirements `json:"future_requirements"`

	Individual       *Person              `json:"individual"`
	ExternalAccounts *ExternalAccountList `json:"external_accounts"`
}

// ExternalAccountList wraps the vendor's paginated external-account listing.
type ExternalAccountList struct {
	Data []*BankAccount `json:"data"`
}

// Requirements describes what the vendor still needs from an account or a
// capability. FutureRequirements uses the same shape with its own deadline.
type Requirements struct {
	CurrentlyDue    []string `json:"currently_due"`
	PastDue         []string `json:"past_due"`
	EventuallyDue   []string `json:"eventually_due"`
	CurrentDeadline int64    `json:"current_deadline"`
	DisabledReason  string   `json:"disabled_reason"`

	Errors       []*RequirementError       `json:"errors"`
	Alternatives []*RequirementAlternative `json:"alternatives"`
}

// RequirementError is a vendor-reported verification error for one field.
type RequirementError struct {
	Requirement string `json:"requirement"`
	Code        string `json:"code"`
	Reason      string `json:"reason"`
}

// RequirementAlternative says the fields in AlternativeFields may be supplied
// instead of those in OriginalFields.
type RequirementAlternative struct {
	AlternativeFields []string `json:"alternative_fields"`
	OriginalFields    []string `json:"original_fields"`
}

// Person is a vendor-side person attached to a company account.
type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Relationship *PersonRelationship `json:"relationship"`
}

// PersonRelationship describes how a person relates to the account.
type PersonRelationship struct {
	Representative   bool    `json:"representative"`
	Owner            bool    `json:"owner"`
	Title            string  `json:"title"`
	PercentOwnership float64 `json:"percent_ownership"`
}

// BankAccount is the vendor's registered payout destination.
type BankAccount struct {
	ID          string `json:"id"`
	Fingerprint string `json:"fingerprint"`
	Last4       string `json:"last4"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

// Capability is delivered by capability.updated events.
type Capability struct {
	ID           string        `json:"id"`
	Account      string        `json:"account"`
	Status       string        `json:"status"`
	Requirements *Requirements `json:"requirements"`
}

// APIError is the vendor's error envelope.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Param   string `json:"param"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

func decodeAPIError(body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return &APIError{Type: "api_error", Message: string(body)}
	}
	return env.Error
}
