package vendorapi

import (
	"net/url"
	"strconv"
)

// AccountParams is the payload for account create/update calls. Nil nested
// blocks are omitted from the encoded form entirely; the update builder
// relies on this to send minimal diffs.
type AccountParams struct {
	Country         string
	DefaultCurrency string
	BusinessType    string
	Capabilities    []string

	TOSAcceptance   *TOSAcceptanceParams
	Individual      *PersonParams
	Representative  *PersonParams
	Company         *CompanyParams
	BusinessProfile *BusinessProfileParams
	ExternalAccount *BankAccountParams

	Metadata map[string]string
}

// TOSAcceptanceParams records the terms acceptance referenced by payloads.
// ServiceAgreement carries "recipient" for countries limited to cross-border
// payouts.
type TOSAcceptanceParams struct {
	Date             int64
	IP               string
	ServiceAgreement string
}

// AddressParams is a nested address block. Empty fields are omitted.
type AddressParams struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// DOBParams is always a full triple; partial dates are never sent.
type DOBParams struct {
	Day   int
	Month int
	Year  int
}

// RelationshipParams describes the person's role on a company account.
type RelationshipParams struct {
	Representative   bool
	Owner            bool
	Title            string
	PercentOwnership float64
}

// PersonParams carries individual or representative person details.
type PersonParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	FirstNameKana  string
	LastNameKana   string
	FirstNameKanji string
	LastNameKanji  string

	DOB          *DOBParams
	Address      *AddressParams
	AddressKana  *AddressParams
	AddressKanji *AddressParams

	IDNumber string
	SSNLast4 string

	Relationship *RelationshipParams
}

// CompanyParams carries company block details. Structure uses a pointer so a
// transition away from a tagged subtype can clear it explicitly ("" clears,
// nil omits).
type CompanyParams struct {
	Name      string
	TaxID     string
	Phone     string
	Address   *AddressParams
	Structure *string
}

// BusinessProfileParams carries the public business profile block.
type BusinessProfileParams struct {
	Name               string
	URL                string
	ProductDescription string
}

// BankAccountParams is the external-account payload block.
type BankAccountParams struct {
	Country           string
	Currency          string
	AccountNumber     string
	RoutingNumber     string
	AccountHolderName string
	AccountHolderType string
	AccountType       string
}

// Encode flattens the params into the vendor's form encoding. Only non-empty
// leaves appear; section presence therefore mirrors the struct's nil-ness.
func (p *AccountParams) Encode() url.Values {
	v := url.Values{}
	setIf(v, "country", p.Country)
	setIf(v, "default_currency", p.DefaultCurrency)
	setIf(v, "business_type", p.BusinessType)
	for _, c := range p.Capabilities {
		v.Set("capabilities["+c+"][requested]", "true")
	}
	if p.TOSAcceptance != nil {
		v.Set("tos_acceptance[date]", strconv.FormatInt(p.TOSAcceptance.Date, 10))
		setIf(v, "tos_acceptance[ip]", p.TOSAcceptance.IP)
		setIf(v, "tos_acceptance[service_agreement]", p.TOSAcceptance.ServiceAgreement)
	}
	if p.Individual != nil {
		p.Individual.encode(v, "individual")
	}
	if p.Representative != nil {
		p.Representative.encode(v, "representative")
	}
	if p.Company != nil {
		p.Company.encode(v, "company")
	}
	if p.BusinessProfile != nil {
		setIf(v, "business_profile[name]", p.BusinessProfile.Name)
		setIf(v, "business_profile[url]", p.BusinessProfile.URL)
		setIf(v, "business_profile[product_description]", p.BusinessProfile.ProductDescription)
	}
	if p.ExternalAccount != nil {
		p.ExternalAccount.encode(v, "external_account")
	}
	for k, val := range p.Metadata {
		v.Set("metadata["+k+"]", val)
	}
	return v
}

func (p *PersonParams) encode(v url.Values, prefix string) {
	setIf(v, prefix+"[first_name]", p.FirstName)
	setIf(v, prefix+"[last_name]", p.LastName)
	setIf(v, prefix+"[email]", p.Email)
	setIf(v, prefix+"[phone]", p.Phone)
	setIf(v, prefix+"[first_name_kana]", p.FirstNameKana)
	setIf(v, prefix+"[last_name_kana]", p.LastNameKana)
	setIf(v, prefix+"[first_name_kanji]", p.FirstNameKanji)
	setIf(v, prefix+"[last_name_kanji]", p.LastNameKanji)
	if p.DOB != nil {
		v.Set(prefix+"[dob][day]", strconv.Itoa(p.DOB.Day))
		v.Set(prefix+"[dob][month]", strconv.Itoa(p.DOB.Month))
		v.Set(prefix+"[dob][year]", strconv.Itoa(p.DOB.Year))
	}
	if p.Address != nil {
		p.Address.encode(v, prefix+"[address]")
	}
	if p.AddressKana != nil {
		p.AddressKana.encode(v, prefix+"[address_kana]")
	}
	if p.AddressKanji != nil {
		p.AddressKanji.encode(v, prefix+"[address_kanji]")
	}
	setIf(v, prefix+"[id_number]", p.IDNumber)
	setIf(v, prefix+"[ssn_last_4]", p.SSNLast4)
	if p.Relationship != nil {
		if p.Relationship.Representative {
			v.Set(prefix+"[relationship][representative]", "true")
		}
		if p.Relationship.Owner {
			v.Set(prefix+"[relationship][owner]", "true")
		}
		setIf(v, prefix+"[relationship][title]", p.Relationship.Title)
		if p.Relationship.PercentOwnership > 0 {
			v.Set(prefix+"[relationship][percent_ownership]", strconv.FormatFloat(p.Relationship.PercentOwnership, 'f', -1, 64))
		}
	}
}

func (p *CompanyParams) encode(v url.Values, prefix string) {
	setIf(v, prefix+"[name]", p.Name)
	setIf(v, prefix+"[tax_id]", p.TaxID)
	setIf(v, prefix+"[phone]", p.Phone)
	if p.Address != nil {
		p.Address.encode(v, prefix+"[address]")
	}
	if p.Structure != nil {
		// Explicit empty string clears the structure tag vendor-side.
		v.Set(prefix+"[structure]", *p.Structure)
	}
}

func (a *AddressParams) encode(v url.Values, prefix string) {
	setIf(v, prefix+"[line1]", a.Line1)
	setIf(v, prefix+"[line2]", a.Line2)
	setIf(v, prefix+"[city]", a.City)
	setIf(v, prefix+"[state]", a.State)
	setIf(v, prefix+"[postal_code]", a.PostalCode)
	setIf(v, prefix+"[country]", a.Country)
}

func (b *BankAccountParams) encode(v url.Values, prefix string) {
	v.Set(prefix+"[object]", "bank_account")
	setIf(v, prefix+"[country]", b.Country)
	setIf(v, prefix+"[currency]", b.Currency)
	setIf(v, prefix+"[account_number]", b.AccountNumber)
	setIf(v, prefix+"[routing_number]", b.RoutingNumber)
	setIf(v, prefix+"[account_holder_name]", b.AccountHolderName)
	setIf(v, prefix+"[account_holder_type]", b.AccountHolderType)
	setIf(v, prefix+"[account_type]", b.AccountType)
}

// Encode flattens a stand-alone bank account payload for bank-only updates.
func (b *BankAccountParams) Encode() url.Values {
	v := url.Values{}
	b.encode(v, "external_account")
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
