package usecases

// CapabilityTier selects which vendor capabilities an account may request.
type CapabilityTier string

const (
	// TierStandard requests full processing (charges and payouts).
	TierStandard CapabilityTier = "standard"
	// TierCrossBorderOnly is the reduced tier for countries where only
	// cross-border payouts are supported.
	TierCrossBorderOnly CapabilityTier = "cross_border_payouts_only"
)

// Capabilities returns the capability set to request for the tier.
func (t CapabilityTier) Capabilities() []string {
	if t == TierCrossBorderOnly {
		return []string{"transfers"}
	}
	return []string{"card_payments", "transfers"}
}

// BankShape is the payout destination format a country uses.
type BankShape string

const (
	// BankShapeRoutingAndAccount uses a routing code plus account number.
	BankShapeRoutingAndAccount BankShape = "routing_and_account"
	// BankShapeIBAN uses a single IBAN-style account number.
	BankShapeIBAN BankShape = "iban"
	// BankShapeAccountOnly uses a single account number that is not an IBAN
	// (e.g. a Mexican CLABE).
	BankShapeAccountOnly BankShape = "account_only"
)

// CountryConfig keys every country-conditional branch of the payload mapper.
// Loaded at startup as static data; the mapper stays a pure function over
// profile plus config.
type CountryConfig struct {
	Currency string
	Tier     CapabilityTier
	Bank     BankShape

	RequiresAccountHolderName bool
	RequiresAccountType       bool
	OmitsState                bool

	// RecipientServiceAgreement marks non-standard-processing countries whose
	// terms-acceptance block must carry the recipient service agreement.
	RecipientServiceAgreement bool

	// ScriptFields marks countries requiring phonetic/kanji name and address
	// variants.
	ScriptFields bool
}

var countryConfigs = map[string]CountryConfig{
	// Full-processing countries
	"US": {Currency: "usd", Tier: TierStandard, Bank: BankShapeRoutingAndAccount},
	"CA": {Currency: "cad", Tier: TierStandard, Bank: BankShapeRoutingAndAccount},
	"GB": {Currency: "gbp", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, OmitsState: true},
	"AU": {Currency: "aud", Tier: TierStandard, Bank: BankShapeRoutingAndAccount},
	"NZ": {Currency: "nzd", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, OmitsState: true},
	"JP": {Currency: "jpy", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RequiresAccountType: true, ScriptFields: true},
	"SG": {Currency: "sgd", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, OmitsState: true},
	"HK": {Currency: "hkd", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, OmitsState: true},
	"CH": {Currency: "chf", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"NO": {Currency: "nok", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"LI": {Currency: "chf", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"MX": {Currency: "mxn", Tier: TierStandard, Bank: BankShapeAccountOnly},
	"BR": {Currency: "brl", Tier: TierStandard, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RequiresAccountType: true},
	"AE": {Currency: "aed", Tier: TierStandard, Bank: BankShapeIBAN},

	// Euro-area and EU members (IBAN destinations)
	"AT": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"BE": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"BG": {Currency: "bgn", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"HR": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"CY": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"CZ": {Currency: "czk", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"DK": {Currency: "dkk", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"EE": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"FI": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"FR": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"DE": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"GR": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"HU": {Currency: "huf", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"IE": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"IT": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"LV": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"LT": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"LU": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"MT": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"NL": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"PL": {Currency: "pln", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"PT": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"RO": {Currency: "ron", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"SK": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"SI": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"ES": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"SE": {Currency: "sek", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},
	"IS": {Currency: "eur", Tier: TierStandard, Bank: BankShapeIBAN, OmitsState: true},

	// Cross-border-payouts-only countries (recipient service agreement)
	"TH": {Currency: "thb", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"MY": {Currency: "myr", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"PH": {Currency: "php", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"ID": {Currency: "idr", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"KR": {Currency: "krw", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"VN": {Currency: "vnd", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"IN": {Currency: "inr", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"ZA": {Currency: "zar", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"NG": {Currency: "ngn", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"KE": {Currency: "kes", Tier: TierCrossBorderOnly, Bank: BankShapeRoutingAndAccount, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"AR": {Currency: "ars", Tier: TierCrossBorderOnly, Bank: BankShapeAccountOnly, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"CL": {Currency: "clp", Tier: TierCrossBorderOnly, Bank: BankShapeAccountOnly, RequiresAccountHolderName: true, RequiresAccountType: true, RecipientServiceAgreement: true},
	"CO": {Currency: "cop", Tier: TierCrossBorderOnly, Bank: BankShapeAccountOnly, RequiresAccountHolderName: true, RequiresAccountType: true, RecipientServiceAgreement: true},
	"PE": {Currency: "pen", Tier: TierCrossBorderOnly, Bank: BankShapeAccountOnly, RequiresAccountHolderName: true, RecipientServiceAgreement: true},
	"TR": {Currency: "try", Tier: TierCrossBorderOnly, Bank: BankShapeIBAN, RecipientServiceAgreement: true},
	"RS": {Currency: "rsd", Tier: TierCrossBorderOnly, Bank: BankShapeIBAN, RecipientServiceAgreement: true},
	"IL": {Currency: "ils", Tier: TierCrossBorderOnly, Bank: BankShapeIBAN, RecipientServiceAgreement: true},
}

// ConfigForCountry looks up the country configuration. The second return is
// false for countries without a default currency mapping.
func ConfigForCountry(code string) (CountryConfig, bool) {
	cfg, ok := countryConfigs[code]
	return cfg, ok
}

// SupportedCountries returns the ISO codes with a configuration entry.
func SupportedCountries() []string {
	codes := make([]string, 0, len(countryConfigs))
	for code := range countryConfigs {
		codes = append(codes, code)
	}
	return codes
}
