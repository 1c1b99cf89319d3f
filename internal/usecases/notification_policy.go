package usecases

import (
	"context"
	"strings"
	"time"

	"creator-pay.backend/internal/domain/entities"
)

// Notifier delivers creator-facing compliance notifications. The concrete
// implementation lives in infrastructure; usecases only decide when to send.
type Notifier interface {
	KYCInfoRequested(ctx context.Context, creator *entities.Creator, fields []string) error
	VerificationErrorDetected(ctx context.Context, creator *entities.Creator, field, code, reason string) error
	RemediationRequested(ctx context.Context, creator *entities.Creator, fields []string) error
	AccountSuspended(ctx context.Context, creator *entities.Creator) error
	ChargesPaused(ctx context.Context, creator *entities.Creator) error
	PayoutsPaused(ctx context.Context, creator *entities.Creator) error
	BankAccountRejected(ctx context.Context, creator *entities.Creator, last4 string) error
	AccountDeauthorized(ctx context.Context, creator *entities.Creator) error
}

// DefaultResendAfter is the suppression window for repeated KYC emails about
// the same field.
const DefaultResendAfter = 90 * 24 * time.Hour

// notificationPolicy decides whether a webhook-driven requirement set should
// produce a creator email.
type notificationPolicy struct {
	resendAfter time.Duration
}

func newNotificationPolicy(resendAfter time.Duration) *notificationPolicy {
	if resendAfter <= 0 {
		resendAfter = DefaultResendAfter
	}
	return &notificationPolicy{resendAfter: resendAfter}
}

// shouldNotify applies the standing exclusions: suspended or deleted creators
// are never emailed, and a requirement set consisting solely of the payout
// destination is resolved by bank sync instead of the creator.
func (p *notificationPolicy) shouldNotify(creator *entities.Creator, reqs []ParsedRequirement) bool {
	if creator.State.Suspended() {
		return false
	}
	if len(reqs) == 0 {
		return false
	}
	for _, r := range reqs {
		if r.Field != entities.FieldBankAccount {
			return true
		}
	}
	return false
}

// suppressed reports whether every requested field was already emailed about
// within the resend window. A single field outside the window un-suppresses
// the whole consolidated email.
func (p *notificationPolicy) suppressed(reqs []ParsedRequirement, open []*entities.ComplianceInfoRequest, now time.Time) bool {
	lastEmailed := make(map[string]time.Time, len(open))
	for _, r := range open {
		if r.LastEmailedAt.Valid {
			lastEmailed[r.Field] = r.LastEmailedAt.Time
		}
	}
	for _, r := range reqs {
		if r.Field == entities.FieldBankAccount {
			continue
		}
		at, ok := lastEmailed[r.Field]
		if !ok || now.Sub(at) >= p.resendAfter {
			return false
		}
	}
	return true
}

// specializedError returns the single requirement whose vendor error warrants
// a targeted email instead of the generic KYC one. Only an unambiguous
// single-error case qualifies.
func (p *notificationPolicy) specializedError(reqs []ParsedRequirement) *ParsedRequirement {
	var match *ParsedRequirement
	for i := range reqs {
		r := &reqs[i]
		if r.Error == nil || !isIdentityOrDocumentError(r.Error.Code) {
			continue
		}
		if match != nil {
			return nil
		}
		match = r
	}
	return match
}

// Vendor error codes that indicate the submitted identity did not match or a
// document was rejected. Enumerated by prefix so new vendor codes fall back
// to the generic email rather than the specialized one.
var identityErrorPrefixes = []string{
	"verification_failed_keyed_identity",
	"verification_failed_name_match",
	"verification_failed_id_number_match",
	"verification_failed_tax_id_match",
	"verification_failed_dob_match",
	"verification_document_name_mismatch",
	"verification_document_dob_mismatch",
	"verification_document_id_number_mismatch",
	"verification_document_address_mismatch",
	"verification_document_failed",
}

func isIdentityOrDocumentError(code string) bool {
	for _, prefix := range identityErrorPrefixes {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}
