package notifications

import (
	"context"
	"log"
	"strings"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/pkg/metrics"
)

// LogNotifier records compliance notifications in the process log and the
// metrics registry. Mail delivery hangs off a downstream queue consumer; this
// side only decides and records.
type LogNotifier struct{}

// NewLogNotifier creates a new log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) record(kind string, creator *entities.Creator, detail string) {
	if detail != "" {
		log.Printf("📧 notification %s for creator %s (%s): %s", kind, creator.ID, creator.Email, detail)
	} else {
		log.Printf("📧 notification %s for creator %s (%s)", kind, creator.ID, creator.Email)
	}
	metrics.ComplianceEmail(kind)
}

// KYCInfoRequested notifies the creator that verification fields are needed
func (n *LogNotifier) KYCInfoRequested(_ context.Context, creator *entities.Creator, fields []string) error {
	n.record("kyc_info_requested", creator, "fields="+strings.Join(fields, ","))
	return nil
}

// VerificationErrorDetected notifies about a single failed verification field
func (n *LogNotifier) VerificationErrorDetected(_ context.Context, creator *entities.Creator, field, code, reason string) error {
	n.record("verification_error", creator, "field="+field+" code="+code+" reason="+reason)
	return nil
}

// RemediationRequested notifies about platform remediation requirements
func (n *LogNotifier) RemediationRequested(_ context.Context, creator *entities.Creator, fields []string) error {
	n.record("remediation_requested", creator, "fields="+strings.Join(fields, ","))
	return nil
}

// AccountSuspended notifies that the account was suspended
func (n *LogNotifier) AccountSuspended(_ context.Context, creator *entities.Creator) error {
	n.record("account_suspended", creator, "")
	return nil
}

// ChargesPaused notifies that the vendor stopped accepting charges
func (n *LogNotifier) ChargesPaused(_ context.Context, creator *entities.Creator) error {
	n.record("charges_paused", creator, "")
	return nil
}

// PayoutsPaused notifies that the vendor stopped payouts
func (n *LogNotifier) PayoutsPaused(_ context.Context, creator *entities.Creator) error {
	n.record("payouts_paused", creator, "")
	return nil
}

// BankAccountRejected notifies that the payout destination was rejected
func (n *LogNotifier) BankAccountRejected(_ context.Context, creator *entities.Creator, last4 string) error {
	n.record("bank_account_rejected", creator, "last4="+last4)
	return nil
}

// AccountDeauthorized notifies that the vendor connection was revoked
func (n *LogNotifier) AccountDeauthorized(_ context.Context, creator *entities.Creator) error {
	n.record("account_deauthorized", creator, "")
	return nil
}
