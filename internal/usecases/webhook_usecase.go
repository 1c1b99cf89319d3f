package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/domain/repositories"
	"creator-pay.backend/internal/infrastructure/vendorapi"
	"creator-pay.backend/pkg/logger"
	"creator-pay.backend/pkg/metrics"
)

// Vendor event types this system consumes.
const (
	EventAccountUpdated      = "account.updated"
	EventCapabilityUpdated   = "capability.updated"
	EventAccountDeauthorized = "account.application.deauthorized"
)

// VendorEvent is the decoded webhook envelope handed to the usecase after
// signature verification.
type VendorEvent struct {
	ID      string
	Type    string
	Account string
	Data    json.RawMessage
}

// WebhookUsecase reconciles vendor account-state events into local records.
type WebhookUsecase struct {
	creatorRepo     repositories.CreatorRepository
	merchantRepo    repositories.MerchantAccountRepository
	infoRequestRepo repositories.ComplianceInfoRequestRepository
	eventRepo       repositories.WebhookEventRepository
	vendor          VendorAPI
	notifier        Notifier
	policy          *notificationPolicy
}

// NewWebhookUsecase creates a new webhook usecase
func NewWebhookUsecase(
	creatorRepo repositories.CreatorRepository,
	merchantRepo repositories.MerchantAccountRepository,
	infoRequestRepo repositories.ComplianceInfoRequestRepository,
	eventRepo repositories.WebhookEventRepository,
	vendor VendorAPI,
	notifier Notifier,
	resendAfter time.Duration,
) *WebhookUsecase {
	return &WebhookUsecase{
		creatorRepo:     creatorRepo,
		merchantRepo:    merchantRepo,
		infoRequestRepo: infoRequestRepo,
		eventRepo:       eventRepo,
		vendor:          vendor,
		notifier:        notifier,
		policy:          newNotificationPolicy(resendAfter),
	}
}

// ProcessVendorEvent dispatches one verified webhook event. Events already
// processed (by vendor event id) are skipped.
func (u *WebhookUsecase) ProcessVendorEvent(ctx context.Context, event *VendorEvent) error {
	seen, err := u.eventRepo.Exists(ctx, event.ID)
	if err != nil {
		return err
	}
	if seen {
		metrics.WebhookEvent(event.Type, "duplicate")
		return nil
	}

	switch event.Type {
	case EventAccountUpdated:
		var account vendorapi.Account
		if err := json.Unmarshal(event.Data, &account); err != nil {
			metrics.WebhookEvent(event.Type, "malformed")
			return domainerrors.BadRequest("malformed account payload")
		}
		err = u.handleAccountUpdated(ctx, &account)
	case EventCapabilityUpdated:
		var capability vendorapi.Capability
		if err := json.Unmarshal(event.Data, &capability); err != nil {
			metrics.WebhookEvent(event.Type, "malformed")
			return domainerrors.BadRequest("malformed capability payload")
		}
		err = u.handleCapabilityUpdated(ctx, &capability)
	case EventAccountDeauthorized:
		err = u.handleDeauthorized(ctx, event.Account)
	default:
		metrics.WebhookEvent(event.Type, "ignored")
		return nil
	}

	if err != nil {
		metrics.WebhookEvent(event.Type, "error")
		return err
	}

	metrics.WebhookEvent(event.Type, "ok")
	return u.eventRepo.Create(ctx, event.ID, event.Type, event.Data)
}

func (u *WebhookUsecase) handleAccountUpdated(ctx context.Context, account *vendorapi.Account) error {
	// The platform only provisions custom accounts; vendor-managed types send
	// events we recognize and skip.
	if account.Type != "" && account.Type != vendorapi.AccountTypeCustom {
		logger.Info(ctx, "Ignoring event for unprovisioned account type",
			zap.String("account_type", account.Type),
			zap.String("vendor_account_id", account.ID))
		return nil
	}

	merchant, err := u.merchantRepo.GetByVendorAccountID(ctx, account.ID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return fmt.Errorf("%w: %s", domainerrors.ErrUnknownAccount, account.ID)
	}
	if !merchant.Live() {
		logger.Info(ctx, "Ignoring event for account without liveness timestamp",
			zap.String("vendor_account_id", account.ID))
		return nil
	}

	creator, err := u.creatorRepo.GetByID(ctx, merchant.CreatorID)
	if err != nil {
		return err
	}
	if creator == nil {
		return fmt.Errorf("%w: creator missing for account %s", domainerrors.ErrUnknownAccount, account.ID)
	}

	translator, err := u.translatorFor(ctx, account.ID, account.Requirements, account.FutureRequirements)
	if err != nil {
		return err
	}
	parsed := translator.Parse(account.Requirements, account.FutureRequirements)

	if err := u.reconcileRequirements(ctx, merchant, creator, parsed); err != nil {
		return err
	}

	if err := u.applyEnablementTransitions(ctx, merchant, creator, account); err != nil {
		return err
	}

	// Fully verified terminal state: nothing outstanding in any tier.
	if noOutstandingRequirements(account.Requirements) && noOutstandingRequirements(account.FutureRequirements) {
		if err := u.infoRequestRepo.MarkAllProvided(ctx, creator.ID); err != nil {
			return err
		}
	}

	merchant.ChargesEnabled = account.ChargesEnabled
	merchant.PayoutsEnabled = account.PayoutsEnabled
	merchant.RequestedCapabilities = mergeCapabilityKeys(merchant.RequestedCapabilities, account.Capabilities)
	return u.merchantRepo.Update(ctx, merchant)
}

func (u *WebhookUsecase) handleCapabilityUpdated(ctx context.Context, capability *vendorapi.Capability) error {
	merchant, err := u.merchantRepo.GetByVendorAccountID(ctx, capability.Account)
	if err != nil {
		return err
	}
	if merchant == nil {
		// Capability events routinely arrive for accounts this system does not
		// track; an unknown target is an expected no-op.
		logger.Info(ctx, "Capability event for untracked account",
			zap.String("vendor_account_id", capability.Account),
			zap.String("capability_id", capability.ID))
		return nil
	}
	if !merchant.Live() {
		return nil
	}

	creator, err := u.creatorRepo.GetByID(ctx, merchant.CreatorID)
	if err != nil {
		return err
	}
	if creator == nil {
		return nil
	}

	translator, err := u.translatorFor(ctx, capability.Account, capability.Requirements, nil)
	if err != nil {
		return err
	}
	parsed := translator.ParseCapability(capability.Requirements)

	if err := u.reconcileRequirements(ctx, merchant, creator, parsed); err != nil {
		return err
	}

	if capability.ID != "" && !containsString(merchant.RequestedCapabilities, capability.ID) {
		merchant.RequestedCapabilities = append(merchant.RequestedCapabilities, capability.ID)
		return u.merchantRepo.Update(ctx, merchant)
	}
	return nil
}

func (u *WebhookUsecase) handleDeauthorized(ctx context.Context, vendorAccountID string) error {
	merchant, err := u.merchantRepo.GetByVendorAccountID(ctx, vendorAccountID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return fmt.Errorf("%w: %s", domainerrors.ErrUnknownAccount, vendorAccountID)
	}

	if err := u.merchantRepo.Deactivate(ctx, merchant.ID); err != nil {
		return err
	}

	creator, err := u.creatorRepo.GetByID(ctx, merchant.CreatorID)
	if err != nil {
		return err
	}
	if creator != nil && creator.DeauthEmailEnabled {
		metrics.ComplianceEmail("deauthorized")
		return u.notifier.AccountDeauthorized(ctx, creator)
	}
	return nil
}

// translatorFor fetches the account's person list only when a requirement
// actually references a person sub-object.
func (u *WebhookUsecase) translatorFor(ctx context.Context, vendorAccountID string, tiers ...*vendorapi.Requirements) (*requirementTranslator, error) {
	if !mentionsPerson(tiers) {
		return newRequirementTranslator(nil), nil
	}
	persons, err := u.vendor.ListPersons(ctx, vendorAccountID)
	if err != nil {
		return nil, err
	}
	return newRequirementTranslator(persons), nil
}

// reconcileRequirements persists parsed requirements idempotently and applies
// the notification and escalation policy.
func (u *WebhookUsecase) reconcileRequirements(
	ctx context.Context,
	merchant *entities.MerchantAccount,
	creator *entities.Creator,
	parsed []ParsedRequirement,
) error {
	if len(parsed) == 0 {
		return nil
	}

	var standard, remediation []ParsedRequirement
	suspend := false
	for _, r := range parsed {
		switch classifyRequirement(r.VendorField) {
		case kindSuspension:
			suspend = true
		case kindRemediation:
			remediation = append(remediation, r)
		default:
			standard = append(standard, r)
		}
	}

	open, err := u.infoRequestRepo.GetOpenByCreatorID(ctx, creator.ID)
	if err != nil {
		return err
	}
	openByField := make(map[string]*entities.ComplianceInfoRequest, len(open))
	for _, r := range open {
		openByField[r.Field] = r
	}

	requests := make([]*entities.ComplianceInfoRequest, 0, len(parsed))
	for _, r := range parsed {
		existing, ok := openByField[r.Field]
		if ok {
			existing.Partial = r.Partial
			existing.DueAt = r.DueAt
			applyVendorError(existing, r.Error)
			if err := u.infoRequestRepo.Update(ctx, existing); err != nil {
				return err
			}
			requests = append(requests, existing)
			continue
		}
		req := &entities.ComplianceInfoRequest{
			ID:                uuid.New(),
			CreatorID:         creator.ID,
			MerchantAccountID: merchant.ID,
			Field:             r.Field,
			Partial:           r.Partial,
			DueAt:             r.DueAt,
			State:             entities.InfoRequestStateRequested,
		}
		applyVendorError(req, r.Error)
		if err := u.infoRequestRepo.Create(ctx, req); err != nil {
			return err
		}
		openByField[r.Field] = req
		requests = append(requests, req)
	}

	if suspend {
		if !creator.State.Suspended() {
			if err := u.creatorRepo.SetState(ctx, creator.ID, entities.CreatorStateSuspendedForFraud); err != nil {
				return err
			}
			creator.State = entities.CreatorStateSuspendedForFraud
			metrics.ComplianceEmail("suspended")
			if err := u.notifier.AccountSuspended(ctx, creator); err != nil {
				return err
			}
		}
		// Terminal state; no further creator-facing email.
		return nil
	}

	if len(remediation) > 0 && !creator.State.Suspended() {
		metrics.ComplianceEmail("remediation")
		if err := u.notifier.RemediationRequested(ctx, creator, fieldNames(remediation)); err != nil {
			return err
		}
	}

	return u.notifyStandard(ctx, creator, standard, openByField)
}

func (u *WebhookUsecase) notifyStandard(
	ctx context.Context,
	creator *entities.Creator,
	standard []ParsedRequirement,
	openByField map[string]*entities.ComplianceInfoRequest,
) error {
	if !u.policy.shouldNotify(creator, standard) {
		return nil
	}

	emailable := make([]ParsedRequirement, 0, len(standard))
	for _, r := range standard {
		if r.Field != entities.FieldBankAccount {
			emailable = append(emailable, r)
		}
	}

	openList := make([]*entities.ComplianceInfoRequest, 0, len(openByField))
	for _, r := range openByField {
		openList = append(openList, r)
	}
	now := time.Now().UTC()
	if u.policy.suppressed(emailable, openList, now) {
		return nil
	}

	if match := u.policy.specializedError(emailable); match != nil {
		metrics.ComplianceEmail("verification_error")
		if err := u.notifier.VerificationErrorDetected(ctx, creator, match.Field, match.Error.Code, match.Error.Reason); err != nil {
			return err
		}
	} else {
		metrics.ComplianceEmail("kyc")
		if err := u.notifier.KYCInfoRequested(ctx, creator, fieldNames(emailable)); err != nil {
			return err
		}
	}

	emailedIDs := make([]uuid.UUID, 0, len(emailable))
	for _, r := range emailable {
		if req, ok := openByField[r.Field]; ok {
			emailedIDs = append(emailedIDs, req.ID)
		}
	}
	return u.infoRequestRepo.RecordEmailed(ctx, emailedIDs)
}

// applyEnablementTransitions reacts to charges/payouts flipping off when the
// disabled reason is pending requirements, not some other vendor condition.
func (u *WebhookUsecase) applyEnablementTransitions(
	ctx context.Context,
	merchant *entities.MerchantAccount,
	creator *entities.Creator,
	account *vendorapi.Account,
) error {
	if !pendingRequirementsReason(account.Requirements) {
		return nil
	}

	if merchant.ChargesEnabled && !account.ChargesEnabled {
		metrics.ComplianceEmail("charges_paused")
		if err := u.notifier.ChargesPaused(ctx, creator); err != nil {
			return err
		}
	}
	if merchant.PayoutsEnabled && !account.PayoutsEnabled {
		metrics.ComplianceEmail("payouts_paused")
		if err := u.notifier.PayoutsPaused(ctx, creator); err != nil {
			return err
		}
		if !creator.PayoutsPaused {
			if err := u.creatorRepo.SetPayoutsPaused(ctx, creator.ID, true); err != nil {
				return err
			}
			creator.PayoutsPaused = true
		}
	}
	return nil
}

func pendingRequirementsReason(reqs *vendorapi.Requirements) bool {
	return reqs != nil && strings.HasPrefix(reqs.DisabledReason, "requirements.")
}

func noOutstandingRequirements(reqs *vendorapi.Requirements) bool {
	if reqs == nil {
		return true
	}
	return len(reqs.CurrentlyDue) == 0 &&
		len(reqs.PastDue) == 0 &&
		len(reqs.EventuallyDue) == 0 &&
		len(reqs.Alternatives) == 0
}

func mentionsPerson(tiers []*vendorapi.Requirements) bool {
	for _, reqs := range tiers {
		if reqs == nil {
			continue
		}
		for _, f := range reqs.CurrentlyDue {
			if strings.HasPrefix(f, "person_") {
				return true
			}
		}
		for _, f := range reqs.PastDue {
			if strings.HasPrefix(f, "person_") {
				return true
			}
		}
		for _, f := range reqs.EventuallyDue {
			if strings.HasPrefix(f, "person_") {
				return true
			}
		}
	}
	return false
}

func mergeCapabilityKeys(existing []string, vendorCapabilities map[string]string) []string {
	out := existing
	for key := range vendorCapabilities {
		if !containsString(out, key) {
			out = append(out, key)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func fieldNames(reqs []ParsedRequirement) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Field)
	}
	return out
}

func applyVendorError(req *entities.ComplianceInfoRequest, vendorErr *vendorapi.RequirementError) {
	if vendorErr == nil {
		return
	}
	req.VendorErrorCode = null.StringFrom(vendorErr.Code)
	req.VendorErrorReason = null.StringFrom(vendorErr.Reason)
}
