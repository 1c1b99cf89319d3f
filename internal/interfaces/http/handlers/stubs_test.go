package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/vendorapi"
	"creator-pay.backend/internal/interfaces/http/middleware"
)

// authAs returns a middleware that injects an authenticated creator identity,
// standing in for the JWT middleware in handler tests.
func authAs(creatorID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CreatorIDKey, creatorID)
		c.Set(middleware.CreatorRoleKey, role)
		c.Next()
	}
}

type creatorRepoStub struct {
	createFn           func(ctx context.Context, creator *entities.Creator) error
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*entities.Creator, error)
	getByEmailFn       func(ctx context.Context, email string) (*entities.Creator, error)
	updateFn           func(ctx context.Context, creator *entities.Creator) error
	setStateFn         func(ctx context.Context, id uuid.UUID, state entities.CreatorState) error
	setPayoutsPausedFn func(ctx context.Context, id uuid.UUID, paused bool) error
}

func (s *creatorRepoStub) Create(ctx context.Context, creator *entities.Creator) error {
	if s.createFn != nil {
		return s.createFn(ctx, creator)
	}
	return nil
}

func (s *creatorRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *creatorRepoStub) GetByEmail(ctx context.Context, email string) (*entities.Creator, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *creatorRepoStub) Update(ctx context.Context, creator *entities.Creator) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, creator)
	}
	return nil
}

func (s *creatorRepoStub) SetState(ctx context.Context, id uuid.UUID, state entities.CreatorState) error {
	if s.setStateFn != nil {
		return s.setStateFn(ctx, id, state)
	}
	return nil
}

func (s *creatorRepoStub) SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	if s.setPayoutsPausedFn != nil {
		return s.setPayoutsPausedFn(ctx, id, paused)
	}
	return nil
}

type termsRepoStub struct {
	getLatestFn func(ctx context.Context, creatorID uuid.UUID) (*entities.TermsAgreement, error)
}

func (s *termsRepoStub) Create(ctx context.Context, agreement *entities.TermsAgreement) error {
	return nil
}

func (s *termsRepoStub) GetLatestByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.TermsAgreement, error) {
	if s.getLatestFn != nil {
		return s.getLatestFn(ctx, creatorID)
	}
	return nil, nil
}

type profileRepoStub struct {
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.ComplianceProfile, error)
	getCurrentFn func(ctx context.Context, creatorID uuid.UUID) (*entities.ComplianceProfile, error)
}

func (s *profileRepoStub) Create(ctx context.Context, profile *entities.ComplianceProfile) error {
	return nil
}

func (s *profileRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.ComplianceProfile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *profileRepoStub) GetCurrentByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.ComplianceProfile, error) {
	if s.getCurrentFn != nil {
		return s.getCurrentFn(ctx, creatorID)
	}
	return nil, nil
}

type infoRequestRepoStub struct {
	createFn  func(ctx context.Context, request *entities.ComplianceInfoRequest) error
	getOpenFn func(ctx context.Context, creatorID uuid.UUID) ([]*entities.ComplianceInfoRequest, error)
	listFn    func(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error)
}

func (s *infoRequestRepoStub) Create(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	if s.createFn != nil {
		return s.createFn(ctx, request)
	}
	return nil
}

func (s *infoRequestRepoStub) Update(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	return nil
}

func (s *infoRequestRepoStub) GetOpenByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*entities.ComplianceInfoRequest, error) {
	if s.getOpenFn != nil {
		return s.getOpenFn(ctx, creatorID)
	}
	return nil, nil
}

func (s *infoRequestRepoStub) MarkAllProvided(ctx context.Context, creatorID uuid.UUID) error {
	return nil
}

func (s *infoRequestRepoStub) RecordEmailed(ctx context.Context, ids []uuid.UUID) error {
	return nil
}

func (s *infoRequestRepoStub) GetExpiredOpen(ctx context.Context, limit int) ([]*entities.ComplianceInfoRequest, error) {
	return nil, nil
}

func (s *infoRequestRepoStub) ExpireRequests(ctx context.Context, ids []uuid.UUID) error {
	return nil
}

func (s *infoRequestRepoStub) ListByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error) {
	if s.listFn != nil {
		return s.listFn(ctx, creatorID, limit, offset)
	}
	return nil, 0, nil
}

type merchantRepoStub struct {
	createFn        func(ctx context.Context, account *entities.MerchantAccount) error
	getByCreatorFn  func(ctx context.Context, creatorID uuid.UUID) (*entities.MerchantAccount, error)
	getByVendorIDFn func(ctx context.Context, vendorAccountID string) (*entities.MerchantAccount, error)
	updateFn        func(ctx context.Context, account *entities.MerchantAccount) error
	softDeleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (s *merchantRepoStub) Create(ctx context.Context, account *entities.MerchantAccount) error {
	if s.createFn != nil {
		return s.createFn(ctx, account)
	}
	return nil
}

func (s *merchantRepoStub) GetByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.MerchantAccount, error) {
	if s.getByCreatorFn != nil {
		return s.getByCreatorFn(ctx, creatorID)
	}
	return nil, nil
}

func (s *merchantRepoStub) GetByVendorAccountID(ctx context.Context, vendorAccountID string) (*entities.MerchantAccount, error) {
	if s.getByVendorIDFn != nil {
		return s.getByVendorIDFn(ctx, vendorAccountID)
	}
	return nil, nil
}

func (s *merchantRepoStub) Update(ctx context.Context, account *entities.MerchantAccount) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, account)
	}
	return nil
}

func (s *merchantRepoStub) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

func (s *merchantRepoStub) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if s.softDeleteFn != nil {
		return s.softDeleteFn(ctx, id)
	}
	return nil
}

type bankRepoStub struct {
	getActiveFn      func(ctx context.Context, creatorID uuid.UUID) (*entities.BankAccountRecord, error)
	setIdentifiersFn func(ctx context.Context, id uuid.UUID, vendorBankAccountID, fingerprint string) error
}

func (s *bankRepoStub) Create(ctx context.Context, record *entities.BankAccountRecord) error {
	return nil
}

func (s *bankRepoStub) GetActiveByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.BankAccountRecord, error) {
	if s.getActiveFn != nil {
		return s.getActiveFn(ctx, creatorID)
	}
	return nil, nil
}

func (s *bankRepoStub) SetVendorIdentifiers(ctx context.Context, id uuid.UUID, vendorBankAccountID, fingerprint string) error {
	if s.setIdentifiersFn != nil {
		return s.setIdentifiersFn(ctx, id, vendorBankAccountID, fingerprint)
	}
	return nil
}

func (s *bankRepoStub) Supersede(ctx context.Context, id uuid.UUID) error { return nil }

type productRepoStub struct {
	createFn       func(ctx context.Context, product *entities.Product) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	listByIDsFn    func(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error)
	listBySellerFn func(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entities.Product, error)
}

func (s *productRepoStub) Create(ctx context.Context, product *entities.Product) error {
	if s.createFn != nil {
		return s.createFn(ctx, product)
	}
	return nil
}

func (s *productRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *productRepoStub) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error) {
	if s.listByIDsFn != nil {
		return s.listByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *productRepoStub) ListBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entities.Product, error) {
	if s.listBySellerFn != nil {
		return s.listBySellerFn(ctx, sellerID, limit)
	}
	return nil, nil
}

type webhookEventRepoStub struct {
	existsFn func(ctx context.Context, vendorEventID string) (bool, error)
}

func (s *webhookEventRepoStub) Create(ctx context.Context, vendorEventID, eventType string, payload []byte) error {
	return nil
}

func (s *webhookEventRepoStub) Exists(ctx context.Context, vendorEventID string) (bool, error) {
	if s.existsFn != nil {
		return s.existsFn(ctx, vendorEventID)
	}
	return false, nil
}

type vendorAPIStub struct {
	createAccountFn     func(ctx context.Context, params *vendorapi.AccountParams) (*vendorapi.Account, error)
	updateAccountFn     func(ctx context.Context, accountID string, params *vendorapi.AccountParams) (*vendorapi.Account, error)
	getAccountFn        func(ctx context.Context, accountID string) (*vendorapi.Account, error)
	updateBankAccountFn func(ctx context.Context, accountID string, params *vendorapi.BankAccountParams) (*vendorapi.BankAccount, error)
	listPersonsFn       func(ctx context.Context, accountID string) ([]*vendorapi.Person, error)
}

func (s *vendorAPIStub) CreateAccount(ctx context.Context, params *vendorapi.AccountParams) (*vendorapi.Account, error) {
	if s.createAccountFn != nil {
		return s.createAccountFn(ctx, params)
	}
	return &vendorapi.Account{ID: "acct_stub"}, nil
}

func (s *vendorAPIStub) UpdateAccount(ctx context.Context, accountID string, params *vendorapi.AccountParams) (*vendorapi.Account, error) {
	if s.updateAccountFn != nil {
		return s.updateAccountFn(ctx, accountID, params)
	}
	return &vendorapi.Account{ID: accountID}, nil
}

func (s *vendorAPIStub) GetAccount(ctx context.Context, accountID string) (*vendorapi.Account, error) {
	if s.getAccountFn != nil {
		return s.getAccountFn(ctx, accountID)
	}
	return &vendorapi.Account{ID: accountID}, nil
}

func (s *vendorAPIStub) UpdateBankAccount(ctx context.Context, accountID string, params *vendorapi.BankAccountParams) (*vendorapi.BankAccount, error) {
	if s.updateBankAccountFn != nil {
		return s.updateBankAccountFn(ctx, accountID, params)
	}
	return &vendorapi.BankAccount{ID: "ba_stub"}, nil
}

func (s *vendorAPIStub) ListPersons(ctx context.Context, accountID string) ([]*vendorapi.Person, error) {
	if s.listPersonsFn != nil {
		return s.listPersonsFn(ctx, accountID)
	}
	return nil, nil
}

type notifierStub struct {
	kycCalls        int
	suspendedCalls  int
	bankRejectCalls int
}

func (s *notifierStub) KYCInfoRequested(ctx context.Context, creator *entities.Creator, fields []string) error {
	s.kycCalls++
	return nil
}

func (s *notifierStub) VerificationErrorDetected(ctx context.Context, creator *entities.Creator, field, code, reason string) error {
	return nil
}

func (s *notifierStub) RemediationRequested(ctx context.Context, creator *entities.Creator, fields []string) error {
	return nil
}

func (s *notifierStub) AccountSuspended(ctx context.Context, creator *entities.Creator) error {
	s.suspendedCalls++
	return nil
}

func (s *notifierStub) ChargesPaused(ctx context.Context, creator *entities.Creator) error {
	return nil
}

func (s *notifierStub) PayoutsPaused(ctx context.Context, creator *entities.Creator) error {
	return nil
}

func (s *notifierStub) BankAccountRejected(ctx context.Context, creator *entities.Creator, last4 string) error {
	s.bankRejectCalls++
	return nil
}

func (s *notifierStub) AccountDeauthorized(ctx context.Context, creator *entities.Creator) error {
	return nil
}

type scorerStub struct {
	scoreFn func(ctx context.Context, candidateIDs, excludeIDs []uuid.UUID, limit int) ([]uuid.UUID, error)
}

func (s *scorerStub) Score(ctx context.Context, candidateIDs, excludeIDs []uuid.UUID, limit int) ([]uuid.UUID, error) {
	if s.scoreFn != nil {
		return s.scoreFn(ctx, candidateIDs, excludeIDs, limit)
	}
	return nil, nil
}
