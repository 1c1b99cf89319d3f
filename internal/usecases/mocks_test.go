package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/vendorapi"
)

// Mock CreatorRepository
type MockCreatorRepository struct {
	mock.Mock
}

func (m *MockCreatorRepository) Create(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Creator), args.Error(1)
}

func (m *MockCreatorRepository) GetByEmail(ctx context.Context, email string) (*entities.Creator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Creator), args.Error(1)
}

func (m *MockCreatorRepository) Update(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) SetState(ctx context.Context, id uuid.UUID, state entities.CreatorState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func (m *MockCreatorRepository) SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	args := m.Called(ctx, id, paused)
	return args.Error(0)
}

// Mock TermsAgreementRepository
type MockTermsAgreementRepository struct {
	mock.Mock
}

func (m *MockTermsAgreementRepository) Create(ctx context.Context, agreement *entities.TermsAgreement) error {
	args := m.Called(ctx, agreement)
	return args.Error(0)
}

func (m *MockTermsAgreementRepository) GetLatestByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.TermsAgreement, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TermsAgreement), args.Error(1)
}

// Mock ComplianceProfileRepository
type MockComplianceProfileRepository struct {
	mock.Mock
}

func (m *MockComplianceProfileRepository) Create(ctx context.Context, profile *entities.ComplianceProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockComplianceProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ComplianceProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ComplianceProfile), args.Error(1)
}

func (m *MockComplianceProfileRepository) GetCurrentByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.ComplianceProfile, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ComplianceProfile), args.Error(1)
}

// Mock ComplianceInfoRequestRepository
type MockComplianceInfoRequestRepository struct {
	mock.Mock
}

func (m *MockComplianceInfoRequestRepository) Create(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockComplianceInfoRequestRepository) Update(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockComplianceInfoRequestRepository) GetOpenByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*entities.ComplianceInfoRequest, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ComplianceInfoRequest), args.Error(1)
}

func (m *MockComplianceInfoRequestRepository) MarkAllProvided(ctx context.Context, creatorID uuid.UUID) error {
	args := m.Called(ctx, creatorID)
	return args.Error(0)
}

func (m *MockComplianceInfoRequestRepository) RecordEmailed(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockComplianceInfoRequestRepository) GetExpiredOpen(ctx context.Context, limit int) ([]*entities.ComplianceInfoRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ComplianceInfoRequest), args.Error(1)
}

func (m *MockComplianceInfoRequestRepository) ExpireRequests(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockComplianceInfoRequestRepository) ListByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error) {
	args := m.Called(ctx, creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.ComplianceInfoRequest), args.Int(1), args.Error(2)
}

// Mock MerchantAccountRepository
type MockMerchantAccountRepository struct {
	mock.Mock
}

func (m *MockMerchantAccountRepository) Create(ctx context.Context, account *entities.MerchantAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockMerchantAccountRepository) GetByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.MerchantAccount, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantAccount), args.Error(1)
}

func (m *MockMerchantAccountRepository) GetByVendorAccountID(ctx context.Context, vendorAccountID string) (*entities.MerchantAccount, error) {
	args := m.Called(ctx, vendorAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MerchantAccount), args.Error(1)
}

func (m *MockMerchantAccountRepository) Update(ctx context.Context, account *entities.MerchantAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockMerchantAccountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMerchantAccountRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock BankAccountRepository
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) Create(ctx context.Context, record *entities.BankAccountRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBankAccountRepository) GetActiveByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.BankAccountRecord, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BankAccountRecord), args.Error(1)
}

func (m *MockBankAccountRepository) SetVendorIdentifiers(ctx context.Context, id uuid.UUID, vendorBankAccountID, fingerprint string) error {
	args := m.Called(ctx, id, vendorBankAccountID, fingerprint)
	return args.Error(0)
}

func (m *MockBankAccountRepository) Supersede(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) ListBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entities.Product, error) {
	args := m.Called(ctx, sellerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

// Mock WebhookEventRepository
type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) Create(ctx context.Context, vendorEventID, eventType string, payload []byte) error {
	args := m.Called(ctx, vendorEventID, eventType, payload)
	return args.Error(0)
}

func (m *MockWebhookEventRepository) Exists(ctx context.Context, vendorEventID string) (bool, error) {
	args := m.Called(ctx, vendorEventID)
	return args.Bool(0), args.Error(1)
}

// Mock VendorAPI
type MockVendorAPI struct {
	mock.Mock
}

func (m *MockVendorAPI) CreateAccount(ctx context.Context, params *vendorapi.AccountParams) (*vendorapi.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendorapi.Account), args.Error(1)
}

func (m *MockVendorAPI) UpdateAccount(ctx context.Context, accountID string, params *vendorapi.AccountParams) (*vendorapi.Account, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendorapi.Account), args.Error(1)
}

func (m *MockVendorAPI) GetAccount(ctx context.Context, accountID string) (*vendorapi.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendorapi.Account), args.Error(1)
}

func (m *MockVendorAPI) UpdateBankAccount(ctx context.Context, accountID string, params *vendorapi.BankAccountParams) (*vendorapi.BankAccount, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendorapi.BankAccount), args.Error(1)
}

func (m *MockVendorAPI) ListPersons(ctx context.Context, accountID string) ([]*vendorapi.Person, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendorapi.Person), args.Error(1)
}

// Mock Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) KYCInfoRequested(ctx context.Context, creator *entities.Creator, fields []string) error {
	args := m.Called(ctx, creator, fields)
	return args.Error(0)
}

func (m *MockNotifier) VerificationErrorDetected(ctx context.Context, creator *entities.Creator, field, code, reason string) error {
	args := m.Called(ctx, creator, field, code, reason)
	return args.Error(0)
}

func (m *MockNotifier) RemediationRequested(ctx context.Context, creator *entities.Creator, fields []string) error {
	args := m.Called(ctx, creator, fields)
	return args.Error(0)
}

func (m *MockNotifier) AccountSuspended(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockNotifier) ChargesPaused(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockNotifier) PayoutsPaused(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockNotifier) BankAccountRejected(ctx context.Context, creator *entities.Creator, last4 string) error {
	args := m.Called(ctx, creator, last4)
	return args.Error(0)
}

func (m *MockNotifier) AccountDeauthorized(ctx context.Context, creator *entities.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

// Mock RecommendationScorer
type MockRecommendationScorer struct {
	mock.Mock
}

func (m *MockRecommendationScorer) Score(ctx context.Context, candidateIDs, excludeIDs []uuid.UUID, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, candidateIDs, excludeIDs, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
