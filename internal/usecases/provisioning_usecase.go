package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/domain/repositories"
	"creator-pay.backend/internal/infrastructure/vendorapi"
	"creator-pay.backend/pkg/logger"
)

// VendorAPI is the vendor merchant-account client surface the usecases need.
type VendorAPI interface {
	CreateAccount(ctx context.Context, params *vendorapi.AccountParams) (*vendorapi.Account, error)
	UpdateAccount(ctx context.Context, accountID string, params *vendorapi.AccountParams) (*vendorapi.Account, error)
	GetAccount(ctx context.Context, accountID string) (*vendorapi.Account, error)
	UpdateBankAccount(ctx context.Context, accountID string, params *vendorapi.BankAccountParams) (*vendorapi.BankAccount, error)
	ListPersons(ctx context.Context, accountID string) ([]*vendorapi.Person, error)
}

// ProcessorName identifies the payment processor on merchant account rows.
const ProcessorName = "stripe"

// ProvisioningUsecase handles merchant account provisioning against the
// vendor API.
type ProvisioningUsecase struct {
	creatorRepo  repositories.CreatorRepository
	profileRepo  repositories.ComplianceProfileRepository
	termsRepo    repositories.TermsAgreementRepository
	bankRepo     repositories.BankAccountRepository
	merchantRepo repositories.MerchantAccountRepository
	vendor       VendorAPI
	notifier     Notifier
}

// NewProvisioningUsecase creates a new provisioning usecase
func NewProvisioningUsecase(
	creatorRepo repositories.CreatorRepository,
	profileRepo repositories.ComplianceProfileRepository,
	termsRepo repositories.TermsAgreementRepository,
	bankRepo repositories.BankAccountRepository,
	merchantRepo repositories.MerchantAccountRepository,
	vendor VendorAPI,
	notifier Notifier,
) *ProvisioningUsecase {
	return &ProvisioningUsecase{
		creatorRepo:  creatorRepo,
		profileRepo:  profileRepo,
		termsRepo:    termsRepo,
		bankRepo:     bankRepo,
		merchantRepo: merchantRepo,
		vendor:       vendor,
		notifier:     notifier,
	}
}

// provisioningInputs bundles the prerequisite records for a vendor call.
type provisioningInputs struct {
	creator *entities.Creator
	profile *entities.ComplianceProfile
	bank    *entities.BankAccountRecord
	terms   *entities.TermsAgreement
	cfg     CountryConfig
}

// gatherInputs loads and validates every prerequisite. It fails with a
// not-ready error before any vendor call can happen with an incomplete
// payload.
func (u *ProvisioningUsecase) gatherInputs(ctx context.Context, creatorID uuid.UUID) (*provisioningInputs, error) {
	creator, err := u.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, domainerrors.NotFound("creator not found")
	}
	if !creator.Country.Valid || creator.Country.String == "" {
		return nil, domainerrors.NotReady("creator has no country on file")
	}

	cfg, ok := ConfigForCountry(creator.Country.String)
	if !ok {
		return nil, domainerrors.NotReady("no currency mapping for country " + creator.Country.String)
	}

	profile, err := u.profileRepo.GetCurrentByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domainerrors.NotReady("creator has no compliance profile")
	}

	bank, err := u.bankRepo.GetActiveByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domainerrors.NotReady("creator has no active bank account")
	}

	terms, err := u.termsRepo.GetLatestByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if terms == nil {
		return nil, domainerrors.NotReady("creator has not agreed to terms")
	}

	return &provisioningInputs{
		creator: creator,
		profile: profile,
		bank:    bank,
		terms:   terms,
		cfg:     cfg,
	}, nil
}

// CreateAccount provisions a new vendor merchant account for the creator.
// adminOverride bypasses the duplicate-account guard, including the case
// where a prior account never received its liveness timestamp.
func (u *ProvisioningUsecase) CreateAccount(ctx context.Context, creatorID uuid.UUID, adminOverride bool) (*entities.MerchantAccount, error) {
	inputs, err := u.gatherInputs(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	existing, err := u.merchantRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Active() {
		if !adminOverride {
			return nil, domainerrors.AlreadyHasAccount("creator already has a merchant account")
		}
		if err := u.merchantRepo.SoftDelete(ctx, existing.ID); err != nil {
			return nil, err
		}
		logger.Info(ctx, "Merchant account reset by admin override",
			zap.String("creator_id", creatorID.String()),
			zap.String("vendor_account_id", existing.VendorAccountID))
	}

	params := buildAccountParams(inputs.profile, inputs.bank, inputs.terms, inputs.cfg)
	vendorAccount, err := u.vendor.CreateAccount(ctx, params)
	if err != nil {
		return nil, err
	}

	account := &entities.MerchantAccount{
		ID:                        uuid.New(),
		CreatorID:                 creatorID,
		Processor:                 ProcessorName,
		VendorAccountID:           vendorAccount.ID,
		Country:                   inputs.profile.Country,
		Currency:                  inputs.cfg.Currency,
		ChargeProcessorVerifiedAt: null.TimeFrom(time.Now().UTC()),
		ChargesEnabled:            vendorAccount.ChargesEnabled,
		PayoutsEnabled:            vendorAccount.PayoutsEnabled,
		RequestedCapabilities:     params.Capabilities,
		SyncedProfileID:           null.StringFrom(inputs.profile.ID.String()),
	}

	if ext := firstExternalAccount(vendorAccount); ext != nil {
		if err := u.bankRepo.SetVendorIdentifiers(ctx, inputs.bank.ID, ext.ID, ext.Fingerprint); err != nil {
			return nil, err
		}
		account.SyncedBankAccountID = null.StringFrom(ext.ID)
	}

	if err := u.merchantRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount pushes compliance profile changes to the vendor as a minimal
// diff against the profile version last synced.
func (u *ProvisioningUsecase) UpdateAccount(ctx context.Context, creatorID uuid.UUID) error {
	inputs, err := u.gatherInputs(ctx, creatorID)
	if err != nil {
		return err
	}

	account, err := u.merchantRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return err
	}
	if account == nil || !account.Active() {
		return domainerrors.NotFound("creator has no merchant account")
	}

	var prev *entities.ComplianceProfile
	if account.SyncedProfileID.Valid {
		prevID, parseErr := uuid.Parse(account.SyncedProfileID.String)
		if parseErr == nil {
			prev, err = u.profileRepo.GetByID(ctx, prevID)
			if err != nil {
				return err
			}
		}
	}

	params := buildUpdateParams(prev, inputs.profile, account.RequestedCapabilities, inputs.cfg)
	if _, err := u.vendor.UpdateAccount(ctx, account.VendorAccountID, params); err != nil {
		return err
	}

	account.SyncedProfileID = null.StringFrom(inputs.profile.ID.String())
	account.RequestedCapabilities = params.Capabilities
	return u.merchantRepo.Update(ctx, account)
}

// SyncBankAccount pushes the creator's active bank account to the vendor when
// it differs from the one last synced. A vendor rejection becomes a creator
// notification rather than an error; vendor identifiers are only persisted on
// success.
func (u *ProvisioningUsecase) SyncBankAccount(ctx context.Context, creatorID uuid.UUID) error {
	account, err := u.merchantRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return err
	}
	if account == nil || !account.Active() {
		return domainerrors.NotFound("creator has no merchant account")
	}

	creator, err := u.creatorRepo.GetByID(ctx, creatorID)
	if err != nil {
		return err
	}
	if creator == nil {
		return domainerrors.NotFound("creator not found")
	}

	bank, err := u.bankRepo.GetActiveByCreatorID(ctx, creatorID)
	if err != nil {
		return err
	}
	if bank == nil {
		return domainerrors.NotReady("creator has no active bank account")
	}

	// Already registered and unchanged vendor-side.
	if bank.VendorBankAccountID.Valid &&
		account.SyncedBankAccountID.Valid &&
		bank.VendorBankAccountID.String == account.SyncedBankAccountID.String {
		return nil
	}

	profile, err := u.profileRepo.GetCurrentByCreatorID(ctx, creatorID)
	if err != nil {
		return err
	}
	if profile == nil {
		return domainerrors.NotReady("creator has no compliance profile")
	}
	cfg, ok := ConfigForCountry(profile.Country)
	if !ok {
		return domainerrors.NotReady("no currency mapping for country " + profile.Country)
	}

	params := buildBankAccountParams(bank, profile, cfg)
	registered, err := u.vendor.UpdateBankAccount(ctx, account.VendorAccountID, params)
	if err != nil {
		if errors.Is(err, domainerrors.ErrVendorRejected) {
			logger.Warn(ctx, "Vendor rejected bank account",
				zap.String("creator_id", creatorID.String()),
				zap.Error(err))
			return u.notifier.BankAccountRejected(ctx, creator, bank.Last4())
		}
		return err
	}

	if err := u.bankRepo.SetVendorIdentifiers(ctx, bank.ID, registered.ID, registered.Fingerprint); err != nil {
		return err
	}
	account.SyncedBankAccountID = null.StringFrom(registered.ID)
	return u.merchantRepo.Update(ctx, account)
}

func firstExternalAccount(account *vendorapi.Account) *vendorapi.BankAccount {
	if account.ExternalAccounts == nil || len(account.ExternalAccounts.Data) == 0 {
		return nil
	}
	return account.ExternalAccounts.Data[0]
}
