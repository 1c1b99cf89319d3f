package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/models"
)

// MerchantAccountRepository implements merchant account storage
type MerchantAccountRepository struct {
	db *gorm.DB
}

// NewMerchantAccountRepository creates a new merchant account repository
func NewMerchantAccountRepository(db *gorm.DB) *MerchantAccountRepository {
	return &MerchantAccountRepository{db: db}
}

func joinCapabilities(caps []string) string {
	return strings.Join(caps, ",")
}

func splitCapabilities(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (r *MerchantAccountRepository) toModel(a *entities.MerchantAccount) *models.MerchantAccount {
	return &models.MerchantAccount{
		ID:                        a.ID,
		CreatorID:                 a.CreatorID,
		Processor:                 a.Processor,
		VendorAccountID:           a.VendorAccountID,
		Country:                   a.Country,
		Currency:                  a.Currency,
		ChargeProcessorVerifiedAt: a.ChargeProcessorVerifiedAt.Ptr(),
		ChargesEnabled:            a.ChargesEnabled,
		PayoutsEnabled:            a.PayoutsEnabled,
		RequestedCapabilities:     joinCapabilities(a.RequestedCapabilities),
		SyncedProfileID:           a.SyncedProfileID.Ptr(),
		SyncedBankAccountID:       a.SyncedBankAccountID.Ptr(),
		DeauthorizedAt:            a.DeauthorizedAt.Ptr(),
		CreatedAt:                 a.CreatedAt,
		UpdatedAt:                 a.UpdatedAt,
	}
}

func (r *MerchantAccountRepository) toEntity(m *models.MerchantAccount) *entities.MerchantAccount {
	a := &entities.MerchantAccount{
		ID:                        m.ID,
		CreatorID:                 m.CreatorID,
		Processor:                 m.Processor,
		VendorAccountID:           m.VendorAccountID,
		Country:                   m.Country,
		Currency:                  m.Currency,
		ChargeProcessorVerifiedAt: null.TimeFromPtr(m.ChargeProcessorVerifiedAt),
		ChargesEnabled:            m.ChargesEnabled,
		PayoutsEnabled:            m.PayoutsEnabled,
		RequestedCapabilities:     splitCapabilities(m.RequestedCapabilities),
		SyncedProfileID:           null.StringFromPtr(m.SyncedProfileID),
		SyncedBankAccountID:       null.StringFromPtr(m.SyncedBankAccountID),
		DeauthorizedAt:            null.TimeFromPtr(m.DeauthorizedAt),
		CreatedAt:                 m.CreatedAt,
		UpdatedAt:                 m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		a.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return a
}

// Create inserts a new merchant account
func (r *MerchantAccountRepository) Create(ctx context.Context, account *entities.MerchantAccount) error {
	m := r.toModel(account)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	account.ID = m.ID
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByCreatorID returns the creator's newest non-deleted account, nil when none exists
func (r *MerchantAccountRepository) GetByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.MerchantAccount, error) {
	var m models.MerchantAccount
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByVendorAccountID resolves a webhook's account reference, nil when unknown
func (r *MerchantAccountRepository) GetByVendorAccountID(ctx context.Context, vendorAccountID string) (*entities.MerchantAccount, error) {
	var m models.MerchantAccount
	err := r.db.WithContext(ctx).
		Where("vendor_account_id = ?", vendorAccountID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists mutable merchant account fields
func (r *MerchantAccountRepository) Update(ctx context.Context, account *entities.MerchantAccount) error {
	return r.db.WithContext(ctx).Model(&models.MerchantAccount{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"charge_processor_verified_at": account.ChargeProcessorVerifiedAt.Ptr(),
			"charges_enabled":              account.ChargesEnabled,
			"payouts_enabled":              account.PayoutsEnabled,
			"requested_capabilities":       joinCapabilities(account.RequestedCapabilities),
			"synced_profile_id":            account.SyncedProfileID.Ptr(),
			"synced_bank_account_id":       account.SyncedBankAccountID.Ptr(),
		}).Error
}

// Deactivate records a vendor-side deauthorization
func (r *MerchantAccountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.MerchantAccount{}).
		Where("id = ?", id).
		Update("deauthorized_at", time.Now()).Error
}

// SoftDelete retires an account so a replacement can be provisioned
func (r *MerchantAccountRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.MerchantAccount{}).Error
}

// BankAccountRepository implements bank account record storage
type BankAccountRepository struct {
	db *gorm.DB
}

// NewBankAccountRepository creates a new bank account repository
func NewBankAccountRepository(db *gorm.DB) *BankAccountRepository {
	return &BankAccountRepository{db: db}
}

func (r *BankAccountRepository) toModel(b *entities.BankAccountRecord) *models.BankAccountRecord {
	return &models.BankAccountRecord{
		ID:                  b.ID,
		CreatorID:           b.CreatorID,
		Country:             b.Country,
		Currency:            b.Currency,
		AccountNumber:       b.AccountNumber,
		RoutingNumber:       b.RoutingNumber.Ptr(),
		AccountHolderName:   b.AccountHolderName.Ptr(),
		AccountType:         b.AccountType.Ptr(),
		VendorBankAccountID: b.VendorBankAccountID.Ptr(),
		Fingerprint:         b.Fingerprint.Ptr(),
		Active:              b.Active,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (r *BankAccountRepository) toEntity(m *models.BankAccountRecord) *entities.BankAccountRecord {
	b := &entities.BankAccountRecord{
		ID:                  m.ID,
		CreatorID:           m.CreatorID,
		Country:             m.Country,
		Currency:            m.Currency,
		AccountNumber:       m.AccountNumber,
		RoutingNumber:       null.StringFromPtr(m.RoutingNumber),
		AccountHolderName:   null.StringFromPtr(m.AccountHolderName),
		AccountType:         null.StringFromPtr(m.AccountType),
		VendorBankAccountID: null.StringFromPtr(m.VendorBankAccountID),
		Fingerprint:         null.StringFromPtr(m.Fingerprint),
		Active:              m.Active,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		b.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return b
}

// Create inserts a new bank account record
func (r *BankAccountRepository) Create(ctx context.Context, record *entities.BankAccountRecord) error {
	m := r.toModel(record)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	record.ID = m.ID
	record.CreatedAt = m.CreatedAt
	record.UpdatedAt = m.UpdatedAt
	return nil
}

// GetActiveByCreatorID returns the active payout destination, nil when none exists
func (r *BankAccountRepository) GetActiveByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.BankAccountRecord, error) {
	var m models.BankAccountRecord
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND active = ?", creatorID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// SetVendorIdentifiers stores the identifiers returned by vendor registration
func (r *BankAccountRepository) SetVendorIdentifiers(ctx context.Context, id uuid.UUID, vendorBankAccountID, fingerprint string) error {
	return r.db.WithContext(ctx).Model(&models.BankAccountRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"vendor_bank_account_id": vendorBankAccountID,
			"fingerprint":            fingerprint,
		}).Error
}

// Supersede deactivates and soft-deletes a replaced record. Vendor identifiers
// are retained for audit.
func (r *BankAccountRepository) Supersede(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BankAccountRecord{}).
			Where("id = ?", id).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.BankAccountRecord{}).Error
	})
}
