package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
)

// MerchantAccountRepository defines merchant account data operations
type MerchantAccountRepository interface {
	Create(ctx context.Context, account *entities.MerchantAccount) error
	GetByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.MerchantAccount, error)
	GetByVendorAccountID(ctx context.Context, vendorAccountID string) (*entities.MerchantAccount, error)
	Update(ctx context.Context, account *entities.MerchantAccount) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// BankAccountRepository defines bank account record operations
type BankAccountRepository interface {
	Create(ctx context.Context, record *entities.BankAccountRecord) error
	GetActiveByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.BankAccountRecord, error)
	SetVendorIdentifiers(ctx context.Context, id uuid.UUID, vendorBankAccountID, fingerprint string) error
	Supersede(ctx context.Context, id uuid.UUID) error
}
