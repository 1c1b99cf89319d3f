package usecases

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/domain/repositories"
)

// ComplianceUsecase serves merchant standing and info request listings.
type ComplianceUsecase struct {
	merchantRepo    repositories.MerchantAccountRepository
	infoRequestRepo repositories.ComplianceInfoRequestRepository
}

// NewComplianceUsecase creates a new compliance usecase
func NewComplianceUsecase(
	merchantRepo repositories.MerchantAccountRepository,
	infoRequestRepo repositories.ComplianceInfoRequestRepository,
) *ComplianceUsecase {
	return &ComplianceUsecase{
		merchantRepo:    merchantRepo,
		infoRequestRepo: infoRequestRepo,
	}
}

// MerchantStatus is a creator's merchant account standing plus what the
// vendor still needs from them.
type MerchantStatus struct {
	Account      *entities.MerchantAccount         `json:"account"`
	OpenRequests []*entities.ComplianceInfoRequest `json:"openRequests"`
}

// Status returns the creator's merchant account and open info requests.
func (u *ComplianceUsecase) Status(ctx context.Context, creatorID uuid.UUID) (*MerchantStatus, error) {
	account, err := u.merchantRepo.GetByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domainerrors.NotFound("no merchant account for creator")
	}

	open, err := u.infoRequestRepo.GetOpenByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return &MerchantStatus{Account: account, OpenRequests: open}, nil
}

// ListRequests returns a page of a creator's info requests with the total count.
func (u *ComplianceUsecase) ListRequests(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error) {
	return u.infoRequestRepo.ListByCreatorID(ctx, creatorID, limit, offset)
}
