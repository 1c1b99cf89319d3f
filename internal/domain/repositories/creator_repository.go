package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
)

// CreatorRepository defines creator data operations
type CreatorRepository interface {
	Create(ctx context.Context, creator *entities.Creator) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error)
	GetByEmail(ctx context.Context, email string) (*entities.Creator, error)
	Update(ctx context.Context, creator *entities.Creator) error
	SetState(ctx context.Context, id uuid.UUID, state entities.CreatorState) error
	SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error
}

// TermsAgreementRepository defines terms-of-service acceptance operations
type TermsAgreementRepository interface {
	Create(ctx context.Context, agreement *entities.TermsAgreement) error
	GetLatestByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.TermsAgreement, error)
}
