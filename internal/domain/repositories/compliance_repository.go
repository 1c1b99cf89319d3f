package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
)

// ComplianceProfileRepository defines compliance profile version operations.
// Creating a new version supersedes the previous current one.
type ComplianceProfileRepository interface {
	Create(ctx context.Context, profile *entities.ComplianceProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ComplianceProfile, error)
	GetCurrentByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.ComplianceProfile, error)
}

// ComplianceInfoRequestRepository defines info request operations
type ComplianceInfoRequestRepository interface {
	Create(ctx context.Context, request *entities.ComplianceInfoRequest) error
	Update(ctx context.Context, request *entities.ComplianceInfoRequest) error
	GetOpenByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*entities.ComplianceInfoRequest, error)
	MarkAllProvided(ctx context.Context, creatorID uuid.UUID) error
	RecordEmailed(ctx context.Context, ids []uuid.UUID) error
	GetExpiredOpen(ctx context.Context, limit int) ([]*entities.ComplianceInfoRequest, error)
	ExpireRequests(ctx context.Context, ids []uuid.UUID) error
	ListByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error)
}
