package repositories

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
)

// ProductRepository defines product catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error)
	ListBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entities.Product, error)
}

// WebhookEventRepository records processed vendor events for dedup and audit
type WebhookEventRepository interface {
	Create(ctx context.Context, vendorEventID, eventType string, payload []byte) error
	Exists(ctx context.Context, vendorEventID string) (bool, error)
}
