package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/models"
	"creator-pay.backend/pkg/utils"
)

// ProductRepository implements product catalog storage
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) toModel(p *entities.Product) *models.Product {
	return &models.Product{
		ID:               p.ID,
		SellerID:         p.SellerID,
		Name:             p.Name,
		Description:      p.Description,
		PriceCents:       p.PriceCents,
		Currency:         p.Currency,
		Published:        p.Published,
		Adult:            p.Adult,
		AffiliateEnabled: p.AffiliateEnabled,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *ProductRepository) toEntity(m *models.Product) *entities.Product {
	p := &entities.Product{
		ID:               m.ID,
		SellerID:         m.SellerID,
		Name:             m.Name,
		Description:      m.Description,
		PriceCents:       m.PriceCents,
		Currency:         m.Currency,
		Published:        m.Published,
		Adult:            m.Adult,
		AffiliateEnabled: m.AffiliateEnabled,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		p.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return p
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	m := r.toModel(product)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	product.ID = m.ID
	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID returns a product by ID, nil when none exists
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ListByIDs returns the products matching the given IDs. Missing IDs are
// silently skipped.
func (r *ProductRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ms []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Product, len(ms))
	for i := range ms {
		out[i] = r.toEntity(&ms[i])
	}
	return out, nil
}

// ListBySellerID returns a seller's newest products
func (r *ProductRepository) ListBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entities.Product, error) {
	var ms []models.Product
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.Product, len(ms))
	for i := range ms {
		out[i] = r.toEntity(&ms[i])
	}
	return out, nil
}

// WebhookEventRepository records processed vendor events
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// Create records a processed event
func (r *WebhookEventRepository) Create(ctx context.Context, vendorEventID, eventType string, payload []byte) error {
	// v7 ids keep the audit log roughly insert-ordered.
	m := &models.WebhookEvent{
		ID:            utils.GenerateUUIDv7(),
		VendorEventID: vendorEventID,
		EventType:     eventType,
		Payload:       string(payload),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// Exists reports whether an event has already been processed
func (r *WebhookEventRepository) Exists(ctx context.Context, vendorEventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WebhookEvent{}).
		Where("vendor_event_id = ?", vendorEventID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
