package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/models"
)

// CreatorRepository implements creator data operations
type CreatorRepository struct {
	db *gorm.DB
}

// NewCreatorRepository creates a new creator repository
func NewCreatorRepository(db *gorm.DB) *CreatorRepository {
	return &CreatorRepository{db: db}
}

func (r *CreatorRepository) toModel(c *entities.Creator) *models.Creator {
	return &models.Creator{
		ID:                 c.ID,
		Email:              c.Email,
		Name:               c.Name,
		PasswordHash:       c.PasswordHash,
		Role:               string(c.Role),
		State:              string(c.State),
		Country:            c.Country.Ptr(),
		PayoutsPaused:      c.PayoutsPaused,
		DeauthEmailEnabled: c.DeauthEmailEnabled,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func (r *CreatorRepository) toEntity(m *models.Creator) *entities.Creator {
	c := &entities.Creator{
		ID:                 m.ID,
		Email:              m.Email,
		Name:               m.Name,
		PasswordHash:       m.PasswordHash,
		Role:               entities.CreatorRole(m.Role),
		State:              entities.CreatorState(m.State),
		Country:            null.StringFromPtr(m.Country),
		PayoutsPaused:      m.PayoutsPaused,
		DeauthEmailEnabled: m.DeauthEmailEnabled,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		c.DeletedAt = null.TimeFrom(m.DeletedAt.Time)
	}
	return c
}

// Create creates a new creator
func (r *CreatorRepository) Create(ctx context.Context, creator *entities.Creator) error {
	m := r.toModel(creator)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	creator.ID = m.ID
	creator.CreatedAt = m.CreatedAt
	creator.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a creator by ID. Returns nil when no creator exists.
func (r *CreatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Creator, error) {
	var m models.Creator
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a creator by email. Returns nil when no creator exists.
func (r *CreatorRepository) GetByEmail(ctx context.Context, email string) (*entities.Creator, error) {
	var m models.Creator
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists mutable creator fields
func (r *CreatorRepository) Update(ctx context.Context, creator *entities.Creator) error {
	return r.db.WithContext(ctx).Model(&models.Creator{}).
		Where("id = ?", creator.ID).
		Updates(map[string]interface{}{
			"email":          creator.Email,
			"name":           creator.Name,
			"password_hash":  creator.PasswordHash,
			"role":           string(creator.Role),
			"state":          string(creator.State),
			"country":        creator.Country.Ptr(),
			"payouts_paused": creator.PayoutsPaused,
		}).Error
}

// SetState transitions the creator account state
func (r *CreatorRepository) SetState(ctx context.Context, id uuid.UUID, state entities.CreatorState) error {
	return r.db.WithContext(ctx).Model(&models.Creator{}).
		Where("id = ?", id).
		Update("state", string(state)).Error
}

// SetPayoutsPaused flips the payouts-paused flag
func (r *CreatorRepository) SetPayoutsPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	return r.db.WithContext(ctx).Model(&models.Creator{}).
		Where("id = ?", id).
		Update("payouts_paused", paused).Error
}

// TermsAgreementRepository implements terms acceptance operations
type TermsAgreementRepository struct {
	db *gorm.DB
}

// NewTermsAgreementRepository creates a new terms agreement repository
func NewTermsAgreementRepository(db *gorm.DB) *TermsAgreementRepository {
	return &TermsAgreementRepository{db: db}
}

// Create records a terms acceptance
func (r *TermsAgreementRepository) Create(ctx context.Context, agreement *entities.TermsAgreement) error {
	m := &models.TermsAgreement{
		ID:         agreement.ID,
		CreatorID:  agreement.CreatorID,
		AcceptedAt: agreement.AcceptedAt,
		IP:         agreement.IP,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	agreement.ID = m.ID
	agreement.CreatedAt = m.CreatedAt
	return nil
}

// GetLatestByCreatorID returns the most recent acceptance, nil when none exists
func (r *TermsAgreementRepository) GetLatestByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.TermsAgreement, error) {
	var m models.TermsAgreement
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("accepted_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entities.TermsAgreement{
		ID:         m.ID,
		CreatorID:  m.CreatorID,
		AcceptedAt: m.AcceptedAt,
		IP:         m.IP,
		CreatedAt:  m.CreatedAt,
	}, nil
}
