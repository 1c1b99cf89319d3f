package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/infrastructure/models"
)

// ComplianceProfileRepository implements compliance profile version storage
type ComplianceProfileRepository struct {
	db *gorm.DB
}

// NewComplianceProfileRepository creates a new compliance profile repository
func NewComplianceProfileRepository(db *gorm.DB) *ComplianceProfileRepository {
	return &ComplianceProfileRepository{db: db}
}

func (r *ComplianceProfileRepository) toModel(p *entities.ComplianceProfile) *models.ComplianceProfile {
	return &models.ComplianceProfile{
		ID:                 p.ID,
		CreatorID:          p.CreatorID,
		EntityType:         string(p.EntityType),
		Country:            p.Country,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		BusinessName:       p.BusinessName.Ptr(),
		BusinessStructure:  p.BusinessStructure.Ptr(),
		StreetAddress:      p.StreetAddress,
		City:               p.City,
		State:              p.State.Ptr(),
		ZipCode:            p.ZipCode,
		Phone:              p.Phone.Ptr(),
		Email:              p.Email.Ptr(),
		TaxID:              p.TaxID.Ptr(),
		DateOfBirth:        p.DateOfBirth.Ptr(),
		JobTitle:           p.JobTitle.Ptr(),
		OwnershipPercent:   p.OwnershipPercent.Ptr(),
		FirstNameKana:      p.FirstNameKana.Ptr(),
		LastNameKana:       p.LastNameKana.Ptr(),
		FirstNameKanji:     p.FirstNameKanji.Ptr(),
		LastNameKanji:      p.LastNameKanji.Ptr(),
		BuildingNumber:     p.BuildingNumber.Ptr(),
		StreetAddressKana:  p.StreetAddressKana.Ptr(),
		StreetAddressKanji: p.StreetAddressKanji.Ptr(),
		Current:            p.Current,
		CreatedAt:          p.CreatedAt,
	}
}

func (r *ComplianceProfileRepository) toEntity(m *models.ComplianceProfile) *entities.ComplianceProfile {
	return &entities.ComplianceProfile{
		ID:                 m.ID,
		CreatorID:          m.CreatorID,
		EntityType:         entities.LegalEntityType(m.EntityType),
		Country:            m.Country,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		BusinessName:       null.StringFromPtr(m.BusinessName),
		BusinessStructure:  null.StringFromPtr(m.BusinessStructure),
		StreetAddress:      m.StreetAddress,
		City:               m.City,
		State:              null.StringFromPtr(m.State),
		ZipCode:            m.ZipCode,
		Phone:              null.StringFromPtr(m.Phone),
		Email:              null.StringFromPtr(m.Email),
		TaxID:              null.StringFromPtr(m.TaxID),
		DateOfBirth:        null.TimeFromPtr(m.DateOfBirth),
		JobTitle:           null.StringFromPtr(m.JobTitle),
		OwnershipPercent:   null.Float64FromPtr(m.OwnershipPercent),
		FirstNameKana:      null.StringFromPtr(m.FirstNameKana),
		LastNameKana:       null.StringFromPtr(m.LastNameKana),
		FirstNameKanji:     null.StringFromPtr(m.FirstNameKanji),
		LastNameKanji:      null.StringFromPtr(m.LastNameKanji),
		BuildingNumber:     null.StringFromPtr(m.BuildingNumber),
		StreetAddressKana:  null.StringFromPtr(m.StreetAddressKana),
		StreetAddressKanji: null.StringFromPtr(m.StreetAddressKanji),
		Current:            m.Current,
		CreatedAt:          m.CreatedAt,
	}
}

// Create inserts a new profile version and demotes the previous current one
// in the same transaction.
func (r *ComplianceProfileRepository) Create(ctx context.Context, profile *entities.ComplianceProfile) error {
	m := r.toModel(profile)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Current = true

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ComplianceProfile{}).
			Where("creator_id = ? AND current = ?", m.CreatorID, true).
			Update("current", false).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return err
	}
	profile.ID = m.ID
	profile.Current = true
	profile.CreatedAt = m.CreatedAt
	return nil
}

// GetByID returns a profile version by ID, nil when none exists
func (r *ComplianceProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ComplianceProfile, error) {
	var m models.ComplianceProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetCurrentByCreatorID returns the current profile version, nil when none exists
func (r *ComplianceProfileRepository) GetCurrentByCreatorID(ctx context.Context, creatorID uuid.UUID) (*entities.ComplianceProfile, error) {
	var m models.ComplianceProfile
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND current = ?", creatorID, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ComplianceInfoRequestRepository implements info request storage
type ComplianceInfoRequestRepository struct {
	db *gorm.DB
}

// NewComplianceInfoRequestRepository creates a new info request repository
func NewComplianceInfoRequestRepository(db *gorm.DB) *ComplianceInfoRequestRepository {
	return &ComplianceInfoRequestRepository{db: db}
}

func (r *ComplianceInfoRequestRepository) toModel(req *entities.ComplianceInfoRequest) *models.ComplianceInfoRequest {
	return &models.ComplianceInfoRequest{
		ID:                req.ID,
		CreatorID:         req.CreatorID,
		MerchantAccountID: req.MerchantAccountID,
		Field:             req.Field,
		Partial:           req.Partial,
		DueAt:             req.DueAt.Ptr(),
		State:             string(req.State),
		VendorErrorCode:   req.VendorErrorCode.Ptr(),
		VendorErrorReason: req.VendorErrorReason.Ptr(),
		LastEmailedAt:     req.LastEmailedAt.Ptr(),
		EmailCount:        req.EmailCount,
		CreatedAt:         req.CreatedAt,
		UpdatedAt:         req.UpdatedAt,
	}
}

func (r *ComplianceInfoRequestRepository) toEntity(m *models.ComplianceInfoRequest) *entities.ComplianceInfoRequest {
	return &entities.ComplianceInfoRequest{
		ID:                m.ID,
		CreatorID:         m.CreatorID,
		MerchantAccountID: m.MerchantAccountID,
		Field:             m.Field,
		Partial:           m.Partial,
		DueAt:             null.TimeFromPtr(m.DueAt),
		State:             entities.InfoRequestState(m.State),
		VendorErrorCode:   null.StringFromPtr(m.VendorErrorCode),
		VendorErrorReason: null.StringFromPtr(m.VendorErrorReason),
		LastEmailedAt:     null.TimeFromPtr(m.LastEmailedAt),
		EmailCount:        m.EmailCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// Create inserts a new info request
func (r *ComplianceInfoRequestRepository) Create(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	m := r.toModel(request)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	request.ID = m.ID
	request.CreatedAt = m.CreatedAt
	request.UpdatedAt = m.UpdatedAt
	return nil
}

// Update persists the mutable fields of an info request
func (r *ComplianceInfoRequestRepository) Update(ctx context.Context, request *entities.ComplianceInfoRequest) error {
	return r.db.WithContext(ctx).Model(&models.ComplianceInfoRequest{}).
		Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"partial":             request.Partial,
			"due_at":              request.DueAt.Ptr(),
			"state":               string(request.State),
			"vendor_error_code":   request.VendorErrorCode.Ptr(),
			"vendor_error_reason": request.VendorErrorReason.Ptr(),
		}).Error
}

// GetOpenByCreatorID returns requests still awaiting the creator, oldest first
func (r *ComplianceInfoRequestRepository) GetOpenByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*entities.ComplianceInfoRequest, error) {
	var ms []models.ComplianceInfoRequest
	err := r.db.WithContext(ctx).
		Where("creator_id = ? AND state = ?", creatorID, string(entities.InfoRequestStateRequested)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.ComplianceInfoRequest, len(ms))
	for i := range ms {
		out[i] = r.toEntity(&ms[i])
	}
	return out, nil
}

// MarkAllProvided resolves every open request for a creator
func (r *ComplianceInfoRequestRepository) MarkAllProvided(ctx context.Context, creatorID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.ComplianceInfoRequest{}).
		Where("creator_id = ? AND state = ?", creatorID, string(entities.InfoRequestStateRequested)).
		Update("state", string(entities.InfoRequestStateProvided)).Error
}

// RecordEmailed stamps the given requests as emailed now
func (r *ComplianceInfoRequestRepository) RecordEmailed(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.ComplianceInfoRequest{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"last_emailed_at": time.Now(),
			"email_count":     gorm.Expr("email_count + 1"),
		}).Error
}

// GetExpiredOpen returns open requests whose due date has passed
func (r *ComplianceInfoRequestRepository) GetExpiredOpen(ctx context.Context, limit int) ([]*entities.ComplianceInfoRequest, error) {
	var ms []models.ComplianceInfoRequest
	err := r.db.WithContext(ctx).
		Where("state = ? AND due_at IS NOT NULL AND due_at < ?", string(entities.InfoRequestStateRequested), time.Now()).
		Order("due_at ASC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entities.ComplianceInfoRequest, len(ms))
	for i := range ms {
		out[i] = r.toEntity(&ms[i])
	}
	return out, nil
}

// ExpireRequests transitions the given open requests to expired
func (r *ComplianceInfoRequestRepository) ExpireRequests(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.ComplianceInfoRequest{}).
		Where("id IN ? AND state = ?", ids, string(entities.InfoRequestStateRequested)).
		Update("state", string(entities.InfoRequestStateExpired)).Error
}

// ListByCreatorID returns a page of requests for a creator with the total count
func (r *ComplianceInfoRequestRepository) ListByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.ComplianceInfoRequest, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ComplianceInfoRequest{}).
		Where("creator_id = ?", creatorID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.ComplianceInfoRequest
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, err
	}
	out := make([]*entities.ComplianceInfoRequest, len(ms))
	for i := range ms {
		out[i] = r.toEntity(&ms[i])
	}
	return out, int(total), nil
}
