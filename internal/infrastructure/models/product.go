package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	PriceCents  int64  `gorm:"not null;default:0"`
	Currency    string `gorm:"type:varchar(3);not null;default:'usd'"`

	Published        bool `gorm:"not null;default:false;index"`
	Adult            bool `gorm:"not null;default:false"`
	AffiliateEnabled bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
