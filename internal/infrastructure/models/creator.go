package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Creator struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(100);not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Role               string    `gorm:"type:varchar(50);not null;default:'creator'"`
	State              string    `gorm:"type:varchar(50);not null;default:'active'"`
	Country            *string   `gorm:"type:varchar(2)"`
	PayoutsPaused      bool      `gorm:"not null;default:false"`
	DeauthEmailEnabled bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

type TermsAgreement struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CreatorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	AcceptedAt time.Time `gorm:"not null"`
	IP         string    `gorm:"type:varchar(45);not null"`
	CreatedAt  time.Time
}
