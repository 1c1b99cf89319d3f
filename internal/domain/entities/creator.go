package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CreatorRole represents creator roles
type CreatorRole string

const (
	CreatorRoleAdmin   CreatorRole = "admin"
	CreatorRoleCreator CreatorRole = "creator"
)

// CreatorState represents the account state of a creator
type CreatorState string

const (
	CreatorStateActive            CreatorState = "active"
	CreatorStateSuspendedForFraud CreatorState = "suspended_for_fraud"
	CreatorStateDeleted           CreatorState = "deleted"
)

// Suspended reports whether the creator account is suspended or deleted.
// Suspended creators are excluded from compliance notifications.
func (s CreatorState) Suspended() bool {
	return s == CreatorStateSuspendedForFraud || s == CreatorStateDeleted
}

// Creator represents a seller on the platform
type Creator struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"`
	Role         CreatorRole  `json:"role"`
	State        CreatorState `json:"state"`
	Country      null.String  `json:"country,omitempty"`

	// PayoutsPaused is set when the vendor disables payouts pending verification.
	PayoutsPaused bool `json:"payoutsPaused"`

	// DeauthEmailEnabled gates the deauthorization notification experiment.
	DeauthEmailEnabled bool `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt null.Time `json:"-"`
}

// RegisterInput represents input for creating a creator account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Country  string `json:"country,omitempty"`
}

// LoginInput represents input for creator login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string   `json:"accessToken,omitempty"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	SessionID    string   `json:"sessionId,omitempty"`
	Creator      *Creator `json:"creator"`
}
