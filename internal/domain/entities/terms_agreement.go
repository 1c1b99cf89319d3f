package entities

import (
	"time"

	"github.com/google/uuid"
)

// TermsAgreement is an immutable timestamped acceptance record referenced by
// account-creation payloads.
type TermsAgreement struct {
	ID         uuid.UUID `json:"id"`
	CreatorID  uuid.UUID `json:"creatorId"`
	AcceptedAt time.Time `json:"acceptedAt"`
	IP         string    `json:"ip"`
	CreatedAt  time.Time `json:"createdAt"`
}
