package domain

import (
	"time"
)

// Статусы верификации пользователя.
const (
	VerificationVerified   = "Verified"
	VerificationUnverified = "Unverified"
)

// UserProfile - профиль пользователя. После логина кэшируется в session store
// и редактируется локально, затем отправляется update-запросом.
type UserProfile struct {
	ID                 string
	Name               string
	Email              string
	Phone              string
	RegisteredAt       time.Time
	VerificationStatus string
}
