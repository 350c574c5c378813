package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username     string    `gorm:"size:50;not null"`
	Email        string    `gorm:"size:250;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	AvatarURL    string
	Confirmed    bool `gorm:"not null;default:false"`
	// nil means no active session; the value mirrors the most recently
	// issued refresh token so a superseded token can be detected on refresh.
	RefreshToken *string `gorm:"size:512"`
	CreatedAt    time.Time
}
