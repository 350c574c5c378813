package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	FirstName   string    `gorm:"size:25;not null"`
	LastName    string    `gorm:"size:25;not null"`
	Email       string    `gorm:"size:120;uniqueIndex;not null"`
	Birthday    time.Time `gorm:"type:date;not null"`
	Description string
	CreatedAt   time.Time
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`

	User User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID"`
}
