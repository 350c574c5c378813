package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/contactbook/internal/models"
)

type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	UpdateRefreshToken(userID uuid.UUID, token *string) error
	ConfirmEmail(email string) error
	UpdateAvatar(email, url string) (*models.User, error)
}

type ContactStore interface {
	CreateContact(contact *models.Contact) error
	ListContacts(userID uuid.UUID, offset, limit int) ([]models.Contact, error)
	FindContactByFirstName(userID uuid.UUID, firstName string) (*models.Contact, error)
	FindContactByLastName(userID uuid.UUID, lastName string) (*models.Contact, error)
	FindContactByEmail(userID uuid.UUID, email string) (*models.Contact, error)
	UpcomingBirthdays(userID uuid.UUID, now time.Time, windowDays int) ([]models.Contact, error)
	UpdateContact(userID, contactID uuid.UUID, upd *models.Contact) (*models.Contact, error)
	DeleteContact(userID, contactID uuid.UUID) (*models.Contact, error)
}
