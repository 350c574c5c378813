package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/contactbook/internal/models"
)

const birthdayLayout = "2006-01-02"

type ContactRequest struct {
	FirstName   string `json:"first_name" binding:"required,max=25"`
	LastName    string `json:"last_name" binding:"required,max=25"`
	Email       string `json:"email" binding:"required,email,max=120"`
	Birthday    string `json:"birthday" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

// Model переводит запрос в модель; формат даты уже проверен биндингом
func (r *ContactRequest) Model(userID uuid.UUID) *models.Contact {
	birthday, _ := time.Parse(birthdayLayout, r.Birthday)
	return &models.Contact{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Birthday:    birthday,
		Description: r.Description,
		UserID:      userID,
	}
}

type ContactResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Birthday    string    `json:"birthday"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewContactResponse(contact *models.Contact) ContactResponse {
	return ContactResponse{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		Birthday:    contact.Birthday.Format(birthdayLayout),
		Description: contact.Description,
		CreatedAt:   contact.CreatedAt,
	}
}

func NewContactList(contacts []models.Contact) []ContactResponse {
	out := make([]ContactResponse, len(contacts))
	for i := range contacts {
		out[i] = NewContactResponse(&contacts[i])
	}
	return out
}
