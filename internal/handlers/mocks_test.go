package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thereayou/contactbook/internal/apperrors"
	"github.com/thereayou/contactbook/internal/models"
)

type memUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*models.User)}
}

func (s *memUserStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return apperrors.ErrConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *memUserStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *memUserStore) UpdateRefreshToken(userID uuid.UUID, token *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == userID {
			user.RefreshToken = token
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memUserStore) ConfirmEmail(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return apperrors.ErrNotFound
	}
	user.Confirmed = true
	return nil
}

func (s *memUserStore) UpdateAvatar(email, url string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user.AvatarURL = url
	cp := *user
	return &cp, nil
}

type memContactStore struct {
	mu       sync.Mutex
	contacts map[uuid.UUID]*models.Contact
}

func newMemContactStore() *memContactStore {
	return &memContactStore{contacts: make(map[uuid.UUID]*models.Contact)}
}

func (s *memContactStore) CreateContact(contact *models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if c.Email == contact.Email {
			return apperrors.ErrConflict
		}
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	cp := *contact
	s.contacts[contact.ID] = &cp
	return nil
}

func (s *memContactStore) ListContacts(userID uuid.UUID, offset, limit int) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Contact
	for _, c := range s.contacts {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *memContactStore) FindContactByFirstName(userID uuid.UUID, firstName string) (*models.Contact, error) {
	return s.find(func(c *models.Contact) bool {
		return c.UserID == userID && c.FirstName == firstName
	})
}

func (s *memContactStore) FindContactByLastName(userID uuid.UUID, lastName string) (*models.Contact, error) {
	return s.find(func(c *models.Contact) bool {
		return c.UserID == userID && c.LastName == lastName
	})
}

func (s *memContactStore) FindContactByEmail(userID uuid.UUID, email string) (*models.Contact, error) {
	return s.find(func(c *models.Contact) bool {
		return c.UserID == userID && c.Email == email
	})
}

func (s *memContactStore) find(match func(*models.Contact) bool) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.contacts {
		if match(c) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memContactStore) UpcomingBirthdays(userID uuid.UUID, now time.Time, windowDays int) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Contact
	for _, c := range s.contacts {
		if c.UserID != userID {
			continue
		}
		for i := 0; i <= windowDays; i++ {
			day := now.AddDate(0, 0, i)
			if day.Month() == c.Birthday.Month() && day.Day() == c.Birthday.Day() {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (s *memContactStore) UpdateContact(userID, contactID uuid.UUID, upd *models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	for id, other := range s.contacts {
		if id != contactID && other.Email == upd.Email {
			return nil, apperrors.ErrConflict
		}
	}
	c.FirstName = upd.FirstName
	c.LastName = upd.LastName
	c.Email = upd.Email
	c.Birthday = upd.Birthday
	c.Description = upd.Description
	cp := *c
	return &cp, nil
}

func (s *memContactStore) DeleteContact(userID, contactID uuid.UUID) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.contacts[contactID]
	if !ok || c.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	delete(s.contacts, contactID)
	cp := *c
	return &cp, nil
}

type fakeUploader struct {
	url string
	err error
}

func (u *fakeUploader) Upload(_ context.Context, _ io.Reader, publicID string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return u.url + "/" + publicID, nil
}

var errUploadFailed = errors.New("upload failed")
