package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/contactbook/internal/apperrors"
	"github.com/thereayou/contactbook/internal/handlers/dto"
	"github.com/thereayou/contactbook/internal/middleware"
	"github.com/thereayou/contactbook/internal/models"
	"github.com/thereayou/contactbook/internal/services"
)

const birthdayWindowDays = 7

type ContactsHandler struct {
	contacts services.ContactStore
}

func NewContactsHandler(contacts services.ContactStore) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

func (h *ContactsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 10)

	contacts, err := h.contacts.ListContacts(user.ID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
		return
	}
	c.JSON(http.StatusOK, dto.NewContactList(contacts))
}

func (h *ContactsHandler) GetByFirstName(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contact, err := h.contacts.FindContactByFirstName(user.ID, c.Param("first_name"))
	h.respondOne(c, contact, err)
}

func (h *ContactsHandler) GetByLastName(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contact, err := h.contacts.FindContactByLastName(user.ID, c.Param("last_name"))
	h.respondOne(c, contact, err)
}

func (h *ContactsHandler) GetByEmail(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contact, err := h.contacts.FindContactByEmail(user.ID, c.Param("email"))
	h.respondOne(c, contact, err)
}

func (h *ContactsHandler) UpcomingBirthdays(c *gin.Context) {
	user := middleware.CurrentUser(c)
	contacts, err := h.contacts.UpcomingBirthdays(user.ID, time.Now(), birthdayWindowDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
		return
	}
	c.JSON(http.StatusOK, dto.NewContactList(contacts))
}

func (h *ContactsHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := req.Model(user.ID)
	if err := h.contacts.CreateContact(contact); err != nil {
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "contact email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contact"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewContactResponse(contact))
}

func (h *ContactsHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.UpdateContact(user.ID, contactID, req.Model(user.ID))
	h.respondOne(c, contact, err)
}

func (h *ContactsHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact id"})
		return
	}

	contact, err := h.contacts.DeleteContact(user.ID, contactID)
	h.respondOne(c, contact, err)
}

func (h *ContactsHandler) respondOne(c *gin.Context, contact *models.Contact, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.NewContactResponse(contact))
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": "contact email already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "contact operation failed"})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
