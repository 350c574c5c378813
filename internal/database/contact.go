package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/contactbook/internal/models"
)

func (d *Database) CreateContact(contact *models.Contact) error {
	return translate(d.db.Create(contact).Error)
}

func (d *Database) ListContacts(userID uuid.UUID, offset, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := d.db.Where("user_id = ?", userID).Offset(offset).Limit(limit).Find(&contacts).Error
	if err != nil {
		return nil, translate(err)
	}
	return contacts, nil
}

func (d *Database) FindContactByFirstName(userID uuid.UUID, firstName string) (*models.Contact, error) {
	return d.findContact("first_name = ? AND user_id = ?", firstName, userID)
}

func (d *Database) FindContactByLastName(userID uuid.UUID, lastName string) (*models.Contact, error) {
	return d.findContact("last_name = ? AND user_id = ?", lastName, userID)
}

func (d *Database) FindContactByEmail(userID uuid.UUID, email string) (*models.Contact, error) {
	return d.findContact("email = ? AND user_id = ?", email, userID)
}

func (d *Database) findContact(query string, args ...interface{}) (*models.Contact, error) {
	contact := models.Contact{}
	if err := d.db.Where(query, args...).First(&contact).Error; err != nil {
		return nil, translate(err)
	}
	return &contact, nil
}

// UpcomingBirthdays возвращает контакты с днём рождения в ближайшие windowDays
// дней включительно; год рождения игнорируется.
func (d *Database) UpcomingBirthdays(userID uuid.UUID, now time.Time, windowDays int) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := d.db.Where("user_id = ?", userID).Find(&contacts).Error; err != nil {
		return nil, translate(err)
	}

	upcoming := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if birthdayInWindow(c.Birthday, now, windowDays) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}

// birthdayInWindow проверяет попадание дня рождения в [today, today+days].
// 29 февраля в невисокосный год считается 1 марта.
func birthdayInWindow(birthday, today time.Time, days int) bool {
	bm, bd := birthday.Month(), birthday.Day()
	for i := 0; i <= days; i++ {
		day := today.AddDate(0, 0, i)
		if day.Month() == bm && day.Day() == bd {
			return true
		}
		if bm == time.February && bd == 29 &&
			day.Month() == time.March && day.Day() == 1 && !isLeap(day.Year()) {
			return true
		}
	}
	return false
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (d *Database) UpdateContact(userID, contactID uuid.UUID, upd *models.Contact) (*models.Contact, error) {
	contact, err := d.findContact("id = ? AND user_id = ?", contactID, userID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = upd.FirstName
	contact.LastName = upd.LastName
	contact.Email = upd.Email
	contact.Birthday = upd.Birthday
	contact.Description = upd.Description

	if err := d.db.Save(contact).Error; err != nil {
		return nil, translate(err)
	}
	return contact, nil
}

func (d *Database) DeleteContact(userID, contactID uuid.UUID) (*models.Contact, error) {
	contact, err := d.findContact("id = ? AND user_id = ?", contactID, userID)
	if err != nil {
		return nil, err
	}
	if err := d.db.Delete(contact).Error; err != nil {
		return nil, translate(err)
	}
	return contact, nil
}
