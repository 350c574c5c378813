package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/contactbook/internal/apperrors"
	"github.com/thereayou/contactbook/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	return translate(d.db.Create(user).Error)
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateRefreshToken перезаписывает текущий refresh-токен, nil снимает сессию
func (d *Database) UpdateRefreshToken(userID uuid.UUID, token *string) error {
	res := d.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token", token)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (d *Database) ConfirmEmail(email string) error {
	res := d.db.Model(&models.User{}).Where("email = ?", email).Update("confirmed", true)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (d *Database) UpdateAvatar(email, url string) (*models.User, error) {
	user, err := d.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	user.AvatarURL = url
	if err := d.db.Model(user).Update("avatar_url", url).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}
