package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/thereayou/contactbook/internal/apperrors"
	"github.com/thereayou/contactbook/internal/models"
	"github.com/thereayou/contactbook/pkg/auth"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService управляет жизненным циклом аутентификации: регистрация,
// подтверждение почты, выдача и ротация токенов. У пользователя может быть
// только одна активная сессия — новый login/refresh перезаписывает
// сохранённый refresh-токен и тем самым отзывает предыдущую.
type AuthService struct {
	users  UserStore
	jwt    *auth.JWTManager
	mailer Mailer
	log    *zap.Logger
}

func NewAuthService(users UserStore, jwtMgr *auth.JWTManager, mailer Mailer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwtMgr, mailer: mailer, log: log}
}

// Signup создаёт неподтверждённого пользователя и отправляет письмо
// с токеном подтверждения в фоне
func (s *AuthService) Signup(username, email, password, baseURL string) (*models.User, error) {
	if _, err := s.users.FindUserByEmail(email); err == nil {
		return nil, apperrors.Wrap(apperrors.ErrConflict, "account already exists")
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		AvatarURL:    GravatarURL(email),
		CreatedAt:    time.Now(),
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}

	s.sendConfirmation(user, baseURL)
	return user, nil
}

func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid email")
		}
		return nil, err
	}
	if !user.Confirmed {
		return nil, apperrors.ErrUnconfirmed
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrBadCredential
	}
	return s.issuePair(user)
}

// Refresh ротирует пару токенов. Предъявленный токен обязан совпадать с
// сохранённым: расхождение значит replay или устаревший токен, сессия
// принудительно снимается.
func (s *AuthService) Refresh(raw string) (*TokenPair, error) {
	email, err := s.jwt.Decode(raw, auth.ScopeRefresh)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid refresh token")
	}

	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid refresh token")
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != raw {
		if err := s.users.UpdateRefreshToken(user.ID, nil); err != nil {
			s.log.Warn("failed to revoke session", zap.Error(err))
		}
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid refresh token")
	}

	return s.issuePair(user)
}

// Authenticate разрешает access-токен в пользователя; ничего не мутирует,
// вызывается на каждый защищённый запрос
func (s *AuthService) Authenticate(raw string) (*models.User, error) {
	email, err := s.jwt.Decode(raw, auth.ScopeAccess)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "could not validate credentials")
	}
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "could not validate credentials")
		}
		return nil, err
	}
	return user, nil
}

// RequestConfirmation идемпотентна и не раскрывает, существует ли аккаунт:
// для неизвестного адреса просто ничего не отправляется
func (s *AuthService) RequestConfirmation(email, baseURL string) (bool, error) {
	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if user.Confirmed {
		return true, nil
	}
	s.sendConfirmation(user, baseURL)
	return false, nil
}

// ConfirmEmail переводит confirmed в true ровно один раз; повторное
// подтверждение — no-op, возвращает already=true
func (s *AuthService) ConfirmEmail(raw string) (bool, error) {
	email, err := s.jwt.Decode(raw, auth.ScopeEmail)
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrVerificationFailed, "invalid token for email verification")
	}

	user, err := s.users.FindUserByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, apperrors.ErrVerificationFailed
		}
		return false, err
	}
	if user.Confirmed {
		return true, nil
	}
	if err := s.users.ConfirmEmail(email); err != nil {
		return false, err
	}
	return false, nil
}

// issuePair выдаёт новую пару и фиксирует refresh-токен на пользователе,
// перезаписывая (и отзывая) предыдущую сессию
func (s *AuthService) issuePair(user *models.User) (*TokenPair, error) {
	access, err := s.jwt.Generate(user.Email, auth.ScopeAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.Generate(user.Email, auth.ScopeRefresh)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(user.ID, &refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *AuthService) sendConfirmation(user *models.User, baseURL string) {
	if s.mailer == nil {
		return
	}
	token, err := s.jwt.Generate(user.Email, auth.ScopeEmail)
	if err != nil {
		s.log.Error("failed to issue email token", zap.Error(err))
		return
	}
	go func() {
		if err := s.mailer.SendConfirmation(user.Email, user.Username, token, baseURL); err != nil {
			s.log.Error("confirmation email failed",
				zap.String("email", user.Email),
				zap.Error(err),
			)
		}
	}()
}
