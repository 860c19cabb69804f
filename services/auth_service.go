package services

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "storefront-service/errors"
	"storefront-service/models"
	"storefront-service/repository"
)

type AuthService struct {
	repo       repository.UserRepository
	inviteCode string
	logger     *zap.Logger
}

func NewAuthService(repo repository.UserRepository, inviteCode string, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, inviteCode: inviteCode, logger: logger}
}

// Signup validates the credentials, hashes the password and appends the new
// account. The admin role is granted only when the invite code matches the
// configured secret.
func (s *AuthService) Signup(email, password, adminInvite string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password required")
	}
	if len(password) < 6 {
		return nil, apperrors.Validation("Password must be at least 6 chars")
	}

	role := models.RoleUser
	if adminInvite != "" && s.inviteCode != "" && adminInvite == s.inviteCode {
		role = models.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternal, err)
	}

	user := &models.User{
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.logger.Info("Account created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return user, nil
}

// Login returns the stored account for valid credentials. Unknown email and
// wrong password fail identically so responses cannot be used to enumerate
// accounts.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
