package services

import (
	"errors"
	"time"

	"github.com/jomariabejo/orpha/models"
	"github.com/jomariabejo/orpha/utils"
	"gorm.io/gorm"
)

// AuthService handles registration and credential login for staff and
// admin accounts.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, name, role string) error {
	if email == "" {
		return invalidField("email", "missing required field")
	}
	if password == "" {
		return invalidField("password", "missing required field")
	}
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRole(role) {
		return invalidField("role", "must be staff or admin")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return storageErr("create user", err)
	}
	return nil
}

// Authenticate checks credentials and returns a signed session token.
// Accounts with an unknown role are treated as no session at all.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", errors.New("invalid email or password")
	}
	if !models.ValidRole(user.Role) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, user.Email, user.Role)
}

// StartPasswordReset stores a short-lived reset code and mails it out.
// Callers should not reveal whether the email exists.
func (s *AuthService) StartPasswordReset(email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return ErrNotFound
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return storageErr("save reset token", err)
	}

	return utils.SendResetEmail(user.Email, token)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" || newPassword == "" {
		return invalidField("token", "token and new password are required")
	}

	var user models.User
	if err := s.db.First(&user, "reset_token = ?", token).Error; err != nil ||
		time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	if err := s.db.Save(&user).Error; err != nil {
		return storageErr("reset password", err)
	}
	return nil
}
