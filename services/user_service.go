package services

import (
	"errors"

	"github.com/jomariabejo/orpha/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	Name string `json:"name"`
}

func (s *UserService) GetProfile(caller *Identity) (*models.User, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", caller.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get user", err)
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(caller *Identity, input ProfileInput) (*models.User, error) {
	if err := requireStaff(caller); err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", caller.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageErr("get user", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, storageErr("update user", err)
	}
	return &user, nil
}
