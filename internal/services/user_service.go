// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bookreview/bookreview-backend/internal/models"
)

type UserService struct {
	db *gorm.DB
}

// UpdateProfileRequest applies only the fields present. Bio is a pointer so
// an explicit empty string is distinguished from an omitted field.
type UpdateProfileRequest struct {
	Name   string  `json:"name"`
	Bio    *string `json:"bio"`
	Avatar string  `json:"avatar"`
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User")
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(id uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, NewNotFoundError("User")
	}

	return s.GetUser(id)
}
