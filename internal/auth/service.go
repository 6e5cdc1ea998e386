package auth

import (
	"context"
	"strings"

	"portfolio-backend/internal/models"

	"gorm.io/gorm"
)

// Service encapsulates registration and login against the user store.
type Service struct {
	DB *gorm.DB
}

// Register creates a new user with a bcrypt-hashed password. Username
// uniqueness is an exact, case-sensitive match; on conflict no row is created.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrUsernamePasswordRequired
	}

	var existing models.User
	err := s.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, PasswordHash: hash}
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login finds the user by username and verifies the password. Unknown user
// and wrong password collapse into the same error so the response does not
// reveal which one failed.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrUsernamePasswordRequired
	}

	var user models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
