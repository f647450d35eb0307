package repository

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/domain"
)

// DefaultUsers builds the admin/user accounts the service ships with.
func DefaultUsers(bcryptCost int, now time.Time) ([]domain.User, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("user123"), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing user password: %w", err)
	}

	return []domain.User{
		{
			ID:           1,
			Username:     "admin",
			Email:        "admin@inventory.com",
			PasswordHash: string(adminHash),
			Role:         domain.RoleAdmin,
			CreatedAt:    now,
		},
		{
			ID:           2,
			Username:     "user",
			Email:        "user@inventory.com",
			PasswordHash: string(userHash),
			Role:         domain.RoleUser,
			CreatedAt:    now,
		},
	}, nil
}
