package store

import (
	"context"
	"database/sql"

	"commerce-service/internal/models"

	"github.com/google/uuid"
)

// CreateUser persists a new user, assigning its identifier
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	user.UserID = uuid.New().String()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (user_id, email, name) VALUES ($1, $2, $3)",
		user.UserID, user.Email, user.Name)
	return err
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT * FROM users WHERE user_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
