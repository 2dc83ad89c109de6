package service

import (
	"context"
	"time"

	"commerce-service/internal/broker"
	"commerce-service/internal/models"
	"commerce-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the persistence surface the user service needs
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// UserService handles user business logic
type UserService struct {
	store  UserStore
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(store UserStore, events *broker.EventPublisher) *UserService {
	return &UserService{
		store:  store,
		events: events,
		logger: util.GetLogger(),
	}
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

// CreateUser persists a new user and publishes a user.created event
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Email: req.Email,
		Name:  req.Name,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	util.UsersCreatedTotal.Inc()
	s.logger.Info("User created", zap.String("user_id", user.UserID))

	if s.events != nil {
		event := &models.UserCreatedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeUserCreated,
				Timestamp: time.Now(),
			},
			UserID: user.UserID,
			Email:  user.Email,
		}
		if err := s.events.PublishUserCreated(ctx, event); err != nil {
			s.logger.Error("Failed to publish user.created event", zap.Error(err))
		}
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}
