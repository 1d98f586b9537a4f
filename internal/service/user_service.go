package service

import (
	"context"

	"ai-study-tutor-be/internal/dto"
	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/logger"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/pkg/events"

	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetById(ctx context.Context, id string) (*dto.UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error)
}

type userService struct {
	store     contract.Store
	publisher IPublisherService
	logger    logger.ILogger
}

func NewUserService(store contract.Store, publisher IPublisherService, log logger.ILogger) IUserService {
	return &userService{
		store:     store,
		publisher: publisher,
		logger:    log,
	}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := s.store.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.New(events.TypeUserRegistered, map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	}))

	return toUserResponse(user), nil
}

func (s *userService) GetById(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.store.UserRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return toUserResponse(user), nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.store.UserRepository().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
