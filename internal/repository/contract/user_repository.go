package contract

import (
	"context"

	"ai-study-tutor-be/internal/entity"
)

type UserRepository interface {
	// Create assigns Id and CreatedAt. A taken username is a ValidationError.
	Create(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
