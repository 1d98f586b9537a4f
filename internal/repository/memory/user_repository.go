package memory

import (
	"context"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userIdByUsername[user.Username]; taken {
		return apperror.Validation("username already exists")
	}

	user.Id = uuid.NewString()
	user.CreatedAt = s.clock.Now()

	stored := *user
	s.users.Set(stored.Id, &stored, cache.NoExpiration)
	s.userIdByUsername[stored.Username] = stored.Id
	return nil
}

func (r *userRepository) FindById(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.userIdByUsername[username]
	if !ok {
		return nil, nil
	}
	return r.get(id), nil
}

// get returns a copy so callers cannot mutate stored state.
func (r *userRepository) get(id string) *entity.User {
	x, found := r.store.users.Get(id)
	if !found {
		return nil
	}
	u := *x.(*entity.User)
	return &u
}
