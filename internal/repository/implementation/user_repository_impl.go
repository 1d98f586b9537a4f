package implementation

import (
	"context"
	"errors"

	"ai-study-tutor-be/internal/entity"
	"ai-study-tutor-be/internal/mapper"
	"ai-study-tutor-be/internal/model"
	"ai-study-tutor-be/internal/pkg/apperror"
	"ai-study-tutor-be/internal/pkg/clock"
	"ai-study-tutor-be/internal/repository/contract"
	"ai-study-tutor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	clock  *clock.Monotonic
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB, c *clock.Monotonic) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		clock:  c,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := (specification.ByUsername{Username: user.Username}).Apply(tx.Model(&model.User{})).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Validation("username already exists")
		}

		m := r.mapper.ToModel(user)
		m.Id = uuid.NewString()
		m.CreatedAt = r.clock.Now()
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		*user = *r.mapper.ToEntity(m)
		return nil
	})
}

func (r *UserRepositoryImpl) FindById(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, specification.ByUsername{Username: username})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
