package repository

import (
	"Atelier/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error
	UpdateUser(ctx context.Context, user *model.User) error
	GetProfileByUserId(ctx context.Context, userID uint64) (*model.Profile, error)
	UpdateProfile(ctx context.Context, profile *model.Profile) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByIds(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("id IN ?", ids).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("username = ?", username).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, profile *model.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		profile.UserID = user.ID
		if result := tx.Create(profile); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", user.ID).Updates(user)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) GetProfileByUserId(ctx context.Context, userID uint64) (*model.Profile, error) {
	profile := &model.Profile{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return profile, nil
}

func (s *UserRepoImpl) UpdateProfile(ctx context.Context, profile *model.Profile) error {
	result := s.db.WithContext(ctx).Model(&model.Profile{}).Where("user_id = ?", profile.UserID).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
