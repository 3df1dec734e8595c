package service

import (
	"Atelier/internal/api/dto"
	"Atelier/internal/model"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/minio"
	"Atelier/internal/pkg/redis"
	"Atelier/internal/pkg/security"
	"Atelier/internal/repository"
	"context"
	"time"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, req *dto.ProfileUpdateDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.TokenDTO, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserUsernameExist
	}

	if req.Email != nil && *req.Email != "" {
		existing, err = s.userRepo.GetUserByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUserEmailExist
		}
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	profile := &model.Profile{
		FullName: req.FullName,
	}
	if err := s.userRepo.CreateUser(ctx, user, profile); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUserUsernameExist
		}
		return nil, err
	}

	token, err := security.GenerateToken(user.ID, s.rolesFor(user))
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{UserID: user.ID, Username: user.Username, Token: token}, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, s.rolesFor(user))
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{UserID: user.ID, Username: user.Username, Token: token}, nil
}

// Logout 将令牌签名写入黑名单, 有效期覆盖令牌剩余寿命
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistPrefix+signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.ProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profileDTO := &dto.ProfileDTO{
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.Profile.FullName,
		Bio:       user.Profile.Bio,
		AvatarURL: minio.GetPublicURL(user.Profile.AvatarURL),
		Location:  user.Profile.Location,
		Country:   user.Profile.Country,
		City:      user.Profile.City,
	}
	if user.Profile.DateOfBirth != nil {
		profileDTO.DateOfBirth = user.Profile.DateOfBirth.Format("2006-01-02")
	}
	return profileDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, req *dto.ProfileUpdateDTO) error {
	profile, err := s.userRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}

	update := &model.Profile{UserID: userID}
	if req.FullName != nil {
		update.FullName = *req.FullName
	}
	if req.Bio != nil {
		update.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		update.AvatarURL = *req.AvatarURL
	}
	if req.Location != nil {
		update.Location = *req.Location
	}
	if req.Country != nil {
		update.Country = *req.Country
	}
	if req.City != nil {
		update.City = *req.City
	}
	if req.DateOfBirth != nil {
		birthday, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return ErrParamInvalid
		}
		update.DateOfBirth = &birthday
	}

	return s.userRepo.UpdateProfile(ctx, update)
}

func (s *UserServiceImpl) rolesFor(user *model.User) []string {
	if user.IsStaff {
		return []string{consts.RoleAdmin}
	}
	return []string{consts.RoleUser}
}
