package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/redis"
	"VaccineVault/internal/pkg/security"
	"VaccineVault/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error
	UpdatePushToken(ctx context.Context, id uint64, token string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserEmailExist
	}

	dob, err := parseDate(regDTO.DateOfBirth)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:             &regDTO.Email,
		Password:          &passwordHash,
		Name:              regDTO.Name,
		DateOfBirth:       dob,
		Gender:            regDTO.Gender,
		Address:           regDTO.Address,
		Pincode:           regDTO.Pincode,
		MedicalConditions: regDTO.MedicalConditions,
	}

	// 角色表约定 1 = user
	roles := []*model.UserRole{{RoleID: 1}}
	return s.userRepo.CreateUser(ctx, user, roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil || user.IsDelete {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	roleNames, err := s.userRepo.GetRoleNames(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if len(roleNames) == 0 {
		roleNames = []string{consts.RoleUser}
	}

	return security.GenerateToken(user.ID, roleNames)
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = &user.ID
	userDTO.DateOfBirth = formatDate(&user.DateOfBirth)
	userDTO.CreatedAt = &user.CreatedAt
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateUserInfo(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil || user.IsDelete {
		return ErrUserNotFound
	}

	patch := &model.User{ID: id}
	if err = copier.Copy(patch, updateDTO); err != nil {
		return err
	}
	return s.userRepo.UpdateUser(ctx, patch)
}

func (s *UserServiceImpl) UpdatePushToken(ctx context.Context, id uint64, token string) error {
	return s.userRepo.UpdatePushToken(ctx, id, token)
}
