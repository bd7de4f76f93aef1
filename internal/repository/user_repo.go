package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetFamilyMembers(ctx context.Context, adminID uint64) ([]*model.User, error)
	GetRoleNames(ctx context.Context, userID uint64) ([]string, error)
	CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error
	UpdateUser(ctx context.Context, user *model.User) error
	UpdatePushToken(ctx context.Context, id uint64, token string) error
	DeleteUser(ctx context.Context, id uint64) error
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
		Preload("UserRoles").
		First(user, id)

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
		Preload("UserRoles").
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

func (s *UserRepoImpl) GetFamilyMembers(ctx context.Context, adminID uint64) ([]*model.User, error) {
	members := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Where("family_admin_id = ? AND is_delete = 0", adminID).
		Order("created_at ASC").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (s *UserRepoImpl) GetRoleNames(ctx context.Context, userID uint64) ([]string, error) {
	names := make([]string, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Pluck("roles.name", &names)
	if result.Error != nil {
		return nil, result.Error
	}
	return names, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		for _, role := range roles {
			role.UserID = user.ID
		}
		if len(roles) > 0 {
			if result := tx.Create(roles); result.Error != nil {
				return result.Error
			}
		}

		return nil
	})
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).
		Model(&model.User{ID: user.ID}).
		Updates(user).Error
}

func (s *UserRepoImpl) UpdatePushToken(ctx context.Context, id uint64, token string) error {
	return s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("push_token", token).Error
}

// DeleteUser 级联删除家庭成员的进度行、证书与接种记录
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ?", id).Delete(&model.UserVaccine{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("user_id = ?", id).Delete(&model.VaccineCertificate{}); result.Error != nil {
			return result.Error
		}
		if result := tx.Where("user_id = ?", id).Delete(&model.VaccinationRecord{}); result.Error != nil {
			return result.Error
		}
		return tx.Model(&model.User{}).
			Where("id = ?", id).
			Update("is_delete", true).Error
	})
}
