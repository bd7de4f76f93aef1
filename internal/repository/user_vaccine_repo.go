package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserVaccineRepo interface {
	GetByIdAndUser(ctx context.Context, id, userID uint64) (*model.UserVaccine, error)
	GetByUserAndVaccine(ctx context.Context, userID, vaccineID uint64) (*model.UserVaccine, error)
	GetByUser(ctx context.Context, userID uint64) ([]*model.UserVaccine, error)
	GetByGenericName(ctx context.Context, userID uint64, genericName string) (*model.UserVaccine, error)
	GetPendingByGenericName(ctx context.Context, userID uint64, genericName string) (*model.UserVaccine, error)
	EnsureProgress(ctx context.Context, progress *model.UserVaccine) error
	Create(ctx context.Context, progress *model.UserVaccine) error
	SaveWithLock(ctx context.Context, id uint64, update func(current *model.UserVaccine) (*model.UserVaccine, error)) (*model.UserVaccine, error)
	GetDueReminders(ctx context.Context, dueBefore time.Time) ([]*model.UserVaccine, error)
}

type UserVaccineRepoImpl struct {
	db *gorm.DB
}

func NewUserVaccineRepo(db *gorm.DB) UserVaccineRepo {
	return &UserVaccineRepoImpl{db: db}
}

func (s *UserVaccineRepoImpl) GetByIdAndUser(ctx context.Context, id, userID uint64) (*model.UserVaccine, error) {
	progress := &model.UserVaccine{}
	result := s.db.WithContext(ctx).
		Preload("Vaccine").
		Where("id = ? AND user_id = ?", id, userID).
		First(progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progress, nil
}

func (s *UserVaccineRepoImpl) GetByUserAndVaccine(ctx context.Context, userID, vaccineID uint64) (*model.UserVaccine, error) {
	progress := &model.UserVaccine{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND vaccine_id = ?", userID, vaccineID).
		First(progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progress, nil
}

func (s *UserVaccineRepoImpl) GetByUser(ctx context.Context, userID uint64) ([]*model.UserVaccine, error) {
	rows := make([]*model.UserVaccine, 0)
	result := s.db.WithContext(ctx).
		Preload("Vaccine").
		Where("user_id = ?", userID).
		Order("status ASC, next_due_date IS NULL, next_due_date ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

// GetByGenericName 按疫苗族查找用户的进度行，不限状态
// 选牌后行指向品牌条目，按 vaccine_id 查不到，播种判重必须走这里
func (s *UserVaccineRepoImpl) GetByGenericName(ctx context.Context, userID uint64, genericName string) (*model.UserVaccine, error) {
	progress := &model.UserVaccine{}
	result := s.db.WithContext(ctx).
		Joins("JOIN vaccines ON vaccines.id = user_vaccines.vaccine_id").
		Where("user_vaccines.user_id = ? AND vaccines.generic_name = ?", userID, genericName).
		First(progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progress, nil
}

// GetPendingByGenericName 按疫苗族查找用户的进行中进度行（含通用与品牌条目）
func (s *UserVaccineRepoImpl) GetPendingByGenericName(ctx context.Context, userID uint64, genericName string) (*model.UserVaccine, error) {
	progress := &model.UserVaccine{}
	result := s.db.WithContext(ctx).
		Joins("JOIN vaccines ON vaccines.id = user_vaccines.vaccine_id").
		Where("user_vaccines.user_id = ? AND vaccines.generic_name = ? AND user_vaccines.status = ?",
			userID, genericName, "pending").
		First(progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return progress, nil
}

// EnsureProgress 幂等创建：已存在的行不做任何覆盖
func (s *UserVaccineRepoImpl) EnsureProgress(ctx context.Context, progress *model.UserVaccine) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND vaccine_id = ?", progress.UserID, progress.VaccineID).
		FirstOrCreate(progress).Error
}

func (s *UserVaccineRepoImpl) Create(ctx context.Context, progress *model.UserVaccine) error {
	return s.db.WithContext(ctx).Create(progress).Error
}

// SaveWithLock 单行 SELECT ... FOR UPDATE 事务
// 并发剂次更新在行锁内串行执行，避免旧读盖掉别人的增量
func (s *UserVaccineRepoImpl) SaveWithLock(ctx context.Context, id uint64, update func(current *model.UserVaccine) (*model.UserVaccine, error)) (*model.UserVaccine, error) {
	var updated *model.UserVaccine
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current := &model.UserVaccine{}
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(current, id)
		if result.Error != nil {
			return result.Error
		}

		next, err := update(current)
		if err != nil {
			return err
		}

		if err := tx.Save(next).Error; err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetDueReminders 查询到期或逾期的进行中进度行，供每日提醒任务消费
func (s *UserVaccineRepoImpl) GetDueReminders(ctx context.Context, dueBefore time.Time) ([]*model.UserVaccine, error) {
	rows := make([]*model.UserVaccine, 0)
	result := s.db.WithContext(ctx).
		Preload("Vaccine").
		Where("status = ? AND next_due_date IS NOT NULL AND next_due_date <= ?", "pending", dueBefore).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
