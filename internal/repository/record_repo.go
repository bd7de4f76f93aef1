package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type RecordRepo interface {
	GetById(ctx context.Context, id uint64) (*model.VaccinationRecord, error)
	GetByUser(ctx context.Context, userID uint64) ([]*model.VaccinationRecord, error)
	Create(ctx context.Context, record *model.VaccinationRecord) error
	Update(ctx context.Context, record *model.VaccinationRecord) error
	Delete(ctx context.Context, id uint64) error
}

type RecordRepoImpl struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) RecordRepo {
	return &RecordRepoImpl{db: db}
}

func (s *RecordRepoImpl) GetById(ctx context.Context, id uint64) (*model.VaccinationRecord, error) {
	record := &model.VaccinationRecord{}
	result := s.db.WithContext(ctx).First(record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return record, nil
}

func (s *RecordRepoImpl) GetByUser(ctx context.Context, userID uint64) ([]*model.VaccinationRecord, error) {
	records := make([]*model.VaccinationRecord, 0)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("vaccination_date DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

func (s *RecordRepoImpl) Create(ctx context.Context, record *model.VaccinationRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *RecordRepoImpl) Update(ctx context.Context, record *model.VaccinationRecord) error {
	return s.db.WithContext(ctx).Save(record).Error
}

func (s *RecordRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.VaccinationRecord{}, id).Error
}
