package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type EducationRepo interface {
	GetById(ctx context.Context, id uint64) (*model.EducationalContent, error)
	GetAll(ctx context.Context, offset, limit int) ([]*model.EducationalContent, error)
	Create(ctx context.Context, content *model.EducationalContent) error
	Update(ctx context.Context, content *model.EducationalContent) error
	Delete(ctx context.Context, id uint64) error
}

type EducationRepoImpl struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) EducationRepo {
	return &EducationRepoImpl{db: db}
}

func (s *EducationRepoImpl) GetById(ctx context.Context, id uint64) (*model.EducationalContent, error) {
	content := &model.EducationalContent{}
	result := s.db.WithContext(ctx).First(content, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return content, nil
}

func (s *EducationRepoImpl) GetAll(ctx context.Context, offset, limit int) ([]*model.EducationalContent, error) {
	contents := make([]*model.EducationalContent, 0)
	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&contents)
	if result.Error != nil {
		return nil, result.Error
	}
	return contents, nil
}

func (s *EducationRepoImpl) Create(ctx context.Context, content *model.EducationalContent) error {
	return s.db.WithContext(ctx).Create(content).Error
}

func (s *EducationRepoImpl) Update(ctx context.Context, content *model.EducationalContent) error {
	return s.db.WithContext(ctx).Save(content).Error
}

func (s *EducationRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.EducationalContent{}, id).Error
}
