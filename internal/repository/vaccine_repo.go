package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type VaccineRepo interface {
	GetVaccineById(ctx context.Context, id uint64) (*model.Vaccine, error)
	GetGenericVaccines(ctx context.Context) ([]*model.Vaccine, error)
	GetBrandsByGenericName(ctx context.Context, genericName string) ([]*model.Vaccine, error)
	GetByGenericAndBrand(ctx context.Context, genericName, brandName string) (*model.Vaccine, error)
	GetTravelVaccines(ctx context.Context, region string) ([]*model.Vaccine, error)
}

type VaccineRepoImpl struct {
	db *gorm.DB
}

func NewVaccineRepo(db *gorm.DB) VaccineRepo {
	return &VaccineRepoImpl{db: db}
}

func (s *VaccineRepoImpl) GetVaccineById(ctx context.Context, id uint64) (*model.Vaccine, error) {
	vaccine := &model.Vaccine{}
	result := s.db.WithContext(ctx).First(vaccine, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return vaccine, nil
}

// GetGenericVaccines 返回所有通用占位条目（品牌名为空），用于初始推荐
func (s *VaccineRepoImpl) GetGenericVaccines(ctx context.Context) ([]*model.Vaccine, error) {
	vaccines := make([]*model.Vaccine, 0)
	result := s.db.WithContext(ctx).
		Where("brand_name IS NULL").
		Order("first_dose_eligibility_age ASC").
		Find(&vaccines)
	if result.Error != nil {
		return nil, result.Error
	}
	return vaccines, nil
}

func (s *VaccineRepoImpl) GetBrandsByGenericName(ctx context.Context, genericName string) ([]*model.Vaccine, error) {
	vaccines := make([]*model.Vaccine, 0)
	result := s.db.WithContext(ctx).
		Where("generic_name = ? AND brand_name IS NOT NULL", genericName).
		Find(&vaccines)
	if result.Error != nil {
		return nil, result.Error
	}
	return vaccines, nil
}

func (s *VaccineRepoImpl) GetByGenericAndBrand(ctx context.Context, genericName, brandName string) (*model.Vaccine, error) {
	vaccine := &model.Vaccine{}
	result := s.db.WithContext(ctx).
		Where("generic_name = ? AND brand_name = ?", genericName, brandName).
		First(vaccine)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return vaccine, nil
}

// GetTravelVaccines region 为空时返回全部旅行疫苗
func (s *VaccineRepoImpl) GetTravelVaccines(ctx context.Context, region string) ([]*model.Vaccine, error) {
	vaccines := make([]*model.Vaccine, 0)
	query := s.db.WithContext(ctx).
		Where("is_travel_vaccine = 1 AND brand_name IS NULL")
	if region != "" {
		query = query.Where("region = ?", region)
	}
	result := query.Order("generic_name ASC").Find(&vaccines)
	if result.Error != nil {
		return nil, result.Error
	}
	return vaccines, nil
}
