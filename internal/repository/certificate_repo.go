package repository

import (
	"VaccineVault/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CertificateRepo interface {
	GetById(ctx context.Context, id uint64) (*model.VaccineCertificate, error)
	GetByUsers(ctx context.Context, userIDs []uint64) ([]*model.VaccineCertificate, error)
	Create(ctx context.Context, cert *model.VaccineCertificate) error
	Delete(ctx context.Context, id uint64) error
}

type CertificateRepoImpl struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) CertificateRepo {
	return &CertificateRepoImpl{db: db}
}

func (s *CertificateRepoImpl) GetById(ctx context.Context, id uint64) (*model.VaccineCertificate, error) {
	cert := &model.VaccineCertificate{}
	result := s.db.WithContext(ctx).First(cert, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return cert, nil
}

func (s *CertificateRepoImpl) GetByUsers(ctx context.Context, userIDs []uint64) ([]*model.VaccineCertificate, error) {
	certs := make([]*model.VaccineCertificate, 0)
	result := s.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&certs)
	if result.Error != nil {
		return nil, result.Error
	}
	return certs, nil
}

func (s *CertificateRepoImpl) Create(ctx context.Context, cert *model.VaccineCertificate) error {
	return s.db.WithContext(ctx).Create(cert).Error
}

func (s *CertificateRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.VaccineCertificate{}, id).Error
}
