package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/minio"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/repository"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
)

const certSniffLen = 512

type CertificateService interface {
	Upload(ctx context.Context, operatorID, ownerID uint64, userVaccineID *uint64, file *multipart.FileHeader) (*dto.CertificateDTO, error)
	Download(ctx context.Context, operatorID, certID uint64) (io.ReadCloser, *model.VaccineCertificate, error)
	ListForFamily(ctx context.Context, adminID uint64) ([]*dto.CertificateDTO, error)
	Delete(ctx context.Context, operatorID, certID uint64) error
}

type CertificateServiceImpl struct {
	certRepo repository.CertificateRepo
	userRepo repository.UserRepo
}

func NewCertificateService(certRepo repository.CertificateRepo, userRepo repository.UserRepo) CertificateService {
	return &CertificateServiceImpl{
		certRepo: certRepo,
		userRepo: userRepo,
	}
}

// Upload 证书入库：嗅探真实类型后写入对象存储
// operator 必须是本人或其家庭管理员
func (s *CertificateServiceImpl) Upload(ctx context.Context, operatorID, ownerID uint64, userVaccineID *uint64, file *multipart.FileHeader) (*dto.CertificateDTO, error) {
	if err := s.authorize(ctx, operatorID, ownerID); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	head := make([]byte, certSniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	contentType, ok := util.GetSafeContentType(head[:n], file.Header.Get("Content-Type"))
	if !ok {
		return nil, ErrFileNotSupported
	}
	if _, err = src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("certs/%d/%s%s", ownerID, uuid.NewString(), filepath.Ext(file.Filename))
	if _, err = minio.UploadFile(ctx, objectName, src, file.Size, contentType); err != nil {
		return nil, err
	}

	cert := &model.VaccineCertificate{
		UserID:        ownerID,
		UserVaccineID: userVaccineID,
		FileName:      file.Filename,
		ObjectName:    objectName,
		ContentType:   contentType,
		Size:          file.Size,
	}
	if err = s.certRepo.Create(ctx, cert); err != nil {
		_ = minio.DeleteFile(ctx, objectName)
		return nil, err
	}

	return certToDTO(cert), nil
}

// Download 鉴权后回源对象存储，调用方负责关闭流
func (s *CertificateServiceImpl) Download(ctx context.Context, operatorID, certID uint64) (io.ReadCloser, *model.VaccineCertificate, error) {
	cert, err := s.certRepo.GetById(ctx, certID)
	if err != nil {
		return nil, nil, err
	}
	if cert == nil {
		return nil, nil, ErrCertificateNotFound
	}
	if err = s.authorize(ctx, operatorID, cert.UserID); err != nil {
		return nil, nil, err
	}

	reader, _, _, err := minio.GetFile(ctx, cert.ObjectName)
	if err != nil {
		return nil, nil, err
	}
	return reader, cert, nil
}

// ListForFamily 本人及名下家庭成员的全部证书
func (s *CertificateServiceImpl) ListForFamily(ctx context.Context, adminID uint64) ([]*dto.CertificateDTO, error) {
	members, err := s.userRepo.GetFamilyMembers(ctx, adminID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(members)+1)
	userIDs = append(userIDs, adminID)
	for _, m := range members {
		userIDs = append(userIDs, m.ID)
	}

	certs, err := s.certRepo.GetByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CertificateDTO, 0, len(certs))
	for _, cert := range certs {
		out = append(out, certToDTO(cert))
	}
	return out, nil
}

func (s *CertificateServiceImpl) Delete(ctx context.Context, operatorID, certID uint64) error {
	cert, err := s.certRepo.GetById(ctx, certID)
	if err != nil {
		return err
	}
	if cert == nil {
		return ErrCertificateNotFound
	}
	if err = s.authorize(ctx, operatorID, cert.UserID); err != nil {
		return err
	}

	if err = s.certRepo.Delete(ctx, certID); err != nil {
		return err
	}
	return minio.DeleteFile(ctx, cert.ObjectName)
}

// authorize 本人直接放行，否则要求 operator 是 owner 的家庭管理员
func (s *CertificateServiceImpl) authorize(ctx context.Context, operatorID, ownerID uint64) error {
	if operatorID == ownerID {
		return nil
	}
	owner, err := s.userRepo.GetUserById(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil || owner.IsDelete {
		return ErrUserNotFound
	}
	if owner.FamilyAdminID == nil || *owner.FamilyAdminID != operatorID {
		return UnauthorizedError
	}
	return nil
}

func certToDTO(cert *model.VaccineCertificate) *dto.CertificateDTO {
	return &dto.CertificateDTO{
		ID:            cert.ID,
		UserID:        cert.UserID,
		UserVaccineID: cert.UserVaccineID,
		FileName:      cert.FileName,
		ContentType:   cert.ContentType,
		Size:          cert.Size,
		CreatedAt:     cert.CreatedAt.Format(dateLayout),
	}
}
