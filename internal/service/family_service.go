package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/security"
	"VaccineVault/internal/repository"
	"context"

	"github.com/google/uuid"
)

type FamilyService interface {
	AddMember(ctx context.Context, adminID uint64, memberDTO *dto.AddMemberDTO) (*dto.MemberDTO, error)
	ListMembers(ctx context.Context, adminID uint64) ([]*dto.MemberDTO, error)
	MemberVaccines(ctx context.Context, adminID, memberID uint64) ([]*dto.ProgressDTO, error)
	Overview(ctx context.Context, adminID uint64) ([]*dto.MemberOverviewDTO, error)
	UpdateMember(ctx context.Context, adminID, memberID uint64, updateDTO *dto.UpdateMemberDTO) error
	DeleteMember(ctx context.Context, adminID, memberID uint64) error
}

type FamilyServiceImpl struct {
	userRepo        repository.UserRepo
	userVaccineRepo repository.UserVaccineRepo
}

func NewFamilyService(userRepo repository.UserRepo, userVaccineRepo repository.UserVaccineRepo) FamilyService {
	return &FamilyServiceImpl{
		userRepo:        userRepo,
		userVaccineRepo: userVaccineRepo,
	}
}

// AddMember 创建家庭子账号：继承管理员的住址与邮编，不开放独立登录
func (s *FamilyServiceImpl) AddMember(ctx context.Context, adminID uint64, memberDTO *dto.AddMemberDTO) (*dto.MemberDTO, error) {
	admin, err := s.userRepo.GetUserById(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.IsDelete {
		return nil, ErrUserNotFound
	}

	dob, err := parseDate(memberDTO.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// 子账号生成一次性随机口令，后续通过管理员账号操作
	tempPassword, err := security.HashPassword(uuid.NewString())
	if err != nil {
		return nil, err
	}

	member := &model.User{
		Password:            &tempPassword,
		Name:                memberDTO.Name,
		DateOfBirth:         dob,
		Gender:              memberDTO.Gender,
		Address:             admin.Address,
		Pincode:             admin.Pincode,
		MedicalConditions:   memberDTO.MedicalConditions,
		FamilyAdminID:       &adminID,
		RelationshipToAdmin: &memberDTO.RelationshipToAdmin,
	}
	roles := []*model.UserRole{{RoleID: 1}}
	if err = s.userRepo.CreateUser(ctx, member, roles); err != nil {
		return nil, err
	}

	return memberToDTO(member), nil
}

func (s *FamilyServiceImpl) ListMembers(ctx context.Context, adminID uint64) ([]*dto.MemberDTO, error) {
	members, err := s.userRepo.GetFamilyMembers(ctx, adminID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MemberDTO, 0, len(members))
	for _, m := range members {
		out = append(out, memberToDTO(m))
	}
	return out, nil
}

// MemberVaccines 查看成员的接种进度，先校验归属
func (s *FamilyServiceImpl) MemberVaccines(ctx context.Context, adminID, memberID uint64) ([]*dto.ProgressDTO, error) {
	if _, err := s.ownedMember(ctx, adminID, memberID); err != nil {
		return nil, err
	}

	rows, err := s.userVaccineRepo.GetByUser(ctx, memberID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProgressDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, progressToDTO(row, &row.Vaccine))
	}
	return out, nil
}

// Overview 家庭总览：每个成员（含管理员本人）的完成数与最近到期
func (s *FamilyServiceImpl) Overview(ctx context.Context, adminID uint64) ([]*dto.MemberOverviewDTO, error) {
	admin, err := s.userRepo.GetUserById(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.IsDelete {
		return nil, ErrUserNotFound
	}

	members, err := s.userRepo.GetFamilyMembers(ctx, adminID)
	if err != nil {
		return nil, err
	}
	members = append([]*model.User{admin}, members...)

	out := make([]*dto.MemberOverviewDTO, 0, len(members))
	for _, m := range members {
		rows, err := s.userVaccineRepo.GetByUser(ctx, m.ID)
		if err != nil {
			return nil, err
		}

		overview := &dto.MemberOverviewDTO{
			UserID:       m.ID,
			Name:         m.Name,
			Relationship: m.RelationshipToAdmin,
		}
		for _, row := range rows {
			switch row.Status {
			case consts.VaccineStatusCompleted:
				overview.CompletedCount++
			default:
				overview.PendingCount++
			}
			if row.NextDueDate == nil {
				continue
			}
			if overview.NextDueDate == nil || *formatDate(row.NextDueDate) < *overview.NextDueDate {
				overview.NextDueDate = formatDate(row.NextDueDate)
				overview.NextVaccine = &row.Vaccine.GenericName
			}
		}
		out = append(out, overview)
	}
	return out, nil
}

func (s *FamilyServiceImpl) UpdateMember(ctx context.Context, adminID, memberID uint64, updateDTO *dto.UpdateMemberDTO) error {
	member, err := s.ownedMember(ctx, adminID, memberID)
	if err != nil {
		return err
	}

	patch := &model.User{ID: member.ID}
	if updateDTO.Name != nil {
		patch.Name = *updateDTO.Name
	}
	patch.Gender = updateDTO.Gender
	patch.RelationshipToAdmin = updateDTO.RelationshipToAdmin
	patch.MedicalConditions = updateDTO.MedicalConditions
	return s.userRepo.UpdateUser(ctx, patch)
}

// DeleteMember 删除成员并级联清理其进度行、证书与接种记录
func (s *FamilyServiceImpl) DeleteMember(ctx context.Context, adminID, memberID uint64) error {
	member, err := s.ownedMember(ctx, adminID, memberID)
	if err != nil {
		return err
	}
	return s.userRepo.DeleteUser(ctx, member.ID)
}

func (s *FamilyServiceImpl) ownedMember(ctx context.Context, adminID, memberID uint64) (*model.User, error) {
	member, err := s.userRepo.GetUserById(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.IsDelete {
		return nil, ErrMemberNotFound
	}
	if member.FamilyAdminID == nil || *member.FamilyAdminID != adminID {
		return nil, ErrNotFamilyAdmin
	}
	return member, nil
}

func memberToDTO(m *model.User) *dto.MemberDTO {
	return &dto.MemberDTO{
		UserID:            m.ID,
		Name:              m.Name,
		DateOfBirth:       m.DateOfBirth.Format(dateLayout),
		Gender:            m.Gender,
		Relationship:      m.RelationshipToAdmin,
		MedicalConditions: m.MedicalConditions,
	}
}
