package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"context"
	"errors"
	"testing"
	"time"
)

func newFamilyFixture() (FamilyService, *fakeUserRepo, *fakeUserVaccineRepo) {
	userRepo := &fakeUserRepo{users: map[uint64]*model.User{}}
	rowRepo := &fakeUserVaccineRepo{rows: map[uint64]*model.UserVaccine{}}
	svc := NewFamilyService(userRepo, rowRepo)
	return svc, userRepo, rowRepo
}

func TestAddMemberInheritsAdminLocation(t *testing.T) {
	svc, userRepo, _ := newFamilyFixture()
	userRepo.users[1] = &model.User{
		ID:      1,
		Name:    "管理员",
		Address: strPtr("12 MG Road, Bengaluru"),
		Pincode: strPtr("560001"),
	}

	member, err := svc.AddMember(context.Background(), 1, &dto.AddMemberDTO{
		Name:                "小孩",
		DateOfBirth:         "2024-05-01",
		RelationshipToAdmin: "child",
	})
	if err != nil {
		t.Fatal(err)
	}

	created := userRepo.users[member.UserID]
	if created.FamilyAdminID == nil || *created.FamilyAdminID != 1 {
		t.Error("成员应挂在管理员名下")
	}
	if created.Address == nil || *created.Address != "12 MG Road, Bengaluru" {
		t.Error("成员应继承管理员住址")
	}
	if created.Pincode == nil || *created.Pincode != "560001" {
		t.Error("成员应继承管理员邮编")
	}
	if created.Password == nil || *created.Password == "" {
		t.Error("子账号应生成随机口令")
	}
	if member.DateOfBirth != "2024-05-01" {
		t.Errorf("DateOfBirth = %s, want 2024-05-01", member.DateOfBirth)
	}
}

func TestMemberVaccinesRejectsForeignMember(t *testing.T) {
	svc, userRepo, _ := newFamilyFixture()
	otherAdmin := uint64(9)
	userRepo.users[1] = &model.User{ID: 1, Name: "管理员"}
	userRepo.users[2] = &model.User{ID: 2, Name: "别家小孩", FamilyAdminID: &otherAdmin}

	if _, err := svc.MemberVaccines(context.Background(), 1, 2); !errors.Is(err, ErrNotFamilyAdmin) {
		t.Errorf("期望 ErrNotFamilyAdmin, 实际 %v", err)
	}
	if _, err := svc.MemberVaccines(context.Background(), 1, 404); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("期望 ErrMemberNotFound, 实际 %v", err)
	}
}

func TestOverviewCountsAndEarliestDue(t *testing.T) {
	svc, userRepo, rowRepo := newFamilyFixture()
	adminID := uint64(1)
	userRepo.users[1] = &model.User{ID: 1, Name: "管理员"}
	userRepo.users[2] = &model.User{ID: 2, Name: "小孩", FamilyAdminID: &adminID, RelationshipToAdmin: strPtr("child")}

	later := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	rowRepo.rows[1] = &model.UserVaccine{
		ID: 1, UserID: 2, VaccineID: 1,
		Status: consts.VaccineStatusPending, NextDueDate: &later,
		Vaccine: model.Vaccine{ID: 1, GenericName: "Typhoid Vaccine"},
	}
	rowRepo.rows[2] = &model.UserVaccine{
		ID: 2, UserID: 2, VaccineID: 2,
		Status: consts.VaccineStatusPending, NextDueDate: &sooner,
		Vaccine: model.Vaccine{ID: 2, GenericName: "Hepatitis B Vaccine"},
	}
	rowRepo.rows[3] = &model.UserVaccine{
		ID: 3, UserID: 2, VaccineID: 3,
		Status:  consts.VaccineStatusCompleted,
		Vaccine: model.Vaccine{ID: 3, GenericName: "BCG Vaccine"},
	}

	out, err := svc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("总览条目数 = %d, want 2", len(out))
	}
	if out[0].UserID != 1 {
		t.Error("管理员本人应排在总览首位")
	}

	child := out[1]
	if child.PendingCount != 2 || child.CompletedCount != 1 {
		t.Errorf("计数 pending=%d completed=%d, want 2/1", child.PendingCount, child.CompletedCount)
	}
	if child.NextDueDate == nil || *child.NextDueDate != "2026-09-15" {
		t.Errorf("最近到期 = %v, want 2026-09-15", child.NextDueDate)
	}
	if child.NextVaccine == nil || *child.NextVaccine != "Hepatitis B Vaccine" {
		t.Errorf("最近到期疫苗 = %v, want Hepatitis B Vaccine", child.NextVaccine)
	}
}

func TestDeleteMemberMarksDeleted(t *testing.T) {
	svc, userRepo, _ := newFamilyFixture()
	adminID := uint64(1)
	userRepo.users[1] = &model.User{ID: 1, Name: "管理员"}
	userRepo.users[2] = &model.User{ID: 2, Name: "小孩", FamilyAdminID: &adminID}

	if err := svc.DeleteMember(context.Background(), 1, 2); err != nil {
		t.Fatal(err)
	}
	if !userRepo.users[2].IsDelete {
		t.Error("删除后成员应标记 is_delete")
	}

	if err := svc.DeleteMember(context.Background(), 1, 2); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("重复删除期望 ErrMemberNotFound, 实际 %v", err)
	}
}
