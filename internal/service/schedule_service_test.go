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

// 内存版仓库，覆盖排期服务用到的查询与行锁更新

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func (f *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) GetFamilyMembers(_ context.Context, adminID uint64) ([]*model.User, error) {
	out := make([]*model.User, 0)
	for _, u := range f.users {
		if u.FamilyAdminID != nil && *u.FamilyAdminID == adminID && !u.IsDelete {
			out = append(out, u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) GetRoleNames(context.Context, uint64) ([]string, error) {
	return []string{consts.RoleUser}, nil
}
func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User, _ []*model.UserRole) error {
	user.ID = uint64(len(f.users) + 1)
	f.users[user.ID] = user
	return nil
}
func (f *fakeUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	return nil
}
func (f *fakeUserRepo) UpdatePushToken(_ context.Context, id uint64, token string) error {
	if u, ok := f.users[id]; ok {
		u.PushToken = &token
	}
	return nil
}
func (f *fakeUserRepo) DeleteUser(_ context.Context, id uint64) error {
	if u, ok := f.users[id]; ok {
		u.IsDelete = true
	}
	return nil
}

type fakeVaccineRepo struct {
	vaccines map[uint64]*model.Vaccine
}

func (f *fakeVaccineRepo) GetVaccineById(_ context.Context, id uint64) (*model.Vaccine, error) {
	return f.vaccines[id], nil
}
func (f *fakeVaccineRepo) GetGenericVaccines(context.Context) ([]*model.Vaccine, error) {
	out := make([]*model.Vaccine, 0)
	for _, v := range f.vaccines {
		if v.IsGeneric() {
			out = append(out, v)
		}
	}
	return out, nil
}
func (f *fakeVaccineRepo) GetBrandsByGenericName(_ context.Context, genericName string) ([]*model.Vaccine, error) {
	out := make([]*model.Vaccine, 0)
	for _, v := range f.vaccines {
		if !v.IsGeneric() && v.GenericName == genericName {
			out = append(out, v)
		}
	}
	return out, nil
}
func (f *fakeVaccineRepo) GetByGenericAndBrand(_ context.Context, genericName, brandName string) (*model.Vaccine, error) {
	for _, v := range f.vaccines {
		if v.GenericName == genericName && v.BrandName != nil && *v.BrandName == brandName {
			return v, nil
		}
	}
	return nil, nil
}
func (f *fakeVaccineRepo) GetTravelVaccines(_ context.Context, region string) ([]*model.Vaccine, error) {
	out := make([]*model.Vaccine, 0)
	for _, v := range f.vaccines {
		if v.IsTravelVaccine && v.IsGeneric() && (region == "" || (v.Region != nil && *v.Region == region)) {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeUserVaccineRepo struct {
	rows     map[uint64]*model.UserVaccine
	vaccines map[uint64]*model.Vaccine
	nextID   uint64
}

func (f *fakeUserVaccineRepo) GetByIdAndUser(_ context.Context, id, userID uint64) (*model.UserVaccine, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, nil
	}
	clone := *row
	return &clone, nil
}
func (f *fakeUserVaccineRepo) GetByUserAndVaccine(_ context.Context, userID, vaccineID uint64) (*model.UserVaccine, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.VaccineID == vaccineID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}
func (f *fakeUserVaccineRepo) GetByUser(_ context.Context, userID uint64) ([]*model.UserVaccine, error) {
	out := make([]*model.UserVaccine, 0)
	for _, row := range f.rows {
		if row.UserID == userID {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}
func (f *fakeUserVaccineRepo) GetByGenericName(_ context.Context, userID uint64, genericName string) (*model.UserVaccine, error) {
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if def, ok := f.vaccines[row.VaccineID]; ok && def.GenericName == genericName {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}
func (f *fakeUserVaccineRepo) GetPendingByGenericName(_ context.Context, userID uint64, genericName string) (*model.UserVaccine, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.Status == consts.VaccineStatusPending && row.Vaccine.GenericName == genericName {
			clone := *row
			return &clone, nil
		}
	}
	return nil, nil
}
func (f *fakeUserVaccineRepo) EnsureProgress(_ context.Context, progress *model.UserVaccine) error {
	for _, row := range f.rows {
		if row.UserID == progress.UserID && row.VaccineID == progress.VaccineID {
			*progress = *row
			return nil
		}
	}
	f.nextID++
	progress.ID = f.nextID
	f.rows[progress.ID] = progress
	return nil
}
func (f *fakeUserVaccineRepo) Create(_ context.Context, progress *model.UserVaccine) error {
	f.nextID++
	progress.ID = f.nextID
	f.rows[progress.ID] = progress
	return nil
}
func (f *fakeUserVaccineRepo) SaveWithLock(_ context.Context, id uint64, update func(*model.UserVaccine) (*model.UserVaccine, error)) (*model.UserVaccine, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, errors.New("记录不存在")
	}
	clone := *row
	next, err := update(&clone)
	if err != nil {
		return nil, err
	}
	f.rows[id] = next
	return next, nil
}
func (f *fakeUserVaccineRepo) GetDueReminders(_ context.Context, dueBefore time.Time) ([]*model.UserVaccine, error) {
	out := make([]*model.UserVaccine, 0)
	for _, row := range f.rows {
		if row.Status == consts.VaccineStatusPending && row.NextDueDate != nil && !row.NextDueDate.After(dueBefore) {
			out = append(out, row)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func newScheduleFixture() (*ScheduleServiceImpl, *fakeUserRepo, *fakeVaccineRepo, *fakeUserVaccineRepo) {
	userRepo := &fakeUserRepo{users: map[uint64]*model.User{}}
	vaccineRepo := &fakeVaccineRepo{vaccines: map[uint64]*model.Vaccine{}}
	rowRepo := &fakeUserVaccineRepo{rows: map[uint64]*model.UserVaccine{}, vaccines: vaccineRepo.vaccines}
	svc := NewScheduleService(userRepo, vaccineRepo, rowRepo).(*ScheduleServiceImpl)
	return svc, userRepo, vaccineRepo, rowRepo
}

func TestSeedEligibleIsIdempotent(t *testing.T) {
	svc, userRepo, vaccineRepo, rowRepo := newScheduleFixture()

	dob := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	user := &model.User{ID: 1, Name: "测试用户", DateOfBirth: dob}
	userRepo.users[1] = user
	vaccineRepo.vaccines[1] = &model.Vaccine{
		ID:                      1,
		GenericName:             "Hepatitis B Vaccine",
		FirstDoseEligibilityAge: 1,
		PrimaryDoseCount:        3,
	}

	if err := svc.seedEligible(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	if len(rowRepo.rows) != 1 {
		t.Fatalf("播种后进度行数 = %d, want 1", len(rowRepo.rows))
	}

	var seeded *model.UserVaccine
	for _, row := range rowRepo.rows {
		seeded = row
	}
	// 1月31日出生 + 1个月 → 2月28日（2023 非闰年）
	want := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	if !seeded.NextDueDate.Equal(want) {
		t.Errorf("播种到期日 = %v, want %v", seeded.NextDueDate, want)
	}

	// 再播一次：不新建行，不覆盖到期日
	altered := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	seeded.NextDueDate = &altered
	if err := svc.seedEligible(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	if len(rowRepo.rows) != 1 {
		t.Errorf("重复播种产生了新行: %d", len(rowRepo.rows))
	}
	if !seeded.NextDueDate.Equal(altered) {
		t.Errorf("重复播种覆盖了已有到期日: %v", seeded.NextDueDate)
	}
}

func TestSeedEligibleSkipsIneligibleAndTravel(t *testing.T) {
	svc, userRepo, vaccineRepo, rowRepo := newScheduleFixture()

	dob := time.Now().UTC().AddDate(0, -2, 0)
	user := &model.User{ID: 1, DateOfBirth: dob}
	userRepo.users[1] = user
	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "BCG", FirstDoseEligibilityAge: 0, PrimaryDoseCount: 1}
	vaccineRepo.vaccines[2] = &model.Vaccine{ID: 2, GenericName: "MMR", FirstDoseEligibilityAge: 9, PrimaryDoseCount: 2}
	vaccineRepo.vaccines[3] = &model.Vaccine{ID: 3, GenericName: "Yellow Fever Vaccine", IsTravelVaccine: true, PrimaryDoseCount: 1}

	if err := svc.seedEligible(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	if len(rowRepo.rows) != 1 {
		t.Fatalf("进度行数 = %d, want 1（只有 BCG 够龄且非旅行疫苗）", len(rowRepo.rows))
	}
	for _, row := range rowRepo.rows {
		if row.VaccineID != 1 {
			t.Errorf("播种了错误的疫苗: %d", row.VaccineID)
		}
	}
}

func TestMarkTakenBrandGate(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 3, InterDoseIntervals: []int{30, 150},
	}
	rowRepo.rows[10] = &model.UserVaccine{ID: 10, UserID: 1, VaccineID: 1, Status: consts.VaccineStatusPending}
	rowRepo.nextID = 10

	res, err := svc.MarkTaken(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "select_brand" {
		t.Fatalf("action = %s, want select_brand", res.Action)
	}
	if len(res.Brands) != 1 || res.Brands[0].BrandName != "Engerix-B" {
		t.Errorf("候选品牌不符: %+v", res.Brands)
	}
	if rowRepo.rows[10].CompletedDoses != 1 {
		t.Errorf("第一剂未落库: %d", rowRepo.rows[10].CompletedDoses)
	}
	if rowRepo.rows[10].NextDueDate != nil {
		t.Errorf("门控中不应有到期日")
	}
}

func TestSelectBrandSchedulesFromDoseDate(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 3, InterDoseIntervals: []int{30, 150},
	}
	doseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rowRepo.rows[10] = &model.UserVaccine{
		ID: 10, UserID: 1, VaccineID: 1,
		Status: consts.VaccineStatusPending, CompletedDoses: 1, LastDoseDate: &doseDate,
	}
	rowRepo.nextID = 10

	res, err := svc.SelectBrand(context.Background(), 1, 10, 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "scheduled" {
		t.Fatalf("action = %s, want scheduled", res.Action)
	}
	if rowRepo.rows[10].VaccineID != 2 {
		t.Errorf("进度行未改指品牌条目: %d", rowRepo.rows[10].VaccineID)
	}
	// 以第一剂日期为锚点 + 30 天
	want := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	if !rowRepo.rows[10].NextDueDate.Equal(want) {
		t.Errorf("nextDue = %v, want %v", rowRepo.rows[10].NextDueDate, want)
	}
}

func TestSelectBrandMismatch(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[3] = &model.Vaccine{
		ID: 3, GenericName: "Typhoid Vaccine", BrandName: strPtr("Typbar"),
		PrimaryDoseCount: 1,
	}
	doseDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rowRepo.rows[10] = &model.UserVaccine{
		ID: 10, UserID: 1, VaccineID: 1,
		Status: consts.VaccineStatusPending, CompletedDoses: 1, LastDoseDate: &doseDate,
	}

	if _, err := svc.SelectBrand(context.Background(), 1, 10, 3); !errors.Is(err, ErrBrandMismatch) {
		t.Errorf("err = %v, want ErrBrandMismatch", err)
	}
}

func TestLogCatchUpRequiresBrandOnGenericRow(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 3, InterDoseIntervals: []int{30, 150},
	}
	rowRepo.rows[10] = &model.UserVaccine{ID: 10, UserID: 1, VaccineID: 1, Status: consts.VaccineStatusPending}

	_, brands, err := svc.LogCatchUp(context.Background(), 1, 10, &dto.CatchUpDTO{
		DoseDate: "2024-02-01", CompletedDoses: 2,
	})
	if !errors.Is(err, ErrBrandRequired) {
		t.Fatalf("err = %v, want ErrBrandRequired", err)
	}
	if len(brands) != 1 {
		t.Errorf("应返回候选品牌列表, got %d", len(brands))
	}
}

func TestLogCatchUpMarkAllCompletes(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	brandID := uint64(2)
	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 3, InterDoseIntervals: []int{30, 150},
	}
	rowRepo.rows[10] = &model.UserVaccine{ID: 10, UserID: 1, VaccineID: 1, Status: consts.VaccineStatusPending}

	res, _, err := svc.LogCatchUp(context.Background(), 1, 10, &dto.CatchUpDTO{
		DoseDate: "2024-02-01", MarkAll: true, BrandID: &brandID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "completed" {
		t.Errorf("action = %s, want completed", res.Action)
	}
	row := rowRepo.rows[10]
	if row.CompletedDoses != 3 || row.Status != consts.VaccineStatusCompleted {
		t.Errorf("补录后进度 = %d/%s", row.CompletedDoses, row.Status)
	}
	if row.VaccineID != 2 || row.BrandTakenID == nil || *row.BrandTakenID != 2 {
		t.Errorf("品牌未落库: vaccineID=%d brandTaken=%v", row.VaccineID, row.BrandTakenID)
	}
}

func TestCreateSituationalSchedule(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[5] = &model.Vaccine{
		ID: 5, GenericName: consts.RabiesPostExposureName,
		BrandName:          strPtr(consts.RabiesUnimmunizedBrand),
		PrimaryDoseCount:   4,
		InterDoseIntervals: []int{3, 4, 7},
	}

	res, err := svc.CreateSituationalSchedule(context.Background(), 1, &dto.SituationalDTO{
		ExposureDate: "2024-05-01",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.NextDueDate == nil || *res.NextDueDate != "2024-05-01" {
		t.Errorf("第 0 天剂次应立即到期: %v", res.NextDueDate)
	}

	// 已有进行中的程序 → 冲突
	for _, row := range rowRepo.rows {
		row.Vaccine = *vaccineRepo.vaccines[5]
	}
	_, err = svc.CreateSituationalSchedule(context.Background(), 1, &dto.SituationalDTO{
		ExposureDate: "2024-05-02",
	})
	if !errors.Is(err, ErrScheduleConflict) {
		t.Errorf("err = %v, want ErrScheduleConflict", err)
	}
}

func TestMarkTakenCompletedWithoutBooster(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 2, InterDoseIntervals: []int{30},
	}
	rowRepo.rows[10] = &model.UserVaccine{
		ID: 10, UserID: 1, VaccineID: 2,
		Status: consts.VaccineStatusCompleted, CompletedDoses: 2,
	}

	if _, err := svc.MarkTaken(context.Background(), 1, 10); !errors.Is(err, ErrProgressCompleted) {
		t.Errorf("err = %v, want ErrProgressCompleted", err)
	}
}

func TestMarkTakenBoosterKeepsRecurring(t *testing.T) {
	svc, _, vaccineRepo, rowRepo := newScheduleFixture()

	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Tetanus Vaccine", BrandName: strPtr("TT"),
		PrimaryDoseCount: 1, HasRecurringBooster: true, BoosterIntervalYears: 10,
	}
	past := time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC)
	rowRepo.rows[10] = &model.UserVaccine{
		ID: 10, UserID: 1, VaccineID: 2,
		Status: consts.VaccineStatusPending, CompletedDoses: 1,
		LastDoseDate: &past, NextDueDate: &past,
	}

	res, err := svc.MarkTaken(context.Background(), 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "scheduled" {
		t.Errorf("action = %s, want scheduled", res.Action)
	}
	row := rowRepo.rows[10]
	if row.CompletedDoses != 1 || row.Status != consts.VaccineStatusPending {
		t.Errorf("加强针后进度 = %d/%s", row.CompletedDoses, row.Status)
	}
	if row.NextDueDate == nil || row.NextDueDate.Year() < time.Now().Year()+9 {
		t.Errorf("加强针未按年推进: %v", row.NextDueDate)
	}
}

func TestSeedAfterBrandSelectionKeepsSingleRow(t *testing.T) {
	svc, userRepo, vaccineRepo, rowRepo := newScheduleFixture()

	dob := time.Now().UTC().AddDate(-1, 0, 0)
	user := &model.User{ID: 1, DateOfBirth: dob}
	userRepo.users[1] = user
	vaccineRepo.vaccines[1] = &model.Vaccine{ID: 1, GenericName: "Hepatitis B Vaccine", PrimaryDoseCount: 3}
	vaccineRepo.vaccines[2] = &model.Vaccine{
		ID: 2, GenericName: "Hepatitis B Vaccine", BrandName: strPtr("Engerix-B"),
		PrimaryDoseCount: 3, InterDoseIntervals: []int{30, 150},
	}

	if err := svc.seedEligible(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	if len(rowRepo.rows) != 1 {
		t.Fatalf("播种后进度行数 = %d, want 1", len(rowRepo.rows))
	}
	var rowID uint64
	for id := range rowRepo.rows {
		rowID = id
	}

	// 第一剂进门控，随后选牌把行指向品牌条目
	res, err := svc.MarkTaken(context.Background(), 1, rowID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != "select_brand" {
		t.Fatalf("action = %s, want select_brand", res.Action)
	}
	if _, err := svc.SelectBrand(context.Background(), 1, rowID, 2); err != nil {
		t.Fatal(err)
	}
	if rowRepo.rows[rowID].VaccineID != 2 {
		t.Fatalf("进度行未改指品牌条目: %d", rowRepo.rows[rowID].VaccineID)
	}

	// 重新播种：同一疫苗族不得再建第二行
	if err := svc.seedEligible(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	if len(rowRepo.rows) != 1 {
		t.Errorf("同一疫苗族的进度行数 = %d, want 1", len(rowRepo.rows))
	}
}
