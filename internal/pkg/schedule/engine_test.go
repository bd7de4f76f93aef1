package schedule

import (
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"errors"
	"testing"
)

func brandDef(count int, intervals []int, booster bool, boosterYears int) *model.Vaccine {
	brand := "BrandX"
	return &model.Vaccine{
		ID:                   2,
		GenericName:          "Hepatitis B Vaccine",
		BrandName:            &brand,
		PrimaryDoseCount:     count,
		InterDoseIntervals:   intervals,
		HasRecurringBooster:  booster,
		BoosterIntervalYears: boosterYears,
	}
}

func genericDef(count int) *model.Vaccine {
	return &model.Vaccine{
		ID:               1,
		GenericName:      "Hepatitis B Vaccine",
		PrimaryDoseCount: count,
	}
}

func newProgress(vaccineID uint64, doses int) *model.UserVaccine {
	return &model.UserVaccine{
		ID:             10,
		UserID:         1,
		VaccineID:      vaccineID,
		Status:         consts.VaccineStatusPending,
		CompletedDoses: doses,
	}
}

func TestRecordDoseIntervalChain(t *testing.T) {
	// 间隔 [30, 60]，三剂：第一剂 2023-01-01 后应排到 01-31，第二剂当天打完排到 +60 天
	// 用非闰年，01-31 + 60 天正好落在 04-01
	def := brandDef(3, []int{30, 60}, false, 0)
	progress := newProgress(def.ID, 0)

	res, err := RecordDose(progress, def, nil, date(2023, 1, 1), 1)
	if err != nil {
		t.Fatalf("第一剂: %v", err)
	}
	if res.Action != ActionScheduled {
		t.Fatalf("第一剂 action = %s, want scheduled", res.Action)
	}
	if !res.Progress.NextDueDate.Equal(date(2023, 1, 31)) {
		t.Errorf("第一剂后 nextDue = %v, want 2023-01-31", res.Progress.NextDueDate)
	}

	res, err = RecordDose(res.Progress, def, nil, date(2023, 1, 31), 2)
	if err != nil {
		t.Fatalf("第二剂: %v", err)
	}
	if !res.Progress.NextDueDate.Equal(date(2023, 4, 1)) {
		t.Errorf("第二剂后 nextDue = %v, want 2023-04-01", res.Progress.NextDueDate)
	}
	if res.Progress.Status != consts.VaccineStatusPending {
		t.Errorf("第二剂后 status = %s, want pending", res.Progress.Status)
	}
}

func TestRecordDoseCompletesWithoutBooster(t *testing.T) {
	def := brandDef(2, []int{28}, false, 0)
	progress := newProgress(def.ID, 0)

	res, err := RecordDose(progress, def, nil, date(2024, 3, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	res, err = RecordDose(res.Progress, def, nil, date(2024, 3, 29), 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionCompleted {
		t.Errorf("action = %s, want completed", res.Action)
	}
	if res.Progress.Status != consts.VaccineStatusCompleted {
		t.Errorf("status = %s, want completed", res.Progress.Status)
	}
	if res.Progress.NextDueDate != nil {
		t.Errorf("nextDue = %v, want nil", res.Progress.NextDueDate)
	}
}

func TestRecordDoseBoosterRecurrence(t *testing.T) {
	// 基础针次完成后按年推进，状态保持 pending
	def := brandDef(1, nil, true, 10)
	progress := newProgress(def.ID, 0)

	res, err := RecordDose(progress, def, nil, date(2024, 6, 15), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionScheduled {
		t.Errorf("action = %s, want scheduled", res.Action)
	}
	if res.Progress.Status != consts.VaccineStatusPending {
		t.Errorf("status = %s, want pending", res.Progress.Status)
	}
	if !res.Progress.NextDueDate.Equal(date(2034, 6, 15)) {
		t.Errorf("nextDue = %v, want 2034-06-15", res.Progress.NextDueDate)
	}
}

func TestRecordDoseBrandGate(t *testing.T) {
	generic := genericDef(3)
	brands := []*model.Vaccine{brandDef(3, []int{30, 60}, false, 0)}
	progress := newProgress(generic.ID, 0)

	res, err := RecordDose(progress, generic, brands, date(2024, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionSelectBrand {
		t.Fatalf("action = %s, want select_brand", res.Action)
	}
	if len(res.Brands) != 1 {
		t.Errorf("候选品牌数 = %d, want 1", len(res.Brands))
	}
	if res.Progress.NextDueDate != nil {
		t.Errorf("门控时不应计算 nextDue, got %v", res.Progress.NextDueDate)
	}
	if res.Progress.CompletedDoses != 1 {
		t.Errorf("completedDoses = %d, want 1", res.Progress.CompletedDoses)
	}
}

func TestRecordDoseGenericWithoutBrandsFallsThrough(t *testing.T) {
	// 无品牌变体的单剂疫苗按分支 C 直接完成
	generic := genericDef(1)
	progress := newProgress(generic.ID, 0)

	res, err := RecordDose(progress, generic, nil, date(2024, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionCompleted {
		t.Errorf("action = %s, want completed", res.Action)
	}
}

func TestRecordDoseInvalidCounts(t *testing.T) {
	def := brandDef(3, []int{30, 60}, false, 0)

	tests := []struct {
		name     string
		current  int
		dosesNow int
	}{
		{"超过总剂次", 0, 4},
		{"零剂次", 0, 0},
		{"负数", 0, -1},
		{"回退", 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := newProgress(def.ID, tt.current)
			_, err := RecordDose(progress, def, nil, date(2024, 1, 1), tt.dosesNow)
			if !errors.Is(err, ErrInvalidDoseCount) {
				t.Errorf("err = %v, want ErrInvalidDoseCount", err)
			}
			if progress.CompletedDoses != tt.current {
				t.Errorf("出错后进度行被改动: %d", progress.CompletedDoses)
			}
		})
	}
}

func TestRecordDoseDoesNotMutateInput(t *testing.T) {
	def := brandDef(2, []int{28}, false, 0)
	progress := newProgress(def.ID, 0)

	res, err := RecordDose(progress, def, nil, date(2024, 1, 1), 1)
	if err != nil {
		t.Fatal(err)
	}
	if progress.CompletedDoses != 0 || progress.NextDueDate != nil || progress.LastDoseDate != nil {
		t.Error("输入进度行不应被原地修改")
	}
	if res.Progress == progress {
		t.Error("结果应是副本")
	}
}

func TestCatchUpAbsoluteCount(t *testing.T) {
	def := brandDef(3, []int{30, 60}, false, 0)
	progress := newProgress(def.ID, 0)

	res, err := CatchUp(progress, def, date(2024, 2, 1), 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.CompletedDoses != 2 {
		t.Errorf("completedDoses = %d, want 2", res.Progress.CompletedDoses)
	}
	if !res.Progress.NextDueDate.Equal(date(2024, 4, 1)) {
		t.Errorf("nextDue = %v, want 2024-04-01", res.Progress.NextDueDate)
	}
}

func TestCatchUpMarkAll(t *testing.T) {
	def := brandDef(3, []int{30, 60}, false, 0)
	progress := newProgress(def.ID, 1)

	res, err := CatchUp(progress, def, date(2024, 2, 1), 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if res.Progress.CompletedDoses != 3 {
		t.Errorf("completedDoses = %d, want 3", res.Progress.CompletedDoses)
	}
	if res.Progress.Status != consts.VaccineStatusCompleted {
		t.Errorf("status = %s, want completed", res.Progress.Status)
	}
}

func TestCatchUpMarkAllWithBooster(t *testing.T) {
	def := brandDef(2, []int{28}, true, 3)
	progress := newProgress(def.ID, 0)

	res, err := CatchUp(progress, def, date(2024, 2, 29), 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Progress.NextDueDate.Equal(date(2027, 2, 28)) {
		t.Errorf("nextDue = %v, want 2027-02-28", res.Progress.NextDueDate)
	}
}

func TestCatchUpRejectsRegression(t *testing.T) {
	def := brandDef(3, []int{30, 60}, false, 0)
	progress := newProgress(def.ID, 2)

	if _, err := CatchUp(progress, def, date(2024, 2, 1), 1, false); !errors.Is(err, ErrInvalidDoseCount) {
		t.Errorf("err = %v, want ErrInvalidDoseCount", err)
	}
}

func TestRecordDoseMissingInterval(t *testing.T) {
	// 品牌条目数据缺失间隔时显式报错而不是越界
	def := brandDef(3, []int{30}, false, 0)
	progress := newProgress(def.ID, 1)

	if _, err := RecordDose(progress, def, nil, date(2024, 1, 1), 2); !errors.Is(err, ErrMissingInterval) {
		t.Errorf("err = %v, want ErrMissingInterval", err)
	}
}

func TestRecordDoseAnchorsToDoseDate(t *testing.T) {
	// 以实际接种日为锚点，即使晚于原定日期
	def := brandDef(2, []int{30}, false, 0)
	progress := newProgress(def.ID, 0)

	late := date(2024, 3, 15)
	res, err := RecordDose(progress, def, nil, late, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Progress.NextDueDate.Equal(AddDays(late, 30)) {
		t.Errorf("nextDue = %v, want %v", res.Progress.NextDueDate, AddDays(late, 30))
	}
	if !res.Progress.LastDoseDate.Equal(late) {
		t.Errorf("lastDoseDate = %v, want %v", res.Progress.LastDoseDate, late)
	}
}
