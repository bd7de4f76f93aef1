package schedule

import (
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"errors"
	"time"
)

// 纯计算引擎：进度行 + 目录条目 + 剂次事件 → 新进度行
// 不做任何 IO，持久化由调用方负责

var (
	ErrInvalidDoseCount = errors.New("剂次数量非法")
	ErrMissingInterval  = errors.New("目录条目缺少剂次间隔数据")
)

type Action string

const (
	// ActionScheduled 已排期：还有后续剂次或周期加强针
	ActionScheduled Action = "scheduled"
	// ActionCompleted 基础针次已全部完成且无加强针
	ActionCompleted Action = "completed"
	// ActionSelectBrand 通用条目不携带间隔数据，需先选定品牌
	ActionSelectBrand Action = "select_brand"
)

// Result 引擎输出，Progress 是输入进度行的副本，调用方写回
type Result struct {
	Progress *model.UserVaccine
	Action   Action
	Brands   []*model.Vaccine
}

// RecordDose 记录一次累计剂次变更
// brands 是与通用条目同族的品牌候选，由调用方查出；仅在品牌门控时用到
func RecordDose(progress *model.UserVaccine, def *model.Vaccine, brands []*model.Vaccine, doseDate time.Time, dosesNow int) (*Result, error) {
	if dosesNow < 1 || dosesNow < progress.CompletedDoses || dosesNow > def.PrimaryDoseCount {
		return nil, ErrInvalidDoseCount
	}

	clone := *progress
	clone.CompletedDoses = dosesNow
	doseDay := Day(doseDate)
	clone.LastDoseDate = &doseDay

	// 品牌门控：通用条目只能见证第一剂，存在品牌候选时先让用户选定品牌
	if def.IsGeneric() && dosesNow == 1 && len(brands) > 0 {
		clone.Status = consts.VaccineStatusPending
		clone.NextDueDate = nil
		return &Result{Progress: &clone, Action: ActionSelectBrand, Brands: brands}, nil
	}

	return applyBranches(&clone, def, doseDay, dosesNow)
}

// CatchUp 补录：一次性把累计剂次设到绝对值，markAll 视为整个基础针次完成
// 品牌解析由调用方先行完成，这里不再做品牌门控
func CatchUp(progress *model.UserVaccine, def *model.Vaccine, doseDate time.Time, dosesOverride int, markAll bool) (*Result, error) {
	if markAll {
		dosesOverride = def.PrimaryDoseCount
	}
	if dosesOverride < 1 || dosesOverride < progress.CompletedDoses || dosesOverride > def.PrimaryDoseCount {
		return nil, ErrInvalidDoseCount
	}

	clone := *progress
	clone.CompletedDoses = dosesOverride
	doseDay := Day(doseDate)
	clone.LastDoseDate = &doseDay

	return applyBranches(&clone, def, doseDay, dosesOverride)
}

// applyBranches 三分支排期，全部以实际接种日 doseDay 为锚点
func applyBranches(clone *model.UserVaccine, def *model.Vaccine, doseDay time.Time, dosesNow int) (*Result, error) {
	switch {
	case dosesNow < def.PrimaryDoseCount:
		// 分支 A：基础针次未完，下一剂 = 本剂日期 + 刚完成剂次对应的间隔
		if dosesNow-1 >= len(def.InterDoseIntervals) {
			return nil, ErrMissingInterval
		}
		next := AddDays(doseDay, def.InterDoseIntervals[dosesNow-1])
		clone.Status = consts.VaccineStatusPending
		clone.NextDueDate = &next
		return &Result{Progress: clone, Action: ActionScheduled}, nil

	case def.HasRecurringBooster:
		// 分支 B：基础针次刚完成且有周期加强针，按日历年推进
		next := AddYears(doseDay, def.BoosterIntervalYears)
		clone.Status = consts.VaccineStatusPending
		clone.NextDueDate = &next
		return &Result{Progress: clone, Action: ActionScheduled}, nil

	default:
		// 分支 C：全部完成
		clone.Status = consts.VaccineStatusCompleted
		clone.NextDueDate = nil
		return &Result{Progress: clone, Action: ActionCompleted}, nil
	}
}
