package dto

// ProgressDTO 进度行响应
type ProgressDTO struct {
	ID             uint64  `json:"id"`
	VaccineID      uint64  `json:"vaccineId"`
	GenericName    string  `json:"genericName"`
	BrandName      *string `json:"brandName,omitempty"`
	Status         string  `json:"status"`
	CompletedDoses int     `json:"completedDoses"`
	TotalDoses     int     `json:"totalDoses"`
	LastDoseDate   *string `json:"lastDoseDate,omitempty"`
	NextDueDate    *string `json:"nextDueDate,omitempty"`
}

// BrandDTO 品牌候选
type BrandDTO struct {
	VaccineID            uint64 `json:"vaccineId"`
	BrandName            string `json:"brandName"`
	PrimaryDoseCount     int    `json:"primaryDoseCount"`
	InterDoseIntervals   []int  `json:"interDoseIntervals,omitempty"`
	HasRecurringBooster  bool   `json:"hasRecurringBooster"`
	BoosterIntervalYears int    `json:"boosterIntervalYears,omitempty"`
}

// ScheduleResultDTO 剂次事件的统一响应
// action 为 select_brand 时携带待选品牌列表，进度行尚未排期
type ScheduleResultDTO struct {
	Action   string       `json:"action"`
	Progress *ProgressDTO `json:"progress"`
	Brands   []*BrandDTO  `json:"brands,omitempty"`
}

type SelectBrandDTO struct {
	BrandID uint64 `json:"brandId" validate:"required"`
}

type CatchUpDTO struct {
	DoseDate       string  `json:"doseDate" validate:"required,datetime=2006-01-02"`
	CompletedDoses int     `json:"completedDoses" validate:"omitempty,min=1"`
	MarkAll        bool    `json:"markAllAsCompleted"`
	BrandID        *uint64 `json:"brandId,omitempty"`
}

type RescheduleDTO struct {
	NextDueDate string `json:"nextDueDate" validate:"required,datetime=2006-01-02"`
}

type SituationalDTO struct {
	ExposureDate         string `json:"exposureDate" validate:"required,datetime=2006-01-02"`
	PreviouslyImmunized  bool   `json:"previouslyImmunized"`
}

type TravelVaccineDTO struct {
	VaccineID   uint64  `json:"vaccineId"`
	GenericName string  `json:"genericName"`
	Description *string `json:"description,omitempty"`
	Region      *string `json:"region,omitempty"`
}
