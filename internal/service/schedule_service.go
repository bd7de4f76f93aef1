package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/redis"
	"VaccineVault/internal/pkg/schedule"
	"VaccineVault/internal/repository"
	"context"
	"errors"
	"strconv"
	"time"
)

type ScheduleService interface {
	SeedRecommendations(ctx context.Context, userID uint64) ([]*dto.ProgressDTO, error)
	MarkTaken(ctx context.Context, userID, rowID uint64) (*dto.ScheduleResultDTO, error)
	SelectBrand(ctx context.Context, userID, rowID, brandID uint64) (*dto.ScheduleResultDTO, error)
	ListBrands(ctx context.Context, userID, rowID uint64) ([]*dto.BrandDTO, error)
	LogCatchUp(ctx context.Context, userID, rowID uint64, catchDTO *dto.CatchUpDTO) (*dto.ScheduleResultDTO, []*dto.BrandDTO, error)
	Reschedule(ctx context.Context, userID, rowID uint64, nextDue string) (*dto.ProgressDTO, error)
	TravelVaccines(ctx context.Context, region string) ([]*dto.TravelVaccineDTO, error)
	CreateSituationalSchedule(ctx context.Context, userID uint64, sitDTO *dto.SituationalDTO) (*dto.ProgressDTO, error)
}

type ScheduleServiceImpl struct {
	userRepo        repository.UserRepo
	vaccineRepo     repository.VaccineRepo
	userVaccineRepo repository.UserVaccineRepo
}

func NewScheduleService(userRepo repository.UserRepo, vaccineRepo repository.VaccineRepo, userVaccineRepo repository.UserVaccineRepo) ScheduleService {
	return &ScheduleServiceImpl{
		userRepo:        userRepo,
		vaccineRepo:     vaccineRepo,
		userVaccineRepo: userVaccineRepo,
	}
}

// SeedRecommendations 按月龄幂等播种推荐进度行，随后返回全部进度
// 已存在的行不做任何覆盖，到期日在创建时一次性固定
func (s *ScheduleServiceImpl) SeedRecommendations(ctx context.Context, userID uint64) ([]*dto.ProgressDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsDelete {
		return nil, ErrUserNotFound
	}

	lockKey := consts.SeedLock + strconv.FormatUint(userID, 10)
	locked, err := redis.TryLock(ctx, lockKey, userID, time.Second*10, 1)
	if err == nil && locked {
		defer redis.UnLock(ctx, lockKey, userID)
		if err = s.seedEligible(ctx, user); err != nil {
			return nil, err
		}
	}

	rows, err := s.userVaccineRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProgressDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, progressToDTO(row, &row.Vaccine))
	}
	return out, nil
}

func (s *ScheduleServiceImpl) seedEligible(ctx context.Context, user *model.User) error {
	generics, err := s.vaccineRepo.GetGenericVaccines(ctx)
	if err != nil {
		return err
	}

	ageMonths := schedule.AgeInMonths(user.DateOfBirth, time.Now())
	for _, def := range generics {
		if def.IsTravelVaccine || def.FirstDoseEligibilityAge > ageMonths {
			continue
		}
		// 判重按疫苗族而非 vaccine_id：选牌/补录会把行指向品牌条目
		existing, err := s.userVaccineRepo.GetByGenericName(ctx, user.ID, def.GenericName)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		due := schedule.EligibleSince(user.DateOfBirth, def.FirstDoseEligibilityAge)
		progress := &model.UserVaccine{
			UserID:      user.ID,
			VaccineID:   def.ID,
			Status:      consts.VaccineStatusPending,
			NextDueDate: &due,
		}
		if err = s.userVaccineRepo.EnsureProgress(ctx, progress); err != nil {
			return err
		}
	}
	return nil
}

// MarkTaken 今天打了一剂：累计数加一后走引擎排期
// 行锁内重读进度，并发请求不会互相覆盖
func (s *ScheduleServiceImpl) MarkTaken(ctx context.Context, userID, rowID uint64) (*dto.ScheduleResultDTO, error) {
	row, err := s.userVaccineRepo.GetByIdAndUser(ctx, rowID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProgressNotFound
	}

	def, err := s.vaccineRepo.GetVaccineById(ctx, row.VaccineID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrDefinitionNotFound
	}
	if row.Status == consts.VaccineStatusCompleted && !def.HasRecurringBooster {
		return nil, ErrProgressCompleted
	}

	var brands []*model.Vaccine
	if def.IsGeneric() {
		brands, err = s.vaccineRepo.GetBrandsByGenericName(ctx, def.GenericName)
		if err != nil {
			return nil, err
		}
	}

	today := schedule.Day(time.Now())
	var engineResult *schedule.Result
	_, err = s.userVaccineRepo.SaveWithLock(ctx, rowID, func(current *model.UserVaccine) (*model.UserVaccine, error) {
		dosesNow := current.CompletedDoses + 1
		if dosesNow > def.PrimaryDoseCount {
			// 周期加强针：剂次封顶，接种日向后推进加强周期
			if def.HasRecurringBooster {
				dosesNow = def.PrimaryDoseCount
			} else {
				return nil, ErrInvalidDoseCount
			}
		}
		res, engineErr := schedule.RecordDose(current, def, brands, today, dosesNow)
		if engineErr != nil {
			return nil, mapEngineError(engineErr)
		}
		engineResult = res
		return res.Progress, nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResultDTO(engineResult, def), nil
}

// SelectBrand 品牌门控后的选定：进度行改指品牌条目并按品牌规则排期
func (s *ScheduleServiceImpl) SelectBrand(ctx context.Context, userID, rowID, brandID uint64) (*dto.ScheduleResultDTO, error) {
	row, err := s.userVaccineRepo.GetByIdAndUser(ctx, rowID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProgressNotFound
	}

	def, err := s.vaccineRepo.GetVaccineById(ctx, row.VaccineID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrDefinitionNotFound
	}

	brand, err := s.vaccineRepo.GetVaccineById(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrDefinitionNotFound
	}
	if brand.IsGeneric() || brand.GenericName != def.GenericName {
		return nil, ErrBrandMismatch
	}

	var engineResult *schedule.Result
	_, err = s.userVaccineRepo.SaveWithLock(ctx, rowID, func(current *model.UserVaccine) (*model.UserVaccine, error) {
		// 门控状态：第一剂已记录且仍指向通用条目
		if !def.IsGeneric() || current.CompletedDoses != 1 || current.NextDueDate != nil || current.LastDoseDate == nil {
			return nil, ErrBrandNotSelectable
		}
		if current.CompletedDoses > brand.PrimaryDoseCount {
			return nil, ErrInvalidDoseCount
		}

		res, engineErr := schedule.RecordDose(current, brand, nil, *current.LastDoseDate, current.CompletedDoses)
		if engineErr != nil {
			return nil, mapEngineError(engineErr)
		}
		res.Progress.VaccineID = brand.ID
		engineResult = res
		return res.Progress, nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResultDTO(engineResult, brand), nil
}

func (s *ScheduleServiceImpl) ListBrands(ctx context.Context, userID, rowID uint64) ([]*dto.BrandDTO, error) {
	row, err := s.userVaccineRepo.GetByIdAndUser(ctx, rowID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProgressNotFound
	}

	def, err := s.vaccineRepo.GetVaccineById(ctx, row.VaccineID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrDefinitionNotFound
	}

	brands, err := s.vaccineRepo.GetBrandsByGenericName(ctx, def.GenericName)
	if err != nil {
		return nil, err
	}
	return brandsToDTO(brands), nil
}

// LogCatchUp 纸质记录补录：把累计剂次一次性设到绝对值
// 进度行还指向通用条目时必须先给出品牌，否则返回候选列表
func (s *ScheduleServiceImpl) LogCatchUp(ctx context.Context, userID, rowID uint64, catchDTO *dto.CatchUpDTO) (*dto.ScheduleResultDTO, []*dto.BrandDTO, error) {
	if !catchDTO.MarkAll && catchDTO.CompletedDoses < 1 {
		return nil, nil, ErrInvalidDoseCount
	}
	doseDate, err := parseDate(catchDTO.DoseDate)
	if err != nil {
		return nil, nil, err
	}

	row, err := s.userVaccineRepo.GetByIdAndUser(ctx, rowID, userID)
	if err != nil {
		return nil, nil, err
	}
	if row == nil {
		return nil, nil, ErrProgressNotFound
	}

	def, err := s.vaccineRepo.GetVaccineById(ctx, row.VaccineID)
	if err != nil {
		return nil, nil, err
	}
	if def == nil {
		return nil, nil, ErrDefinitionNotFound
	}

	governing := def
	var repointTo uint64
	if def.IsGeneric() {
		candidates, err := s.vaccineRepo.GetBrandsByGenericName(ctx, def.GenericName)
		if err != nil {
			return nil, nil, err
		}
		if len(candidates) > 0 {
			if catchDTO.BrandID == nil {
				return nil, brandsToDTO(candidates), ErrBrandRequired
			}
			brand, err := s.vaccineRepo.GetVaccineById(ctx, *catchDTO.BrandID)
			if err != nil {
				return nil, nil, err
			}
			if brand == nil {
				return nil, nil, ErrDefinitionNotFound
			}
			if brand.IsGeneric() || brand.GenericName != def.GenericName {
				return nil, nil, ErrBrandMismatch
			}
			governing = brand
			repointTo = brand.ID
		}
	}

	var engineResult *schedule.Result
	_, err = s.userVaccineRepo.SaveWithLock(ctx, rowID, func(current *model.UserVaccine) (*model.UserVaccine, error) {
		res, engineErr := schedule.CatchUp(current, governing, doseDate, catchDTO.CompletedDoses, catchDTO.MarkAll)
		if engineErr != nil {
			return nil, mapEngineError(engineErr)
		}
		if repointTo != 0 {
			res.Progress.VaccineID = repointTo
			res.Progress.BrandTakenID = &repointTo
		}
		engineResult = res
		return res.Progress, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return s.toResultDTO(engineResult, governing), nil, nil
}

// Reschedule 人工改期，仅允许进行中的进度行
func (s *ScheduleServiceImpl) Reschedule(ctx context.Context, userID, rowID uint64, nextDue string) (*dto.ProgressDTO, error) {
	due, err := parseDate(nextDue)
	if err != nil {
		return nil, err
	}

	row, err := s.userVaccineRepo.GetByIdAndUser(ctx, rowID, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProgressNotFound
	}

	def, err := s.vaccineRepo.GetVaccineById(ctx, row.VaccineID)
	if err != nil {
		return nil, err
	}

	updated, err := s.userVaccineRepo.SaveWithLock(ctx, rowID, func(current *model.UserVaccine) (*model.UserVaccine, error) {
		if current.Status != consts.VaccineStatusPending {
			return nil, ErrProgressCompleted
		}
		clone := *current
		clone.NextDueDate = &due
		return &clone, nil
	})
	if err != nil {
		return nil, err
	}

	return progressToDTO(updated, def), nil
}

func (s *ScheduleServiceImpl) TravelVaccines(ctx context.Context, region string) ([]*dto.TravelVaccineDTO, error) {
	vaccines, err := s.vaccineRepo.GetTravelVaccines(ctx, region)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TravelVaccineDTO, 0, len(vaccines))
	for _, v := range vaccines {
		out = append(out, &dto.TravelVaccineDTO{
			VaccineID:   v.ID,
			GenericName: v.GenericName,
			Description: v.Description,
			Region:      v.Region,
		})
	}
	return out, nil
}

// CreateSituationalSchedule 狂犬病暴露后处置：按既往免疫史选定程序并立即排期
func (s *ScheduleServiceImpl) CreateSituationalSchedule(ctx context.Context, userID uint64, sitDTO *dto.SituationalDTO) (*dto.ProgressDTO, error) {
	exposure, err := parseDate(sitDTO.ExposureDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.userVaccineRepo.GetPendingByGenericName(ctx, userID, consts.RabiesPostExposureName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrScheduleConflict
	}

	brandName := consts.RabiesUnimmunizedBrand
	if sitDTO.PreviouslyImmunized {
		brandName = consts.RabiesImmunizedBrand
	}
	def, err := s.vaccineRepo.GetByGenericAndBrand(ctx, consts.RabiesPostExposureName, brandName)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrDefinitionNotFound
	}

	// 第 0 天剂次从暴露日起算，立即到期
	due := schedule.Day(exposure)
	progress := &model.UserVaccine{
		UserID:      userID,
		VaccineID:   def.ID,
		Status:      consts.VaccineStatusPending,
		NextDueDate: &due,
	}
	if err = s.userVaccineRepo.Create(ctx, progress); err != nil {
		return nil, err
	}

	return progressToDTO(progress, def), nil
}

func (s *ScheduleServiceImpl) toResultDTO(res *schedule.Result, def *model.Vaccine) *dto.ScheduleResultDTO {
	out := &dto.ScheduleResultDTO{
		Action:   string(res.Action),
		Progress: progressToDTO(res.Progress, def),
	}
	if res.Action == schedule.ActionSelectBrand {
		out.Brands = brandsToDTO(res.Brands)
	}
	return out
}

// mapEngineError 把引擎哨兵错误映射为服务层错误
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDoseCount):
		return ErrInvalidDoseCount
	case errors.Is(err, schedule.ErrMissingInterval):
		return UnExpectedError
	default:
		return err
	}
}
