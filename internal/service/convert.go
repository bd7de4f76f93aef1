package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"time"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrParamInvalid
	}
	return t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func progressToDTO(row *model.UserVaccine, def *model.Vaccine) *dto.ProgressDTO {
	out := &dto.ProgressDTO{
		ID:             row.ID,
		VaccineID:      row.VaccineID,
		Status:         row.Status,
		CompletedDoses: row.CompletedDoses,
		LastDoseDate:   formatDate(row.LastDoseDate),
		NextDueDate:    formatDate(row.NextDueDate),
	}
	if def != nil {
		out.GenericName = def.GenericName
		out.BrandName = def.BrandName
		out.TotalDoses = def.PrimaryDoseCount
	}
	return out
}

func brandToDTO(v *model.Vaccine) *dto.BrandDTO {
	brandName := ""
	if v.BrandName != nil {
		brandName = *v.BrandName
	}
	return &dto.BrandDTO{
		VaccineID:            v.ID,
		BrandName:            brandName,
		PrimaryDoseCount:     v.PrimaryDoseCount,
		InterDoseIntervals:   v.InterDoseIntervals,
		HasRecurringBooster:  v.HasRecurringBooster,
		BoosterIntervalYears: v.BoosterIntervalYears,
	}
}

func brandsToDTO(vaccines []*model.Vaccine) []*dto.BrandDTO {
	out := make([]*dto.BrandDTO, 0, len(vaccines))
	for _, v := range vaccines {
		out = append(out, brandToDTO(v))
	}
	return out
}
