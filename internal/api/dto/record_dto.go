package dto

type CreateRecordDTO struct {
	VaccineName     string  `json:"vaccineName" validate:"required,max=100"`
	DoseNumber      int     `json:"doseNumber" validate:"required,min=1"`
	VaccinationDate string  `json:"vaccinationDate" validate:"required,datetime=2006-01-02"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateRecordDTO struct {
	VaccineName     *string `json:"vaccineName,omitempty" validate:"omitempty,max=100"`
	DoseNumber      *int    `json:"doseNumber,omitempty" validate:"omitempty,min=1"`
	VaccinationDate *string `json:"vaccinationDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Notes           *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type RecordDTO struct {
	ID              uint64  `json:"id"`
	VaccineName     string  `json:"vaccineName"`
	DoseNumber      int     `json:"doseNumber"`
	VaccinationDate string  `json:"vaccinationDate"`
	Location        *string `json:"location,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
