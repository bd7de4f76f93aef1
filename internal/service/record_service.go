package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/repository"
	"context"
)

type RecordService interface {
	Create(ctx context.Context, userID uint64, createDTO *dto.CreateRecordDTO) (*dto.RecordDTO, error)
	List(ctx context.Context, userID uint64) ([]*dto.RecordDTO, error)
	Update(ctx context.Context, userID, recordID uint64, updateDTO *dto.UpdateRecordDTO) error
	Delete(ctx context.Context, userID, recordID uint64) error
}

type RecordServiceImpl struct {
	recordRepo repository.RecordRepo
}

func NewRecordService(recordRepo repository.RecordRepo) RecordService {
	return &RecordServiceImpl{recordRepo: recordRepo}
}

func (s *RecordServiceImpl) Create(ctx context.Context, userID uint64, createDTO *dto.CreateRecordDTO) (*dto.RecordDTO, error) {
	date, err := parseDate(createDTO.VaccinationDate)
	if err != nil {
		return nil, err
	}

	record := &model.VaccinationRecord{
		UserID:          userID,
		VaccineName:     createDTO.VaccineName,
		DoseNumber:      createDTO.DoseNumber,
		VaccinationDate: date,
		Location:        createDTO.Location,
		Notes:           createDTO.Notes,
	}
	if err = s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return recordToDTO(record), nil
}

func (s *RecordServiceImpl) List(ctx context.Context, userID uint64) ([]*dto.RecordDTO, error) {
	records, err := s.recordRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.RecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, recordToDTO(r))
	}
	return out, nil
}

func (s *RecordServiceImpl) Update(ctx context.Context, userID, recordID uint64, updateDTO *dto.UpdateRecordDTO) error {
	record, err := s.ownedRecord(ctx, userID, recordID)
	if err != nil {
		return err
	}

	if updateDTO.VaccineName != nil {
		record.VaccineName = *updateDTO.VaccineName
	}
	if updateDTO.DoseNumber != nil {
		record.DoseNumber = *updateDTO.DoseNumber
	}
	if updateDTO.VaccinationDate != nil {
		date, err := parseDate(*updateDTO.VaccinationDate)
		if err != nil {
			return err
		}
		record.VaccinationDate = date
	}
	if updateDTO.Location != nil {
		record.Location = updateDTO.Location
	}
	if updateDTO.Notes != nil {
		record.Notes = updateDTO.Notes
	}
	return s.recordRepo.Update(ctx, record)
}

func (s *RecordServiceImpl) Delete(ctx context.Context, userID, recordID uint64) error {
	record, err := s.ownedRecord(ctx, userID, recordID)
	if err != nil {
		return err
	}
	return s.recordRepo.Delete(ctx, record.ID)
}

func (s *RecordServiceImpl) ownedRecord(ctx context.Context, userID, recordID uint64) (*model.VaccinationRecord, error) {
	record, err := s.recordRepo.GetById(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, ErrRecordNotFound
	}
	return record, nil
}

func recordToDTO(r *model.VaccinationRecord) *dto.RecordDTO {
	return &dto.RecordDTO{
		ID:              r.ID,
		VaccineName:     r.VaccineName,
		DoseNumber:      r.DoseNumber,
		VaccinationDate: r.VaccinationDate.Format(dateLayout),
		Location:        r.Location,
		Notes:           r.Notes,
	}
}
