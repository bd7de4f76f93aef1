package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type ReminderService interface {
	List(ctx context.Context, userID uint64, page, size int64) ([]*dto.ReminderDTO, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, userID uint64, reminderID string) error
	MarkAllRead(ctx context.Context, userID uint64) error
}

type ReminderServiceImpl struct {
	boxRepo mongo.ReminderBoxRepo
}

func NewReminderService(boxRepo mongo.ReminderBoxRepo) ReminderService {
	return &ReminderServiceImpl{boxRepo: boxRepo}
}

func (s *ReminderServiceImpl) List(ctx context.Context, userID uint64, page, size int64) ([]*dto.ReminderDTO, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	items, err := s.boxRepo.GetReminderList(ctx, userID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ReminderDTO, 0, len(items))
	for _, item := range items {
		out = append(out, &dto.ReminderDTO{
			ID:          item.ID.Hex(),
			VaccineName: item.VaccineName,
			DueDate:     item.DueDate,
			Overdue:     item.Overdue,
			Content:     item.Content,
			IsRead:      item.IsRead,
			CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *ReminderServiceImpl) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.boxRepo.GetUnreadCount(ctx, userID)
}

func (s *ReminderServiceImpl) MarkRead(ctx context.Context, userID uint64, reminderID string) error {
	err := s.boxRepo.MarkAsRead(ctx, userID, reminderID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) || errors.Is(err, mongodriver.ErrInvalidIndexValue) {
			return ErrReminderNotFound
		}
		return err
	}
	return nil
}

func (s *ReminderServiceImpl) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.boxRepo.MarkAllAsRead(ctx, userID)
}
