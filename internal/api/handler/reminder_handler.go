package handler

import (
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	reminderSvc service.ReminderService
}

func NewReminderHandler(reminderSvc service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderSvc: reminderSvc}
}

func (s *ReminderHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "20"), 10, 64)

	reminders, err := s.reminderSvc.List(c.Request.Context(), userID, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reminders)
}

func (s *ReminderHandler) UnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.reminderSvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"unread": count})
}

func (s *ReminderHandler) MarkRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	reminderID := c.Param("reminder_id")
	if err := s.reminderSvc.MarkRead(c.Request.Context(), userID, reminderID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ReminderHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.reminderSvc.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
