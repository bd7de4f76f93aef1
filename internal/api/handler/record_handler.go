package handler

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/service"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	recordSvc service.RecordService
}

func NewRecordHandler(recordSvc service.RecordService) *RecordHandler {
	return &RecordHandler{recordSvc: recordSvc}
}

func (s *RecordHandler) Create(c *gin.Context) {
	var createDTO dto.CreateRecordDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	record, err := s.recordSvc.Create(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

func (s *RecordHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	records, err := s.recordSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, records)
}

func (s *RecordHandler) Update(c *gin.Context) {
	recordID, err := parseIDParam(c, "record_id")
	if err != nil {
		return
	}
	var updateDTO dto.UpdateRecordDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.recordSvc.Update(c.Request.Context(), userID, recordID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *RecordHandler) Delete(c *gin.Context) {
	recordID, err := parseIDParam(c, "record_id")
	if err != nil {
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.recordSvc.Delete(c.Request.Context(), userID, recordID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
