package handler

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Recommendations 播种并返回当前用户的全部接种进度
func (s *ScheduleHandler) Recommendations(c *gin.Context) {
	userID := c.GetUint64("user_id")
	rows, err := s.scheduleSvc.SeedRecommendations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

// MarkTaken 记录今日一剂，可能返回品牌待选结果
func (s *ScheduleHandler) MarkTaken(c *gin.Context) {
	rowID, err := parseIDParam(c, "row_id")
	if err != nil {
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.scheduleSvc.MarkTaken(c.Request.Context(), userID, rowID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ScheduleHandler) SelectBrand(c *gin.Context) {
	rowID, err := parseIDParam(c, "row_id")
	if err != nil {
		return
	}
	var selectDTO dto.SelectBrandDTO
	if err := c.ShouldBind(&selectDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&selectDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.scheduleSvc.SelectBrand(c.Request.Context(), userID, rowID, selectDTO.BrandID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ScheduleHandler) ListBrands(c *gin.Context) {
	rowID, err := parseIDParam(c, "row_id")
	if err != nil {
		return
	}
	userID := c.GetUint64("user_id")
	brands, err := s.scheduleSvc.ListBrands(c.Request.Context(), userID, rowID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, brands)
}

// LogCatchUp 补录纸质记录；通用条目缺品牌时返回候选列表
func (s *ScheduleHandler) LogCatchUp(c *gin.Context) {
	rowID, err := parseIDParam(c, "row_id")
	if err != nil {
		return
	}
	var catchDTO dto.CatchUpDTO
	if err := c.ShouldBind(&catchDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&catchDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	result, brands, err := s.scheduleSvc.LogCatchUp(c.Request.Context(), userID, rowID, &catchDTO)
	if err != nil {
		if errors.Is(err, service.ErrBrandRequired) {
			response.FailWithData(c, response.BadRequest, err.Error(), brands)
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ScheduleHandler) Reschedule(c *gin.Context) {
	rowID, err := parseIDParam(c, "row_id")
	if err != nil {
		return
	}
	var reschedDTO dto.RescheduleDTO
	if err := c.ShouldBind(&reschedDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&reschedDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	row, err := s.scheduleSvc.Reschedule(c.Request.Context(), userID, rowID, reschedDTO.NextDueDate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, row)
}

func (s *ScheduleHandler) TravelVaccines(c *gin.Context) {
	region := c.Query("destination")
	vaccines, err := s.scheduleSvc.TravelVaccines(c.Request.Context(), region)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, vaccines)
}

// Situational 狂犬病暴露后处置程序
func (s *ScheduleHandler) Situational(c *gin.Context) {
	var sitDTO dto.SituationalDTO
	if err := c.ShouldBind(&sitDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&sitDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	userID := c.GetUint64("user_id")
	row, err := s.scheduleSvc.CreateSituationalSchedule(c.Request.Context(), userID, &sitDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, row)
}
