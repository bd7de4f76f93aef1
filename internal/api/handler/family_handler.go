package handler

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FamilyHandler struct {
	familySvc service.FamilyService
}

func NewFamilyHandler(familySvc service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familySvc: familySvc}
}

func (s *FamilyHandler) AddMember(c *gin.Context) {
	var memberDTO dto.AddMemberDTO
	if err := c.ShouldBind(&memberDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&memberDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	adminID := c.GetUint64("user_id")
	member, err := s.familySvc.AddMember(c.Request.Context(), adminID, &memberDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *FamilyHandler) ListMembers(c *gin.Context) {
	adminID := c.GetUint64("user_id")
	members, err := s.familySvc.ListMembers(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}

func (s *FamilyHandler) MemberVaccines(c *gin.Context) {
	memberID, err := parseIDParam(c, "member_id")
	if err != nil {
		return
	}
	adminID := c.GetUint64("user_id")
	rows, err := s.familySvc.MemberVaccines(c.Request.Context(), adminID, memberID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *FamilyHandler) Overview(c *gin.Context) {
	adminID := c.GetUint64("user_id")
	overview, err := s.familySvc.Overview(c.Request.Context(), adminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, overview)
}

func (s *FamilyHandler) UpdateMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "member_id")
	if err != nil {
		return
	}
	var updateDTO dto.UpdateMemberDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.familySvc.UpdateMember(c.Request.Context(), adminID, memberID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FamilyHandler) DeleteMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "member_id")
	if err != nil {
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.familySvc.DeleteMember(c.Request.Context(), adminID, memberID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// parseIDParam 解析路径里的数字 ID，失败时已写入响应
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, err
	}
	return id, nil
}
