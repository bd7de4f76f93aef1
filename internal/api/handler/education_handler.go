package handler

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	eduSvc service.EducationService
}

func NewEducationHandler(eduSvc service.EducationService) *EducationHandler {
	return &EducationHandler{eduSvc: eduSvc}
}

func (s *EducationHandler) Create(c *gin.Context) {
	var createDTO dto.CreateContentDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	adminID := c.GetUint64("user_id")
	content, err := s.eduSvc.Create(c.Request.Context(), adminID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

func (s *EducationHandler) Update(c *gin.Context) {
	contentID, err := parseIDParam(c, "content_id")
	if err != nil {
		return
	}
	var updateDTO dto.UpdateContentDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.eduSvc.Update(c.Request.Context(), adminID, contentID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EducationHandler) Delete(c *gin.Context) {
	contentID, err := parseIDParam(c, "content_id")
	if err != nil {
		return
	}
	adminID := c.GetUint64("user_id")
	if err := s.eduSvc.Delete(c.Request.Context(), adminID, contentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *EducationHandler) GetById(c *gin.Context) {
	contentID, err := parseIDParam(c, "content_id")
	if err != nil {
		return
	}
	content, err := s.eduSvc.GetById(c.Request.Context(), contentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, content)
}

func (s *EducationHandler) List(c *gin.Context) {
	page, size := pagination(c)
	contents, err := s.eduSvc.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

func (s *EducationHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	page, size := pagination(c)
	contents, err := s.eduSvc.Search(c.Request.Context(), query, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, contents)
}

func pagination(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}
