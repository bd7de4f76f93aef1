package handler

import (
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/service"
	"regexp"

	"github.com/gin-gonic/gin"
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

type FinderHandler struct {
	finderSvc service.FinderService
}

func NewFinderHandler(finderSvc service.FinderService) *FinderHandler {
	return &FinderHandler{finderSvc: finderSvc}
}

// FindCenters ?pinCode=110001&userAddress=... 附近接种点
func (s *FinderHandler) FindCenters(c *gin.Context) {
	pincode := c.Query("pinCode")
	if !pincodePattern.MatchString(pincode) {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	userAddress := c.Query("userAddress")

	result, err := s.finderSvc.FindCenters(c.Request.Context(), pincode, userAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
