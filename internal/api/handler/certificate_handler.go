package handler

import (
	"VaccineVault/internal/pkg/response"
	"VaccineVault/internal/service"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	certSvc service.CertificateService
}

func NewCertificateHandler(certSvc service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certSvc: certSvc}
}

// Upload multipart 表单：file 必填，owner_id / user_vaccine_id 可选
func (s *CertificateHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	operatorID := c.GetUint64("user_id")
	ownerID := operatorID
	if raw := c.PostForm("owner_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
			return
		}
		ownerID = parsed
	}

	var userVaccineID *uint64
	if raw := c.PostForm("user_vaccine_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
			return
		}
		userVaccineID = &parsed
	}

	cert, err := s.certSvc.Upload(c.Request.Context(), operatorID, ownerID, userVaccineID, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cert)
}

// Download 直接回写文件流
func (s *CertificateHandler) Download(c *gin.Context) {
	certID, err := parseIDParam(c, "cert_id")
	if err != nil {
		return
	}
	operatorID := c.GetUint64("user_id")

	reader, cert, err := s.certSvc.Download(c.Request.Context(), operatorID, certID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cert.FileName))
	c.Header("Content-Type", cert.ContentType)
	c.Header("Content-Length", strconv.FormatInt(cert.Size, 10))
	_, _ = io.Copy(c.Writer, reader)
}

func (s *CertificateHandler) List(c *gin.Context) {
	operatorID := c.GetUint64("user_id")
	certs, err := s.certSvc.ListForFamily(c.Request.Context(), operatorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, certs)
}

func (s *CertificateHandler) Delete(c *gin.Context) {
	certID, err := parseIDParam(c, "cert_id")
	if err != nil {
		return
	}
	operatorID := c.GetUint64("user_id")
	if err := s.certSvc.Delete(c.Request.Context(), operatorID, certID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
