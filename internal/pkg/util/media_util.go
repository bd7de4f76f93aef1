package util

import (
	"VaccineVault/internal/pkg/consts"
	"net/http"
	"strings"
)

// GetSafeContentType 嗅探上传内容的真实类型，仅允许图片和 PDF 作为证书附件
func GetSafeContentType(head []byte, declared string) (string, bool) {
	sniffed := http.DetectContentType(head)
	if strings.HasPrefix(sniffed, consts.MimePrefixImage) {
		return sniffed, true
	}
	if sniffed == consts.MimePDF {
		return sniffed, true
	}
	// application/octet-stream 时退回声明值再判一次
	if sniffed == "application/octet-stream" {
		if strings.HasPrefix(declared, consts.MimePrefixImage) || declared == consts.MimePDF {
			return declared, true
		}
	}
	return sniffed, false
}
