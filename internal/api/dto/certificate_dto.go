package dto

type CertificateDTO struct {
	ID            uint64  `json:"id"`
	UserID        uint64  `json:"userId"`
	UserVaccineID *uint64 `json:"userVaccineId,omitempty"`
	FileName      string  `json:"fileName"`
	ContentType   string  `json:"contentType"`
	Size          int64   `json:"size"`
	CreatedAt     string  `json:"createdAt"`
}
