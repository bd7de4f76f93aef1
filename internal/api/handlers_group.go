package api

import "VaccineVault/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	FamilyHandler      *handler.FamilyHandler
	ScheduleHandler    *handler.ScheduleHandler
	CertificateHandler *handler.CertificateHandler
	EducationHandler   *handler.EducationHandler
	FinderHandler      *handler.FinderHandler
	ReminderHandler    *handler.ReminderHandler
	RecordHandler      *handler.RecordHandler
}
