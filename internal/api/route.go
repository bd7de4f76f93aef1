package api

import (
	"VaccineVault/internal/api/middleware"
	"VaccineVault/internal/pkg/consts"
	"VaccineVault/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/info", group.UserHandler.UpdateUserInfo)
				authGroup.PUT("/push-token", group.UserHandler.UpdatePushToken)
			}
		}

		familyGroup := apiGroup.Group("/family")
		familyGroup.Use(middleware.AuthMiddleware())
		{
			familyGroup.POST("/members", group.FamilyHandler.AddMember)
			familyGroup.GET("/members", group.FamilyHandler.ListMembers)
			familyGroup.GET("/members/:member_id/vaccines", group.FamilyHandler.MemberVaccines)
			familyGroup.GET("/overview", group.FamilyHandler.Overview)
			familyGroup.PUT("/members/:member_id", group.FamilyHandler.UpdateMember)
			familyGroup.DELETE("/members/:member_id", group.FamilyHandler.DeleteMember)
		}

		scheduleGroup := apiGroup.Group("/vaccines")
		scheduleGroup.Use(middleware.AuthMiddleware())
		{
			scheduleGroup.GET("/recommendations", group.ScheduleHandler.Recommendations)
			scheduleGroup.POST("/:row_id/taken", group.ScheduleHandler.MarkTaken)
			scheduleGroup.GET("/:row_id/brands", group.ScheduleHandler.ListBrands)
			scheduleGroup.POST("/:row_id/brand", group.ScheduleHandler.SelectBrand)
			scheduleGroup.POST("/:row_id/catch-up", group.ScheduleHandler.LogCatchUp)
			scheduleGroup.PUT("/:row_id/schedule", group.ScheduleHandler.Reschedule)
			scheduleGroup.GET("/travel", group.ScheduleHandler.TravelVaccines)
			scheduleGroup.POST("/situational", group.ScheduleHandler.Situational)
		}

		certGroup := apiGroup.Group("/certificates")
		certGroup.Use(middleware.AuthMiddleware())
		{
			certGroup.POST("", group.CertificateHandler.Upload)
			certGroup.GET("", group.CertificateHandler.List)
			certGroup.GET("/:cert_id", group.CertificateHandler.Download)
			certGroup.DELETE("/:cert_id", group.CertificateHandler.Delete)
		}

		eduGroup := apiGroup.Group("/education")
		{
			eduGroup.GET("", group.EducationHandler.List)
			eduGroup.GET("/search", group.EducationHandler.Search)
			eduGroup.GET("/:content_id", group.EducationHandler.GetById)

			adminGroup := eduGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.EducationHandler.Create)
				adminGroup.PUT("/:content_id", group.EducationHandler.Update)
				adminGroup.DELETE("/:content_id", group.EducationHandler.Delete)
			}
		}

		finderGroup := apiGroup.Group("/finder")
		finderGroup.Use(middleware.AuthMiddleware())
		{
			finderGroup.GET("/centers", group.FinderHandler.FindCenters)
		}

		reminderGroup := apiGroup.Group("/reminders")
		reminderGroup.Use(middleware.AuthMiddleware())
		{
			reminderGroup.GET("", group.ReminderHandler.List)
			reminderGroup.GET("/unread", group.ReminderHandler.UnreadCount)
			reminderGroup.PUT("/:reminder_id/read", group.ReminderHandler.MarkRead)
			reminderGroup.PUT("/read-all", group.ReminderHandler.MarkAllRead)
		}

		recordGroup := apiGroup.Group("/records")
		recordGroup.Use(middleware.AuthMiddleware())
		{
			recordGroup.POST("", group.RecordHandler.Create)
			recordGroup.GET("", group.RecordHandler.List)
			recordGroup.PUT("/:record_id", group.RecordHandler.Update)
			recordGroup.DELETE("/:record_id", group.RecordHandler.Delete)
		}
	}

	return r
}
