package wire

import (
	"VaccineVault/internal/api"
	"VaccineVault/internal/api/config"
	"VaccineVault/internal/api/handler"
	"VaccineVault/internal/job"
	"VaccineVault/internal/pkg/cron"
	"VaccineVault/internal/pkg/es"
	"VaccineVault/internal/pkg/kafka"
	"VaccineVault/internal/pkg/maps"
	mongorepo "VaccineVault/internal/pkg/mongo"
	"VaccineVault/internal/pkg/notify"
	"VaccineVault/internal/repository"
	"VaccineVault/internal/service"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	vaccineRepo := repository.NewVaccineRepo(db)
	userVaccineRepo := repository.NewUserVaccineRepo(db)
	certRepo := repository.NewCertificateRepo(db)
	eduRepo := repository.NewEducationRepo(db)
	recordRepo := repository.NewRecordRepo(db)
	contentRepo := es.NewContentRepo(es.Client)
	boxRepo := mongorepo.NewReminderBoxRepo(mongoDB)

	mapsClient := maps.NewMapsClient(cfg)

	userService := service.NewUserService(userRepo)
	familyService := service.NewFamilyService(userRepo, userVaccineRepo)
	scheduleService := service.NewScheduleService(userRepo, vaccineRepo, userVaccineRepo)
	certService := service.NewCertificateService(certRepo, userRepo)
	eduService := service.NewEducationService(eduRepo, contentRepo)
	finderService := service.NewFinderService(mapsClient, cfg.Maps.SearchRadius)
	reminderService := service.NewReminderService(boxRepo)
	recordService := service.NewRecordService(recordRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		FamilyHandler:      handler.NewFamilyHandler(familyService),
		ScheduleHandler:    handler.NewScheduleHandler(scheduleService),
		CertificateHandler: handler.NewCertificateHandler(certService),
		EducationHandler:   handler.NewEducationHandler(eduService),
		FinderHandler:      handler.NewFinderHandler(finderService),
		ReminderHandler:    handler.NewReminderHandler(reminderService),
		RecordHandler:      handler.NewRecordHandler(recordService),
	}

	router := api.SetupRouter(handlers)

	producer, err := kafka.NewReminderProducer(cfg)
	if err != nil {
		return nil, err
	}

	emailSender := notify.NewEmailSender(cfg)
	pushSender := notify.NewPushSender(cfg)
	reminderHandler := kafka.NewReminderHandler(emailSender, pushSender, boxRepo)
	kafkaMgr, err := kafka.NewConsumerManager(cfg, reminderHandler)
	if err != nil {
		return nil, err
	}

	reminderJob := job.NewReminderJob(userRepo, userVaccineRepo, producer)
	cronMgr := cron.NewCronManager(reminderJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
