package wire

import (
	"PetOps/internal/api"
	"PetOps/internal/api/config"
	"PetOps/internal/api/handler"
	"PetOps/internal/job"
	"PetOps/internal/model"
	"PetOps/internal/pkg/cron"
	"PetOps/internal/pkg/imagegen"
	"PetOps/internal/pkg/wechat"
	"PetOps/internal/pkg/xhs"
	"PetOps/internal/repository"
	"PetOps/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	recordRepo, err := repository.NewRecordRepo(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	topicService := service.NewTopicService(recordRepo)
	contentService := service.NewContentService(topicService, imagegen.NewClient(), recordRepo)
	publishService := service.NewPublishService(xhs.NewPublisher(), wechat.NewClient(), recordRepo)
	recordService := service.NewRecordService(recordRepo)

	handlers := &api.HandlersGroup{
		PublishHandler: handler.NewPublishHandler(contentService, publishService, recordService),
		ReportHandler:  handler.NewReportHandler(recordService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewGenerateJob(model.DaypartMorning, contentService, publishService, recordService),
		job.NewGenerateJob(model.DaypartEvening, contentService, publishService, recordService),
		job.NewReportJob(recordService),
	)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
