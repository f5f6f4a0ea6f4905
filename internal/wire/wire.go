package wire

import (
	"PulseOS/internal/api"
	"PulseOS/internal/api/config"
	"PulseOS/internal/api/handler"
	"PulseOS/internal/job"
	"PulseOS/internal/pkg/cron"
	"PulseOS/internal/pkg/database"
	"PulseOS/internal/pkg/pipeline"
	"PulseOS/internal/repository"
	"PulseOS/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	briefRepo := repository.NewBriefRepo(db)
	postRepo := repository.NewPostRepo(db)
	convRepo := repository.NewConversationRepo(db)
	skillRepo := repository.NewSkillRepo(db)
	creatorRepo := repository.NewCreatorRepo(db)

	runner := pipeline.NewRunner(cfg.Pipeline, database.ResolvePath(&cfg.DB))

	todayService := service.NewTodayService(briefRepo, postRepo, convRepo)
	postService := service.NewPostService(postRepo)
	convService := service.NewConversationService(convRepo)
	skillService := service.NewSkillService(skillRepo)
	creatorService := service.NewCreatorService(creatorRepo)
	pipelineService := service.NewPipelineService(runner)

	handlers := &api.HandlersGroup{
		TodayHandler:        handler.NewTodayHandler(todayService),
		PostHandler:         handler.NewPostHandler(postService),
		ConversationHandler: handler.NewConversationHandler(convService, pipelineService),
		SkillHandler:        handler.NewSkillHandler(skillService),
		CreatorHandler:      handler.NewCreatorHandler(creatorService, pipelineService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewDailyPipelineJob(pipelineService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
