package wire

import (
	"Pulse/internal/api"
	"Pulse/internal/api/config"
	"Pulse/internal/api/handler"
	"Pulse/internal/job"
	"Pulse/internal/pkg/cron"
	"Pulse/internal/pkg/payment"
	"Pulse/internal/platform"
	"Pulse/internal/repository"
	"Pulse/internal/service"

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
	userRepo := repository.NewUserRepo(db)
	apiKeyRepo := repository.NewAPIKeyRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)

	adapters := platform.NewFactory(cfg.Platforms)
	gateway := payment.NewClient(cfg.Payment)

	userService := service.NewUserService(userRepo)
	apiKeyService := service.NewAPIKeyService(apiKeyRepo, userRepo)
	statsService := service.NewStatsService(apiKeyRepo, statsRepo, adapters, cfg.Stats.FreshnessSeconds)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, gateway)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		APIKeyHandler:       handler.NewAPIKeyHandler(apiKeyService),
		StatsHandler:        handler.NewStatsHandler(statsService, userService),
		PostHandler:         handler.NewPostHandler(statsService, userService),
		SubscriptionHandler: handler.NewSubscriptionHandler(subscriptionService),
	}

	router := api.SetupRouter(handlers)

	snapshotJob := job.NewSnapshotJob(statsService)
	cronMgr := cron.NewCronManager(snapshotJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
