package wire

import (
	"Atelier/internal/api"
	"Atelier/internal/api/handler"
	"Atelier/internal/job"
	"Atelier/internal/pkg/cron"
	"Atelier/internal/repository"
	"Atelier/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	tagRepo := repository.NewTagRepository(db)
	blogRepo := repository.NewBlogRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	adRepo := repository.NewAdRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	testimonialRepo := repository.NewTestimonialRepo(db)
	resumeRepo := repository.NewResumeRepo(db)
	siteRepo := repository.NewSiteRepo(db)

	userService := service.NewUserService(userRepo)
	notificationService := service.NewNotificationService(notificationRepo, engagementRepo, projectRepo, userRepo)
	engagementService := service.NewEngagementService(engagementRepo, projectRepo, notificationService)
	projectService := service.NewProjectService(projectRepo, categoryRepo, tagRepo, engagementRepo, engagementService)
	blogService := service.NewBlogService(blogRepo, tagRepo)
	adService := service.NewAdService(adRepo)
	statsService := service.NewStatsService(statsRepo, projectRepo, blogRepo, engagementRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)
	resumeService := service.NewResumeService(resumeRepo)
	siteService := service.NewSiteService(siteRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		ProjectHandler:      handler.NewProjectHandler(projectService),
		BlogHandler:         handler.NewBlogHandler(blogService),
		EngagementHandler:   handler.NewEngagementHandler(engagementService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		AdHandler:           handler.NewAdHandler(adService),
		StatsHandler:        handler.NewStatsHandler(statsService),
		TestimonialHandler:  handler.NewTestimonialHandler(testimonialService),
		ResumeHandler:       handler.NewResumeHandler(resumeService),
		SiteHandler:         handler.NewSiteHandler(siteService),
	}

	router := api.SetupRouter(handlers)

	adMetricJob := job.NewAdMetricJob(adService)
	cronMgr := cron.NewCronManager(adMetricJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
