package api

import "Atelier/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	BlogHandler         *handler.BlogHandler
	EngagementHandler   *handler.EngagementHandler
	NotificationHandler *handler.NotificationHandler
	AdHandler           *handler.AdHandler
	StatsHandler        *handler.StatsHandler
	TestimonialHandler  *handler.TestimonialHandler
	ResumeHandler       *handler.ResumeHandler
	SiteHandler         *handler.SiteHandler
}
