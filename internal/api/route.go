package api

import (
	"Atelier/internal/api/middleware"
	"Atelier/internal/pkg/consts"
	"Atelier/internal/pkg/logger"
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
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/profile", group.UserHandler.GetProfile)
				authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			}
		}

		projectGroup := apiGroup.Group("/projects")
		{
			authOptGroup := projectGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.ProjectHandler.GetProjects)
				authOptGroup.GET("/featured", group.ProjectHandler.GetFeaturedProjects)
				authOptGroup.GET("/:project_id", group.ProjectHandler.GetProject)
				authOptGroup.GET("/:project_id/comments", group.EngagementHandler.GetComments)
			}

			authGroup := projectGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:project_id/like", group.EngagementHandler.ToggleProjectLike)
			}

			adminGroup := projectGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.ProjectHandler.CreateProject)
				adminGroup.PUT("/:project_id", group.ProjectHandler.UpdateProject)
				adminGroup.DELETE("/:project_id", group.ProjectHandler.DeleteProject)
			}
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.ProjectHandler.GetCategories)

			adminGroup := categoryGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.ProjectHandler.CreateCategory)
				adminGroup.DELETE("/:category_id", group.ProjectHandler.DeleteCategory)
			}
		}

		apiGroup.GET("/tags", group.ProjectHandler.GetTags)

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", group.BlogHandler.GetPosts)
			blogGroup.GET("/posts/:slug", group.BlogHandler.GetPostBySlug)
			blogGroup.GET("/tags/popular", group.BlogHandler.GetPopularTags)

			adminGroup := blogGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("/posts", group.BlogHandler.CreatePost)
				adminGroup.PUT("/posts/:post_id", group.BlogHandler.UpdatePost)
				adminGroup.DELETE("/posts/:post_id", group.BlogHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:comment_id/replies", group.EngagementHandler.GetReplies)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.EngagementHandler.CreateComment)
				authGroup.PUT("/:comment_id", group.EngagementHandler.UpdateComment)
				authGroup.DELETE("/:comment_id", group.EngagementHandler.DeleteComment)
				authGroup.POST("/:comment_id/like", group.EngagementHandler.ToggleCommentLike)
				authGroup.POST("/image", group.EngagementHandler.UploadCommentImage)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.GetNotifications)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/:notification_id/read", group.NotificationHandler.MarkAsRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
		}

		adGroup := apiGroup.Group("/ads")
		{
			serveGroup := adGroup.Group("")
			serveGroup.Use(middleware.DeviceMiddleware())
			{
				serveGroup.GET("/serve/:position", group.AdHandler.ServeAd)
			}
			adGroup.POST("/impression/:unit_id", group.AdHandler.TrackImpression)
			adGroup.POST("/click/:unit_id", group.AdHandler.TrackClick)

			adminGroup := adGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("/config", group.AdHandler.GetConfig)
				adminGroup.PUT("/config", group.AdHandler.UpdateConfig)
				adminGroup.GET("/units", group.AdHandler.GetAdUnits)
				adminGroup.POST("/units", group.AdHandler.CreateAdUnit)
				adminGroup.PUT("/units/:unit_id", group.AdHandler.UpdateAdUnit)
				adminGroup.DELETE("/units/:unit_id", group.AdHandler.DeleteAdUnit)
				adminGroup.GET("/units/:unit_id/performance", group.AdHandler.GetPerformance)
			}
		}

		apiGroup.GET("/stats", group.StatsHandler.GetStats)

		testimonialGroup := apiGroup.Group("/testimonials")
		{
			testimonialGroup.GET("", group.TestimonialHandler.GetTestimonials)
			testimonialGroup.POST("", group.TestimonialHandler.SubmitTestimonial)

			adminGroup := testimonialGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("/:testimonial_id", group.TestimonialHandler.UpdateTestimonial)
				adminGroup.DELETE("/:testimonial_id", group.TestimonialHandler.DeleteTestimonial)
			}
		}

		resumeGroup := apiGroup.Group("/resumes")
		{
			resumeGroup.GET("/download", group.ResumeHandler.DownloadResume)

			adminGroup := resumeGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("", group.ResumeHandler.GetResumes)
				adminGroup.POST("", group.ResumeHandler.CreateResume)
				adminGroup.DELETE("/:resume_id", group.ResumeHandler.DeleteResume)
			}
		}

		apiGroup.GET("/about", group.SiteHandler.GetAbout)
		apiGroup.POST("/contact", group.SiteHandler.SubmitContact)

		adminSiteGroup := apiGroup.Group("/admin")
		adminSiteGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			adminSiteGroup.PUT("/about", group.SiteHandler.UpdateAbout)
			adminSiteGroup.GET("/contact", group.SiteHandler.GetContactMessages)
			adminSiteGroup.POST("/contact/:message_id/read", group.SiteHandler.MarkContactRead)
		}
	}

	return r
}
