package router

import (
	"time"

	"Hive_Community/internal/handler"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
	"Hive_Community/internal/service"
	"Hive_Community/internal/storage"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again in "+time.Until(info.ResetTime).String())
}

func InitRouter(emailCfg pkg.SMTPConfig, store storage.ObjectStore) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// 注册/登录/验证码接口限流，按 IP
	limiterStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 20,
	})
	limited := ratelimit.RateLimiter(limiterStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	})

	emailSvc := service.NewEmailService(emailCfg)
	notifySvc := service.NewNotificationService()

	user := handler.NewUserHandler(service.NewUserService(emailSvc))
	email := handler.NewEmailHandler(emailSvc)
	community := handler.NewCommunityHandler(service.NewCommunityService(notifySvc))
	membership := handler.NewMembershipHandler(service.NewMembershipService(notifySvc, emailCfg))
	topic := handler.NewTopicHandler(service.NewTopicService())
	post := handler.NewPostHandler(service.NewPostService())
	notification := handler.NewNotificationHandler(notifySvc)
	gallery := handler.NewGalleryHandler(service.NewGalleryService())
	classroom := handler.NewClassroomHandler(service.NewClassroomService())
	upload := handler.NewUploadHandler(service.NewUploadService(store))

	communityAccess := middleware.CommunityAccess(
		&mysql.CommunityRepository{DB: mysql.DB},
		&mysql.MembershipRepository{DB: mysql.DB},
	)

	// 邮件相关接口
	emailGroup := r.Group("/api/email", limited)
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	// 用户相关接口
	userGroup := r.Group("/api/user", limited)
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 登录态接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.Auth())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	// 个人资料
	meGroup := r.Group("/api/me")
	meGroup.Use(middleware.Auth())
	{
		meGroup.GET("", user.Me)
		meGroup.PUT("", user.UpdateProfile)
	}

	// 社区目录
	communityGroup := r.Group("/api/community")
	{
		communityGroup.GET("/list", community.List)
		communityGroup.POST("/create", middleware.Auth(), community.Create)
	}

	// 单个社区下的所有页面：slug → 访问级别在中间件里解析一次
	slugGroup := r.Group("/api/c/:slug")
	slugGroup.Use(middleware.OptionalAuth(), communityAccess)
	{
		slugGroup.GET("", community.Detail)
		slugGroup.POST("/join", community.Join)
		slugGroup.POST("/leave", community.Leave)
		slugGroup.POST("/deactivate", community.Deactivate)

		slugGroup.GET("/members/pending", membership.Pending)
		slugGroup.POST("/members/:userId/approve", membership.Approve)
		slugGroup.POST("/members/:userId/decline", membership.Decline)
		slugGroup.POST("/members/:userId/ban", membership.Ban)

		slugGroup.GET("/topics", topic.List)
		slugGroup.POST("/topics", topic.Create)

		slugGroup.GET("/posts", post.List)
		slugGroup.POST("/posts", post.Create)
		slugGroup.DELETE("/posts/:postId", post.Delete)

		slugGroup.GET("/gallery", gallery.List)
		slugGroup.POST("/gallery", gallery.Add)

		slugGroup.GET("/classrooms", classroom.List)
		slugGroup.POST("/classrooms", classroom.Create)
	}

	// 通知
	notifyGroup := r.Group("/api/notifications")
	notifyGroup.Use(middleware.Auth())
	{
		notifyGroup.GET("", notification.List)
		notifyGroup.GET("/unread-count", notification.UnreadCount)
		notifyGroup.POST("/read", notification.MarkAllRead)
	}

	// 文件上传（multipart 表单，响应格式固定）
	uploadGroup := r.Group("/api")
	uploadGroup.Use(middleware.Auth())
	{
		uploadGroup.POST("/upload-avatar", upload.Avatar)
		uploadGroup.POST("/post", upload.PostFile)
		uploadGroup.POST("/classroom/upload-cover", upload.ClassroomCover)
		uploadGroup.POST("/classroom/upload-resource", upload.ClassroomResource)
	}

	return r
}
