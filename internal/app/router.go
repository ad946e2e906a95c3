package app

import (
	"teacher_portal_backend/internal/config"
	"teacher_portal_backend/internal/middleware"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 教师门户，所有路由要求教师会话
	teachers := router.Group("/teachers")
	teachers.Use(middleware.Auth(cfg), middleware.RequireRole(model.RoleTeacher))
	{
		teachers.GET("/", c.class.Home)

		// 班级
		teachers.GET("/classes/", c.class.List)
		teachers.GET("/classes/create/", c.class.CreateForm)
		teachers.POST("/classes/create/", c.class.Create)
		teachers.GET("/class/:classId/", c.class.Detail)

		// 主题
		teachers.GET("/topics/", c.topic.List)
		teachers.POST("/topics/create/", c.topic.Create)
		teachers.GET("/objectives/:topicId/", c.topic.Detail)

		// 作业
		teachers.GET("/feedback/", c.assignment.FeedbackHome)
		teachers.GET("/assignments/", c.assignment.List)
		teachers.POST("/assignments/create/", c.assignment.Create)
		teachers.GET("/assignments/:assignmentId/", c.assignment.Detail)

		// 测验与题目
		teachers.GET("/quizzes/", c.quiz.List)
		teachers.GET("/upload-quiz", c.quiz.UploadForm)
		teachers.POST("/upload-quiz", c.quiz.Upload)
		teachers.GET("/quizzes/:quizId/", c.quiz.Detail)
		teachers.POST("/questions/create/:quizId/", c.quiz.CreateQuestion)

		// 成绩
		teachers.POST("/grades/add/:classId/", c.grade.Add)
	}
}
