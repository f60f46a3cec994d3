package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(s.logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	user := r.Group("/user")
	{
		user.POST("/register", s.register)
		user.POST("/login", s.login)
		user.GET("", s.authed(s.profile))
	}

	task := r.Group("/task")
	{
		task.POST("/create", s.authed(s.createTask))
		task.PATCH("/update/:task_id", s.authed(s.updateTask))
		task.GET("/getAll", s.authed(s.listTasks))
	}

	return r
}

func accessLog(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
