package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/config"
)

// SetupMiddleware 配置中间件
func SetupMiddleware(r *gin.Engine, conf config.Config) {
	// CORS中间件，只放行配置的前端来源
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{conf.ClientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 日志中间件
	r.Use(RequestLogger())

	// 错误恢复中间件
	r.Use(gin.Recovery())
}
