package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sasamoahkb/mood-tracker-app/controllers"
	"github.com/sasamoahkb/mood-tracker-app/middleware"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client) {
	userService := services.NewUserService(db)
	moodService := services.NewMoodService(db)
	journalService := services.NewJournalService(db)
	factorService := services.NewFactorService(db, rdb)

	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	moodController := controllers.NewMoodController(moodService)
	journalController := controllers.NewJournalController(journalService)
	factorController := controllers.NewFactorController(factorService)

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Mood Tracker is up and running!",
		})
	})

	// 公开路由（无需认证）
	r.POST("/signup", authController.Signup)
	r.POST("/login", authController.Login)
	r.GET("/factors", factorController.ListFactors)

	// 需要认证的路由
	private := r.Group("/")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/user", userController.GetUser)
		private.PUT("/update-user", userController.UpdateUser)
		private.DELETE("/delete-user", userController.DeleteUser)

		private.POST("/create-mood-entry", moodController.CreateMoodEntry)
		private.GET("/mood-history", moodController.GetMoodHistory)
		private.PUT("/update-mood-entry/:entryId", moodController.UpdateMoodEntry)
		private.DELETE("/delete-mood-entry/:entryId", moodController.DeleteMoodEntry)

		private.POST("/create-journal-entry", journalController.CreateJournalEntry)
		private.GET("/journal-history", journalController.GetJournalHistory)
		private.PUT("/update-journal-entry/:journalId", journalController.UpdateJournalEntry)
		private.DELETE("/delete-journal-entry/:journalId", journalController.DeleteJournalEntry)
	}

	// 因素目录维护，仅限管理员
	admin := r.Group("/factors")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminRequired(db))
	{
		admin.POST("", factorController.CreateFactor)
		admin.PUT("/:id", factorController.UpdateFactor)
		admin.DELETE("/:id", factorController.DeleteFactor)
	}
}
