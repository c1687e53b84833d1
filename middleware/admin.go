package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"gorm.io/gorm"
)

// AdminRequired 管理员认证中间件
// 因素目录是全局数据，写操作只对管理员开放
func AdminRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetUint("uid")

		var user models.User
		if err := db.Where("user_id = ?", uid).First(&user).Error; err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, models.Response{
				Success: false,
				Error:   "Forbidden",
			})
			return
		}

		c.Next()
	}
}
