package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
)

// respondServiceError 把领域错误映射为HTTP状态码和统一信封
func respondServiceError(c *gin.Context, err *services.Error) {
	c.JSON(err.StatusCode(), models.Response{
		Success: false,
		Error:   err.Message,
	})
}

// respondBadRequest 请求层快速失败
func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.Response{
		Success: false,
		Error:   msg,
	})
}

// parseTimeFilter 解析时间过滤参数，支持日期和RFC3339两种格式
func parseTimeFilter(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, true
		}
	}
	return nil, false
}
