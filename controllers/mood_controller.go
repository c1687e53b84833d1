package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
)

// MoodController 心情记录控制器
type MoodController struct {
	moods *services.MoodService
}

func NewMoodController(moods *services.MoodService) *MoodController {
	return &MoodController{moods: moods}
}

// CreateMoodEntry 创建心情记录
func (mc *MoodController) CreateMoodEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	var req models.CreateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry, serr := mc.moods.CreateMoodEntry(uid, req)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Mood entry created successfully",
		Data:    entry,
	})
}

// GetMoodHistory 分页查询心情历史，支持from/to/rating/mood过滤
func (mc *MoodController) GetMoodHistory(c *gin.Context) {
	uid := c.GetUint("uid")

	var filters models.MoodHistoryFilters
	var ok bool
	if filters.From, ok = parseTimeFilter(c.Query("from")); !ok {
		respondBadRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		return
	}
	if filters.To, ok = parseTimeFilter(c.Query("to")); !ok {
		respondBadRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
		return
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "Rating filter must be an integer")
			return
		}
		filters.Rating = &rating
	}
	filters.Mood = c.Query("mood")
	// page/limit不合法时回退默认值
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, pagination, serr := mc.moods.GetMoodEntriesByUserID(uid, filters)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success:    true,
		Data:       entries,
		Pagination: pagination,
	})
}

// UpdateMoodEntry 部分更新心情记录
func (mc *MoodController) UpdateMoodEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	entryID, err := strconv.Atoi(c.Param("entryId"))
	if err != nil || entryID <= 0 {
		respondBadRequest(c, "Invalid entry ID")
		return
	}

	var req models.UpdateMoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry, serr := mc.moods.UpdateMoodEntry(uid, uint(entryID), req)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Mood entry updated successfully",
		Data:    entry,
	})
}

// DeleteMoodEntry 删除心情记录
func (mc *MoodController) DeleteMoodEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	entryID, err := strconv.Atoi(c.Param("entryId"))
	if err != nil || entryID <= 0 {
		respondBadRequest(c, "Invalid entry ID")
		return
	}

	if serr := mc.moods.DeleteMoodEntry(uid, uint(entryID)); serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Mood entry deleted successfully",
	})
}
