package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
)

// JournalController 日记控制器
type JournalController struct {
	journals *services.JournalService
}

func NewJournalController(journals *services.JournalService) *JournalController {
	return &JournalController{journals: journals}
}

// CreateJournalEntry 在某条心情记录下创建日记
func (jc *JournalController) CreateJournalEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	var req models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	journal, serr := jc.journals.CreateJournalEntry(uid, req.EntryID, req.Content)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Journal entry created successfully",
		Data:    journal,
	})
}

// GetJournalHistory 查询日记历史，支持from/to过滤
func (jc *JournalController) GetJournalHistory(c *gin.Context) {
	uid := c.GetUint("uid")

	var filters models.JournalHistoryFilters
	var ok bool
	if filters.From, ok = parseTimeFilter(c.Query("from")); !ok {
		respondBadRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		return
	}
	if filters.To, ok = parseTimeFilter(c.Query("to")); !ok {
		respondBadRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
		return
	}

	journals, serr := jc.journals.GetJournalEntries(uid, filters)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    journals,
	})
}

// UpdateJournalEntry 更新日记内容
func (jc *JournalController) UpdateJournalEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	journalID, err := strconv.Atoi(c.Param("journalId"))
	if err != nil || journalID <= 0 {
		respondBadRequest(c, "Invalid journal ID")
		return
	}

	var req models.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	journal, serr := jc.journals.UpdateJournalEntry(uid, uint(journalID), req.Content)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Journal entry updated successfully",
		Data:    journal,
	})
}

// DeleteJournalEntry 删除日记
func (jc *JournalController) DeleteJournalEntry(c *gin.Context) {
	uid := c.GetUint("uid")

	journalID, err := strconv.Atoi(c.Param("journalId"))
	if err != nil || journalID <= 0 {
		respondBadRequest(c, "Invalid journal ID")
		return
	}

	if serr := jc.journals.DeleteJournalEntry(uid, uint(journalID)); serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Journal entry deleted successfully",
	})
}
