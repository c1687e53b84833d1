package services

import (
	"errors"
	"math"
	"strings"

	"github.com/sasamoahkb/mood-tracker-app/models"
	"gorm.io/gorm"
)

// 分页默认值
const (
	defaultPage  = 1
	defaultLimit = 10
)

// MoodService 心情记录服务
type MoodService struct {
	db *gorm.DB
}

func NewMoodService(db *gorm.DB) *MoodService {
	return &MoodService{db: db}
}

func isIntegerInRange(v float64, min, max int) bool {
	return v == math.Trunc(v) && v >= float64(min) && v <= float64(max)
}

// validateMoodEntry 按心情→评分→因素的顺序返回第一条被违反的规则
func validateMoodEntry(req models.CreateMoodEntryRequest) string {
	if strings.TrimSpace(req.Mood) == "" {
		return "Mood is required and must be a non-empty string"
	}
	if req.MoodRating == nil || !isIntegerInRange(*req.MoodRating, 1, 10) {
		return "Mood rating must be an integer between 1 and 10"
	}
	if len(req.Factors) > 3 {
		return "You can only select up to 3 factors"
	}
	for _, f := range req.Factors {
		if f.FactorID == nil || *f.FactorID != math.Trunc(*f.FactorID) || *f.FactorID <= 0 ||
			f.Intensity == nil || !isIntegerInRange(*f.Intensity, 1, 10) {
			return "Each factor must have a valid factor_id and intensity between 1 and 10"
		}
	}
	return ""
}

// CreateMoodEntry 创建心情记录及其因素关联
// 记录行和因素行写在同一事务里，任何一条失败整体回滚
func (s *MoodService) CreateMoodEntry(userID uint, req models.CreateMoodEntryRequest) (*models.MoodEntry, *Error) {
	if msg := validateMoodEntry(req); msg != "" {
		return nil, validationErr(msg)
	}

	entry := models.MoodEntry{
		UserID:     userID,
		Mood:       req.Mood,
		MoodRating: int(*req.MoodRating),
		Notes:      req.Notes,
		Location:   req.Location,
	}

	// 开启事务
	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, storageErr(tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		return nil, storageErr(err)
	}

	for _, f := range req.Factors {
		mf := models.MoodFactor{
			EntryID:   entry.EntryID,
			FactorID:  uint(*f.FactorID),
			Intensity: int(*f.Intensity),
		}
		if err := tx.Create(&mf).Error; err != nil {
			tx.Rollback()
			return nil, storageErr(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, storageErr(err)
	}

	return &entry, nil
}

// applyHistoryFilters 把可选过滤条件合取到查询上，计数和取页必须走同一份条件
func applyHistoryFilters(q *gorm.DB, f models.MoodHistoryFilters) *gorm.DB {
	if f.From != nil {
		q = q.Where("timestamp >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("timestamp <= ?", *f.To)
	}
	if f.Rating != nil {
		q = q.Where("mood_rating = ?", *f.Rating)
	}
	if f.Mood != "" {
		q = q.Where("LOWER(mood) = LOWER(?)", f.Mood)
	}
	return q
}

func totalPages(totalItems int64, limit int) int {
	return int(math.Ceil(float64(totalItems) / float64(limit)))
}

// GetMoodEntriesByUserID 按条件分页查询用户的心情历史，最新的在前
func (s *MoodService) GetMoodEntriesByUserID(userID uint, f models.MoodHistoryFilters) ([]models.MoodEntry, *models.Pagination, *Error) {
	page := f.Page
	if page < 1 {
		page = defaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	var total int64
	countQ := applyHistoryFilters(s.db.Model(&models.MoodEntry{}).Where("user_id = ?", userID), f)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, nil, storageErr(err)
	}

	entries := []models.MoodEntry{}
	listQ := applyHistoryFilters(s.db.Model(&models.MoodEntry{}).Where("user_id = ?", userID), f)
	if err := listQ.Order("timestamp DESC").Limit(limit).Offset((page - 1) * limit).Find(&entries).Error; err != nil {
		return nil, nil, storageErr(err)
	}

	pagination := &models.Pagination{
		TotalItems:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
		PageSize:    limit,
	}
	return entries, pagination, nil
}

// UpdateMoodEntry 部分更新心情记录，先确认归属再改
func (s *MoodService) UpdateMoodEntry(userID, entryID uint, req models.UpdateMoodEntryRequest) (*models.MoodEntry, *Error) {
	var entry models.MoodEntry
	if err := s.db.Where("entry_id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Mood entry not found or not authorized")
		}
		return nil, storageErr(err)
	}

	updates := map[string]interface{}{}
	if req.Mood != nil {
		if strings.TrimSpace(*req.Mood) == "" {
			return nil, validationErr("Mood is required and must be a non-empty string")
		}
		updates["mood"] = *req.Mood
	}
	if req.MoodRating != nil {
		if !isIntegerInRange(*req.MoodRating, 1, 10) {
			return nil, validationErr("Mood rating must be an integer between 1 and 10")
		}
		updates["mood_rating"] = int(*req.MoodRating)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}

	if len(updates) == 0 {
		return nil, validationErr("No valid fields to update")
	}

	res := s.db.Model(&models.MoodEntry{}).Where("entry_id = ? AND user_id = ?", entryID, userID).Updates(updates)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}

	if err := s.db.Where("entry_id = ?", entryID).First(&entry).Error; err != nil {
		return nil, storageErr(err)
	}
	return &entry, nil
}

// DeleteMoodEntry 删除用户自己的心情记录，关联的因素和日记由外键级联清理
func (s *MoodService) DeleteMoodEntry(userID, entryID uint) *Error {
	res := s.db.Where("entry_id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodEntry{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("Mood entry not found or not authorized")
	}
	return nil
}
