package services

import (
	"errors"
	"strings"

	"github.com/sasamoahkb/mood-tracker-app/models"
	"gorm.io/gorm"
)

// JournalService 日记服务
type JournalService struct {
	db *gorm.DB
}

func NewJournalService(db *gorm.DB) *JournalService {
	return &JournalService{db: db}
}

func isValidJournalContent(content string) bool {
	return strings.TrimSpace(content) != ""
}

// CreateJournalEntry 在某条心情记录下创建日记
// 被引用的心情记录必须存在且属于同一个用户
func (s *JournalService) CreateJournalEntry(userID, entryID uint, content string) (*models.JournalEntry, *Error) {
	if !isValidJournalContent(content) {
		return nil, validationErr("Journal content is required")
	}

	var mood models.MoodEntry
	if err := s.db.Where("entry_id = ? AND user_id = ?", entryID, userID).First(&mood).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Mood entry not found or not authorized")
		}
		return nil, storageErr(err)
	}

	journal := models.JournalEntry{
		UserID:  userID,
		EntryID: entryID,
		Content: content,
	}
	if err := s.db.Create(&journal).Error; err != nil {
		return nil, storageErr(err)
	}
	return &journal, nil
}

// GetJournalEntries 查询用户的日记历史，可按时间范围过滤，最新的在前
func (s *JournalService) GetJournalEntries(userID uint, f models.JournalHistoryFilters) ([]models.JournalEntry, *Error) {
	q := s.db.Where("user_id = ?", userID)
	if f.From != nil {
		q = q.Where("timestamp >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("timestamp <= ?", *f.To)
	}

	journals := []models.JournalEntry{}
	if err := q.Order("timestamp DESC").Find(&journals).Error; err != nil {
		return nil, storageErr(err)
	}
	return journals, nil
}

// UpdateJournalEntry 更新日记内容，归属校验区分"不存在"和"无权限"
func (s *JournalService) UpdateJournalEntry(userID, journalID uint, content string) (*models.JournalEntry, *Error) {
	if !isValidJournalContent(content) {
		return nil, validationErr("Journal content is required")
	}

	var journal models.JournalEntry
	if err := s.db.Where("journal_id = ?", journalID).First(&journal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("No journal entry with that ID found")
		}
		return nil, storageErr(err)
	}
	if journal.UserID != userID {
		return nil, authErr("You do not have permission to update this journal entry")
	}

	res := s.db.Model(&models.JournalEntry{}).
		Where("journal_id = ? AND user_id = ?", journalID, userID).
		Update("content", content)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}
	// SELECT和UPDATE之间被并发删除
	if res.RowsAffected == 0 {
		return nil, notFoundErr("No journal entry with that ID found")
	}

	journal.Content = content
	return &journal, nil
}

// DeleteJournalEntry 删除日记，WHERE同时限定日记ID和用户ID
func (s *JournalService) DeleteJournalEntry(userID, journalID uint) *Error {
	res := s.db.Where("journal_id = ? AND user_id = ?", journalID, userID).Delete(&models.JournalEntry{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("Journal entry not found or not authorized")
	}
	return nil
}
