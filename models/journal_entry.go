package models

import "time"

// JournalEntry 日记模型，挂在某条心情记录之下
type JournalEntry struct {
	JournalID uint      `gorm:"column:journal_id;primaryKey" json:"journal_id"`
	UserID    uint      `gorm:"column:user_id;index" json:"user_id"`
	EntryID   uint      `gorm:"column:entry_id;index" json:"entry_id"`
	Content   string    `gorm:"type:text" json:"content"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
