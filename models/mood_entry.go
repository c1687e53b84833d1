package models

import "time"

// MoodEntry 心情记录模型
type MoodEntry struct {
	EntryID    uint      `gorm:"column:entry_id;primaryKey" json:"entry_id"`
	UserID     uint      `gorm:"column:user_id;index" json:"user_id"`
	Mood       string    `gorm:"type:varchar(50)" json:"mood"`
	MoodRating int       `gorm:"column:mood_rating" json:"mood_rating"` // 1-10
	Notes      string    `gorm:"type:text" json:"notes"`
	Location   string    `gorm:"type:varchar(100)" json:"location"`
	Timestamp  time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`

	// 删除记录时级联删除因素关联和日记
	Factors  []MoodFactor   `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"-"`
	Journals []JournalEntry `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MoodEntry) TableName() string {
	return "mood_entries"
}
