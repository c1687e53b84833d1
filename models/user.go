package models

import (
	"time"
)

// User 用户模型
type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"type:varchar(30)" json:"username"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password  string    `gorm:"type:varchar(100)" json:"-"` // bcrypt哈希，永不下发
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	// 删除用户时级联清理其心情记录和日记，因素关联再经心情记录级联
	MoodEntries    []MoodEntry    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	JournalEntries []JournalEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
