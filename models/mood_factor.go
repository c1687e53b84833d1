package models

// MoodFactor 心情记录与因素的关联，携带强度值
type MoodFactor struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	EntryID   uint `gorm:"column:entry_id;index" json:"entry_id"`
	FactorID  uint `gorm:"column:factor_id" json:"factor_id"`
	Intensity int  `gorm:"column:intensity" json:"intensity"` // 1-10
}

func (MoodFactor) TableName() string {
	return "mood_factors"
}
