package models

import "time"

// SignupRequest 注册请求
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest 用户资料部分更新请求，只校验出现的字段
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// MoodFactorRequest 心情记录附带的因素强度
// 数值字段用指针区分"未提供"和零值，float64承接任意JSON数字以便校验整数性
type MoodFactorRequest struct {
	FactorID  *float64 `json:"factor_id"`
	Intensity *float64 `json:"intensity"`
}

// CreateMoodEntryRequest 创建心情记录请求
type CreateMoodEntryRequest struct {
	Mood       string              `json:"mood"`
	MoodRating *float64            `json:"mood_rating"`
	Notes      string              `json:"notes"`
	Location   string              `json:"location"`
	Factors    []MoodFactorRequest `json:"factors"`
}

// UpdateMoodEntryRequest 心情记录部分更新请求
type UpdateMoodEntryRequest struct {
	Mood       *string  `json:"mood"`
	MoodRating *float64 `json:"mood_rating"`
	Notes      *string  `json:"notes"`
	Location   *string  `json:"location"`
}

// CreateJournalEntryRequest 创建日记请求
type CreateJournalEntryRequest struct {
	EntryID uint   `json:"entry_id"`
	Content string `json:"content"`
}

// UpdateJournalEntryRequest 更新日记请求
type UpdateJournalEntryRequest struct {
	Content string `json:"content"`
}

// FactorRequest 因素目录创建/更新请求
type FactorRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
}

// MoodHistoryFilters 心情历史查询条件，全部可选，合取生效
type MoodHistoryFilters struct {
	From   *time.Time
	To     *time.Time
	Rating *int
	Mood   string
	Page   int
	Limit  int
}

// JournalHistoryFilters 日记历史查询条件
type JournalHistoryFilters struct {
	From *time.Time
	To   *time.Time
}
