package models

// Factor 全局因素目录项，不属于任何用户
type Factor struct {
	FactorID uint    `gorm:"column:factor_id;primaryKey" json:"factor_id"`
	Name     string  `gorm:"type:varchar(50)" json:"name"`
	Category string  `gorm:"type:varchar(50)" json:"category"`
	Icon     *string `gorm:"type:varchar(100)" json:"icon"`
}

func (Factor) TableName() string {
	return "factors"
}

// AllowedCategories 因素分类的固定枚举
var AllowedCategories = []string{
	"Sleep",
	"Nutrition",
	"Physical Activity",
	"Social",
	"Work/School",
	"Environment",
	"Mental Health",
	"Substance Use",
	"Technology",
	"Routine",
}

// IsAllowedCategory 判断分类是否在固定枚举内
func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}
