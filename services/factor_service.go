package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"gorm.io/gorm"
)

const (
	factorsCacheKey = "factors:all"
	factorsCacheTTL = 10 * time.Minute
)

var ctx = context.Background()

// FactorService 因素目录服务
// 目录是全局只读热点，列表走Redis读穿缓存，任何写操作使缓存失效
// rdb为nil时退化为纯数据库访问
type FactorService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewFactorService(db *gorm.DB, rdb *redis.Client) *FactorService {
	return &FactorService{db: db, rdb: rdb}
}

func categoryErrMessage() string {
	return "Category must be one of: " + strings.Join(models.AllowedCategories, ", ")
}

// validateFactor 校验因素字段，allowPartial时只检查出现的字段
func validateFactor(req models.FactorRequest, allowPartial bool) string {
	if !allowPartial || req.Name != nil {
		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			return "Factor name is required and must be a non-empty string"
		}
	}
	if !allowPartial || req.Category != nil {
		if req.Category == nil || !models.IsAllowedCategory(strings.TrimSpace(*req.Category)) {
			return categoryErrMessage()
		}
	}
	return ""
}

func (s *FactorService) invalidateCache() {
	if s.rdb != nil {
		s.rdb.Del(ctx, factorsCacheKey)
	}
}

// ListFactors 返回全部因素，按ID升序
func (s *FactorService) ListFactors() ([]models.Factor, *Error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, factorsCacheKey).Result(); err == nil {
			var cached []models.Factor
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	factors := []models.Factor{}
	if err := s.db.Order("factor_id ASC").Find(&factors).Error; err != nil {
		return nil, storageErr(err)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(factors); err == nil {
			s.rdb.Set(ctx, factorsCacheKey, data, factorsCacheTTL)
		}
	}
	return factors, nil
}

// CreateFactor 新建因素，名称和分类入库前都去除首尾空白
func (s *FactorService) CreateFactor(req models.FactorRequest) (*models.Factor, *Error) {
	if msg := validateFactor(req, false); msg != "" {
		return nil, validationErr(msg)
	}

	factor := models.Factor{
		Name:     strings.TrimSpace(*req.Name),
		Category: strings.TrimSpace(*req.Category),
	}
	if req.Icon != nil {
		icon := strings.TrimSpace(*req.Icon)
		factor.Icon = &icon
	}

	if err := s.db.Create(&factor).Error; err != nil {
		return nil, storageErr(err)
	}

	s.invalidateCache()
	return &factor, nil
}

// UpdateFactor 部分更新因素
func (s *FactorService) UpdateFactor(id int, req models.FactorRequest) (*models.Factor, *Error) {
	if id <= 0 {
		return nil, validationErr("Invalid factor ID")
	}
	if msg := validateFactor(req, true); msg != "" {
		return nil, validationErr(msg)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Icon != nil {
		updates["icon"] = strings.TrimSpace(*req.Icon)
	}

	if len(updates) == 0 {
		return nil, validationErr("No valid fields to update")
	}

	res := s.db.Model(&models.Factor{}).Where("factor_id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFoundErr("Factor not found")
	}

	s.invalidateCache()

	var factor models.Factor
	if err := s.db.Where("factor_id = ?", id).First(&factor).Error; err != nil {
		return nil, storageErr(err)
	}
	return &factor, nil
}

// DeleteFactor 删除因素
func (s *FactorService) DeleteFactor(id int) *Error {
	if id <= 0 {
		return validationErr("Invalid factor ID")
	}

	res := s.db.Where("factor_id = ?", id).Delete(&models.Factor{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("Factor not found")
	}

	s.invalidateCache()
	return nil
}
