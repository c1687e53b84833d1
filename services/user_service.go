package services

import (
	"errors"
	"regexp"

	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/utils"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`\d`)
)

// UserService 用户服务，负责账号的校验与存取
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func isValidUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// validatePassword 返回第一条被违反的密码规则，全部通过返回空串
func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	if !lowerRegex.MatchString(password) {
		return "Password must include a lowercase letter"
	}
	if !upperRegex.MatchString(password) {
		return "Password must include an uppercase letter"
	}
	if !digitRegex.MatchString(password) {
		return "Password must include a number"
	}
	return ""
}

// CreateUser 注册新用户，按用户名→邮箱→密码的顺序快速失败
func (s *UserService) CreateUser(username, email, password string) (*models.User, *Error) {
	if !isValidUsername(username) {
		return nil, validationErr("Username must be between 3 and 30 characters")
	}
	if !isValidEmail(email) {
		return nil, validationErr("Invalid email format")
	}
	if msg := validatePassword(password); msg != "" {
		return nil, validationErr(msg)
	}

	// 邮箱唯一性检查
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, storageErr(err)
	}
	if count > 0 {
		return nil, conflictErr("User already exists with this email")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, storageErr(err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, storageErr(err)
	}

	return &user, nil
}

// VerifyUser 校验登录凭证
func (s *UserService) VerifyUser(email, password string) (*models.User, *Error) {
	if !isValidEmail(email) {
		return nil, validationErr("Invalid email format")
	}
	if password == "" {
		return nil, validationErr("Password is required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("User not found")
		}
		return nil, storageErr(err)
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, authErr("Incorrect password")
	}

	return &user, nil
}

// GetUserByID 按主键取用户
func (s *UserService) GetUserByID(userID uint) (*models.User, *Error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("User not found")
		}
		return nil, storageErr(err)
	}
	return &user, nil
}

// UpdateUser 部分更新用户资料，只校验出现的字段，密码会重新哈希
func (s *UserService) UpdateUser(userID uint, req models.UpdateUserRequest) (*models.User, *Error) {
	updates := map[string]interface{}{}

	if req.Username != nil {
		if !isValidUsername(*req.Username) {
			return nil, validationErr("Username must be between 3 and 30 characters")
		}
		updates["username"] = *req.Username
	}
	if req.Email != nil {
		if !isValidEmail(*req.Email) {
			return nil, validationErr("Invalid email format")
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil {
		if msg := validatePassword(*req.Password); msg != "" {
			return nil, validationErr(msg)
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, storageErr(err)
		}
		updates["password"] = hash
	}

	if len(updates) == 0 {
		return nil, validationErr("No valid fields to update")
	}

	res := s.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		return nil, storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFoundErr("User not found")
	}

	return s.GetUserByID(userID)
}

// DeleteUser 删除用户
func (s *UserService) DeleteUser(userID uint) *Error {
	res := s.db.Where("user_id = ?", userID).Delete(&models.User{})
	if res.Error != nil {
		return storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFoundErr("User not found")
	}
	return nil
}
