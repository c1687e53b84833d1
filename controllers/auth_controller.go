package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/config"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
	"github.com/sasamoahkb/mood-tracker-app/utils"
)

// AuthController 认证控制器
type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

// Signup 注册
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// 请求层快速失败，详细规则在服务层再查一遍
	if len(req.Username) < 3 {
		respondBadRequest(c, "Username must be at least 3 characters long")
		return
	}
	if !strings.Contains(req.Email, "@") {
		respondBadRequest(c, "Invalid email format")
		return
	}
	if len(req.Password) < 8 {
		respondBadRequest(c, "Password must be at least 8 characters long")
		return
	}

	user, serr := ac.users.CreateUser(req.Username, req.Email, req.Password)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	token, err := utils.GenerateToken(user.UserID, user.Email)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", user.UserID)
		c.JSON(http.StatusInternalServerError, models.Response{Success: false, Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User created successfully",
		Token:   token,
		Data:    models.NewUserResponse(user),
	})
}

// Login 登录
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if !strings.Contains(req.Email, "@") {
		respondBadRequest(c, "Invalid email format")
		return
	}
	if req.Password == "" {
		respondBadRequest(c, "Password is required")
		return
	}

	user, serr := ac.users.VerifyUser(req.Email, req.Password)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	token, err := utils.GenerateToken(user.UserID, user.Email)
	if err != nil {
		config.Logger.Errorw("令牌生成失败", "error", err, "userID", user.UserID)
		c.JSON(http.StatusInternalServerError, models.Response{Success: false, Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Data:    models.NewUserResponse(user),
	})
}
