package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
)

// UserController 用户控制器
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// GetUser 返回当前登录用户
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetUint("uid")

	user, serr := uc.users.GetUserByID(uid)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    models.NewUserResponse(user),
	})
}

// UpdateUser 部分更新当前用户资料
func (uc *UserController) UpdateUser(c *gin.Context) {
	uid := c.GetUint("uid")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, serr := uc.users.UpdateUser(uid, req)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User updated successfully",
		Data:    models.NewUserResponse(user),
	})
}

// DeleteUser 删除当前用户
func (uc *UserController) DeleteUser(c *gin.Context) {
	uid := c.GetUint("uid")

	if serr := uc.users.DeleteUser(uid); serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted",
	})
}
