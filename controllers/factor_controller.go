package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sasamoahkb/mood-tracker-app/models"
	"github.com/sasamoahkb/mood-tracker-app/services"
)

// FactorController 因素目录控制器
type FactorController struct {
	factors *services.FactorService
}

func NewFactorController(factors *services.FactorService) *FactorController {
	return &FactorController{factors: factors}
}

// ListFactors 列出全部因素，无需认证
func (fc *FactorController) ListFactors(c *gin.Context) {
	factors, serr := fc.factors.ListFactors()
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Factors retrieved successfully",
		Data:    factors,
	})
}

// CreateFactor 新建因素，仅限管理员
func (fc *FactorController) CreateFactor(c *gin.Context) {
	var req models.FactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	factor, serr := fc.factors.CreateFactor(req)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Factor created successfully",
		Data:    factor,
	})
}

// UpdateFactor 部分更新因素，仅限管理员
func (fc *FactorController) UpdateFactor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid factor ID")
		return
	}

	var req models.FactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	factor, serr := fc.factors.UpdateFactor(id, req)
	if serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Factor updated successfully",
		Data:    factor,
	})
}

// DeleteFactor 删除因素，仅限管理员
func (fc *FactorController) DeleteFactor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid factor ID")
		return
	}

	if serr := fc.factors.DeleteFactor(id); serr != nil {
		respondServiceError(c, serr)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Factor deleted successfully",
	})
}
