// File: /controllers/motorcycle_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motostock-api/models"
	"motostock-api/repositories"
	"motostock-api/utils"
)

type MotorcycleController struct {
	repo *repositories.MotorcycleRepository
}

func NewMotorcycleController(repo *repositories.MotorcycleRepository) *MotorcycleController {
	return &MotorcycleController{repo: repo}
}

type MotorcycleRequest struct {
	Brand        string  `json:"brand" binding:"required"`
	Displacement int     `json:"displacement" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Color        string  `json:"color" binding:"required"`
}

func (mc *MotorcycleController) List(c *gin.Context) {
	motos, err := mc.repo.FindAll()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch motorcycles")
		return
	}
	c.JSON(http.StatusOK, motos)
}

func (mc *MotorcycleController) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid motorcycle id")
		return
	}

	moto, err := mc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch motorcycle")
		return
	}
	c.JSON(http.StatusOK, moto)
}

func (mc *MotorcycleController) Create(c *gin.Context) {
	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	moto := models.Motorcycle{
		Brand:        req.Brand,
		Displacement: req.Displacement,
		Price:        req.Price,
		Color:        req.Color,
	}
	if err := mc.repo.Save(&moto); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create motorcycle")
		return
	}

	c.JSON(http.StatusCreated, moto)
}

func (mc *MotorcycleController) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid motorcycle id")
		return
	}

	var req MotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	moto := models.Motorcycle{
		ID:           id,
		Brand:        req.Brand,
		Displacement: req.Displacement,
		Price:        req.Price,
		Color:        req.Color,
	}
	if err := mc.repo.Update(&moto); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update motorcycle")
		return
	}

	utils.SendSuccess(c, "Motorcycle updated successfully", moto)
}

func (mc *MotorcycleController) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid motorcycle id")
		return
	}

	if err := mc.repo.DeleteByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "Motorcycle not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete motorcycle")
		return
	}

	utils.SendSuccess(c, "Motorcycle deleted successfully", nil)
}

// Search filters the inventory by one criterion: brand substring,
// price ceiling, or displacement range. All text-to-number parsing
// happens here so the repository only ever sees typed arguments.
func (mc *MotorcycleController) Search(c *gin.Context) {
	if brand := c.Query("brand"); brand != "" {
		motos, err := mc.repo.FindByBrand(brand)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to search motorcycles")
			return
		}
		c.JSON(http.StatusOK, motos)
		return
	}

	if maxPrice := c.Query("max_price"); maxPrice != "" {
		ceiling, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil || ceiling < 0 {
			utils.SendError(c, http.StatusBadRequest, "max_price must be a non-negative number")
			return
		}
		motos, err := mc.repo.FindByMaxPrice(ceiling)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to search motorcycles")
			return
		}
		c.JSON(http.StatusOK, motos)
		return
	}

	minStr, maxStr := c.Query("min_displacement"), c.Query("max_displacement")
	if minStr != "" || maxStr != "" {
		min, errMin := strconv.Atoi(minStr)
		max, errMax := strconv.Atoi(maxStr)
		if errMin != nil || errMax != nil || min < 0 || max < min {
			utils.SendError(c, http.StatusBadRequest, "min_displacement and max_displacement must form a valid range")
			return
		}
		motos, err := mc.repo.FindByDisplacementRange(min, max)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to search motorcycles")
			return
		}
		c.JSON(http.StatusOK, motos)
		return
	}

	utils.SendError(c, http.StatusBadRequest, "Provide brand, max_price, or a displacement range")
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
