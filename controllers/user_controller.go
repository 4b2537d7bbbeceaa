// File: /controllers/user_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"motostock-api/models"
	"motostock-api/repositories"
	"motostock-api/services"
	"motostock-api/utils"
)

// UserController manages application accounts. Every route it backs
// sits behind the admin gate.
type UserController struct {
	repo         *repositories.UserRepository
	emailService *services.EmailService
}

func NewUserController(repo *repositories.UserRepository, emailService *services.EmailService) *UserController {
	return &UserController{
		repo:         repo,
		emailService: emailService,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.repo.FindAll()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	user, err := uc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		Username: req.Username,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := uc.repo.Save(&user, req.Password); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.SendError(c, http.StatusConflict, "Username already taken")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if user.Email != "" {
		go func() {
			if err := uc.emailService.SendWelcomeEmail(user.Email, user.Name, user.Username); err != nil {
				log.Printf("Failed to send welcome email: %v", err)
			}
		}()
	}

	utils.SendCreated(c, "User created successfully", user)
}

func (uc *UserController) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	user := models.User{
		ID:       id,
		Username: req.Username,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := uc.repo.Update(&user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		if errors.Is(err, repositories.ErrDuplicate) {
			utils.SendError(c, http.StatusConflict, "Username already taken")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.SendSuccess(c, "User updated successfully", user)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := uc.repo.DeleteByID(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	utils.SendSuccess(c, "User deleted successfully", nil)
}

// UpdatePassword overwrites an account's password with a fresh hash.
func (uc *UserController) UpdatePassword(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := uc.repo.UpdatePassword(id, req.Password); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	if user, err := uc.repo.FindByID(id); err == nil && user.Email != "" {
		go func() {
			if err := uc.emailService.SendPasswordChangedEmail(user.Email, user.Name); err != nil {
				log.Printf("Failed to send password changed email: %v", err)
			}
		}()
	}

	utils.SendSuccess(c, "Password updated successfully", nil)
}
