// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"motostock-api/models"
	"motostock-api/services"
	"motostock-api/utils"
)

type AuthController struct {
	auth      *services.AuthService
	jwtSecret string
}

func NewAuthController(auth *services.AuthService, jwtSecret string) *AuthController {
	return &AuthController{
		auth:      auth,
		jwtSecret: jwtSecret,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !ac.auth.Login(req.Username, req.Password) {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user := ac.auth.CurrentUser()
	token, err := ac.generateJWT(user)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  *user,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.auth.Logout()
	utils.SendSuccess(c, "Successfully logged out", nil)
}

// Me returns the account currently logged in.
func (ac *AuthController) Me(c *gin.Context) {
	user := ac.auth.CurrentUser()
	if user == nil {
		utils.SendError(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
