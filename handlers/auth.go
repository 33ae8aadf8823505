package handlers

import (
	"net/http"

	"slotbook/config"
	"slotbook/middleware"
	"slotbook/models"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(userService user.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

// SignupHandler handles POST /auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var creds models.UserCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, utils.InvalidInput("Please provide userId, password, and role"))
		return
	}

	u, err := h.UserService.Signup(c.Request.Context(), creds)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	logger.Info("user registered", zap.String("userId", u.UserID), zap.String("role", u.Role))
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    gin.H{"userId": u.UserID, "role": u.Role},
	})
}

// LoginHandler handles POST /auth/login. The token is returned in the body and
// set as an HttpOnly cookie.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var creds models.UserCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.RespondError(c, utils.InvalidInput("Please provide userId, password, and role"))
		return
	}

	resp, err := h.UserService.Login(c.Request.Context(), creds)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	setAuthCookie(c, resp.Token, int(config.AppConfig.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message":   "Authenticated successfully",
		"token":     resp.Token,
		"userId":    resp.UserID,
		"role":      resp.Role,
		"expiresAt": resp.ExpiresAt,
	})
}

// LogoutHandler handles POST /auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if err := h.UserService.Logout(c.Request.Context(), token); err != nil {
		utils.RespondError(c, err)
		return
	}
	setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func setAuthCookie(c *gin.Context, token string, maxAge int) {
	name := config.AppConfig.AuthCookieName
	if name == "" {
		name = "auth_token"
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", "", config.IsProduction(), true)
}
