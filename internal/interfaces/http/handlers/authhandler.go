package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "campusdesk/internal/application/user/usecases"
	sharedConfig "campusdesk/internal/shared/config"
	"campusdesk/internal/shared/logger"
	"campusdesk/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthHandler handles login, token refresh and logout. Tokens are returned
// in the body and mirrored into HttpOnly cookies for browser clients.
type AuthHandler struct {
	loginUC      userusecases.LoginExecutor
	refreshUC    userusecases.RefreshTokenExecutor
	cookieConfig sharedConfig.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC userusecases.LoginExecutor,
	refreshUC userusecases.RefreshTokenExecutor,
	cookieConfig sharedConfig.CookieConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		refreshUC:    refreshUC,
		cookieConfig: cookieConfig,
		logger:       log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken,
		int(result.ExpiresIn), 30*24*3600)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
		"user":          result.User,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token := req.RefreshToken
	if token == "" {
		token = utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), userusecases.RefreshTokenCommand{
		RefreshToken: token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookies(c, h.cookieConfig, result.AccessToken, result.RefreshToken,
		int(result.ExpiresIn), 30*24*3600)

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
