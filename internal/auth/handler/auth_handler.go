package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakariadrk66/BTP/internal/auth/repository"
	"github.com/zakariadrk66/BTP/internal/auth/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type verifyLoginRequest struct {
	Ticket string `json:"ticket" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

type verifySetupRequest struct {
	Code string `json:"code" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"code": 0, "message": "success", "data": data})
}

func respondError(c *gin.Context, status, code int, message string) {
	c.JSON(status, gin.H{"code": code, "message": message})
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			respondError(c, http.StatusConflict, 40900, err.Error())
			return
		}
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}
	respond(c, http.StatusCreated, user)
}

// Login POST /auth/login
// Responds 202 with a ticket when the account needs a two-factor code.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, 40100, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, 50000, err.Error())
		return
	}

	if result.TwoFARequired {
		c.JSON(http.StatusAccepted, gin.H{
			"code":    0,
			"message": "2FA required",
			"data":    gin.H{"ticket": result.Ticket},
		})
		return
	}
	respond(c, http.StatusOK, result.Tokens)
}

// VerifyTwoFactorLogin POST /auth/2fa/verify-login
func (h *AuthHandler) VerifyTwoFactorLogin(c *gin.Context) {
	var req verifyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}

	tokens, err := h.svc.VerifyTwoFactorLogin(c.Request.Context(), req.Ticket, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketExpired), errors.Is(err, service.ErrInvalidCode):
			respondError(c, http.StatusUnauthorized, 40100, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			respondError(c, http.StatusNotFound, 40400, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, 50000, err.Error())
		}
		return
	}
	respond(c, http.StatusOK, tokens)
}

// SetupTwoFactor POST /auth/2fa/setup
func (h *AuthHandler) SetupTwoFactor(c *gin.Context) {
	userID := c.GetString("user_id")

	secret, url, err := h.svc.SetupTwoFactor(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTwoFAAlreadySetup) {
			respondError(c, http.StatusBadRequest, 40000, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, 50000, err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{
		"secret_key":  secret,
		"otpauth_url": url,
	})
}

// VerifyTwoFactorSetup POST /auth/2fa/verify-setup
func (h *AuthHandler) VerifyTwoFactorSetup(c *gin.Context) {
	var req verifySetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}

	userID := c.GetString("user_id")
	if err := h.svc.VerifyTwoFactorSetup(c.Request.Context(), userID, req.Code); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode),
			errors.Is(err, service.ErrTwoFAAlreadySetup),
			errors.Is(err, service.ErrTwoFANotSetup):
			respondError(c, http.StatusBadRequest, 40000, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, 50000, err.Error())
		}
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "2FA enabled"})
}

// DisableTwoFactor POST /auth/2fa/disable
func (h *AuthHandler) DisableTwoFactor(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.svc.DisableTwoFactor(c.Request.Context(), userID); err != nil {
		respondError(c, http.StatusInternalServerError, 50000, err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "2FA disabled"})
}

// TwoFactorStatus GET /auth/2fa/status
func (h *AuthHandler) TwoFactorStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.svc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, 40400, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, 50000, err.Error())
		return
	}
	respond(c, http.StatusOK, gin.H{"is_2fa_enabled": user.TwoFAEnabled})
}

// Refresh POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, 40000, err.Error())
		return
	}

	tokens, err := h.svc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, http.StatusUnauthorized, 40100, err.Error())
		return
	}
	respond(c, http.StatusOK, tokens)
}

// Me GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	user, err := h.svc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, 40400, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, 50000, err.Error())
		return
	}
	respond(c, http.StatusOK, user)
}
