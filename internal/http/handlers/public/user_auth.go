package public

import (
	"errors"
	"time"

	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/models"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func userView(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"phone":        user.Phone,
	}
}

func authView(user *models.User, token string, expiresAt time.Time) gin.H {
	return gin.H{
		"user":       userView(user),
		"token":      token,
		"expires_at": expiresAt.Format(time.RFC3339),
	}
}

// UserRegisterRequest registers a customer account.
type UserRegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
}

// UserRegister creates a customer account and signs them in.
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(req.Email, req.Password, req.DisplayName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, msgInvalidEmail, nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, msgEmailExists, nil)
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, response.CodeBadRequest, msgPasswordTooShort, nil)
		default:
			respondError(c, response.CodeInternal, msgRegisterFailed, err)
		}
		return
	}

	response.Success(c, authView(user, token, expiresAt))
}

// UserLoginRequest signs a customer in.
type UserLoginRequest struct {
	Email          string                `json:"email" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	RememberMe     bool                  `json:"remember_me"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserLogin authenticates a customer.
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, msgBadRequest, err)
		return
	}
	if !h.verifyCaptcha(c, service.CaptchaSceneLogin, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, msgInvalidEmail, nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, msgInvalidCredentials, nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeUnauthorized, msgUserDisabled, nil)
		default:
			respondError(c, response.CodeInternal, msgLoginFailed, err)
		}
		return
	}

	response.Success(c, authView(user, token, expiresAt))
}

// GetProfile returns the authenticated customer profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(userID)
	if err != nil {
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}
	if user == nil {
		respondError(c, response.CodeUnauthorized, msgUnauthorized, nil)
		return
	}
	response.Success(c, userView(user))
}
