package public

import (
	"errors"

	"github.com/mocnhien/storefront/internal/http/response"
	"github.com/mocnhien/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha issues an image captcha challenge.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, msgCaptchaUnavailable, service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaConfigInvalid) {
			respondError(c, response.CodeBadRequest, msgCaptchaUnavailable, nil)
			return
		}
		respondError(c, response.CodeInternal, msgInternal, err)
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// verifyCaptcha runs captcha verification for a scene, writing the
// error response itself. Returns false when the request must stop.
func (h *Handler) verifyCaptcha(c *gin.Context, scene string, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	err := h.CaptchaService.Verify(scene, payload.toServicePayload())
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, service.ErrCaptchaRequired):
		respondError(c, response.CodeBadRequest, msgCaptchaRequired, nil)
	case errors.Is(err, service.ErrCaptchaInvalid):
		respondError(c, response.CodeBadRequest, msgCaptchaInvalid, nil)
	case errors.Is(err, service.ErrCaptchaConfigInvalid):
		respondError(c, response.CodeInternal, msgCaptchaUnavailable, err)
	default:
		respondError(c, response.CodeInternal, msgInternal, err)
	}
	return false
}
