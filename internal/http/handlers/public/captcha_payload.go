package public

import (
	"strings"

	"github.com/mocnhien/storefront/internal/service"
)

// CaptchaPayloadRequest carries the challenge answer for captcha-gated
// endpoints. Disabled scenes accept an empty payload.
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (r CaptchaPayloadRequest) toServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   strings.TrimSpace(r.CaptchaID),
		CaptchaCode: strings.TrimSpace(r.CaptchaCode),
	}
}
