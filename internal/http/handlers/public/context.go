package public

import (
	"github.com/mocnhien/storefront/internal/constants"
	handlershared "github.com/mocnhien/storefront/internal/http/handlers/shared"
	"github.com/mocnhien/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id", msgUnauthorized, msgUserIDInvalid)
}

// optionalUserID reads the authenticated user id without writing an
// error response; checkout works for guests too.
func optionalUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// cartSessionID reads the session id placed by the cart session
// middleware. Missing means the middleware is not mounted.
func cartSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.CartSessionCookieName)
	if !exists {
		respondError(c, response.CodeInternal, msgCartSessionFailed, nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		respondError(c, response.CodeInternal, msgCartSessionFailed, nil)
		return "", false
	}
	return id, true
}
