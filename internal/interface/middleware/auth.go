package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/internal/domain/repository"
	"github.com/oksasatya/auth-service/pkg/helpers"
	"github.com/oksasatya/auth-service/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	ctxUserKey   = "authUser"
)

// Auth resolves the caller's identity from the bearer token: token is
// verified as an access token, then the user row is loaded so a valid token
// for a deleted user still fails with USER_NOT_FOUND. The user status is
// checked at login time only; an already-issued token stays valid until
// natural expiry.
func Auth(jwt *helpers.JWTManager, repo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.AbortWithError(c, apperr.InvalidToken("Missing bearer token"))
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}
		u, err := repo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireRoles enforces that the resolved caller's type is in the allow-set.
// Must run after Auth.
func RequireRoles(allowed ...entity.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.AbortWithError(c, apperr.InvalidToken(""))
			return
		}
		for _, role := range allowed {
			if u.Type == role {
				c.Next()
				return
			}
		}
		response.AbortWithError(c, apperr.NotAllowed("Role "+string(u.Type)+" is not allowed"))
	}
}

// CurrentUser returns the user resolved by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
