package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diligence-app/diligence-backend/internal/domain/repository"
	"github.com/diligence-app/diligence-backend/pkg/helpers"
	"github.com/diligence-app/diligence-backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

// Auth validates the Authorization bearer token and loads the acting user.
// Missing credential, invalid/expired token, and a token whose subject no
// longer exists all produce the same 401 so callers cannot tell which stage
// failed. On success userID, userEmail, and userName are set in the context.
func Auth(jwt *helpers.JWTManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			unauthorized(c)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil || claims.Subject == "" {
			unauthorized(c)
			return
		}
		u, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil || u == nil {
			// valid token for a since-deleted user must not authenticate
			unauthorized(c)
			return
		}
		c.Set(CtxUserIDKey, u.ID)
		c.Set(CtxUserEmailKey, u.Email)
		c.Set(CtxUserNameKey, u.Name)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error[any](c, http.StatusUnauthorized, "could not validate credentials", nil)
	c.Abort()
}
