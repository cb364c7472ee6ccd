package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/security"
)

const sessionKey = "session"

type Authz struct {
	tokens *security.TokenIssuer
}

func NewAuthz(tokens *security.TokenIssuer) *Authz {
	return &Authz{tokens: tokens}
}

// RequireLogin checks the bearer token and stores the resolved session
// in the gin context for handlers to pick up.
func (a *Authz) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(c, "invalid_request", "missing bearer token")
			return
		}

		sess, err := a.tokens.Parse(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			unauth(c, "invalid_token", "invalid jwt")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the identity RequireLogin stored. The second
// return is false on routes that skipped the middleware.
func CurrentSession(c *gin.Context) (security.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return security.Session{}, false
	}
	sess, ok := v.(security.Session)
	return sess, ok
}

// unauth replies 401 with an empty body; the failure detail travels in
// the WWW-Authenticate header only.
func unauth(c *gin.Context, code, desc string) {
	c.Header("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	c.AbortWithStatus(http.StatusUnauthorized)
}
