package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

type authedHandler func(c *gin.Context, claims *auth.Claims)

// authed runs the gate before h and hands it the verified claims. Nothing is
// stored on the gin context.
func (s *HTTPServer) authed(h authedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := s.gate.Authenticate(c.GetHeader(common.AuthorizationHeaderName))
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authentication failed", "path", c.Request.URL.Path, "error", err)
			s.writeError(c, publicAuthError(err))
			c.Abort()
			return
		}
		h(c, claims)
	}
}

// publicAuthError drops token parser detail so the client only sees which
// kind of credential problem it has.
func publicAuthError(err error) error {
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, common.ErrInvalidToken):
		return common.ErrInvalidToken
	default:
		return err
	}
}
