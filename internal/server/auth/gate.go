package auth

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

var (
	ErrMissingCredentials   = fmt.Errorf("%w: missing authorization header", common.ErrorUnauthorized)
	ErrMalformedCredentials = fmt.Errorf("%w: invalid authorization header format", common.ErrorUnauthorized)
)

type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// Gate authenticates requests to protected routes. It returns the verified
// claims to the caller instead of stashing them in a request context.
type Gate struct {
	tokens TokenValidator
}

func NewGate(tokens TokenValidator) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate validates the value of an Authorization header, which must be
// of the form "Bearer <token>".
func (g *Gate) Authenticate(header string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissingCredentials
	}

	token, ok := strings.CutPrefix(header, common.BearerScheme)
	if !ok || strings.TrimSpace(token) == "" {
		return nil, ErrMalformedCredentials
	}

	return g.tokens.Validate(token)
}
