package verifier

import (
	"context"

	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/session"
)

// Verifier resolves a user/password pair into an identity. A negative answer
// is one of the package's error kinds: ErrWrongUserPass, ErrExpiredPass,
// ErrNoAccess, *OtherAuthError or *ServiceError.
type Verifier interface {
	Verify(ctx context.Context, user string, pass secret.Secret) (session.Identity, error)
}
