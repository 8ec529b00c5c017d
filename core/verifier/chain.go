package verifier

import (
	"context"
	"slices"

	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/session"
)

// Chain asks an ordered list of verifiers in turn and answers with the first
// positive result. Members answer for disjoint user populations, so a
// wrong-password answer from one member never short-circuits the rest; when
// everybody declines, the last error stands.
type Chain struct {
	members []Verifier
}

// NewChain builds a composite over the given members, in order.
// At least one member is required.
func NewChain(members ...Verifier) (*Chain, error) {
	if len(members) == 0 {
		return nil, ErrEmptyChain
	}
	return &Chain{members: slices.Clone(members)}, nil
}

// Verify implements Verifier.
func (c *Chain) Verify(ctx context.Context, user string, pass secret.Secret) (session.Identity, error) {
	var last error
	for _, member := range c.members {
		identity, err := member.Verify(ctx, user, pass)
		if err == nil {
			return identity, nil
		}
		last = err
	}
	return session.Identity{}, last
}
