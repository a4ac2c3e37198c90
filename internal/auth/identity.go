package auth

import (
	"context"
	"errors"
	"fmt"
)

// State is the progress of a request through the gates.
type State int

const (
	Unauthenticated State = iota
	Authenticated
	Authorized
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Authorized:
		return "authorized"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a gate is applied out of order.
var ErrInvalidTransition = errors.New("invalid identity transition")

// Identity is the immutable per-request record of who the caller is and which
// gates it has passed. The zero value is Unauthenticated.
type Identity struct {
	state  State
	claims *Claims
}

func (i Identity) State() State { return i.state }

// Email returns the verified email, or "" before authentication.
func (i Identity) Email() string {
	if i.claims == nil {
		return ""
	}
	return i.claims.Email
}

// Authenticate attaches verified claims. Only valid from Unauthenticated.
func (i Identity) Authenticate(claims *Claims) (Identity, error) {
	if i.state != Unauthenticated || claims == nil {
		return i, fmt.Errorf("%w: authenticate from %s", ErrInvalidTransition, i.state)
	}
	return Identity{state: Authenticated, claims: claims}, nil
}

// Authorize marks the identity as holding the admin role. Only valid from Authenticated.
func (i Identity) Authorize() (Identity, error) {
	if i.state != Authenticated {
		return i, fmt.Errorf("%w: authorize from %s", ErrInvalidTransition, i.state)
	}
	return Identity{state: Authorized, claims: i.claims}, nil
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity in ctx, Unauthenticated when there is none.
func FromContext(ctx context.Context) Identity {
	id, _ := ctx.Value(contextKey{}).(Identity)
	return id
}
