package verifier

import "errors"

var (
	// ErrWrongUserPass is returned when the credentials do not match any
	// known user.
	ErrWrongUserPass = errors.New("wrong user or password")
	// ErrExpiredPass is returned when the provider knows the user but the
	// password has lapsed.
	ErrExpiredPass = errors.New("password has expired")
	// ErrNoAccess is returned when the user authenticated but holds no role
	// granting entry.
	ErrNoAccess = errors.New("no access")
	// ErrEmptyChain is returned by NewChain when no members are given.
	ErrEmptyChain = errors.New("verifier chain needs at least one member")
)

// OtherAuthError is a negative provider outcome outside the common buckets,
// carrying the provider's own code.
type OtherAuthError struct {
	Detail string
}

func (e *OtherAuthError) Error() string { return e.Detail }

// ServiceError reports that the provider could not answer at all: transport
// failures, exhausted retries, unparseable or out-of-contract responses.
type ServiceError struct {
	Detail string
	Cause  error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return e.Detail + ": " + e.Cause.Error()
	}
	return e.Detail
}

func (e *ServiceError) Unwrap() error { return e.Cause }
