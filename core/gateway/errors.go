package gateway

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/authgate/core/session"
	"github.com/dmitrymomot/authgate/core/verifier"
)

// apiError is an outcome ready to cross the HTTP boundary. Message is the
// literal response body; the cause stays behind for logging.
type apiError struct {
	status  int
	message string
	cause   error
}

func (e *apiError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *apiError) Unwrap() error { return e.cause }

var (
	errWrongUserPass  = &apiError{status: http.StatusUnauthorized, message: "Wrong user or password"}
	errExpiredPass    = &apiError{status: http.StatusUnauthorized, message: "Expired password"}
	errExpiredSession = &apiError{status: http.StatusUnauthorized, message: "Session expired"}
	errNoSession      = &apiError{status: http.StatusUnauthorized, message: "No session"}
	errNoAccess       = &apiError{status: http.StatusUnauthorized, message: "No access"}
)

// badRequest is the only 4xx that forwards a human message.
func badRequest(message string) *apiError {
	return &apiError{status: http.StatusBadRequest, message: message}
}

// serverError hides its cause behind a constant body.
func serverError(cause error) *apiError {
	return &apiError{status: http.StatusInternalServerError, message: "Internal Server Error", cause: cause}
}

// fromAuthError translates a verifier outcome. OtherAuth and ServiceError
// collapse into a plain 500.
func fromAuthError(err error) *apiError {
	switch {
	case errors.Is(err, verifier.ErrWrongUserPass):
		return errWrongUserPass
	case errors.Is(err, verifier.ErrExpiredPass):
		return errExpiredPass
	case errors.Is(err, verifier.ErrNoAccess):
		return errNoAccess
	default:
		return serverError(err)
	}
}

// fromStoreError translates a session store or invariant-check outcome.
func fromStoreError(err error) *apiError {
	switch {
	case errors.Is(err, session.ErrNoSession):
		return errNoSession
	case errors.Is(err, session.ErrExpired):
		return errExpiredSession
	default:
		return serverError(err)
	}
}
