package verifier

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/session"
)

const (
	defaultAttemptTimeout  = 5 * time.Second
	defaultInitialInterval = 200 * time.Millisecond
	// defaultMaxTries counts the first attempt plus three retries.
	defaultMaxTries = 4
)

// Remote verifies credentials against a legacy HTTP authentication service.
// The service answers either with an XML document or with a bare decimal
// status code; both endpoints sit behind basic auth. Transport failures and
// non-2xx statuses are retried with jittered exponential backoff, a parsed
// answer is final.
type Remote struct {
	baseURL         string
	wsUser          string
	wsPass          secret.Secret
	appCode         string
	client          *http.Client
	initialInterval time.Duration
	maxTries        uint
}

// RemoteOption overrides a Remote default.
type RemoteOption func(*Remote)

// WithHTTPClient substitutes the HTTP client, dropping the default 5-second
// per-attempt timeout unless the given client carries its own.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		if client != nil {
			r.client = client
		}
	}
}

// WithRetry tunes the backoff schedule: the first retry delay and the total
// number of attempts including the first one.
func WithRetry(initialInterval time.Duration, maxTries uint) RemoteOption {
	return func(r *Remote) {
		if initialInterval > 0 {
			r.initialInterval = initialInterval
		}
		if maxTries > 0 {
			r.maxTries = maxTries
		}
	}
}

// NewRemote builds a verifier for the service at baseURL, authenticating
// every call as wsUser and scoping lookups to appCode. All four parameters
// are required.
func NewRemote(baseURL, wsUser string, wsPass secret.Secret, appCode string, opts ...RemoteOption) (*Remote, error) {
	if baseURL == "" || wsUser == "" || wsPass.Reveal() == "" || appCode == "" {
		return nil, fmt.Errorf("verifier: remote requires url, user, password and app code")
	}

	r := &Remote{
		baseURL:         strings.TrimRight(baseURL, "/"),
		wsUser:          wsUser,
		wsPass:          wsPass,
		appCode:         appCode,
		client:          &http.Client{Timeout: defaultAttemptTimeout},
		initialInterval: defaultInitialInterval,
		maxTries:        defaultMaxTries,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Verify implements Verifier. It resolves the user's details first, then the
// roles; a user without any role is ErrNoAccess.
func (r *Remote) Verify(ctx context.Context, user string, pass secret.Secret) (session.Identity, error) {
	detailsURL := fmt.Sprintf("%s/authenticate_details/%s/%s/%s",
		r.baseURL, url.PathEscape(r.appCode), url.PathEscape(user), url.PathEscape(pass.Reveal()))
	body, err := r.call(ctx, detailsURL)
	if err != nil {
		return session.Identity{}, err
	}
	details, err := parseBody[userDetails](body)
	if err != nil {
		return session.Identity{}, err
	}

	rolesURL := fmt.Sprintf("%s/get_roles/%s/%s",
		r.baseURL, url.PathEscape(r.appCode), url.PathEscape(user))
	body, err = r.call(ctx, rolesURL)
	if err != nil {
		return session.Identity{}, err
	}
	roles, err := parseBody[userRoles](body)
	if err != nil {
		return session.Identity{}, err
	}
	if len(roles.Roles) == 0 {
		return session.Identity{}, ErrNoAccess
	}

	names := make([]string, len(roles.Roles))
	for i, role := range roles.Roles {
		names[i] = role.Name
	}
	return session.Identity{
		ID:         user,
		Name:       details.FirstName + " " + details.LastName,
		Department: details.OrganizationUnit.Name,
		Roles:      names,
	}, nil
}

// call fetches one URL under basic auth, retrying transport failures and
// non-2xx answers. Exhausted retries surface as a ServiceError.
func (r *Remote) call(ctx context.Context, target string) (string, error) {
	schedule := backoff.NewExponentialBackOff()
	schedule.InitialInterval = r.initialInterval

	body, err := backoff.Retry(ctx, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return "", backoff.Permanent(err)
		}
		req.SetBasicAuth(r.wsUser, r.wsPass.Reveal())

		resp, err := r.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return "", fmt.Errorf("auth service answered %s", resp.Status)
		}
		return string(payload), nil
	}, backoff.WithBackOff(schedule), backoff.WithMaxTries(r.maxTries))
	if err != nil {
		return "", &ServiceError{Detail: "auth service unavailable", Cause: err}
	}
	return body, nil
}

type userDetails struct {
	FirstName        string `xml:"firstName"`
	LastName         string `xml:"lastName"`
	OrganizationUnit struct {
		Name string `xml:"name"`
	} `xml:"organizationUnit"`
}

type userRoles struct {
	Roles []struct {
		Name string `xml:"name"`
	} `xml:"role"`
}

// parseBody decodes a 2xx response body: XML when it opens with '<', a bare
// decimal provider code otherwise.
func parseBody[T any](body string) (T, error) {
	var out T

	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "<") {
		if err := xml.Unmarshal([]byte(trimmed), &out); err != nil {
			return out, &ServiceError{Detail: "auth service sent malformed xml", Cause: err}
		}
		return out, nil
	}

	code, err := strconv.Atoi(trimmed)
	if err != nil {
		return out, &ServiceError{Detail: fmt.Sprintf("auth service sent unexpected body %q", trimmed)}
	}
	return out, mapProviderCode(code)
}

// mapProviderCode translates the service's numeric answers into error kinds.
func mapProviderCode(code int) error {
	switch code {
	case 1, 4, 5:
		return ErrWrongUserPass
	case 2, 3:
		return ErrExpiredPass
	case 6, 7, 8, 9:
		return &OtherAuthError{Detail: fmt.Sprintf("Code %d", code)}
	default:
		return &ServiceError{Detail: fmt.Sprintf("Auth Service error: %d", code)}
	}
}
