package verifier

import (
	"context"
	"crypto/subtle"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/session"
)

// defaultRoles is assigned when an entry names no roles of its own.
var defaultRoles = []string{"USER"}

type staticEntry struct {
	pass       string
	department string
	roles      []string
}

// Static verifies credentials against a fixed table parsed at construction.
// Meant for bootstrap deployments and tests; it never talks to the network.
type Static struct {
	users map[string]staticEntry
}

// NewStatic parses a table of the form
// "user:pass[:department[:role1,role2]];user2:pass2;...". An empty table is
// legal and yields a verifier that declines everybody. A missing department
// defaults to "IT dep of <user>", missing roles to ["USER"].
func NewStatic(table string) (*Static, error) {
	users := make(map[string]staticEntry)

	for _, raw := range strings.Split(table, ";") {
		if raw == "" {
			continue
		}
		fields := strings.SplitN(raw, ":", 4)
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("verifier: malformed user entry %q", raw)
		}

		user := fields[0]
		entry := staticEntry{
			pass:       fields[1],
			department: "IT dep of " + user,
			roles:      defaultRoles,
		}
		if len(fields) >= 3 {
			entry.department = fields[2]
		}
		if len(fields) == 4 {
			entry.roles = parseRoles(fields[3])
		}
		users[user] = entry
	}

	return &Static{users: users}, nil
}

// Verify implements Verifier. Any mismatch, unknown user included, is
// ErrWrongUserPass; the comparison is constant-time.
func (s *Static) Verify(ctx context.Context, user string, pass secret.Secret) (session.Identity, error) {
	entry, ok := s.users[user]
	if !ok {
		return session.Identity{}, ErrWrongUserPass
	}
	if subtle.ConstantTimeCompare([]byte(entry.pass), []byte(pass.Reveal())) != 1 {
		return session.Identity{}, ErrWrongUserPass
	}
	return session.Identity{
		ID:         user,
		Name:       user,
		Department: entry.department,
		Roles:      slices.Clone(entry.roles),
	}, nil
}

func parseRoles(field string) []string {
	var roles []string
	for _, role := range strings.Split(field, ",") {
		role = strings.TrimSpace(role)
		if role != "" {
			roles = append(roles, role)
		}
	}
	return roles
}
