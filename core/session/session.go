package session

import (
	"time"
)

// Identity is the resolved user behind a session, as returned by a verifier
// and handed to the upstream proxy. Roles keep the order and duplicates they
// arrived with.
type Identity struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Roles      []string `json:"roles"`
}

// Record is one session as persisted by a Store. Instants are milliseconds
// since the Unix epoch.
type Record struct {
	User       Identity `json:"user"`
	IP         string   `json:"ip"`
	ValidTill  int64    `json:"valid_till"`
	LastAccess int64    `json:"last_access"`
}

// NewRecord mints a record bound to ip, expiring sessionTimeout after now.
func NewRecord(user Identity, ip string, now time.Time, sessionTimeout time.Duration) Record {
	ms := now.UnixMilli()
	return Record{
		User:       user,
		IP:         ip,
		ValidTill:  ms + sessionTimeout.Milliseconds(),
		LastAccess: ms,
	}
}

// CheckExpired reports ErrExpired once now has passed ValidTill. The record
// is still valid at the exact boundary millisecond.
func (r Record) CheckExpired(now int64) error {
	if r.ValidTill < now {
		return ErrExpired
	}
	return nil
}

// CheckInactivity reports ErrExpired once the inactivity window after
// LastAccess has passed. Strict comparison, same boundary rule as
// CheckExpired.
func (r Record) CheckInactivity(now int64, inactivity time.Duration) error {
	if r.LastAccess+inactivity.Milliseconds() < now {
		return ErrExpired
	}
	return nil
}

// CheckIP reports ErrNoSession when the caller's IP differs from the one
// the record was pinned to at mint time. A changed IP is treated as no
// session at all, not as an expired one.
func (r Record) CheckIP(ip string) error {
	if r.IP != ip {
		return ErrNoSession
	}
	return nil
}
