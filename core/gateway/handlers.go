package gateway

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authgate/core/logger"
	"github.com/dmitrymomot/authgate/core/secret"
	"github.com/dmitrymomot/authgate/core/session"
)

// userInfoHeader carries the resolved identity to the upstream proxy.
const userInfoHeader = "X-User-Info"

type loginRequest struct {
	User string        `json:"user"`
	Pass secret.Secret `json:"pass"`
}

type loginResponse struct {
	SessionID string    `json:"session_id"`
	User      loginUser `json:"user"`
}

// loginUser is the identity as the login response exposes it; the id field
// stays internal.
type loginUser struct {
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Roles      []string `json:"roles"`
}

// handleLogin verifies credentials and mints a session pinned to the
// caller's IP.
func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.writeError(w, r, badRequest("invalid request body"))
		return
	}
	if req.User == "" || req.Pass.Reveal() == "" {
		g.writeError(w, r, errWrongUserPass)
		return
	}

	ip := g.ip.FromRequest(r)
	identity, err := g.verifier.Verify(r.Context(), req.User, req.Pass)
	if err != nil {
		g.writeError(w, r, fromAuthError(err))
		return
	}

	id, err := session.NewID()
	if err != nil {
		g.writeError(w, r, serverError(err))
		return
	}

	rec := session.NewRecord(identity, ip, time.Now(), g.cfg.SessionTimeout)
	if err := g.store.Add(r.Context(), id, rec); err != nil {
		g.writeError(w, r, serverError(err))
		return
	}

	g.log.LogAttrs(r.Context(), slog.LevelInfo, "session created",
		logger.User(identity.ID),
		logger.ClientIP(ip),
		logger.SessionID(id),
	)

	g.writeJSON(w, r, loginResponse{
		SessionID: id,
		User: loginUser{
			Name:       identity.Name,
			Department: identity.Department,
			Roles:      identity.Roles,
		},
	})
}

// handleAuth is the forward-auth entry point: bearer token first, token
// query parameter of the forwarded URI second. On success the resolved
// identity travels back in X-User-Info.
func (g *Gateway) handleAuth(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		token = tokenFromForwardedURI(r.Header.Get("X-Forwarded-Uri"))
	}
	if token == "" {
		g.writeError(w, r, errNoSession)
		return
	}

	rec, err := g.checkSession(r, token, true)
	if err != nil {
		g.writeError(w, r, err)
		return
	}

	payload, err := json.Marshal(rec.User)
	if err != nil {
		g.writeError(w, r, serverError(err))
		return
	}
	w.Header().Set(userInfoHeader, base64.StdEncoding.EncodeToString(payload))
	writeOK(w)
}

// handleValidate probes a session without extending it.
func (g *Gateway) handleValidate(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		g.writeError(w, r, errNoSession)
		return
	}
	if _, err := g.checkSession(r, token, false); err != nil {
		g.writeError(w, r, err)
		return
	}
	writeOK(w)
}

// handleKeepAlive probes a session and resets its inactivity window.
func (g *Gateway) handleKeepAlive(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		g.writeError(w, r, errNoSession)
		return
	}
	if _, err := g.checkSession(r, token, true); err != nil {
		g.writeError(w, r, err)
		return
	}
	writeOK(w)
}

// handleLogout removes the session eagerly.
func (g *Gateway) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		g.writeError(w, r, errNoSession)
		return
	}
	if err := g.store.Remove(r.Context(), token); err != nil {
		g.writeError(w, r, fromStoreError(err))
		return
	}

	g.log.LogAttrs(r.Context(), slog.LevelInfo, "session removed", logger.SessionID(token))
	writeOK(w)
}

// handleLive is the liveness probe.
func (g *Gateway) handleLive(w http.ResponseWriter, r *http.Request) {
	writeOK(w)
}

// checkSession fetches the record and runs the invariants in their fixed
// order: IP pin, absolute expiry, inactivity. With touch set the record's
// LastAccess moves to now.
func (g *Gateway) checkSession(r *http.Request, token string, touch bool) (session.Record, error) {
	rec, err := g.store.Get(r.Context(), token)
	if err != nil {
		return session.Record{}, fromStoreError(err)
	}

	now := time.Now().UnixMilli()
	if err := rec.CheckIP(g.ip.FromRequest(r)); err != nil {
		return session.Record{}, fromStoreError(err)
	}
	if err := rec.CheckExpired(now); err != nil {
		return session.Record{}, fromStoreError(err)
	}
	if err := rec.CheckInactivity(now, g.cfg.InactivityTimeout); err != nil {
		return session.Record{}, fromStoreError(err)
	}

	if touch {
		if err := g.store.MarkLastUsed(r.Context(), token, now); err != nil {
			return session.Record{}, fromStoreError(err)
		}
	}
	return rec, nil
}
