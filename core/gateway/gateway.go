package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authgate/core/clientip"
	"github.com/dmitrymomot/authgate/core/logger"
	"github.com/dmitrymomot/authgate/core/session"
	"github.com/dmitrymomot/authgate/core/verifier"
)

// Gateway holds the shared state behind every handler: the session bounds,
// the store, the verifier chain and the client IP extractor. Immutable after
// construction, safe for concurrent use.
type Gateway struct {
	cfg      session.Config
	store    session.Store
	verifier verifier.Verifier
	ip       clientip.Extractor
	log      *slog.Logger
}

// New assembles a gateway. A nil logger discards everything.
func New(cfg session.Config, store session.Store, v verifier.Verifier, ip clientip.Extractor, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{
		cfg:      cfg,
		store:    store,
		verifier: v,
		ip:       ip,
		log:      log,
	}
}

// Router mounts the /auth surface.
func (g *Gateway) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/auth", g.handleAuth)
	r.Get("/auth/live", g.handleLive)
	r.Get("/auth/validate", g.handleValidate)
	r.Post("/auth/login", g.handleLogin)
	r.Post("/auth/logout", g.handleLogout)
	r.Post("/auth/keep-alive", g.handleKeepAlive)
	return r
}

// writeError renders an apiError and logs it: 4xx at warn, 5xx at error.
// Anything that is not already an apiError counts as an internal failure.
func (g *Gateway) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := err.(*apiError)
	if !ok {
		apiErr = serverError(err)
	}

	level := slog.LevelWarn
	if apiErr.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	g.log.LogAttrs(r.Context(), level, "request rejected",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(apiErr.status),
		logger.Error(apiErr),
	)

	http.Error(w, apiErr.message, apiErr.status)
}

// writeJSON renders v with a 200.
func (g *Gateway) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		g.log.LogAttrs(r.Context(), slog.LevelError, "response encoding failed", logger.Error(err))
	}
}

// writeOK is the plain-text positive answer shared by the token endpoints.
func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
