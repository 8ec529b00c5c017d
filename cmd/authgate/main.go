package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/authgate/core/clientip"
	"github.com/dmitrymomot/authgate/core/config"
	"github.com/dmitrymomot/authgate/core/crypt"
	"github.com/dmitrymomot/authgate/core/gateway"
	"github.com/dmitrymomot/authgate/core/logger"
	"github.com/dmitrymomot/authgate/core/server"
	"github.com/dmitrymomot/authgate/core/session"
	"github.com/dmitrymomot/authgate/core/verifier"
	"github.com/dmitrymomot/authgate/middleware"
)

// requestTimeout aborts any handler that outlives it, including time spent
// in verifier retries.
const requestTimeout = 15 * time.Second

func main() {
	log := logger.New(logger.WithProduction("authgate"))

	if err := run(log); err != nil {
		log.Error("startup failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info("bye")
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.Duration("session_timeout", cfg.Session.SessionTimeout),
		slog.Duration("inactivity_timeout", cfg.Session.InactivityTimeout),
		slog.Int("ip_index", cfg.IPIndex),
	)

	store, err := newStore(cfg, log)
	if err != nil {
		return err
	}

	auth, err := newVerifier(cfg, log)
	if err != nil {
		return err
	}

	gw := gateway.New(cfg.Session, store, auth, clientip.New(cfg.IPIndex), log)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log.With(logger.Component("http"))))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Mount("/", gw.Router())

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, r))
	return eg.Wait()
}

// newStore selects the session backend: Redis when configured, otherwise
// the in-memory store, which loses every session on restart.
func newStore(cfg Config, log *slog.Logger) (session.Store, error) {
	if cfg.RedisURL == "" {
		log.Warn("using in-memory session store", logger.Component("store"))
		return session.NewMemoryStore(), nil
	}

	codec, err := crypt.New(cfg.EncryptionKey.Reveal())
	if err != nil {
		return nil, err
	}
	store, err := session.NewRedisStore(cfg.RedisURL, codec)
	if err != nil {
		return nil, err
	}
	log.Info("using redis session store", logger.Component("store"))
	return store, nil
}

// newVerifier assembles the credential chain: the static table when
// SAMPLE_USERS is set, the remote service when AUTH_WS_URL is set, chained
// in that order when both are.
func newVerifier(cfg Config, log *slog.Logger) (verifier.Verifier, error) {
	var verifiers []verifier.Verifier

	if cfg.SampleUsers != "" {
		log.Warn("using static credential table", logger.Component("verifier"))
		static, err := verifier.NewStatic(cfg.SampleUsers)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, static)
	}

	if cfg.AuthWSURL != "" {
		log.Info("using remote auth service", logger.Component("verifier"), slog.String("url", cfg.AuthWSURL))
		remote, err := verifier.NewRemote(cfg.AuthWSURL, cfg.AuthWSUser, cfg.AuthWSPass, cfg.AuthAppCode)
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, remote)
	}

	switch len(verifiers) {
	case 0:
		return nil, errors.New("no auth method specified")
	case 1:
		return verifiers[0], nil
	default:
		return verifier.NewChain(verifiers...)
	}
}
