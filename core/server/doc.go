// Package server wraps http.Server with the lifecycle the gateway needs:
// TLS-only serving behind a self-signed certificate minted at startup,
// graceful shutdown with a drain deadline, and an errgroup-compatible Run.
//
// The usual assembly is NewFromConfig, which reads PORT and HOST from the
// environment, mints a certificate for the host and hands back a server
// ready for Run:
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	g.Go(srv.Run(ctx, handler))
package server
