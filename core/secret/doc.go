// Package secret wraps sensitive strings so they cannot leak through default
// rendering paths. Formatting verbs, JSON encoding and slog output all yield
// a constant placeholder; the payload is reachable only through an explicit
// Reveal call.
//
//	pass := secret.New("hunter2")
//	fmt.Println(pass)          // [REDACTED]
//	log.Info("login", "pass", pass) // pass=[REDACTED]
//	check(pass.Reveal())       // "hunter2"
//
// Secret is a comparable value type; two secrets are equal when their
// payloads are equal. It also implements text and JSON unmarshaling so it can
// be used directly in request bodies and configuration structs.
package secret
