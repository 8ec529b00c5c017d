// Package verifier resolves credentials into user identities.
//
// A Verifier answers one question: does this user/password pair belong to a
// known user, and if so, who is that user. The package ships three
// implementations:
//
//   - Static: a fixed table parsed from "user:pass[:dept[:roles]];..." —
//     useful for bootstrap and test deployments.
//   - Remote: a legacy HTTP authentication service speaking XML bodies and
//     numeric status codes, called with basic auth and retried with backoff.
//   - Chain: an ordered composite that asks each member in turn and keeps
//     the last error when nobody answers positively. Different members
//     answer for different user populations, so the chain never
//     short-circuits on a wrong-password answer.
//
// Negative outcomes are part of the API: ErrWrongUserPass, ErrExpiredPass
// and ErrNoAccess are matched with errors.Is; OtherAuthError and
// ServiceError carry provider codes and transport failures.
package verifier
