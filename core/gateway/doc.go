// Package gateway implements the forward-auth HTTP surface.
//
// Six operations hang off /auth: login mints a session against the verifier
// chain, auth answers the proxy's per-request authorization question,
// validate and keep-alive let clients probe and extend a session, logout
// removes it, and live is the bare liveness probe. Every operation except
// login and live identifies the session by a bearer token; auth additionally
// accepts a token query parameter inside the forwarded original URI, the way
// traefik hands it over.
//
// Errors leave the package only as HTTP statuses with fixed bodies. Internal
// detail goes to the logs, never to the caller.
package gateway
