// Package middleware carries the ambient HTTP middleware of the gateway:
// request id tagging, request logging and CORS. Every middleware is a plain
// func(http.Handler) http.Handler, composable with chi's Use.
package middleware
