package gateway

import (
	"net/http"
	"net/url"
	"strings"
)

const bearerPrefix = "Bearer "

// bearerToken returns the token of an Authorization bearer header, or "".
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > len(bearerPrefix) && strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return auth[len(bearerPrefix):]
	}
	return ""
}

// tokenFromForwardedURI digs the token query parameter out of the original
// request target carried by X-Forwarded-Uri. The target is not a full URL,
// so it is picked apart by hand: everything after the first '?', split on
// '&', each segment split on its first '='. The first token key wins and its
// value is URL-decoded.
func tokenFromForwardedURI(uri string) string {
	_, query, found := strings.Cut(uri, "?")
	if !found {
		return ""
	}
	for _, segment := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(segment, "=")
		if key != "token" {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return ""
		}
		return decoded
	}
	return ""
}
