package gateway

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"plain bearer", "Bearer abc123", "abc123"},
		{"case-insensitive scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme without token", "Bearer ", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", "/auth", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, bearerToken(r))
		})
	}
}

func TestTokenFromForwardedURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"no query", "/protected", ""},
		{"no token param", "/protected?a=1&b=2", ""},
		{"plain token", "/protected?a=1&token=S", "S"},
		{"token first", "/protected?token=S&a=1", "S"},
		{"url-decoded value", "/olia?aaaa=nnnnnn&token=aaaaa%3D", "aaaaa="},
		{"empty value", "/protected?token=", ""},
		{"bad escape", "/protected?token=%zz", ""},
		{"value with equals", "/p?token=a=b", "a=b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tokenFromForwardedURI(tc.uri))
		})
	}
}
