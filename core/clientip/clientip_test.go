package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authgate/core/clientip"
)

func TestFromHeaderIndexing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		index  int
		want   string
	}{
		{"first entry", "a,b,c", 0, "a"},
		{"last by positive index", "a,b,c", 2, "c"},
		{"last by negative index", "a,b,c", -1, "c"},
		{"second to last", "a,b,c", -2, "b"},
		{"first by negative index", "a,b,c", -3, "a"},
		{"negative out of range", "a,b,c", -4, ""},
		{"positive out of range", "a,b,c", 3, ""},
		{"two entries second to last", "1,2", -2, "1"},
		{"three entries second to last", "1,2,3", -2, "2"},
		{"single entry", "9.9.9.9", 0, "9.9.9.9"},
		{"single entry from the end", "9.9.9.9", -1, "9.9.9.9"},
		{"way out of range", "1,2", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := http.Header{}
			h.Set("x-forwarded-for", tt.header)
			assert.Equal(t, tt.want, clientip.New(tt.index).FromHeader(h))
		})
	}
}

func TestFromHeaderMissing(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", clientip.New(0).FromHeader(http.Header{}))
	assert.Equal(t, "", clientip.New(-2).FromHeader(http.Header{}))
}

func TestFromHeaderNoTrimming(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("x-forwarded-for", "1.1.1.1, 2.2.2.2")
	assert.Equal(t, " 2.2.2.2", clientip.New(-1).FromHeader(h))
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/auth", nil)
	r.Header.Set("X-Forwarded-For", "2.2.2.2,1.1.1.1")
	assert.Equal(t, "2.2.2.2", clientip.New(-2).FromRequest(r))
}
