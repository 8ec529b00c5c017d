package clientip

import (
	"net/http"
	"strings"
)

// headerName is the proxy chain header the extractor reads.
const headerName = "x-forwarded-for"

// Extractor selects one entry from the x-forwarded-for chain.
// The zero value selects the first entry.
type Extractor struct {
	index int
}

// New returns an Extractor for the given signed index: 0 is the first entry,
// -1 the last, -2 the one before the last.
func New(index int) Extractor {
	return Extractor{index: index}
}

// FromRequest extracts the address from the request headers.
func (e Extractor) FromRequest(r *http.Request) string {
	return e.FromHeader(r.Header)
}

// FromHeader extracts the address from a header set. It returns an empty
// string when the header is absent or the index falls outside the chain.
func (e Extractor) FromHeader(h http.Header) string {
	value := h.Get(headerName)
	if value == "" {
		return ""
	}

	entries := strings.Split(value, ",")
	idx := e.index
	if idx < 0 {
		idx += len(entries)
	}
	if idx < 0 || idx >= len(entries) {
		return ""
	}
	return entries[idx]
}
