// Package clientip picks the client address out of the x-forwarded-for
// proxy chain by a configurable signed index.
//
// Proxies append to x-forwarded-for left to right, so the trustworthy entry
// is counted from the right: with one trusted proxy in front the client is
// at index -2 (the last entry is the proxy itself). Non-negative indexes
// count from the left.
//
//	ex := clientip.New(-2)
//	ip := ex.FromRequest(r) // "" when the header is missing or the index is out of range
//
// Entries are returned exactly as they appear in the header, without
// whitespace trimming, so a pinned session compares the same bytes at login
// and validation time.
package clientip
