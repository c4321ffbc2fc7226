// Package identity computes stable identifiers for feed items so that
// repeated fetches of unchanged content deduplicate to the same row.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"intmon/domain"
)

// ScopeSeparator joins the scope discriminator with the base identity.
const ScopeSeparator = "::"

// Resolve returns the stored identifier for a parsed item. Base identity
// preference: the feed-supplied GUID, then the item link, then a sha256
// digest of the feed URL and title. When scopeKey is non-empty the result
// is scope-discriminated, so the same upstream entry ingested into two
// scopes never collides in a shared items table. Deterministic: equal
// inputs always produce equal output.
func Resolve(raw domain.RawItem, feedURL string, scopeKey string) string {
	base := baseIdentity(raw, feedURL)
	if scopeKey == "" {
		return base
	}
	return scopeKey + ScopeSeparator + base
}

func baseIdentity(raw domain.RawItem, feedURL string) string {
	if guid := strings.TrimSpace(raw.GUID); guid != "" {
		return guid
	}
	if link := strings.TrimSpace(raw.Link); link != "" {
		return link
	}
	return syntheticIdentity(feedURL, raw.Title)
}

// syntheticIdentity is the last-resort fallback for feeds that publish
// neither a guid nor a link. Hashing keeps the identifier bounded and
// opaque; the digest input uses a NUL separator so "ab"+"c" and
// "a"+"bc" differ.
func syntheticIdentity(feedURL, title string) string {
	h := sha256.New()
	h.Write([]byte(feedURL))
	h.Write([]byte{0})
	h.Write([]byte(title))
	return hex.EncodeToString(h.Sum(nil))
}
