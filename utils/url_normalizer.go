package utils

import (
	"net/url"
	"strings"
)

// NormalizeFeedURL canonicalizes a feed URL before registration so that
// the same feed subscribed with cosmetic URL variations maps to one
// source per scope. It strips common tracking parameters, the fragment,
// and a trailing slash (except for the root path).
func NormalizeFeedURL(rawURL string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := parsedURL.Query()
	for _, param := range []string{
		"utm_source", "utm_medium", "utm_campaign",
		"utm_term", "utm_content", "utm_id",
		"fbclid", "gclid", "mc_eid", "msclkid",
	} {
		query.Del(param)
	}
	parsedURL.RawQuery = query.Encode()

	parsedURL.Fragment = ""

	if parsedURL.Path != "/" && strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path = strings.TrimRight(parsedURL.Path, "/")
	}

	return parsedURL.String(), nil
}
