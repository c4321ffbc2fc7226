package utils

import (
	"net"
	"net/url"
	"strings"

	"intmon/domain"
)

// ValidateExternalURL enforces the outbound fetch policy. The server
// GETs whatever URL passes this check, so every path that introduces a
// fetch target (registration, url edits, discovered feed links) must
// run it: only public http(s) hosts are allowed.
func ValidateExternalURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &domain.ValidationError{Field: "url", Message: "url is not a valid absolute URL"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &domain.ValidationError{Field: "url", Message: "url must use HTTP or HTTPS scheme"}
	}

	hostname := strings.ToLower(parsed.Hostname())
	if hostname == "localhost" || strings.HasSuffix(hostname, ".localhost") {
		return &domain.ValidationError{Field: "url", Message: "access to localhost is not allowed"}
	}
	if ip := net.ParseIP(hostname); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return &domain.ValidationError{Field: "url", Message: "access to private networks is not allowed"}
		}
	}
	return nil
}
