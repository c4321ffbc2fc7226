package html_parser

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var feedMIMETypes = map[string]bool{
	"application/rss+xml":  true,
	"application/atom+xml": true,
	"application/xml":      true,
	"text/xml":             true,
}

// DiscoverFeedLinks extracts RSS/Atom autodiscovery links from an HTML
// page, resolved against baseURL. Order follows document order. Returns
// nil when the markup has no alternate feed links or cannot be parsed.
func DiscoverFeedLinks(rawHTML string, baseURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)

	doc.Find("link[rel='alternate']").Each(func(_ int, s *goquery.Selection) {
		mime, _ := s.Attr("type")
		if !feedMIMETypes[strings.ToLower(strings.TrimSpace(mime))] {
			return
		}
		href, ok := s.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if !seen[abs] {
			seen[abs] = true
			links = append(links, abs)
		}
	})

	return links
}
