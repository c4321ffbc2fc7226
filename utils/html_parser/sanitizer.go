// Package html_parser converts feed-supplied HTML fragments into safe,
// readable plain text while preserving list and paragraph structure.
package html_parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// structurePolicy keeps only the block-level elements the tokenizer pass
// understands. Everything else, script and style bodies included, is
// dropped before tokenization.
var structurePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "div", "span", "br", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"table", "tr", "th", "td",
		"b", "strong", "i", "em", "u", "a")
	return p
}()

var (
	spaceRun      = regexp.MustCompile(`[ \t]+`)
	newlinePad    = regexp.MustCompile(` *\n *`)
	newlineTriple = regexp.MustCompile(`\n{3,}`)
)

// Sanitize converts an arbitrary, possibly malformed HTML/XML fragment
// into plain text. Structure-preserving rules, applied before tags are
// stripped:
//
//   - every <li> becomes a line prefixed with "• ", ordered lists
//     included (one consistent bullet policy for both list kinds)
//   - closing a block element (p, div, headings, list, blockquote,
//     pre, table row) or a <br> forces a line break
//   - script/style/noscript subtrees are dropped entirely
//   - entities are decoded to their literal characters
//
// Consecutive breaks produced by markup collapse to a single newline;
// runs of spaces and tabs collapse to one space; three or more literal
// newlines collapse to two; the result is trimmed. Never panics on
// malformed input, and empty input yields empty output.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return normalizeText(raw)
	}

	cleaned := structurePolicy.Sanitize(raw)

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(cleaned))
	lastBreak := true // suppress a leading break

	writeBreak := func() {
		if !lastBreak {
			b.WriteByte('\n')
			lastBreak = true
		}
	}

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return normalizeText(b.String())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li":
				writeBreak()
				b.WriteString("• ")
				lastBreak = false
			case "br":
				writeBreak()
			case "ul", "ol":
				writeBreak()
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "li", "p", "div", "h1", "h2", "h3", "h4", "h5", "h6",
				"ul", "ol", "blockquote", "pre", "tr", "table":
				writeBreak()
			}

		case html.TextToken:
			text := string(z.Text())
			if strings.TrimSpace(text) == "" {
				// keep inter-word whitespace, drop padding after a break
				if !lastBreak {
					b.WriteString(" ")
				}
				continue
			}
			b.WriteString(text)
			lastBreak = false
		}
	}
}

// Truncate sanitizes text and cuts it to at most max characters, trimming
// trailing whitespace and appending "...". The result never exceeds
// max+3 bytes and the cut never splits a UTF-8 sequence.
func Truncate(raw string, max int) string {
	text := Sanitize(raw)
	if max < 0 {
		max = 0
	}
	if len(text) <= max {
		return text
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimRight(text[:cut], " \t\n") + "..."
}

func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, " ", " ")
	s = spaceRun.ReplaceAllString(s, " ")
	s = newlinePad.ReplaceAllString(s, "\n")
	s = newlineTriple.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
