package source

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	xhtml "golang.org/x/net/html"
)

// strict drops every tag, feed content arrives as arbitrary HTML
var strict = bluemonday.StrictPolicy()

// htmlToText reduces item HTML to plain text: tags dropped along with script
// and style contents, entities decoded, whitespace collapsed. The walker
// separates text nodes so adjacent blocks do not glue words together, the
// strict policy backstops anything tag-shaped left in text nodes by
// double-encoded markup.
func htmlToText(s string) string {
	if s == "" {
		return ""
	}

	doc, err := xhtml.Parse(strings.NewReader(s))
	if err != nil {
		return normalizeSpace(html.UnescapeString(strict.Sanitize(s)))
	}

	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return normalizeSpace(html.UnescapeString(strict.Sanitize(sb.String())))
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
