package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
)

// VisibleText concatenates every visible text node under node, skipping
// script and style subtrees. Text nodes are joined with single spaces.
func VisibleText(node *html.Node) string {
	var parts []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(node)
	return strings.Join(parts, " ")
}

// InnerText extracts the raw text content inside a node, markup ignored.
func InnerText(node *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(node)
	return sb.String()
}

// IsElement reports whether node is an element with the given tag name.
func IsElement(node *html.Node, tag string) bool {
	return node.Type == html.ElementNode && node.Data == tag
}

// Attr returns the value of the named attribute, or an empty string when the
// attribute is absent.
func Attr(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present at all, regardless
// of its value.
func HasAttr(node *html.Node, key string) bool {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}
