package htmlutil

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, rawHTML string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return root
}

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Plain text",
			in:   `<html><body><p>Hello world</p></body></html>`,
			want: "Hello world",
		},
		{
			name: "Script and style skipped",
			in:   `<html><head><style>p{color:red}</style></head><body><p>Visible</p><script>var x=1;</script></body></html>`,
			want: "Visible",
		},
		{
			name: "Noscript skipped",
			in:   `<html><body><noscript>enable js</noscript>Shown</body></html>`,
			want: "Shown",
		},
		{
			name: "Whitespace-only nodes dropped, text joined with spaces",
			in:   "<html><body><p>one</p>\n\t<p>two</p></body></html>",
			want: "one two",
		},
		{
			name: "Empty document",
			in:   `<html><body></body></html>`,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleText(parse(t, tt.in)); got != tt.want {
				t.Errorf("VisibleText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInnerText(t *testing.T) {
	root := parse(t, `<html><body><h1>A <em>nested</em> title</h1></body></html>`)

	var h1 *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if IsElement(n, "h1") {
			h1 = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)

	if h1 == nil {
		t.Fatal("h1 not found")
	}
	if got := InnerText(h1); got != "A nested title" {
		t.Errorf("InnerText() = %q, want %q", got, "A nested title")
	}
}

func TestAttr(t *testing.T) {
	root := parse(t, `<html><body><a href="/x" data-empty="">link</a></body></html>`)

	var a *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if IsElement(n, "a") {
			a = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)

	if a == nil {
		t.Fatal("a not found")
	}
	if got := Attr(a, "href"); got != "/x" {
		t.Errorf("Attr(href) = %q, want /x", got)
	}
	if got := Attr(a, "missing"); got != "" {
		t.Errorf("Attr(missing) = %q, want empty", got)
	}
	if !HasAttr(a, "data-empty") {
		t.Error("HasAttr(data-empty) = false, want true for an empty-valued attribute")
	}
	if HasAttr(a, "missing") {
		t.Error("HasAttr(missing) = true, want false")
	}
}
