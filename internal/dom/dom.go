// Package dom holds small helpers for building and inspecting element trees
// made of golang.org/x/net/html nodes.
package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/rileyhilliard/loadingline/internal/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node. An empty class adds no attribute.
func NewElement(a atom.Atom, class string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		SetAttr(n, "class", class)
	}
	return n
}

// NewDiv creates a detached <div> with the given class.
func NewDiv(class string) *html.Node {
	return NewElement(atom.Div, class)
}

// IsContainer reports whether n is a <div> element.
func IsContainer(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == atom.Div
}

// Attr returns the value of the attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the attribute key on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Class returns the class attribute of n, or "".
func Class(n *html.Node) string {
	c, _ := Attr(n, "class")
	return c
}

// HasClass reports whether class appears in n's class list.
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(Class(n)) {
		if c == class {
			return true
		}
	}
	return false
}

// Children returns the element children of n in document order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FindByID returns the first element under root (inclusive) whose id is id.
func FindByID(root *html.Node, id string) *html.Node {
	return find(root, func(n *html.Node) bool {
		v, ok := Attr(n, "id")
		return ok && v == id
	})
}

// FindByClass returns the first element under root (inclusive) carrying class.
func FindByClass(root *html.Node, class string) *html.Node {
	return find(root, func(n *html.Node) bool {
		return HasClass(n, class)
	})
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// ParseDocument parses a full HTML document.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrRender,
			"Failed to parse HTML input",
			"Check that the input file is HTML")
	}
	return doc, nil
}

// Render writes n and its subtree as HTML.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to render HTML",
			"Check that the output is writable")
	}
	return nil
}

// RenderString renders n to a string.
func RenderString(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
