package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// declaration is one "prop: value" pair of an inline style attribute.
type declaration struct {
	prop  string
	value string
}

func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// Style returns the inline style value of prop on n, or "".
func Style(n *html.Node, prop string) string {
	s, _ := Attr(n, "style")
	prop = strings.ToLower(prop)
	for _, d := range parseStyle(s) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets one inline style declaration on n. Other declarations keep
// their order; a new property is appended.
func SetStyle(n *html.Node, prop, value string) {
	s, _ := Attr(n, "style")
	prop = strings.ToLower(prop)
	decls := parseStyle(s)

	replaced := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, declaration{prop: prop, value: value})
	}

	SetAttr(n, "style", formatStyle(decls))
}
