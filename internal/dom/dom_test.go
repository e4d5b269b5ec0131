package dom

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestNewElement(t *testing.T) {
	n := NewElement(atom.Span, "label")

	assert.Equal(t, html.ElementNode, n.Type)
	assert.Equal(t, "span", n.Data)
	assert.Equal(t, "label", Class(n))

	bare := NewElement(atom.Div, "")
	assert.Empty(t, bare.Attr, "empty class should not add an attribute")
}

func TestIsContainer(t *testing.T) {
	tests := []struct {
		name string
		node *html.Node
		want bool
	}{
		{"nil", nil, false},
		{"div", NewDiv(""), true},
		{"span", NewElement(atom.Span, ""), false},
		{"text node", &html.Node{Type: html.TextNode, Data: "div"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContainer(tt.node))
		})
	}
}

func TestSetAttr_Replaces(t *testing.T) {
	n := NewDiv("a")
	SetAttr(n, "class", "b")

	require.Len(t, n.Attr, 1)
	assert.Equal(t, "b", Class(n))
}

func TestHasClass(t *testing.T) {
	n := NewDiv("loading-line  extra")

	assert.True(t, HasClass(n, "loading-line"))
	assert.True(t, HasClass(n, "extra"))
	assert.False(t, HasClass(n, "loading"))
}

func TestStyle(t *testing.T) {
	n := NewDiv("")
	assert.Empty(t, Style(n, "width"))

	SetStyle(n, "visibility", "hidden")
	SetStyle(n, "width", "20%")
	SetStyle(n, "visibility", "visible")

	assert.Equal(t, "visible", Style(n, "visibility"))
	assert.Equal(t, "20%", Style(n, "WIDTH"))

	style, _ := Attr(n, "style")
	assert.Equal(t, "visibility: visible; width: 20%", style)
}

func TestStyle_ParsesExistingAttribute(t *testing.T) {
	n := NewDiv("")
	SetAttr(n, "style", "color:red;; width : 5% ;bogus")

	assert.Equal(t, "red", Style(n, "color"))
	assert.Equal(t, "5%", Style(n, "width"))

	SetStyle(n, "width", "6%")
	style, _ := Attr(n, "style")
	assert.Equal(t, "color: red; width: 6%", style)
}

func TestFind(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(
		`<html><body><div id="app"><p class="note x">hi</p></div></body></html>`))
	require.NoError(t, err)

	app := FindByID(doc, "app")
	require.NotNil(t, app)
	assert.True(t, IsContainer(app))

	note := FindByClass(doc, "note")
	require.NotNil(t, note)
	assert.Equal(t, "p", note.Data)

	assert.Nil(t, FindByID(doc, "missing"))
	assert.Nil(t, FindByClass(nil, "note"))
}

func TestChildren(t *testing.T) {
	parent := NewDiv("")
	parent.AppendChild(&html.Node{Type: html.TextNode, Data: "text"})
	a := NewDiv("a")
	b := NewDiv("b")
	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Equal(t, []*html.Node{a, b}, Children(parent))
}

func TestRenderString(t *testing.T) {
	parent := NewDiv("")
	child := NewDiv("inner")
	SetStyle(child, "width", "50%")
	parent.AppendChild(child)

	out, err := RenderString(parent)
	require.NoError(t, err)
	assert.Equal(t, `<div><div class="inner" style="width: 50%"></div></div>`, out)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, assert.AnError }

func TestRender_WriteError(t *testing.T) {
	err := Render(failingWriter{}, NewDiv("x"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRender))
}
