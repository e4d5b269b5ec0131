// Package loadingline implements a horizontal progress indicator that lives
// inside a caller-supplied <div> of an HTML node tree.
//
// The widget owns a small subtree appended to its container:
//
//	<div class="loading-line-container" style="visibility: visible">
//	  <div class="loading-line" style="width: 40%">
//	    <div class="loading-line-head"></div>
//	  </div>
//	</div>
//
// The logical percent is a signed integer in [-100, 100]. The rendered width
// is max(percent, minWidth) and is only ever written to the fill element's
// style, never stored back into the percent.
//
// A LoadingLine is not safe for concurrent use.
package loadingline

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/rileyhilliard/loadingline/internal/dom"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"golang.org/x/net/html"
)

// Class names of the owned elements.
const (
	ClassContainer = "loading-line-container"
	ClassLine      = "loading-line"
	ClassHead      = "loading-line-head"
)

// Percent bounds.
const (
	MinPercent = -100
	MaxPercent = 100
)

// Options configures a new LoadingLine.
type Options struct {
	// MinWidth is the floor for the rendered width, truncated toward zero.
	// NaN and infinities resolve to 0.
	MinWidth float64

	// Percent is the initial percent, validated like SetPercent.
	Percent float64

	// Logger receives debug output. Defaults to logger.Default().
	Logger logger.Logger
}

// LoadingLine is a progress indicator bound to one container element.
type LoadingLine struct {
	id        string
	container *html.Node
	root      *html.Node
	fill      *html.Node
	minWidth  int
	percent   int
	log       logger.Logger
}

// New builds a loading line inside container, which must be a <div> element.
func New(container *html.Node, opts Options) (*LoadingLine, error) {
	minWidth := resolveMinWidth(opts.MinWidth)

	if !dom.IsContainer(container) {
		return nil, errors.NewMissingContainer()
	}

	// Validate up front so a bad initial percent leaves the container untouched.
	percent, err := cleanPercent(opts.Percent, "New")
	if err != nil {
		return nil, err
	}

	l := &LoadingLine{
		id:        uuid.NewString(),
		container: container,
		minWidth:  minWidth,
		log:       opts.Logger,
	}
	if l.log == nil {
		l.log = logger.Default()
	}

	l.build()
	l.percent = percent
	l.render()
	l.Show()

	l.log.Debug("loading line %s created (min width %d, percent %d)", l.id, l.minWidth, l.percent)
	return l, nil
}

// NewFromSelection builds a loading line inside the first element of sel,
// for callers holding the result of a query rather than a single node.
func NewFromSelection(sel []*html.Node, opts Options) (*LoadingLine, error) {
	if len(sel) == 0 {
		return nil, errors.NewMissingContainer()
	}
	return New(sel[0], opts)
}

func (l *LoadingLine) build() {
	l.root = dom.NewDiv(ClassContainer)
	l.container.AppendChild(l.root)
	l.Hide()

	l.fill = dom.NewDiv(ClassLine)
	l.root.AppendChild(l.fill)

	l.fill.AppendChild(dom.NewDiv(ClassHead))
}

// SetPercent truncates p toward zero, clamps it to [-100, 100] and renders it.
// p must be finite: NaN and ±Inf fail with a PERCENT error and leave the line
// unchanged.
func (l *LoadingLine) SetPercent(p float64) error {
	percent, err := cleanPercent(p, "SetPercent")
	if err != nil {
		l.log.Debug("loading line %s rejected percent %v", l.id, p)
		return err
	}

	l.percent = percent
	l.render()
	return nil
}

// AddPercent adds delta (truncated and clamped to [-100, 100]) to the current
// percent. The sum is clamped to [0, 100], unlike SetPercent. A non-finite
// delta fails the same way it does for SetPercent.
func (l *LoadingLine) AddPercent(delta float64) error {
	d, err := cleanPercent(delta, "AddPercent")
	if err != nil {
		l.log.Debug("loading line %s rejected delta %v", l.id, delta)
		return err
	}

	l.percent = clamp(l.percent+d, 0, MaxPercent)
	l.render()
	return nil
}

// Percent returns the stored logical percent. It may be negative after SetPercent.
func (l *LoadingLine) Percent() int {
	return l.percent
}

// MinWidth returns the rendered-width floor.
func (l *LoadingLine) MinWidth() int {
	return l.minWidth
}

// Width returns the rendered width in percent: max(percent, minWidth).
func (l *LoadingLine) Width() int {
	if l.percent > l.minWidth {
		return l.percent
	}
	return l.minWidth
}

// Show makes the widget visible.
func (l *LoadingLine) Show() {
	dom.SetStyle(l.root, "visibility", "visible")
}

// Hide makes the widget invisible. The percent is left alone.
func (l *LoadingLine) Hide() {
	dom.SetStyle(l.root, "visibility", "hidden")
}

// Visible reports whether the widget is shown.
func (l *LoadingLine) Visible() bool {
	return dom.Style(l.root, "visibility") != "hidden"
}

// ID returns the instance identifier used in log output.
func (l *LoadingLine) ID() string {
	return l.id
}

// Container returns the element the widget was built in.
func (l *LoadingLine) Container() *html.Node {
	return l.container
}

// Root returns the widget's outer element.
func (l *LoadingLine) Root() *html.Node {
	return l.root
}

// Fill returns the element whose width encodes the percent.
func (l *LoadingLine) Fill() *html.Node {
	return l.fill
}

func (l *LoadingLine) render() {
	w := strconv.Itoa(l.Width()) + "%"
	dom.SetStyle(l.fill, "width", w)
	l.log.Debug("loading line %s rendered width %s (percent %d)", l.id, w, l.percent)
}

func resolveMinWidth(v float64) int {
	if !isNumber(v) {
		return 0
	}
	return truncate(v)
}

// cleanPercent validates v and maps it into [MinPercent, MaxPercent].
func cleanPercent(v float64, op string) (int, error) {
	if !isNumber(v) {
		return 0, errors.NewInvalidPercent(op, v)
	}
	// Clamp before converting so huge values cannot overflow int.
	v = math.Max(MinPercent, math.Min(MaxPercent, v))
	return truncate(v), nil
}

func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// truncate rounds toward zero, saturating at the int32 range.
func truncate(v float64) int {
	v = math.Trunc(v)
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
