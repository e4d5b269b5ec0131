// Package script parses and applies operation sequences such as
// "set:50", "add:-10", "hide" and "show" to a loading line.
package script

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/spf13/cast"
)

// Kind identifies an operation.
type Kind string

const (
	KindSet  Kind = "set"
	KindAdd  Kind = "add"
	KindShow Kind = "show"
	KindHide Kind = "hide"
)

// Step is one parsed operation.
type Step struct {
	Kind  Kind
	Value float64
}

// String formats the step the way it is written on the command line.
func (s Step) String() string {
	switch s.Kind {
	case KindSet, KindAdd:
		return fmt.Sprintf("%s:%s", s.Kind, cast.ToString(s.Value))
	default:
		return string(s.Kind)
	}
}

// Target is what a script drives. *loadingline.LoadingLine satisfies it.
type Target interface {
	SetPercent(p float64) error
	AddPercent(d float64) error
	Show()
	Hide()
}

// Parse parses a single operation.
func Parse(op string) (Step, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(op), ":")
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))

	switch kind {
	case KindSet, KindAdd:
		if !hasArg {
			return Step{}, errors.New(errors.ErrPercent,
				fmt.Sprintf("Operation %q is missing a value", op),
				fmt.Sprintf("Write it as %s:<number>, for example %s:25", kind, kind))
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(arg))
		if err != nil {
			return Step{}, errors.WrapWithCode(err, errors.ErrPercent,
				fmt.Sprintf("Operation %q expects a number (a value from 0 to 100)", op),
				"Use a plain number such as 25 or -10")
		}
		return Step{Kind: kind, Value: v}, nil

	case KindShow, KindHide:
		if hasArg {
			return Step{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Operation %q does not take a value", op),
				fmt.Sprintf("Write it as %s", kind))
		}
		return Step{Kind: kind}, nil
	}

	return Step{}, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown operation %q", op),
		"Supported operations: set:<n>, add:<n>, show, hide")
}

// ParseAll parses every operation in ops, stopping at the first bad one.
func ParseAll(ops []string) ([]Step, error) {
	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		s, err := Parse(op)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Apply runs the step against t.
func (s Step) Apply(t Target) error {
	switch s.Kind {
	case KindSet:
		return t.SetPercent(s.Value)
	case KindAdd:
		return t.AddPercent(s.Value)
	case KindShow:
		t.Show()
	case KindHide:
		t.Hide()
	}
	return nil
}

// Apply runs steps in order and stops at the first failure.
func Apply(t Target, steps []Step) error {
	for i, s := range steps {
		if err := s.Apply(t); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s, err)
		}
	}
	return nil
}
