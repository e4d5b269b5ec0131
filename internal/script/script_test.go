package script

import (
	"math"
	"testing"

	"github.com/rileyhilliard/loadingline/internal/dom"
	"github.com/rileyhilliard/loadingline/internal/errors"
	"github.com/rileyhilliard/loadingline/internal/logger"
	"github.com/rileyhilliard/loadingline/pkg/loadingline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		op   string
		want Step
	}{
		{"set", "set:50", Step{Kind: KindSet, Value: 50}},
		{"add negative", "add:-10", Step{Kind: KindAdd, Value: -10}},
		{"fraction", "set:12.5", Step{Kind: KindSet, Value: 12.5}},
		{"whitespace and case", "  ADD : 3 ", Step{Kind: KindAdd, Value: 3}},
		{"show", "show", Step{Kind: KindShow}},
		{"hide", "hide", Step{Kind: KindHide}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		op   string
		code string
	}{
		{"non-numeric set", "set:abc", errors.ErrPercent},
		{"non-numeric add", "add:ten", errors.ErrPercent},
		{"missing value", "set", errors.ErrPercent},
		{"show with value", "show:1", errors.ErrConfig},
		{"unknown", "grow:5", errors.ErrConfig},
		{"empty", "", errors.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.op)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestParseAll_StopsAtFirstError(t *testing.T) {
	steps, err := ParseAll([]string{"set:10", "bogus", "add:5"})

	require.Error(t, err)
	assert.Nil(t, steps)
	assert.Contains(t, err.Error(), "bogus")
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "set:50", Step{Kind: KindSet, Value: 50}.String())
	assert.Equal(t, "add:-2.5", Step{Kind: KindAdd, Value: -2.5}.String())
	assert.Equal(t, "hide", Step{Kind: KindHide}.String())
}

func TestApply(t *testing.T) {
	l, err := loadingline.New(dom.NewDiv(""), loadingline.Options{Logger: logger.Noop()})
	require.NoError(t, err)

	steps, err := ParseAll([]string{"set:90", "add:50", "hide", "add:-30"})
	require.NoError(t, err)

	require.NoError(t, Apply(l, steps))
	assert.Equal(t, 70, l.Percent())
	assert.False(t, l.Visible())
}

func TestApply_StopsAtFailingStep(t *testing.T) {
	l, err := loadingline.New(dom.NewDiv(""), loadingline.Options{Logger: logger.Noop()})
	require.NoError(t, err)

	steps := []Step{
		{Kind: KindSet, Value: 20},
		{Kind: KindAdd, Value: math.NaN()},
		{Kind: KindSet, Value: 80},
	}

	err = Apply(l, steps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2")
	assert.True(t, errors.IsCode(err, errors.ErrPercent))
	assert.Equal(t, 20, l.Percent(), "steps after the failure should not run")
}
