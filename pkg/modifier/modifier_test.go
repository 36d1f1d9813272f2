package modifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemplate/itemplate/pkg/modifier"
)

// double is a test modifier that multiplies the value by two.
type double struct{}

func (double) Name() string { return "double" }

func (double) CanHandle(segment string) bool {
	name, _, ok := modifier.ParseSegment(segment)
	return ok && name == "double"
}

func (double) Apply(ctx *modifier.Context, segment string) error {
	ctx.Value *= 2
	return nil
}

// shadowRound claims round segments to probe dispatch precedence.
type shadowRound struct{}

func (shadowRound) Name() string { return "shadow-round" }

func (shadowRound) CanHandle(segment string) bool {
	return strings.HasPrefix(segment, "round")
}

func (shadowRound) Apply(ctx *modifier.Context, segment string) error {
	ctx.Value = -1
	return nil
}

func TestParseSegment(t *testing.T) {
	tests := []struct {
		segment   string
		wantName  string
		wantParam string
		wantOK    bool
	}{
		{"round(2)", "round", "2", true},
		{"convert(km/h)", "convert", "km/h", true},
		{"expr(value * 2.0)", "expr", "value * 2.0", true},
		{"noop", "noop", "", true},
		{"(2)", "", "", false},
		{"round(2", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			name, param, ok := modifier.ParseSegment(tt.segment)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantParam, param)
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		segment string
		want    float64
	}{
		{"two places", 62.1371, "round(2)", 62.14},
		{"zero places", 100.789, "round(0)", 101},
		{"half to even down", 0.5, "round(0)", 0},
		{"half to even up", 1.5, "round(0)", 2},
		{"half to even at two places", 0.125, "round(2)", 0.12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &modifier.Context{Value: tt.value}
			require.NoError(t, modifier.Round{}.Apply(ctx, tt.segment))
			assert.InDelta(t, tt.want, ctx.Value, 1e-9)
		})
	}

	t.Run("non-integer parameter is an error", func(t *testing.T) {
		ctx := &modifier.Context{Value: 1.23}
		err := modifier.Round{}.Apply(ctx, "round(two)")
		require.Error(t, err)
		assert.Equal(t, 1.23, ctx.Value)
	})
}

func TestConvert(t *testing.T) {
	t.Run("converts and advances unit", func(t *testing.T) {
		ctx := &modifier.Context{Value: 100, Unit: "km/h"}
		require.NoError(t, modifier.Convert{}.Apply(ctx, "convert(mph)"))
		assert.InDelta(t, 62.1371, ctx.Value, 1e-6)
		assert.Equal(t, "mph", ctx.Unit)
	})

	t.Run("unknown pair names both units", func(t *testing.T) {
		ctx := &modifier.Context{Value: 100, Unit: "kg"}
		err := modifier.Convert{}.Apply(ctx, "convert(mph)")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"kg"`)
		assert.Contains(t, err.Error(), `"mph"`)
		assert.Equal(t, 100.0, ctx.Value)
		assert.Equal(t, "kg", ctx.Unit)
	})

	t.Run("missing target unit", func(t *testing.T) {
		ctx := &modifier.Context{Value: 100, Unit: "km/h"}
		require.Error(t, modifier.Convert{}.Apply(ctx, "convert()"))
	})
}

func TestChainProcess(t *testing.T) {
	t.Run("applies segments left to right", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		ctx := &modifier.Context{Value: 100.789, Unit: "km/h"}

		err := chain.Process(ctx, "round(0):convert(mph):round(1)", nil)
		require.NoError(t, err)
		assert.InDelta(t, 62.8, ctx.Value, 1e-9)
		assert.Equal(t, "mph", ctx.Unit)
	})

	t.Run("skips empty segments", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		ctx := &modifier.Context{Value: 1.25}

		require.NoError(t, chain.Process(ctx, " : round(1) :: ", nil))
		assert.InDelta(t, 1.2, ctx.Value, 1e-9)
	})

	t.Run("strict mode rejects unknown segment", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		ctx := &modifier.Context{Value: 1}

		err := chain.Process(ctx, "sparkle(9)", nil)
		require.ErrorIs(t, err, modifier.ErrUnknownModifier)
		assert.Contains(t, err.Error(), `"sparkle(9)"`)
	})

	t.Run("permissive mode skips unknown segment", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModePermissive, nil)
		ctx := &modifier.Context{Value: 1.25}

		require.NoError(t, chain.Process(ctx, "sparkle(9):round(1)", nil))
		assert.InDelta(t, 1.2, ctx.Value, 1e-9)
	})

	t.Run("permissive mode treats failing segment as no-op", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModePermissive, nil)
		ctx := &modifier.Context{Value: 100, Unit: "kg"}

		require.NoError(t, chain.Process(ctx, "convert(mph):round(x)", nil))
		assert.Equal(t, 100.0, ctx.Value)
		assert.Equal(t, "kg", ctx.Unit)
	})

	t.Run("strict mode propagates failing segment", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		ctx := &modifier.Context{Value: 100, Unit: "kg"}

		err := chain.Process(ctx, "convert(mph)", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `segment "convert(mph)"`)
	})

	t.Run("registered modifiers extend the chain", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		chain.Register(double{})
		ctx := &modifier.Context{Value: 10}

		require.NoError(t, chain.Process(ctx, "double:round(0)", nil))
		assert.Equal(t, 20.0, ctx.Value)
	})

	t.Run("built-ins keep precedence over later registrations", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		chain.Register(shadowRound{})
		ctx := &modifier.Context{Value: 1.25}

		require.NoError(t, chain.Process(ctx, "round(1)", nil))
		assert.InDelta(t, 1.2, ctx.Value, 1e-9)
	})

	t.Run("observe reports applied segments in order", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		ctx := &modifier.Context{Value: 100, Unit: "km/h"}

		var applied []string
		observe := func(mod, segment string) {
			applied = append(applied, mod+"|"+segment)
		}
		require.NoError(t, chain.Process(ctx, "convert(mph):round(1)", observe))
		assert.Equal(t, []string{"convert|convert(mph)", "round|round(1)"}, applied)
	})
}
