package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemplate/itemplate/pkg/modifier"
)

func TestExpr(t *testing.T) {
	expr := modifier.NewExpr()

	t.Run("claims expr segments only", func(t *testing.T) {
		assert.True(t, expr.CanHandle("expr(value * 2.0)"))
		assert.False(t, expr.CanHandle("round(2)"))
	})

	t.Run("evaluates over value", func(t *testing.T) {
		ctx := &modifier.Context{Value: 21, Unit: "km/h"}
		require.NoError(t, expr.Apply(ctx, "expr(value * 2.0)"))
		assert.Equal(t, 42.0, ctx.Value)
	})

	t.Run("sees the unit variable", func(t *testing.T) {
		ctx := &modifier.Context{Value: 10, Unit: "km/h"}
		require.NoError(t, expr.Apply(ctx, `expr(unit == "km/h" ? value + 1.0 : value)`))
		assert.Equal(t, 11.0, ctx.Value)
	})

	t.Run("rejects non-numeric result", func(t *testing.T) {
		ctx := &modifier.Context{Value: 10}
		err := expr.Apply(ctx, `expr("not a number")`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want a number")
		assert.Equal(t, 10.0, ctx.Value)
	})

	t.Run("rejects empty expression", func(t *testing.T) {
		ctx := &modifier.Context{Value: 10}
		require.Error(t, expr.Apply(ctx, "expr()"))
	})

	t.Run("rejects invalid expression", func(t *testing.T) {
		ctx := &modifier.Context{Value: 10}
		require.Error(t, expr.Apply(ctx, "expr(value +)"))
	})

	t.Run("works inside a chain", func(t *testing.T) {
		chain := modifier.NewChain(modifier.ModeStrict, nil)
		chain.Register(modifier.NewExpr())
		ctx := &modifier.Context{Value: 100, Unit: "km/h"}

		err := chain.Process(ctx, "convert(mph):expr(value / 2.0):round(1)", nil)
		require.NoError(t, err)
		assert.InDelta(t, 31.1, ctx.Value, 1e-9)
	})
}
