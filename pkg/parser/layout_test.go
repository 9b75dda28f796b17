package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
)

func TestExtractLayout(t *testing.T) {
	t.Run("direction and gap", func(t *testing.T) {
		node := &figma.Node{LayoutMode: "HORIZONTAL", ItemSpacing: f64(8)}
		layout := ExtractLayout(node)
		require.NotNil(t, layout)
		assert.Equal(t, "horizontal", layout.Direction)
		require.NotNil(t, layout.Gap)
		assert.Equal(t, float64(8), *layout.Gap)
	})

	t.Run("NONE layout mode is omitted", func(t *testing.T) {
		node := &figma.Node{LayoutMode: "NONE", ItemSpacing: f64(4)}
		layout := ExtractLayout(node)
		require.NotNil(t, layout)
		assert.Empty(t, layout.Direction)
	})

	t.Run("uniform padding collapses to a number", func(t *testing.T) {
		node := &figma.Node{
			PaddingTop: f64(16), PaddingRight: f64(16), PaddingBottom: f64(16), PaddingLeft: f64(16),
		}
		layout := ExtractLayout(node)
		require.NotNil(t, layout)
		require.NotNil(t, layout.Padding)
		require.NotNil(t, layout.Padding.Uniform)
		assert.Equal(t, float64(16), *layout.Padding.Uniform)

		data, err := json.Marshal(layout.Padding)
		require.NoError(t, err)
		assert.Equal(t, "16", string(data))
	})

	t.Run("partial padding keeps only present sides", func(t *testing.T) {
		node := &figma.Node{PaddingTop: f64(8), PaddingLeft: f64(12)}
		layout := ExtractLayout(node)
		require.NotNil(t, layout)
		require.NotNil(t, layout.Padding)
		assert.Nil(t, layout.Padding.Uniform)

		data, err := json.Marshal(layout.Padding)
		require.NoError(t, err)
		assert.JSONEq(t, `{"top":8,"left":12}`, string(data))
	})

	t.Run("unequal sides stay per-side", func(t *testing.T) {
		node := &figma.Node{
			PaddingTop: f64(8), PaddingRight: f64(16), PaddingBottom: f64(8), PaddingLeft: f64(16),
		}
		layout := ExtractLayout(node)
		require.NotNil(t, layout)
		assert.Nil(t, layout.Padding.Uniform)
	})

	t.Run("counter axis alignment mapping", func(t *testing.T) {
		for figmaValue, want := range map[string]string{
			"MIN": "start", "CENTER": "center", "MAX": "end", "STRETCH": "stretch",
		} {
			layout := ExtractLayout(&figma.Node{CounterAxisAlignItems: figmaValue})
			require.NotNil(t, layout, figmaValue)
			assert.Equal(t, want, layout.Align)
		}
	})

	t.Run("nothing survives yields nil", func(t *testing.T) {
		assert.Nil(t, ExtractLayout(&figma.Node{}))
	})
}

func TestDominantPadding(t *testing.T) {
	var none *Padding
	assert.Equal(t, float64(0), none.DominantPadding())

	uniform := &Padding{Uniform: f64(16)}
	assert.Equal(t, float64(16), uniform.DominantPadding())

	majority := &Padding{Top: f64(8), Right: f64(16), Bottom: f64(8), Left: f64(16)}
	assert.Equal(t, float64(8), majority.DominantPadding(), "ties break toward the first side in top-right-bottom-left order")

	dominant := &Padding{Top: f64(4), Right: f64(12), Bottom: f64(12), Left: f64(12)}
	assert.Equal(t, float64(12), dominant.DominantPadding())
}
