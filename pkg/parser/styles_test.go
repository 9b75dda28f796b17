package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
)

func f64(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name    string
		color   *figma.Color
		opacity *float64
		want    string
	}{
		{
			name:  "opaque hex upper case",
			color: &figma.Color{R: 0.03, G: 0.57, B: 0.72},
			want:  "#0891B8",
		},
		{
			name:  "black",
			color: &figma.Color{},
			want:  "#000000",
		},
		{
			name:  "white",
			color: &figma.Color{R: 1, G: 1, B: 1},
			want:  "#FFFFFF",
		},
		{
			name:  "alpha channel produces rgba",
			color: &figma.Color{R: 1, G: 0, B: 0, A: f64(0.5)},
			want:  "rgba(255, 0, 0, 0.50)",
		},
		{
			name:    "paint opacity multiplies alpha",
			color:   &figma.Color{R: 0, G: 0, B: 1},
			opacity: f64(0.25),
			want:    "rgba(0, 0, 255, 0.25)",
		},
		{
			name:  "zero alpha is transparent",
			color: &figma.Color{R: 1, G: 1, B: 1, A: f64(0)},
			want:  "transparent",
		},
		{
			name: "nil color is empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatColor(tt.color, tt.opacity))
		})
	}
}

func TestExtractStyles(t *testing.T) {
	t.Run("solid fill becomes background", func(t *testing.T) {
		node := &figma.Node{
			Fills: []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1}}},
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		assert.Equal(t, "#FFFFFF", style.BackgroundColor)
	})

	t.Run("first visible solid wins", func(t *testing.T) {
		node := &figma.Node{
			Fills: []figma.Paint{
				{Type: "SOLID", Visible: boolPtr(false), Color: &figma.Color{R: 1, G: 0, B: 0}},
				{Type: "SOLID", Color: &figma.Color{R: 0, G: 1, B: 0}},
			},
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		assert.Equal(t, "#00FF00", style.BackgroundColor)
	})

	t.Run("transparent fill is dropped", func(t *testing.T) {
		node := &figma.Node{
			Fills: []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1, A: f64(0)}}},
		}
		assert.Nil(t, ExtractStyles(node))
	})

	t.Run("gradient takes precedence over solid fill", func(t *testing.T) {
		node := &figma.Node{
			Fills: []figma.Paint{
				{
					Type:                    "GRADIENT_LINEAR",
					GradientHandlePositions: []figma.Vector{{X: 0, Y: 0}, {X: 1, Y: 1}},
					GradientStops: []figma.GradientStop{
						{Position: 0, Color: &figma.Color{R: 1, G: 0, B: 0}},
						{Position: 1, Color: &figma.Color{R: 0, G: 0, B: 1}},
					},
				},
				{Type: "SOLID", Color: &figma.Color{R: 1, G: 1, B: 1}},
			},
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		require.NotNil(t, style.BackgroundGradient)
		assert.Empty(t, style.BackgroundColor)
		assert.Equal(t, "linear", style.BackgroundGradient.Type)
		assert.Equal(t, Point{X: 0, Y: 0}, style.BackgroundGradient.Start)
		assert.Equal(t, Point{X: 1, Y: 1}, style.BackgroundGradient.End)
		require.Len(t, style.BackgroundGradient.Stops, 2)
		assert.Equal(t, GradientStop{Color: "#FF0000", Offset: 0}, style.BackgroundGradient.Stops[0])
		assert.Equal(t, GradientStop{Color: "#0000FF", Offset: 1}, style.BackgroundGradient.Stops[1])
	})

	t.Run("stroke becomes border with default width", func(t *testing.T) {
		node := &figma.Node{
			Strokes: []figma.Paint{{Type: "SOLID", Color: &figma.Color{}}},
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		assert.Equal(t, "#000000", style.BorderColor)
		require.NotNil(t, style.BorderWidth)
		assert.Equal(t, float64(1), *style.BorderWidth)
	})

	t.Run("stroke weight overrides default", func(t *testing.T) {
		node := &figma.Node{
			Strokes:      []figma.Paint{{Type: "SOLID", Color: &figma.Color{}}},
			StrokeWeight: f64(2),
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		require.NotNil(t, style.BorderWidth)
		assert.Equal(t, float64(2), *style.BorderWidth)
	})

	t.Run("corner radius and partial opacity", func(t *testing.T) {
		node := &figma.Node{
			CornerRadius: f64(8),
			Opacity:      f64(0.5),
		}
		style := ExtractStyles(node)
		require.NotNil(t, style)
		require.NotNil(t, style.BorderRadius)
		assert.Equal(t, float64(8), *style.BorderRadius)
		require.NotNil(t, style.Opacity)
		assert.Equal(t, 0.5, *style.Opacity)
	})

	t.Run("full opacity is dropped", func(t *testing.T) {
		node := &figma.Node{Opacity: f64(1)}
		assert.Nil(t, ExtractStyles(node))
	})

	t.Run("empty node yields nil", func(t *testing.T) {
		assert.Nil(t, ExtractStyles(&figma.Node{}))
	})
}

func TestExtractTextStyles(t *testing.T) {
	node := &figma.Node{
		Type:       "TEXT",
		Characters: "Hello",
		Fills:      []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 0.06666666666666667, G: 0.09411764705882353, B: 0.15294117647058825}}},
		Style:      &figma.TypeStyle{FontFamily: "Inter", FontSize: f64(16), FontWeight: f64(600)},
	}
	style := ExtractTextStyles(node)
	require.NotNil(t, style)
	assert.Equal(t, "#111827", style.TextColor)
	assert.Equal(t, "Inter", style.FontFamily)
	require.NotNil(t, style.FontSize)
	assert.Equal(t, float64(16), *style.FontSize)
	require.NotNil(t, style.FontWeight)
	assert.Equal(t, float64(600), *style.FontWeight)
	assert.Empty(t, style.BackgroundColor, "text fills are text color, not background")
}
