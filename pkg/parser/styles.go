package parser

import (
	"fmt"
	"math"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
)

// transparentColor is the sentinel for a fully transparent paint. Fields
// resolving to it are dropped from the extracted style.
const transparentColor = "transparent"

// FormatColor converts a Figma RGBA color and its paint opacity to a color
// string. The effective alpha is the product of the color's alpha and the
// paint opacity: zero yields the transparent sentinel, partial alpha an
// rgba() string with two-decimal alpha, and full alpha an upper-case
// #RRGGBB hex value.
func FormatColor(c *figma.Color, paintOpacity *float64) string {
	if c == nil {
		return ""
	}

	alpha := c.Alpha()
	if paintOpacity != nil {
		alpha *= *paintOpacity
	}

	if alpha == 0 {
		return transparentColor
	}

	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	if alpha < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
	}

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// firstVisibleSolid returns the first visible SOLID paint in the list, or nil.
func firstVisibleSolid(paints []figma.Paint) *figma.Paint {
	for i := range paints {
		p := &paints[i]
		if p.Type == "SOLID" && p.IsVisible() && p.Color != nil {
			return p
		}
	}
	return nil
}

// firstVisibleGradient returns the first visible linear gradient paint, or nil.
func firstVisibleGradient(paints []figma.Paint) *figma.Paint {
	for i := range paints {
		p := &paints[i]
		if p.Type == "GRADIENT_LINEAR" && p.IsVisible() && len(p.GradientStops) > 0 {
			return p
		}
	}
	return nil
}

// extractGradient converts a linear gradient paint into the normalized
// gradient shape, recording stops verbatim with offset and color.
func extractGradient(p *figma.Paint) *Gradient {
	g := &Gradient{Type: "linear"}

	if len(p.GradientHandlePositions) > 0 {
		g.Start = Point{X: p.GradientHandlePositions[0].X, Y: p.GradientHandlePositions[0].Y}
	}
	if len(p.GradientHandlePositions) > 1 {
		g.End = Point{X: p.GradientHandlePositions[1].X, Y: p.GradientHandlePositions[1].Y}
	}

	for _, stop := range p.GradientStops {
		g.Stops = append(g.Stops, GradientStop{
			Color:  FormatColor(stop.Color, p.Opacity),
			Offset: stop.Position,
		})
	}

	return g
}

// ExtractStyles converts a node's fills, strokes, corner radius, and opacity
// to a normalized style. The first visible solid paint in each list wins.
// Returns nil when no field survives.
func ExtractStyles(node *figma.Node) *UIStyle {
	style := &UIStyle{}

	if grad := firstVisibleGradient(node.Fills); grad != nil {
		style.BackgroundGradient = extractGradient(grad)
	} else if fill := firstVisibleSolid(node.Fills); fill != nil {
		if c := FormatColor(fill.Color, fill.Opacity); c != transparentColor {
			style.BackgroundColor = c
		}
	}

	if stroke := firstVisibleSolid(node.Strokes); stroke != nil {
		if c := FormatColor(stroke.Color, stroke.Opacity); c != transparentColor {
			style.BorderColor = c
			width := float64(1)
			if node.StrokeWeight != nil {
				width = *node.StrokeWeight
			}
			style.BorderWidth = &width
		}
	}

	if node.CornerRadius != nil {
		radius := *node.CornerRadius
		style.BorderRadius = &radius
	}

	if node.Opacity != nil && *node.Opacity < 1 {
		opacity := *node.Opacity
		style.Opacity = &opacity
	}

	if style.IsEmpty() {
		return nil
	}
	return style
}

// ExtractTextStyles converts a TEXT node's typography and fill to a
// normalized style: the first visible solid fill is the text color.
// Returns nil when no field survives.
func ExtractTextStyles(node *figma.Node) *UIStyle {
	style := &UIStyle{}

	if fill := firstVisibleSolid(node.Fills); fill != nil {
		if c := FormatColor(fill.Color, fill.Opacity); c != transparentColor {
			style.TextColor = c
		}
	}

	if node.Style != nil {
		if node.Style.FontSize != nil {
			size := *node.Style.FontSize
			style.FontSize = &size
		}
		if node.Style.FontWeight != nil {
			weight := *node.Style.FontWeight
			style.FontWeight = &weight
		}
		style.FontFamily = node.Style.FontFamily
	}

	if node.Opacity != nil && *node.Opacity < 1 {
		opacity := *node.Opacity
		style.Opacity = &opacity
	}

	if style.IsEmpty() {
		return nil
	}
	return style
}
