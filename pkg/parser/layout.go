package parser

import (
	"github.com/hellenic-development/figma-transpiler/pkg/figma"
)

// alignments maps Figma counter-axis alignment tokens to normalized values.
var alignments = map[string]string{
	"MIN":     "start",
	"CENTER":  "center",
	"MAX":     "end",
	"STRETCH": "stretch",
}

// ExtractLayout reads a node's auto-layout fields into a normalized layout.
// Direction comes from layoutMode (NONE is omitted), gap from itemSpacing,
// padding collapses to a uniform value when all four sides are present and
// equal, and alignment maps from counterAxisAlignItems. Returns nil when no
// field survives.
func ExtractLayout(node *figma.Node) *UILayout {
	layout := &UILayout{}

	switch node.LayoutMode {
	case "HORIZONTAL":
		layout.Direction = "horizontal"
	case "VERTICAL":
		layout.Direction = "vertical"
	}

	if node.ItemSpacing != nil {
		gap := *node.ItemSpacing
		layout.Gap = &gap
	}

	layout.Padding = extractPadding(node)
	layout.Align = alignments[node.CounterAxisAlignItems]

	if layout.Direction == "" && layout.Gap == nil && layout.Padding == nil && layout.Align == "" {
		return nil
	}
	return layout
}

// extractPadding collects each padding side that appeared in the document.
func extractPadding(node *figma.Node) *Padding {
	if node.PaddingTop == nil && node.PaddingRight == nil && node.PaddingBottom == nil && node.PaddingLeft == nil {
		return nil
	}

	p := &Padding{}
	if node.PaddingTop != nil {
		v := *node.PaddingTop
		p.Top = &v
	}
	if node.PaddingRight != nil {
		v := *node.PaddingRight
		p.Right = &v
	}
	if node.PaddingBottom != nil {
		v := *node.PaddingBottom
		p.Bottom = &v
	}
	if node.PaddingLeft != nil {
		v := *node.PaddingLeft
		p.Left = &v
	}

	if p.Top != nil && p.Right != nil && p.Bottom != nil && p.Left != nil &&
		*p.Top == *p.Right && *p.Top == *p.Bottom && *p.Top == *p.Left {
		return &Padding{Uniform: p.Top}
	}

	return p
}

// DominantPadding returns the padding value that appears on the most sides,
// breaking ties toward the side encountered first in top, right, bottom,
// left order. Zero when no padding is present.
func (p *Padding) DominantPadding() float64 {
	if p == nil {
		return 0
	}
	if p.Uniform != nil {
		return *p.Uniform
	}

	counts := make(map[float64]int, 4)
	order := make([]float64, 0, 4)
	for _, side := range []*float64{p.Top, p.Right, p.Bottom, p.Left} {
		if side == nil {
			continue
		}
		if _, seen := counts[*side]; !seen {
			order = append(order, *side)
		}
		counts[*side]++
	}

	best := float64(0)
	bestCount := 0
	for _, v := range order {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}

// HorizontalPadding returns the uniform padding, or the left padding when
// the sides differ, falling back to the right padding and then to zero.
// Used for safe-area containers which only keep their horizontal inset.
func (p *Padding) HorizontalPadding() float64 {
	if p == nil {
		return 0
	}
	if p.Uniform != nil {
		return *p.Uniform
	}
	if p.Left != nil {
		return *p.Left
	}
	if p.Right != nil {
		return *p.Right
	}
	return 0
}
