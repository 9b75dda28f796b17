package parser

import (
	"encoding/json"
)

// UITreeNode is the normalized intermediate representation of one semantic
// component. The parser produces a tree of these; the generator consumes it.
// ComponentType discriminates the variant, the remaining fields are the
// per-variant payload.
type UITreeNode struct {
	ID            string         `json:"id"`
	ComponentType ComponentType  `json:"componentType"`
	ComponentName string         `json:"componentName,omitempty"`
	Role          string         `json:"role,omitempty"`
	Text          string         `json:"text,omitempty"`
	Title         string         `json:"title,omitempty"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Layout        *UILayout      `json:"layout,omitempty"`
	Styles        *UIStyle       `json:"styles,omitempty"`
	StyleHints    *StyleHints    `json:"styleHints,omitempty"`
	Props         map[string]any `json:"props,omitempty"`
	Action        *Action        `json:"action,omitempty"`
	Children      []*UITreeNode  `json:"children,omitempty"`

	// Bounds carries the node's absolute bounding box, used for spacer sizing
	// in the parser and header action slot placement in the generator. It is
	// not part of the serialized intermediate output.
	Bounds *Bounds `json:"-"`
}

// UILayout is the normalized auto-layout description of a container.
type UILayout struct {
	Direction string   `json:"direction,omitempty"`
	Gap       *float64 `json:"gap,omitempty"`
	Padding   *Padding `json:"padding,omitempty"`
	Align     string   `json:"align,omitempty"`
}

// Padding is either a uniform value or a per-side object carrying only the
// sides that appeared in the source document.
type Padding struct {
	Uniform *float64
	Top     *float64
	Right   *float64
	Bottom  *float64
	Left    *float64
}

// MarshalJSON serializes a uniform padding as a bare number and a per-side
// padding as an object with only the present sides.
func (p Padding) MarshalJSON() ([]byte, error) {
	if p.Uniform != nil {
		return json.Marshal(*p.Uniform)
	}

	sides := make(map[string]float64, 4)
	if p.Top != nil {
		sides["top"] = *p.Top
	}
	if p.Right != nil {
		sides["right"] = *p.Right
	}
	if p.Bottom != nil {
		sides["bottom"] = *p.Bottom
	}
	if p.Left != nil {
		sides["left"] = *p.Left
	}
	return json.Marshal(sides)
}

// UIStyle is the language-neutral visual style extracted from fills,
// strokes, corner radius, opacity, and typography.
type UIStyle struct {
	BackgroundColor    string    `json:"backgroundColor,omitempty"`
	BackgroundGradient *Gradient `json:"backgroundGradient,omitempty"`
	BorderColor        string    `json:"borderColor,omitempty"`
	BorderWidth        *float64  `json:"borderWidth,omitempty"`
	BorderRadius       *float64  `json:"borderRadius,omitempty"`
	Opacity            *float64  `json:"opacity,omitempty"`
	TextColor          string    `json:"textColor,omitempty"`
	FontSize           *float64  `json:"fontSize,omitempty"`
	FontWeight         *float64  `json:"fontWeight,omitempty"`
	FontFamily         string    `json:"fontFamily,omitempty"`
}

// IsEmpty reports whether no style field survived extraction.
func (s *UIStyle) IsEmpty() bool {
	return s.BackgroundColor == "" && s.BackgroundGradient == nil &&
		s.BorderColor == "" && s.BorderWidth == nil && s.BorderRadius == nil &&
		s.Opacity == nil && s.TextColor == "" && s.FontSize == nil &&
		s.FontWeight == nil && s.FontFamily == ""
}

// Gradient describes a linear color interpolation between two endpoint
// coordinates in [0,1]².
type Gradient struct {
	Type  string         `json:"type"`
	Start Point          `json:"start"`
	End   Point          `json:"end"`
	Stops []GradientStop `json:"stops"`
}

// Point is a 2D coordinate in gradient space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop is one color stop of a gradient, with its offset in [0,1].
type GradientStop struct {
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
}

// StyleHints carries the discrete style identifiers derived during parsing.
type StyleHints struct {
	Variant string `json:"variant,omitempty"`
	Size    string `json:"size,omitempty"`
}

// Action describes the interaction a component responds to.
type Action struct {
	Type string `json:"type"`
}

// Bounds is the node's absolute bounding box on the Figma canvas.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HasTextContent reports whether any of the semantic text slots is filled.
func (n *UITreeNode) HasTextContent() bool {
	return n.Text != "" || n.Title != "" || n.Subtitle != ""
}

// HasVisualStyle reports whether the node carries a style of its own.
func (n *UITreeNode) HasVisualStyle() bool {
	return n.Styles != nil && !n.Styles.IsEmpty()
}

// hasNonViewDescendant reports whether any descendant is something other
// than a plain VIEW container.
func (n *UITreeNode) hasNonViewDescendant() bool {
	for _, child := range n.Children {
		if child.ComponentType != TypeView {
			return true
		}
		if child.hasNonViewDescendant() {
			return true
		}
	}
	return false
}

// FirstTextDescendant returns the first TEXT node in a depth-first walk of
// the subtree, or nil.
func (n *UITreeNode) FirstTextDescendant() *UITreeNode {
	if n.ComponentType == TypeText {
		return n
	}
	for _, child := range n.Children {
		if found := child.FirstTextDescendant(); found != nil {
			return found
		}
	}
	return nil
}

// MarshalIndent serializes the tree as two-space indented JSON, the shape
// written to output.json by the CLI.
func (n *UITreeNode) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}
