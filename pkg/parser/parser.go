package parser

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
)

// ErrNoRootComponent is returned when the document contains no frame
// following the Name_TYPE convention. It is the only terminal parse error;
// every other malformed node degrades to an UNKNOWN placeholder.
var ErrNoRootComponent = errors.New("no root component found in document")

// yTolerance is the coordinate band within which two siblings are treated
// as being on the same row and ordered by x instead.
const yTolerance = 2

// Build walks a Figma file response and produces the normalized semantic
// tree rooted at the first component frame found under the document.
func Build(file *figma.FileResponse) (*UITreeNode, error) {
	return BuildNode(&file.Document)
}

// BuildNode builds the semantic tree starting from an arbitrary Figma node,
// descending through document frames (pages, canvases) until it finds the
// first component.
func BuildNode(root *figma.Node) (*UITreeNode, error) {
	component := findRoot(root)
	if component == nil {
		return nil, ErrNoRootComponent
	}
	return parseNode(component), nil
}

// findRoot locates the first component node in document order: a node
// following the Name_TYPE convention, a raw text node, or a text-bearing
// wrapper frame. Document frames are searched into, never returned.
func findRoot(node *figma.Node) *figma.Node {
	if !node.IsVisible() {
		return nil
	}
	if isComponentNode(node) {
		return node
	}
	for i := range node.Children {
		if found := findRoot(&node.Children[i]); found != nil {
			return found
		}
	}
	return nil
}

func isComponentNode(node *figma.Node) bool {
	if node.Type == "TEXT" {
		return true
	}
	if MatchesConvention(node.Name) {
		return true
	}
	return isTextWrapperHeuristic(node)
}

// isTextWrapperHeuristic implements the fallback text rule: a frame or
// component with exactly one child of type TEXT whose own name contains no
// underscore is treated as a single text node.
func isTextWrapperHeuristic(node *figma.Node) bool {
	if node.Type != "FRAME" && node.Type != "COMPONENT" {
		return false
	}
	if strings.Contains(node.Name, "_") {
		return false
	}
	return len(node.Children) == 1 && node.Children[0].Type == "TEXT"
}

// parseNode converts one Figma node into a semantic tree node. Text
// detection runs before all other dispatch; afterwards the name is
// classified and the node routed to its specialized parser. parseNode
// never fails: unrecognized nodes degrade to UNKNOWN.
func parseNode(node *figma.Node) *UITreeNode {
	// Text rules run first.
	if node.Type == "TEXT" {
		return parseTextNode(node)
	}
	if (node.Type == "FRAME" || node.Type == "COMPONENT") && strings.HasSuffix(node.Name, "_TEXT") {
		return parseTextWrapper(node)
	}
	if isTextWrapperHeuristic(node) {
		return parseTextHeuristic(node)
	}

	c := classifyNode(node)

	switch c.ComponentType {
	case TypeText:
		// Non-frame wrappers (groups, instances) named *_TEXT.
		return parseTextWrapper(node)
	case TypeTouchableCard:
		return parseTouchableCard(node, c)
	case TypeButton:
		return parseButton(node, c)
	case TypeChip:
		return parseChip(node, c)
	case TypeCard:
		return parseCard(node, c)
	case TypeInput, TypeSearchableInput:
		return parseInput(node, c)
	case TypeDropdown:
		return parseDropdown(node, c)
	case TypeCheckbox, TypeRadio, TypeSwitch:
		return parseToggle(node, c)
	case TypeIcon, TypeSVG, TypeBackButton:
		return parseLeaf(node, c)
	case TypeAvatar:
		return parseAvatar(node, c)
	case TypeListItem:
		return parseListItem(node, c)
	case TypeSpacer:
		return parseSpacer(node, c)
	default:
		return parseContainer(node, c)
	}
}

// classifyNode classifies the node name and applies the vector upgrade: a
// raw VECTOR whose name classifies to UNKNOWN becomes an ICON.
func classifyNode(node *figma.Node) Classification {
	c := Classify(node.Name)
	if node.Type == "VECTOR" && c.ComponentType == TypeUnknown {
		c.ComponentType = TypeIcon
	}
	return c
}

func baseNode(node *figma.Node, c Classification) *UITreeNode {
	return &UITreeNode{
		ID:            node.ID,
		ComponentType: c.ComponentType,
		ComponentName: c.ComponentName,
		Role:          node.Name,
		Bounds:        boundsOf(node),
	}
}

func boundsOf(node *figma.Node) *Bounds {
	if node.AbsoluteBoundingBox == nil {
		return nil
	}
	return &Bounds{
		X:      node.AbsoluteBoundingBox.X,
		Y:      node.AbsoluteBoundingBox.Y,
		Width:  node.AbsoluteBoundingBox.Width,
		Height: node.AbsoluteBoundingBox.Height,
	}
}

// parseTextNode handles a raw Figma TEXT node.
func parseTextNode(node *figma.Node) *UITreeNode {
	c := Classify(node.Name)
	n := &UITreeNode{
		ID:            node.ID,
		ComponentType: TypeText,
		ComponentName: c.ComponentName,
		Role:          node.Name,
		Text:          node.Characters,
		Styles:        ExtractTextStyles(node),
		Bounds:        boundsOf(node),
	}
	if hint := textSizeHint(node.Style); hint != "" {
		n.StyleHints = &StyleHints{Size: hint}
	}
	return n
}

// textSizeHint quantizes a text node's font size. The thresholds here are
// the text contract; buttons use their own table in parseButton.
func textSizeHint(style *figma.TypeStyle) string {
	if style == nil || style.FontSize == nil {
		return ""
	}
	switch fs := *style.FontSize; {
	case fs <= 14:
		return "sm"
	case fs <= 17:
		return "md"
	default:
		return "lg"
	}
}

// parseTextWrapper handles frames whose name ends with _TEXT: all text
// descendants are collected, and a lone descendant collapses into a single
// text node carrying the wrapper's identity.
func parseTextWrapper(node *figma.Node) *UITreeNode {
	c := Classify(node.Name)
	texts := collectTextDescendants(node)

	if len(texts) == 1 {
		n := parseTextNode(texts[0])
		n.ID = node.ID
		n.ComponentName = c.ComponentName
		n.Role = node.Name
		n.Bounds = boundsOf(node)
		return n
	}

	view := &UITreeNode{
		ID:            node.ID,
		ComponentType: TypeView,
		ComponentName: c.ComponentName,
		Role:          node.Name,
		Layout:        ExtractLayout(node),
		Styles:        ExtractStyles(node),
		Bounds:        boundsOf(node),
	}
	for _, t := range texts {
		view.Children = append(view.Children, parseTextNode(t))
	}
	return view
}

// parseTextHeuristic handles the unnamed wrapper case: the single TEXT
// child's characters are lifted into a node carrying the wrapper's name.
func parseTextHeuristic(node *figma.Node) *UITreeNode {
	child := &node.Children[0]
	n := parseTextNode(child)
	n.ID = node.ID
	n.ComponentName = node.Name
	n.Role = node.Name
	n.Bounds = boundsOf(node)
	return n
}

// hasVisibleFill reports whether the node has a visible, non-transparent
// solid fill.
func hasVisibleFill(node *figma.Node) bool {
	fill := firstVisibleSolid(node.Fills)
	return fill != nil && FormatColor(fill.Color, fill.Opacity) != transparentColor
}

// hasVisibleStroke reports whether the node has a visible, non-transparent
// solid stroke.
func hasVisibleStroke(node *figma.Node) bool {
	stroke := firstVisibleSolid(node.Strokes)
	return stroke != nil && FormatColor(stroke.Color, stroke.Opacity) != transparentColor
}

// fillStrokeVariant derives the interaction variant from paints:
// strokes-only is an outline, any solid fill is regular, neither is ghost.
func fillStrokeVariant(node *figma.Node) string {
	fill := hasVisibleFill(node)
	stroke := hasVisibleStroke(node)
	switch {
	case stroke && !fill:
		return "outline"
	case fill:
		return "regular"
	default:
		return "ghost"
	}
}

// isIconNode reports whether a child acts as an icon: classified ICON/SVG,
// a raw vector, or an instance whose name mentions "icon".
func isIconNode(node *figma.Node) bool {
	c := Classify(node.Name)
	if c.ComponentType == TypeIcon || c.ComponentType == TypeSVG {
		return true
	}
	if node.Type == "VECTOR" {
		return true
	}
	return node.Type == "INSTANCE" && strings.Contains(strings.ToLower(node.Name), "icon")
}

// iconName returns the name an icon is referenced by in emitted props.
func iconName(node *figma.Node) string {
	if c := Classify(node.Name); c.ComponentName != "" {
		return c.ComponentName
	}
	return node.Name
}

// parseButton collapses a button frame: the first text descendant becomes
// the label, icons become leftIcon/rightIcon by position, and children are
// never emitted.
func parseButton(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)
	n.Action = &Action{Type: "press"}

	textNode := firstTextDescendant(node)
	size := "md"
	if textNode != nil {
		n.Text = textNode.Characters
		if textNode.Style != nil && textNode.Style.FontSize != nil {
			switch fs := *textNode.Style.FontSize; {
			case fs <= 12:
				size = "sm"
			case fs <= 16:
				size = "md"
			default:
				size = "lg"
			}
		}
	}
	n.StyleHints = &StyleHints{Variant: fillStrokeVariant(node), Size: size}

	props := make(map[string]any)
	for i := range node.Children {
		child := &node.Children[i]
		if !child.IsVisible() || child.Type == "TEXT" || !isIconNode(child) {
			continue
		}
		side := "leftIcon"
		if child.AbsoluteBoundingBox != nil && textNode != nil && textNode.AbsoluteBoundingBox != nil &&
			child.AbsoluteBoundingBox.X >= textNode.AbsoluteBoundingBox.X {
			side = "rightIcon"
		}
		if _, taken := props[side]; !taken {
			props[side] = iconName(child)
		}
	}

	if node.Opacity != nil && *node.Opacity < 0.9 {
		props["disabled"] = true
	}
	if len(props) > 0 {
		n.Props = props
	}
	return n
}

// isGreyFill reports whether the predominant solid fill is grey: all RGB
// channels within 0.05 of each other.
func isGreyFill(node *figma.Node) bool {
	fill := firstVisibleSolid(node.Fills)
	if fill == nil {
		return false
	}
	c := fill.Color
	lo := math.Min(c.R, math.Min(c.G, c.B))
	hi := math.Max(c.R, math.Max(c.G, c.B))
	return hi-lo <= 0.05
}

// parseChip collapses a chip frame: the first text descendant is the label,
// a tick/check icon marks it selected, any other icon is kept by name, and
// a grey fill or low opacity disables it.
func parseChip(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)
	n.StyleHints = &StyleHints{Variant: "flat"}

	if textNode := firstTextDescendant(node); textNode != nil {
		n.Text = textNode.Characters
	}

	props := make(map[string]any)
	for i := range node.Children {
		child := &node.Children[i]
		if !child.IsVisible() || !isIconNode(child) {
			continue
		}
		lower := strings.ToLower(child.Name)
		if strings.Contains(lower, "tick") || strings.Contains(lower, "check") {
			props["selected"] = true
			continue
		}
		if _, taken := props["icon"]; !taken {
			props["icon"] = iconName(child)
		}
	}

	disabled := (node.Opacity != nil && *node.Opacity < 0.9) || isGreyFill(node)
	if disabled {
		props["disabled"] = true
	}

	interactive := props["selected"] == true || props["icon"] != nil
	if interactive && !disabled {
		n.Action = &Action{Type: "press"}
	}

	if len(props) > 0 {
		n.Props = props
	}
	return n
}

// quantizePadding maps a numeric padding to the card padding scale.
func quantizePadding(value float64) string {
	switch {
	case value == 0:
		return "none"
	case value <= 12:
		return "sm"
	case value <= 20:
		return "md"
	default:
		return "lg"
	}
}

// parseCard builds a card container. Variant precedence is shadow, stroke,
// fill; padding quantizes from the dominant side value; children recurse
// with the usual flattening and only semantic nodes are kept.
func parseCard(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Layout = ExtractLayout(node)
	n.Styles = ExtractStyles(node)

	variant := "filled"
	switch {
	case hasVisibleShadow(node):
		variant = "elevated"
	case hasVisibleStroke(node):
		variant = "outlined"
	}

	props := map[string]any{
		"variant": variant,
	}
	var padding *Padding
	if n.Layout != nil {
		padding = n.Layout.Padding
	}
	props["padding"] = quantizePadding(padding.DominantPadding())
	n.Props = props

	n.Children = parseChildren(node)
	return n
}

func hasVisibleShadow(node *figma.Node) bool {
	for i := range node.Effects {
		e := &node.Effects[i]
		if e.Type == "DROP_SHADOW" && e.IsVisible() {
			return true
		}
	}
	return false
}

// parseTouchableCard rewrites a touchable card to a pressable CARD: the
// first two text descendants become title and subtitle and the subtree is
// collapsed entirely.
func parseTouchableCard(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.ComponentType = TypeCard
	n.Styles = ExtractStyles(node)
	n.Layout = ExtractLayout(node)
	n.Action = &Action{Type: "press"}
	n.StyleHints = &StyleHints{Variant: fillStrokeVariant(node)}

	texts := collectTextDescendants(node)
	if len(texts) > 0 {
		n.Title = texts[0].Characters
	}
	if len(texts) > 1 {
		n.Subtitle = texts[1].Characters
	}
	return n
}

// parseInput collapses an input frame without recursing: among direct text
// children, one named like a label becomes the label and the first other
// becomes the placeholder.
func parseInput(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)

	for i := range node.Children {
		child := &node.Children[i]
		if child.Type != "TEXT" || !child.IsVisible() {
			continue
		}
		if strings.Contains(strings.ToLower(child.Name), "label") {
			if n.Title == "" {
				n.Title = child.Characters
			}
		} else if n.Text == "" {
			n.Text = child.Characters
		}
	}
	return n
}

// parseDropdown collapses a dropdown: the first text descendant anywhere
// becomes the placeholder.
func parseDropdown(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)

	if textNode := firstTextDescendant(node); textNode != nil {
		n.Props = map[string]any{"placeholder": textNode.Characters}
	}
	return n
}

// toggleStateProp names the boolean prop carrying each toggle's state.
var toggleStateProp = map[ComponentType]string{
	TypeCheckbox: "checked",
	TypeRadio:    "selected",
	TypeSwitch:   "value",
}

// parseToggle collapses checkbox, radio, and switch frames: a direct child
// named _TRUE or _FALSE sets the state and the first direct text child
// becomes the label.
func parseToggle(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)

	stateProp := toggleStateProp[c.ComponentType]
	props := make(map[string]any)
	for i := range node.Children {
		child := &node.Children[i]
		if !child.IsVisible() {
			continue
		}
		switch {
		case strings.HasSuffix(child.Name, "_TRUE"):
			props[stateProp] = true
		case strings.HasSuffix(child.Name, "_FALSE"):
			props[stateProp] = false
		case child.Type == "TEXT":
			if _, taken := props["label"]; !taken {
				props["label"] = child.Characters
			}
		}
	}

	if len(props) > 0 {
		n.Props = props
	}
	return n
}

// parseLeaf handles icon-like nodes: no children, no layout, no text.
func parseLeaf(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)
	return n
}

// parseAvatar collapses an avatar: the first text descendant (initials or
// a display name) is kept as the name prop.
func parseAvatar(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)

	if textNode := firstTextDescendant(node); textNode != nil {
		n.Props = map[string]any{"name": textNode.Characters}
	}
	return n
}

// parseListItem collapses a list item: the first two text descendants
// become title and subtitle.
func parseListItem(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Styles = ExtractStyles(node)

	texts := collectTextDescendants(node)
	if len(texts) > 0 {
		n.Title = texts[0].Characters
	}
	if len(texts) > 1 {
		n.Subtitle = texts[1].Characters
	}
	return n
}

// parseSpacer derives the spacer's extent from its bounding box: wider
// than tall means a horizontal spacer sized by width, otherwise vertical
// sized by height.
func parseSpacer(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)

	if n.Bounds != nil {
		props := make(map[string]any)
		if n.Bounds.Width > n.Bounds.Height {
			props["horizontal"] = true
			props["size"] = n.Bounds.Width
		} else {
			props["size"] = n.Bounds.Height
		}
		n.Props = props
	}
	return n
}

// parseContainer handles layout containers (VIEW, SCROLLABLE_VIEW, HEADER,
// TOPBAR, SAFEAREAVIEW) and the UNKNOWN fallback. Children recurse in
// visual order; direct text children are hoisted into the text slot (first
// wins) rather than emitted, and empty view scaffolding is flattened away.
func parseContainer(node *figma.Node, c Classification) *UITreeNode {
	n := baseNode(node, c)
	n.Layout = ExtractLayout(node)
	n.Styles = ExtractStyles(node)

	// Unknown nodes become annotated placeholders; their subtree is dropped.
	if c.ComponentType == TypeUnknown {
		return n
	}

	var children []*UITreeNode
	for _, child := range sortSiblings(node.Children, node.LayoutMode) {
		if child.Type == "TEXT" {
			if n.Text == "" {
				n.Text = child.Characters
			}
			continue
		}
		children = append(children, parseNode(child))
	}
	n.Children = flattenViews(children)
	return n
}

// parseChildren recurses over a container's children in visual order and
// flattens away empty view scaffolding. Unlike parseContainer it keeps
// direct text children as nodes; cards render their texts as children.
func parseChildren(node *figma.Node) []*UITreeNode {
	var children []*UITreeNode
	for _, child := range sortSiblings(node.Children, node.LayoutMode) {
		children = append(children, parseNode(child))
	}
	return flattenViews(children)
}

// flattenViews removes view scaffolding that carries no text, style, or
// layout and contains nothing but more views, hoisting any children into
// the parent's list.
func flattenViews(children []*UITreeNode) []*UITreeNode {
	var out []*UITreeNode
	for _, child := range children {
		if child.ComponentType == TypeView && !child.HasTextContent() &&
			!child.HasVisualStyle() && child.Layout == nil && !child.hasNonViewDescendant() {
			out = append(out, child.Children...)
			continue
		}
		out = append(out, child)
	}
	return out
}

// sortSiblings filters out invisible nodes and orders the rest by visual
// position: left-to-right for horizontal containers, top-to-bottom
// otherwise, with a small tolerance band in which ordering falls back to x.
// Nodes without a bounding box keep their input order relative to peers.
func sortSiblings(children []figma.Node, layoutMode string) []*figma.Node {
	visible := make([]*figma.Node, 0, len(children))
	for i := range children {
		if children[i].IsVisible() {
			visible = append(visible, &children[i])
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		bi, bj := visible[i].AbsoluteBoundingBox, visible[j].AbsoluteBoundingBox
		if bi == nil || bj == nil {
			return false
		}
		if layoutMode == "HORIZONTAL" {
			return bi.X < bj.X
		}
		if math.Abs(bi.Y-bj.Y) <= yTolerance {
			return bi.X < bj.X
		}
		return bi.Y < bj.Y
	})

	return visible
}

// collectTextDescendants returns every TEXT node in the subtree in document
// order, excluding invisible branches.
func collectTextDescendants(node *figma.Node) []*figma.Node {
	var texts []*figma.Node
	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if !n.IsVisible() {
			return
		}
		if n.Type == "TEXT" {
			texts = append(texts, n)
			return
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	for i := range node.Children {
		walk(&node.Children[i])
	}
	return texts
}

// firstTextDescendant returns the first TEXT node in the subtree, or nil.
func firstTextDescendant(node *figma.Node) *figma.Node {
	texts := collectTextDescendants(node)
	if len(texts) == 0 {
		return nil
	}
	return texts[0]
}

// CountTypes tallies component types across the tree. Used for reporting.
func CountTypes(root *UITreeNode) map[ComponentType]int {
	counts := make(map[ComponentType]int)
	var walk func(n *UITreeNode)
	walk = func(n *UITreeNode) {
		counts[n.ComponentType]++
		for _, child := range n.Children {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return counts
}
