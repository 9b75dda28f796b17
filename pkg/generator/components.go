package generator

import (
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-transpiler/pkg/parser"
)

// Prop is a single emitted JSX attribute. Order matters: the emitter writes
// props exactly as the mapper returns them.
type Prop struct {
	Key   string
	Value any
}

// Placeholder handler expressions. The emitter recognizes their prefixes
// and renders them as expressions rather than string literals.
const (
	pressHandler  = "() => {}"
	changeHandler = "(value) => {}"
	textHandler   = "(text) => {}"
	backHandler   = "() => navigation.goBack()"
)

// mapping is the capability record for one component type: the target
// component (fixed or node-dependent), whether children are rendered, the
// prop mapper, and an optional JSX text child.
type mapping struct {
	component   func(n *parser.UITreeNode) string
	hasChildren bool
	props       func(n *parser.UITreeNode) []Prop
	textContent func(n *parser.UITreeNode) string
}

func fixed(name string) func(*parser.UITreeNode) string {
	return func(*parser.UITreeNode) string { return name }
}

// componentMap resolves each component type to its emission capability.
// Types absent from the map render as annotated placeholders.
var componentMap = map[parser.ComponentType]mapping{
	parser.TypeText: {
		component:   fixed("Text"),
		props:       mapTextProps,
		textContent: func(n *parser.UITreeNode) string { return n.Text },
	},
	parser.TypeView: {
		component: func(n *parser.UITreeNode) string {
			if n.Styles != nil && n.Styles.BackgroundGradient != nil {
				return "LinearGradient"
			}
			return "View"
		},
		hasChildren: true,
		props:       mapViewProps,
	},
	parser.TypeScrollableView: {
		component:   fixed("ScrollView"),
		hasChildren: true,
		props:       mapScrollViewProps,
	},
	parser.TypeSafeAreaView: {
		component:   fixed("SafeAreaView"),
		hasChildren: true,
		props:       mapSafeAreaProps,
	},
	parser.TypeButton: {
		component: fixed("Button"),
		props:     mapButtonProps,
	},
	parser.TypeCard: {
		component:   fixed("Card"),
		hasChildren: true,
		props:       mapCardProps,
	},
	parser.TypeChip: {
		component: fixed("Chip"),
		props:     mapChipProps,
	},
	parser.TypeCheckbox: {
		component: fixed("Checkbox"),
		props:     mapCheckboxProps,
	},
	parser.TypeRadio: {
		component: fixed("RadioGroup"),
		props:     mapRadioProps,
	},
	parser.TypeDropdown: {
		component: fixed("Dropdown"),
		props:     mapDropdownProps,
	},
	parser.TypeInput: {
		component: fixed("TextInput"),
		props:     mapInputProps,
	},
	parser.TypeSearchableInput: {
		component: fixed("SearchableInput"),
		props:     mapInputProps,
	},
	parser.TypeSwitch: {
		component: fixed("Switch"),
		props:     mapSwitchProps,
	},
	parser.TypeAvatar: {
		component: fixed("Avatar"),
		props:     mapAvatarProps,
	},
	parser.TypeListItem: {
		component: fixed("ListItem"),
		props:     mapListItemProps,
	},
	parser.TypeSpacer: {
		component: fixed("Spacer"),
		props:     mapSpacerProps,
	},
	parser.TypeIcon: {
		component: fixed("View"),
		props:     mapIconProps,
	},
	parser.TypeSVG: {
		component: fixed("View"),
		props:     mapIconProps,
	},
	parser.TypeBackButton: {
		component: fixed("TouchableOpacity"),
		props: func(n *parser.UITreeNode) []Prop {
			return []Prop{{Key: "onPress", Value: backHandler}}
		},
	},
	parser.TypeHeader: {
		component: fixed("Header"),
		props:     mapHeaderProps,
	},
	parser.TypeTopBar: {
		component: fixed("Header"),
		props:     mapHeaderProps,
	},
}

// mapButtonVariant enforces the closed button variant set.
func mapButtonVariant(variant string) string {
	switch variant {
	case "outline", "outlined":
		return "outline"
	case "ghost":
		return "ghost"
	default:
		return "regular"
	}
}

// mapCardVariant enforces the closed card variant set.
func mapCardVariant(variant string) string {
	switch variant {
	case "elevated":
		return "elevated"
	case "outlined", "outline":
		return "outlined"
	default:
		return "filled"
	}
}

// buildLayoutStyle converts a normalized layout to a react-native style map.
func buildLayoutStyle(l *parser.UILayout) map[string]any {
	if l == nil {
		return nil
	}
	style := make(map[string]any)

	switch l.Direction {
	case "horizontal":
		style["flexDirection"] = "row"
	case "vertical":
		style["flexDirection"] = "column"
	}
	if l.Gap != nil {
		style["gap"] = *l.Gap
	}
	if l.Padding != nil {
		if l.Padding.Uniform != nil {
			style["padding"] = *l.Padding.Uniform
		} else {
			if l.Padding.Top != nil {
				style["paddingTop"] = *l.Padding.Top
			}
			if l.Padding.Right != nil {
				style["paddingRight"] = *l.Padding.Right
			}
			if l.Padding.Bottom != nil {
				style["paddingBottom"] = *l.Padding.Bottom
			}
			if l.Padding.Left != nil {
				style["paddingLeft"] = *l.Padding.Left
			}
		}
	}
	switch l.Align {
	case "start":
		style["alignItems"] = "flex-start"
	case "center":
		style["alignItems"] = "center"
	case "end":
		style["alignItems"] = "flex-end"
	case "stretch":
		style["alignItems"] = "stretch"
	}

	if len(style) == 0 {
		return nil
	}
	return style
}

// visualStyle extracts the container-level visual fields of a style.
func visualStyle(s *parser.UIStyle) map[string]any {
	if s == nil {
		return nil
	}
	style := make(map[string]any)
	if s.BackgroundColor != "" {
		style["backgroundColor"] = s.BackgroundColor
	}
	if s.BorderColor != "" {
		style["borderColor"] = s.BorderColor
	}
	if s.BorderWidth != nil {
		style["borderWidth"] = *s.BorderWidth
	}
	if s.BorderRadius != nil {
		style["borderRadius"] = *s.BorderRadius
	}
	if s.Opacity != nil {
		style["opacity"] = *s.Opacity
	}
	if len(style) == 0 {
		return nil
	}
	return style
}

// containerStyle merges layout and visual styles into one map.
func containerStyle(n *parser.UITreeNode) map[string]any {
	style := buildLayoutStyle(n.Layout)
	for k, v := range visualStyle(n.Styles) {
		if style == nil {
			style = make(map[string]any)
		}
		style[k] = v
	}
	return style
}

func mapTextProps(n *parser.UITreeNode) []Prop {
	s := n.Styles
	if s == nil {
		return nil
	}
	style := make(map[string]any)
	if s.TextColor != "" {
		style["color"] = s.TextColor
	}
	if s.FontSize != nil {
		style["fontSize"] = *s.FontSize
	}
	if s.FontWeight != nil {
		// react-native expects fontWeight as a string
		style["fontWeight"] = strconv.FormatFloat(*s.FontWeight, 'f', -1, 64)
	}
	if s.FontFamily != "" {
		style["fontFamily"] = s.FontFamily
	}
	if s.Opacity != nil {
		style["opacity"] = *s.Opacity
	}
	if len(style) == 0 {
		return nil
	}
	return []Prop{{Key: "style", Value: style}}
}

func mapViewProps(n *parser.UITreeNode) []Prop {
	var props []Prop

	if n.Styles != nil && n.Styles.BackgroundGradient != nil {
		grad := n.Styles.BackgroundGradient
		colors := make([]any, 0, len(grad.Stops))
		locations := make([]any, 0, len(grad.Stops))
		for _, stop := range grad.Stops {
			colors = append(colors, stop.Color)
			locations = append(locations, stop.Offset)
		}
		props = append(props,
			Prop{Key: "colors", Value: colors},
			Prop{Key: "locations", Value: locations},
			Prop{Key: "start", Value: map[string]any{"x": grad.Start.X, "y": grad.Start.Y}},
			Prop{Key: "end", Value: map[string]any{"x": grad.End.X, "y": grad.End.Y}},
		)
	}

	if style := containerStyle(n); style != nil {
		props = append(props, Prop{Key: "style", Value: style})
	}
	return props
}

func mapScrollViewProps(n *parser.UITreeNode) []Prop {
	if style := containerStyle(n); style != nil {
		return []Prop{{Key: "contentContainerStyle", Value: style}}
	}
	return nil
}

func mapSafeAreaProps(n *parser.UITreeNode) []Prop {
	style := map[string]any{"flex": float64(1)}
	if n.Styles != nil && n.Styles.BackgroundColor != "" {
		style["backgroundColor"] = n.Styles.BackgroundColor
	}
	if n.Layout != nil {
		if h := n.Layout.Padding.HorizontalPadding(); h > 0 {
			style["paddingHorizontal"] = h
		}
	}
	return []Prop{{Key: "style", Value: style}}
}

func mapButtonProps(n *parser.UITreeNode) []Prop {
	props := []Prop{{Key: "text", Value: n.Text}}

	variant := "regular"
	size := "md"
	if n.StyleHints != nil {
		variant = mapButtonVariant(n.StyleHints.Variant)
		if n.StyleHints.Size != "" {
			size = n.StyleHints.Size
		}
	}
	props = append(props,
		Prop{Key: "variant", Value: variant},
		Prop{Key: "size", Value: size},
	)

	if n.Props["disabled"] == true {
		props = append(props, Prop{Key: "disabled", Value: true})
	}
	if icon, ok := n.Props["leftIcon"].(string); ok {
		props = append(props, Prop{Key: "leftIcon", Value: icon})
	}
	if icon, ok := n.Props["rightIcon"].(string); ok {
		props = append(props, Prop{Key: "rightIcon", Value: icon})
	}

	props = append(props, Prop{Key: "onPress", Value: pressHandler})

	if n.Styles != nil && n.Styles.BackgroundColor != "" {
		props = append(props, Prop{Key: "buttonStyle", Value: map[string]any{"backgroundColor": n.Styles.BackgroundColor}})
	}
	return props
}

func mapCardProps(n *parser.UITreeNode) []Prop {
	var props []Prop

	if n.Title != "" {
		props = append(props, Prop{Key: "title", Value: n.Title})
	}
	if n.Subtitle != "" {
		props = append(props, Prop{Key: "subtitle", Value: n.Subtitle})
	}

	variant := ""
	if v, ok := n.Props["variant"].(string); ok {
		variant = v
	} else if n.StyleHints != nil {
		variant = n.StyleHints.Variant
	}
	props = append(props, Prop{Key: "variant", Value: mapCardVariant(variant)})

	if padding, ok := n.Props["padding"].(string); ok {
		props = append(props, Prop{Key: "padding", Value: padding})
	}
	if n.Action != nil {
		props = append(props, Prop{Key: "onPress", Value: pressHandler})
	}
	if n.Styles != nil && n.Styles.BackgroundColor != "" {
		props = append(props, Prop{Key: "containerStyle", Value: map[string]any{"backgroundColor": n.Styles.BackgroundColor}})
	}
	return props
}

func mapChipProps(n *parser.UITreeNode) []Prop {
	props := []Prop{{Key: "text", Value: n.Text}}

	if n.Props["selected"] == true {
		props = append(props, Prop{Key: "selected", Value: true})
	}

	mode := "flat"
	if n.StyleHints != nil && n.StyleHints.Variant != "" {
		mode = n.StyleHints.Variant
	}
	props = append(props, Prop{Key: "mode", Value: mode})

	if icon, ok := n.Props["icon"].(string); ok {
		props = append(props, Prop{Key: "icon", Value: icon})
	}
	if n.Props["disabled"] == true {
		props = append(props, Prop{Key: "disabled", Value: true})
	}
	if n.Action != nil {
		props = append(props, Prop{Key: "onPress", Value: pressHandler})
	}
	return props
}

func mapCheckboxProps(n *parser.UITreeNode) []Prop {
	var props []Prop
	if checked, ok := n.Props["checked"].(bool); ok {
		props = append(props, Prop{Key: "checked", Value: checked})
	}
	props = append(props, Prop{Key: "onChange", Value: changeHandler})
	if label, ok := n.Props["label"].(string); ok {
		props = append(props, Prop{Key: "label", Value: label})
	}
	if n.Props["disabled"] == true {
		props = append(props, Prop{Key: "disabled", Value: true})
	}
	return props
}

func mapRadioProps(n *parser.UITreeNode) []Prop {
	label := ""
	if l, ok := n.Props["label"].(string); ok {
		label = l
	}
	options := []any{map[string]any{"label": label, "value": label}}

	props := []Prop{{Key: "options", Value: options}}
	if selected, ok := n.Props["selected"].(bool); ok && selected {
		props = append(props, Prop{Key: "value", Value: label})
	}
	props = append(props, Prop{Key: "onChange", Value: changeHandler})
	return props
}

func mapDropdownProps(n *parser.UITreeNode) []Prop {
	props := []Prop{{Key: "data", Value: []any{}}}
	if placeholder, ok := n.Props["placeholder"].(string); ok {
		props = append(props, Prop{Key: "placeholder", Value: placeholder})
	}
	if n.Title != "" {
		props = append(props, Prop{Key: "label", Value: n.Title})
	}
	if n.Props["disabled"] == true {
		props = append(props, Prop{Key: "disabled", Value: true})
	}
	return props
}

func mapInputProps(n *parser.UITreeNode) []Prop {
	var props []Prop
	if n.Text != "" {
		props = append(props, Prop{Key: "placeholder", Value: n.Text})
	}
	if n.Title != "" {
		props = append(props, Prop{Key: "label", Value: n.Title})
	}
	props = append(props, Prop{Key: "onChangeText", Value: textHandler})
	return props
}

func mapSwitchProps(n *parser.UITreeNode) []Prop {
	var props []Prop
	if value, ok := n.Props["value"].(bool); ok {
		props = append(props, Prop{Key: "value", Value: value})
	}
	props = append(props, Prop{Key: "onValueChange", Value: changeHandler})
	if label, ok := n.Props["label"].(string); ok {
		props = append(props, Prop{Key: "label", Value: label})
	}
	return props
}

func mapAvatarProps(n *parser.UITreeNode) []Prop {
	var props []Prop
	if name, ok := n.Props["name"].(string); ok {
		props = append(props, Prop{Key: "name", Value: name})
	}
	if n.StyleHints != nil && n.StyleHints.Size != "" {
		props = append(props, Prop{Key: "size", Value: n.StyleHints.Size})
	}
	if n.Action != nil {
		props = append(props, Prop{Key: "onPress", Value: pressHandler})
	}
	if n.Styles != nil && n.Styles.BackgroundColor != "" {
		props = append(props, Prop{Key: "containerStyle", Value: map[string]any{"backgroundColor": n.Styles.BackgroundColor}})
	}
	return props
}

func mapListItemProps(n *parser.UITreeNode) []Prop {
	var props []Prop
	if n.Title != "" {
		props = append(props, Prop{Key: "title", Value: n.Title})
	}
	if n.Subtitle != "" {
		props = append(props, Prop{Key: "subtitle", Value: n.Subtitle})
	}
	if n.Action != nil {
		props = append(props, Prop{Key: "onPress", Value: pressHandler})
	}
	return props
}

func mapSpacerProps(n *parser.UITreeNode) []Prop {
	size := float64(12)
	if v, ok := n.Props["size"].(float64); ok {
		size = v
	}
	props := []Prop{{Key: "size", Value: size}}
	if n.Props["horizontal"] == true {
		props = append(props, Prop{Key: "horizontal", Value: true})
	}
	return props
}

// mapIconProps renders icons as a fixed neutral block.
func mapIconProps(n *parser.UITreeNode) []Prop {
	return []Prop{{Key: "style", Value: map[string]any{
		"width":           float64(24),
		"height":          float64(24),
		"backgroundColor": "#E5E7EB",
	}}}
}

// mapHeaderProps consumes the header's subtree: the title comes from the
// hoisted text slot or the first text descendant, a BACKBUTTON descendant
// turns on back navigation, and remaining container/button/icon children
// fill the left and right action slots by position.
func mapHeaderProps(n *parser.UITreeNode) []Prop {
	var props []Prop

	title := n.Text
	if title == "" {
		if t := n.FirstTextDescendant(); t != nil {
			title = t.Text
		}
	}
	if title != "" {
		props = append(props, Prop{Key: "title", Value: title})
	}

	if findDescendant(n, parser.TypeBackButton) != nil {
		props = append(props,
			Prop{Key: "showBackButton", Value: true},
			Prop{Key: "onBackPress", Value: backHandler},
		)
	}

	var left, right *parser.UITreeNode
	for _, child := range n.Children {
		if child.ComponentType == parser.TypeBackButton || findDescendant(child, parser.TypeBackButton) != nil {
			continue
		}
		switch child.ComponentType {
		case parser.TypeView, parser.TypeIcon, parser.TypeSVG, parser.TypeButton:
			if isLeftOf(child, n) && left == nil {
				left = child
			} else if right == nil {
				right = child
			}
		}
	}
	if left != nil {
		props = append(props, Prop{Key: "leftAction", Value: left})
	}
	if right != nil {
		props = append(props, Prop{Key: "rightAction", Value: right})
	}
	return props
}

// isLeftOf reports whether a child sits in the left half of its parent.
// Without bounds the first slot claimed is the left one.
func isLeftOf(child, parent *parser.UITreeNode) bool {
	if child.Bounds == nil || parent.Bounds == nil {
		return true
	}
	childCenter := child.Bounds.X + child.Bounds.Width/2
	parentCenter := parent.Bounds.X + parent.Bounds.Width/2
	return childCenter < parentCenter
}

func findDescendant(n *parser.UITreeNode, t parser.ComponentType) *parser.UITreeNode {
	for _, child := range n.Children {
		if child.ComponentType == t {
			return child
		}
		if found := findDescendant(child, t); found != nil {
			return found
		}
	}
	return nil
}

// isMenuIcon reports whether an icon node references the hamburger menu
// glyph, which renders as the lucide Menu element.
func isMenuIcon(n *parser.UITreeNode) bool {
	if n.ComponentType != parser.TypeIcon && n.ComponentType != parser.TypeSVG {
		return false
	}
	name := n.ComponentName
	if name == "" {
		name = n.Role
	}
	return strings.Contains(strings.ToLower(name), "menu")
}
