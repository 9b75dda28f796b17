package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hellenic-development/figma-transpiler/pkg/parser"
)

// singleLineLimit is the joined-props length under which a tag renders on
// one line.
const singleLineLimit = 60

// runtimeComponents are the targets imported from react-native rather than
// the component library. LinearGradient and Menu have dedicated import
// lines driven by a literal scan of the emitted body.
var runtimeComponents = map[string]bool{
	"View":             true,
	"Text":             true,
	"ScrollView":       true,
	"SafeAreaView":     true,
	"TouchableOpacity": true,
}

// emitter accumulates the import sets while walking one tree. State is
// local to a single Generate call, so concurrent generations never share
// anything.
type emitter struct {
	lib map[string]bool
	rt  map[string]bool
}

// Generate serializes a semantic tree into a complete JSX screen module:
// the recursively emitted body wrapped in the fixed screen template, with
// the minimal set of imports synthesized from what the body references.
func Generate(tree *parser.UITreeNode) string {
	e := &emitter{
		lib: make(map[string]bool),
		rt:  make(map[string]bool),
	}

	var body strings.Builder
	e.emitNode(&body, tree, 2)
	bodyStr := strings.TrimSuffix(body.String(), "\n")

	var sb strings.Builder
	sb.WriteString("import React from 'react';\n")
	if len(e.rt) > 0 {
		sb.WriteString(fmt.Sprintf("import { %s } from 'react-native';\n", strings.Join(sortedKeys(e.rt), ", ")))
	}
	if strings.Contains(bodyStr, "<LinearGradient") {
		sb.WriteString("import { LinearGradient } from 'expo-linear-gradient';\n")
	}
	if len(e.lib) > 0 {
		sb.WriteString(fmt.Sprintf("import { %s } from '../components';\n", strings.Join(sortedKeys(e.lib), ", ")))
	}
	if strings.Contains(bodyStr, "<Menu") {
		sb.WriteString("import { Menu } from 'lucide-react-native';\n")
	}

	sb.WriteString("\n")
	if needsNavigation(tree) {
		sb.WriteString("export default function GeneratedScreen({ navigation }: any) {\n")
	} else {
		sb.WriteString("export default function GeneratedScreen() {\n")
	}
	sb.WriteString("  return (\n")
	sb.WriteString(bodyStr)
	sb.WriteString("\n  );\n}\n")

	return sb.String()
}

// needsNavigation reports whether the screen signature must accept the
// navigation prop: any back button in the tree emits navigation.goBack().
func needsNavigation(tree *parser.UITreeNode) bool {
	if tree == nil {
		return false
	}
	if tree.ComponentType == parser.TypeBackButton {
		return true
	}
	for _, child := range tree.Children {
		if needsNavigation(child) {
			return true
		}
	}
	return false
}

// registerImport records a component in the matching import set.
func (e *emitter) registerImport(name string) {
	switch {
	case runtimeComponents[name]:
		e.rt[name] = true
	case name == "LinearGradient" || name == "Menu":
		// Imported via the literal body scan.
	default:
		e.lib[name] = true
	}
}

// emitNode writes one node and its subtree at the given depth, two spaces
// per level.
func (e *emitter) emitNode(sb *strings.Builder, n *parser.UITreeNode, depth int) {
	indent := strings.Repeat("  ", depth)

	m, ok := componentMap[n.ComponentType]
	if !ok {
		e.emitPlaceholder(sb, n, indent)
		return
	}

	component := m.component(n)
	e.registerImport(component)

	props := e.formatProps(m.props(n))

	text := ""
	if m.textContent != nil {
		text = m.textContent(n)
	}
	hasBlock := text != "" || (m.hasChildren && len(n.Children) > 0)

	e.writeTag(sb, indent, component, props, hasBlock)
	if !hasBlock {
		return
	}

	childIndent := indent + "  "
	if text != "" {
		sb.WriteString(childIndent + escapeText(text) + "\n")
	}

	horizontal := n.Layout != nil && n.Layout.Direction == "horizontal"
	for i, child := range n.Children {
		if !m.hasChildren {
			break
		}
		e.emitNode(sb, child, depth+1)

		// Spacer injection preserves auto-layout gaps between view siblings.
		if i < len(n.Children)-1 && child.ComponentType == parser.TypeView {
			e.lib["Spacer"] = true
			if horizontal {
				gap := float64(12)
				if n.Layout != nil && n.Layout.Gap != nil {
					gap = *n.Layout.Gap
				}
				sb.WriteString(fmt.Sprintf("%s<Spacer horizontal size={%s} />\n", childIndent, formatNumber(gap)))
			} else {
				sb.WriteString(childIndent + "<Spacer size={12} />\n")
			}
		}
	}

	sb.WriteString(indent + "</" + component + ">\n")
}

// emitPlaceholder renders an unmapped component type as an annotated
// placeholder view, forwarding any layout it carried.
func (e *emitter) emitPlaceholder(sb *strings.Builder, n *parser.UITreeNode, indent string) {
	annotation := parser.UnknownSuffix(n.Role)
	if annotation == "" {
		annotation = string(n.ComponentType)
	}
	sb.WriteString(indent + "{/* Unknown: " + annotation + " */}\n")

	e.rt["View"] = true
	if style := buildLayoutStyle(n.Layout); style != nil {
		sb.WriteString(indent + "<View style={" + marshalValue(style) + "} />\n")
		return
	}
	sb.WriteString(indent + "<View />\n")
}

// writeTag writes the opening tag (or a self-closing one), putting every
// prop on its own line when the joined representation is too long.
func (e *emitter) writeTag(sb *strings.Builder, indent, component string, props []string, hasBlock bool) {
	joined := strings.Join(props, " ")

	if len(props) == 0 || len(joined) < singleLineLimit {
		line := "<" + component
		if joined != "" {
			line += " " + joined
		}
		if hasBlock {
			sb.WriteString(indent + line + ">\n")
		} else {
			sb.WriteString(indent + line + " />\n")
		}
		return
	}

	sb.WriteString(indent + "<" + component + "\n")
	for _, prop := range props {
		sb.WriteString(indent + "  " + prop + "\n")
	}
	if hasBlock {
		sb.WriteString(indent + ">\n")
	} else {
		sb.WriteString(indent + "/>\n")
	}
}

// formatProps renders each prop as its key=value attribute form.
func (e *emitter) formatProps(props []Prop) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, e.formatProp(p))
	}
	return out
}

// formatProp encodes one prop value by kind: handler and injected-JSX
// strings become expressions, plain strings become quoted literals, true
// booleans collapse to the bare key, and everything else serializes as
// JSON inside braces. Nested tree nodes render as inline JSX.
func (e *emitter) formatProp(p Prop) string {
	switch v := p.Value.(type) {
	case bool:
		if v {
			return p.Key
		}
		return p.Key + "={false}"
	case string:
		if isExpression(v) {
			return p.Key + "={" + v + "}"
		}
		return p.Key + `="` + escapeText(v) + `"`
	case *parser.UITreeNode:
		return p.Key + "={" + e.serializeInline(v) + "}"
	default:
		return p.Key + "={" + marshalValue(v) + "}"
	}
}

// isExpression recognizes the function-placeholder and injected-JSX string
// shapes that must not be quoted.
func isExpression(v string) bool {
	return strings.HasPrefix(v, "() ") ||
		strings.HasPrefix(v, "(val") ||
		strings.HasPrefix(v, "(text") ||
		strings.HasPrefix(v, "(<")
}

// serializeInline renders a subtree as a single-line JSX expression, used
// for props that carry elements (header action slots).
func (e *emitter) serializeInline(n *parser.UITreeNode) string {
	if isMenuIcon(n) {
		return `<Menu size={24} color="#111827" />`
	}

	m, ok := componentMap[n.ComponentType]
	if !ok {
		e.rt["View"] = true
		return "<View />"
	}

	component := m.component(n)
	e.registerImport(component)

	open := "<" + component
	if joined := strings.Join(e.formatProps(m.props(n)), " "); joined != "" {
		open += " " + joined
	}

	text := ""
	if m.textContent != nil {
		text = m.textContent(n)
	}

	if text == "" && (!m.hasChildren || len(n.Children) == 0) {
		return open + " />"
	}

	var sb strings.Builder
	sb.WriteString(open + ">")
	if text != "" {
		sb.WriteString(escapeText(text))
	}
	if m.hasChildren {
		for _, child := range n.Children {
			sb.WriteString(e.serializeInline(child))
		}
	}
	sb.WriteString("</" + component + ">")
	return sb.String()
}

// marshalValue renders numbers, objects, and arrays as deterministic JSON:
// map keys serialize in sorted order.
func marshalValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// formatNumber renders a float without a trailing decimal point when whole.
func formatNumber(v float64) string {
	return marshalValue(v)
}

// escapeText entity-escapes JSX-significant characters and flattens
// embedded newlines to spaces.
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", " ",
	"\r", " ",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
