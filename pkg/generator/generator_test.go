package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-transpiler/pkg/figma"
	"github.com/hellenic-development/figma-transpiler/pkg/parser"
)

func f64(v float64) *float64 { return &v }

func build(t *testing.T, node *figma.Node) *parser.UITreeNode {
	t.Helper()
	tree, err := parser.BuildNode(node)
	require.NoError(t, err)
	return tree
}

func solidFill(r, g, b float64) []figma.Paint {
	return []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: r, G: g, B: b}}}
}

func TestGenerateButton(t *testing.T) {
	tree := build(t, &figma.Node{
		Name: "Sign_BUTTON",
		Type: "FRAME",
		Children: []figma.Node{
			{Name: "Sign in", Type: "TEXT", Characters: "Sign in", Style: &figma.TypeStyle{FontSize: f64(14)}},
		},
		Fills: solidFill(0.03, 0.57, 0.72),
	})

	want := `import React from 'react';
import { Button } from '../components';

export default function GeneratedScreen() {
  return (
    <Button
      text="Sign in"
      variant="regular"
      size="md"
      onPress={() => {}}
      buttonStyle={{"backgroundColor":"#0891B8"}}
    />
  );
}
`
	assert.Equal(t, want, Generate(tree))
}

func TestGenerateUnknownPlaceholder(t *testing.T) {
	tree := build(t, &figma.Node{Name: "Widget_FOO", Type: "FRAME"})

	want := `import React from 'react';
import { View } from 'react-native';

export default function GeneratedScreen() {
  return (
    {/* Unknown: FOO */}
    <View />
  );
}
`
	assert.Equal(t, want, Generate(tree))
}

func TestGenerateSpacerInjection(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:       "Main_VIEW",
		Type:       "FRAME",
		LayoutMode: "VERTICAL",
		Children: []figma.Node{
			{Name: "Top_VIEW", Type: "FRAME", Fills: solidFill(1, 1, 1)},
			{Name: "Bottom_VIEW", Type: "FRAME", Fills: solidFill(0, 0, 0)},
		},
	})

	source := Generate(tree)

	assert.Equal(t, 1, strings.Count(source, "<Spacer size={12} />"),
		"exactly one spacer between two view siblings")
	assert.Contains(t, source, "import { Spacer } from '../components';")

	// The spacer sits between the siblings, not after the last one.
	first := strings.Index(source, `{"backgroundColor":"#FFFFFF"}`)
	spacer := strings.Index(source, "<Spacer")
	second := strings.Index(source, `{"backgroundColor":"#000000"}`)
	assert.Greater(t, spacer, first)
	assert.Less(t, spacer, second)
}

func TestGenerateHorizontalSpacer(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:        "Row_VIEW",
		Type:        "FRAME",
		LayoutMode:  "HORIZONTAL",
		ItemSpacing: f64(16),
		Children: []figma.Node{
			{Name: "Left_VIEW", Type: "FRAME", Fills: solidFill(1, 1, 1)},
			{Name: "Right_VIEW", Type: "FRAME", Fills: solidFill(0, 0, 0)},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "<Spacer horizontal size={16} />")
}

func TestGenerateNoSpacerAfterNonView(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:       "Main_VIEW",
		Type:       "FRAME",
		LayoutMode: "VERTICAL",
		Children: []figma.Node{
			{Name: "Go_BUTTON", Type: "FRAME"},
			{Name: "Bottom_VIEW", Type: "FRAME", Fills: solidFill(0, 0, 0)},
		},
	})

	source := Generate(tree)
	assert.NotContains(t, source, "<Spacer", "only view siblings trigger spacers")
}

func TestGenerateText(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:       "caption",
		Type:       "TEXT",
		Characters: "Hello & <world>",
		Fills:      solidFill(0, 0, 0),
		Style:      &figma.TypeStyle{FontSize: f64(16)},
	})

	source := Generate(tree)
	assert.Contains(t, source, `<Text style={{"color":"#000000","fontSize":16}}>`)
	assert.Contains(t, source, "Hello &amp; &lt;world&gt;")
	assert.Contains(t, source, "</Text>")
	assert.Contains(t, source, "import { Text } from 'react-native';")
}

func TestGenerateGradientView(t *testing.T) {
	tree := build(t, &figma.Node{
		Name: "Hero_VIEW",
		Type: "FRAME",
		Fills: []figma.Paint{{
			Type:                    "GRADIENT_LINEAR",
			GradientHandlePositions: []figma.Vector{{X: 0, Y: 0}, {X: 1, Y: 1}},
			GradientStops: []figma.GradientStop{
				{Position: 0, Color: &figma.Color{R: 1, G: 0, B: 0}},
				{Position: 1, Color: &figma.Color{R: 0, G: 0, B: 1}},
			},
		}},
	})

	source := Generate(tree)
	assert.Contains(t, source, "<LinearGradient")
	assert.Contains(t, source, `colors={["#FF0000","#0000FF"]}`)
	assert.Contains(t, source, "locations={[0,1]}")
	assert.Contains(t, source, `start={{"x":0,"y":0}}`)
	assert.Contains(t, source, `end={{"x":1,"y":1}}`)
	assert.Contains(t, source, "import { LinearGradient } from 'expo-linear-gradient';")
	assert.NotContains(t, source, "from 'react-native'", "nothing references the runtime")
}

func TestGenerateScrollView(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:        "Feed_SCROLLABLE_VIEW",
		Type:        "FRAME",
		LayoutMode:  "VERTICAL",
		ItemSpacing: f64(12),
		Children: []figma.Node{
			{Name: "Item_VIEW", Type: "FRAME", Fills: solidFill(1, 1, 1)},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "<ScrollView contentContainerStyle=")
	assert.Contains(t, source, "import { ScrollView, View } from 'react-native';")
}

func TestGenerateSafeArea(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:        "Screen_SAFEAREAVIEW",
		Type:        "FRAME",
		Fills:       solidFill(1, 1, 1),
		PaddingTop:  f64(16),
		PaddingLeft: f64(16), PaddingRight: f64(16), PaddingBottom: f64(16),
		Children: []figma.Node{
			{Name: "Go_BUTTON", Type: "FRAME"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "<SafeAreaView")
	assert.Contains(t, source, `style={{"backgroundColor":"#FFFFFF","flex":1,"paddingHorizontal":16}}`)
	assert.Contains(t, source, "</SafeAreaView>")
}

func TestGenerateCheckbox(t *testing.T) {
	tree := build(t, &figma.Node{
		Name: "Remember_CHECKBOX",
		Type: "FRAME",
		Children: []figma.Node{
			{Name: "State_TRUE", Type: "FRAME"},
			{Name: "label", Type: "TEXT", Characters: "Remember me"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, `<Checkbox checked onChange={(value) => {}} label="Remember me" />`)
}

func TestGenerateCheckboxFalse(t *testing.T) {
	tree := build(t, &figma.Node{
		Name: "Remember_CHECKBOX",
		Type: "FRAME",
		Children: []figma.Node{
			{Name: "State_FALSE", Type: "FRAME"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "checked={false}")
}

func TestGenerateTouchableCard(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:    "Billing_TOUCHABLE_CARD",
		Type:    "FRAME",
		Strokes: solidFill(0, 0, 0),
		Children: []figma.Node{
			{Name: "t1", Type: "TEXT", Characters: "Billing"},
			{Name: "t2", Type: "TEXT", Characters: "Invoices"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, `title="Billing"`)
	assert.Contains(t, source, `subtitle="Invoices"`)
	assert.Contains(t, source, `variant="outlined"`)
	assert.Contains(t, source, "onPress={() => {}}")
	assert.NotContains(t, source, "<Text", "touchable cards do not recurse")
}

func TestGenerateHeaderWithNavigation(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:                "Top_HEADER",
		Type:                "FRAME",
		AbsoluteBoundingBox: &figma.Rectangle{X: 0, Y: 0, Width: 375, Height: 56},
		Children: []figma.Node{
			{Name: "Back_BACKBUTTON", Type: "FRAME"},
			{Name: "title", Type: "TEXT", Characters: "Settings"},
			{Name: "menu_ICON", Type: "FRAME", AbsoluteBoundingBox: &figma.Rectangle{X: 330, Y: 16, Width: 24, Height: 24}},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "export default function GeneratedScreen({ navigation }: any) {")
	assert.Contains(t, source, `title="Settings"`)
	assert.Contains(t, source, "showBackButton")
	assert.Contains(t, source, "onBackPress={() => navigation.goBack()}")
	assert.Contains(t, source, `rightAction={<Menu size={24} color="#111827" />}`)
	assert.Contains(t, source, "import { Menu } from 'lucide-react-native';")
	assert.Contains(t, source, "import { Header } from '../components';")
}

func TestGenerateWithoutNavigation(t *testing.T) {
	tree := build(t, &figma.Node{Name: "Go_BUTTON", Type: "FRAME"})
	source := Generate(tree)
	assert.Contains(t, source, "export default function GeneratedScreen() {")
	assert.NotContains(t, source, "navigation")
}

func TestGenerateIconPlaceholderBlock(t *testing.T) {
	tree := build(t, &figma.Node{
		Name: "Main_VIEW",
		Type: "FRAME",
		Children: []figma.Node{
			{Name: "star_ICON", Type: "FRAME"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, `style={{"backgroundColor":"#E5E7EB","height":24,"width":24}}`)
}

func TestImportMinimality(t *testing.T) {
	// P5: a symbol is imported iff its literal form appears in the body.
	tree := build(t, &figma.Node{Name: "Go_BUTTON", Type: "FRAME"})
	source := Generate(tree)

	assert.Contains(t, source, "import React from 'react';")
	assert.Contains(t, source, "import { Button } from '../components';")
	assert.NotContains(t, source, "react-native")
	assert.NotContains(t, source, "expo-linear-gradient")
	assert.NotContains(t, source, "lucide-react-native")
}

func TestImportsAreSorted(t *testing.T) {
	tree := build(t, &figma.Node{
		Name:       "Main_VIEW",
		Type:       "FRAME",
		LayoutMode: "VERTICAL",
		Children: []figma.Node{
			{Name: "Pick_DROPDOWN", Type: "FRAME"},
			{Name: "Go_BUTTON", Type: "FRAME"},
			{Name: "hello", Type: "TEXT", Characters: "hi"},
		},
	})

	source := Generate(tree)
	assert.Contains(t, source, "import { View } from 'react-native';")
	assert.Contains(t, source, "import { Button, Dropdown } from '../components';")
}
