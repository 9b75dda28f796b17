package parser

import (
	"regexp"
	"strings"
)

// ComponentType identifies the semantic component a Figma node maps to.
// The set is closed: anything outside it classifies as TypeUnknown.
type ComponentType string

const (
	TypeText            ComponentType = "TEXT"
	TypeView            ComponentType = "VIEW"
	TypeScrollableView  ComponentType = "SCROLLABLE_VIEW"
	TypeSafeAreaView    ComponentType = "SAFEAREAVIEW"
	TypeHeader          ComponentType = "HEADER"
	TypeTopBar          ComponentType = "TOPBAR"
	TypeButton          ComponentType = "BUTTON"
	TypeCard            ComponentType = "CARD"
	TypeTouchableCard   ComponentType = "TOUCHABLE_CARD"
	TypeChip            ComponentType = "CHIP"
	TypeInput           ComponentType = "INPUT"
	TypeSearchableInput ComponentType = "SEARCHABLE_INPUT"
	TypeDropdown        ComponentType = "DROPDOWN"
	TypeCheckbox        ComponentType = "CHECKBOX"
	TypeRadio           ComponentType = "RADIO"
	TypeSwitch          ComponentType = "SWITCH"
	TypeAvatar          ComponentType = "AVATAR"
	TypeListItem        ComponentType = "LISTITEM"
	TypeSpacer          ComponentType = "SPACER"
	TypeIcon            ComponentType = "ICON"
	TypeSVG             ComponentType = "SVG"
	TypeBackButton      ComponentType = "BACKBUTTON"
	TypeUnknown         ComponentType = "UNKNOWN"
)

// knownTypes is the closed set of recognized name suffixes.
var knownTypes = map[ComponentType]bool{
	TypeText:            true,
	TypeView:            true,
	TypeScrollableView:  true,
	TypeSafeAreaView:    true,
	TypeHeader:          true,
	TypeTopBar:          true,
	TypeButton:          true,
	TypeCard:            true,
	TypeTouchableCard:   true,
	TypeChip:            true,
	TypeInput:           true,
	TypeSearchableInput: true,
	TypeDropdown:        true,
	TypeCheckbox:        true,
	TypeRadio:           true,
	TypeSwitch:          true,
	TypeAvatar:          true,
	TypeListItem:        true,
	TypeSpacer:          true,
	TypeIcon:            true,
	TypeSVG:             true,
	TypeBackButton:      true,
}

// Classification is the result of parsing a Figma node name.
type Classification struct {
	// ComponentName is the textual prefix before the first underscore;
	// empty when the name does not have the Name_TYPE shape. A well-formed
	// but unrecognized suffix still keeps its prefix.
	ComponentName string
	// ComponentType is the recognized suffix, or TypeUnknown.
	ComponentType ComponentType
	// Suffix is the verbatim suffix captured from the name, even when it is
	// not in the closed set. Used to annotate unknown placeholders.
	Suffix string
	// Role is the full original Figma name.
	Role string
}

// nameConvention matches the Name_TYPE convention: a non-empty prefix
// without underscores followed by an upper-case suffix.
var nameConvention = regexp.MustCompile(`^[^_]+_[A-Z_]+$`)

// suffixShape matches a well-formed TYPE suffix.
var suffixShape = regexp.MustCompile(`^[A-Z_]+$`)

// Classify splits a Figma node name into its component name and type using
// the Name_TYPE convention. Everything after the first underscore must be
// upper case (letters and underscores); otherwise the node classifies as
// UNKNOWN. Role always carries the original name.
func Classify(name string) Classification {
	c := Classification{ComponentType: TypeUnknown, Role: name}

	idx := strings.Index(name, "_")
	if idx <= 0 {
		return c
	}

	suffix := name[idx+1:]
	if !suffixShape.MatchString(suffix) {
		return c
	}

	c.ComponentName = name[:idx]
	c.Suffix = suffix
	if knownTypes[ComponentType(suffix)] {
		c.ComponentType = ComponentType(suffix)
	}

	return c
}

// MatchesConvention reports whether a name follows the Name_TYPE convention,
// regardless of whether the suffix is a recognized component type.
func MatchesConvention(name string) bool {
	return nameConvention.MatchString(name)
}

// UnknownSuffix extracts the suffix used to annotate unrecognized
// placeholders. Falls back to the full name when there is no suffix.
func UnknownSuffix(name string) string {
	idx := strings.Index(name, "_")
	if idx <= 0 || idx == len(name)-1 {
		return name
	}
	return name[idx+1:]
}
