package style

import "fmt"

// Unit is the unit suffix of a Length value.
type Unit uint8

const (
	// UnitPx is the default unit: an unrecognized or absent suffix
	// resolves to UnitPx, matching original_source/src/css.rs's
	// parse_value_length default.
	UnitPx Unit = iota
	UnitEm
	UnitRem
	// UnitPercent is accepted by the parser but always resolves to 0px
	// in Length.Resolve; see DESIGN.md, Open Question 2.
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	case UnitPercent:
		return "%"
	default:
		return "px"
	}
}

// Length is a CSS dimension: a numeric value plus a unit.
type Length struct {
	Value float64
	Unit  Unit
}

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

// Zero is the zero length, 0px.
var Zero = Length{}

// BaseFontSizePx is the root font size em/rem lengths resolve against.
// canopy does not track a per-node cascaded font-size chain (spec.md's
// data model has no such property), so em and rem resolve identically,
// against this single constant.
const BaseFontSizePx = 16.0

// Resolve returns l's value in pixels. Percentage lengths always
// resolve to 0px — see DESIGN.md, Open Question 2.
func (l Length) Resolve() float64 {
	switch l.Unit {
	case UnitEm, UnitRem:
		return l.Value * BaseFontSizePx
	case UnitPercent:
		return 0
	default:
		return l.Value
	}
}

// Color is an RGBA color as parsed from a #RRGGBB literal. Alpha is
// always 255; the grammar canopy implements has no alpha channel.
type Color struct {
	R, G, B, A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Transparent is the zero-value Color, used as the default background.
var Transparent = Color{}

// Kind discriminates the union of value shapes a Declaration's Value
// can hold.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindLength
	KindColor
	// KindUnknown is a value shape whose text lives in Raw. The style
	// parser never produces it: a value that is neither a length nor a
	// color is stored as KindKeyword, with Raw set to the same text.
	KindUnknown
)

// Value is a single parsed CSS property value.
type Value struct {
	Kind    Kind
	Keyword string
	Length  Length
	Color   Color
	Raw     string
}

func (v Value) String() string {
	switch v.Kind {
	case KindKeyword:
		return v.Keyword
	case KindLength:
		return v.Length.String()
	case KindColor:
		return v.Color.String()
	default:
		return v.Raw
	}
}

// AsLength returns v's Length and true if v is a length value, else the
// zero length and false.
func (v Value) AsLength() (Length, bool) {
	if v.Kind != KindLength {
		return Length{}, false
	}
	return v.Length, true
}

// AsColor returns v's Color and true if v is a color value, else the
// zero color and false.
func (v Value) AsColor() (Color, bool) {
	if v.Kind != KindColor {
		return Color{}, false
	}
	return v.Color, true
}

// AsKeyword returns v's keyword text and true if v is a keyword value.
func (v Value) AsKeyword() (string, bool) {
	if v.Kind != KindKeyword {
		return "", false
	}
	return v.Keyword, true
}
