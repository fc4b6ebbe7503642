// Package theme provides widget styling. A StyleSheet derives the
// appearance of a widget for each interaction state from a single enabled
// style; widgets resolve the sheet per pass, so style changes take effect
// without rebuilding the tree.
package theme

import "github.com/go-loom/loom/pkg/graphics"

// Style is the resolved appearance of a widget in one interaction state.
type Style struct {
	MinHeight    float64
	BorderWidth  float64
	BorderRadius float64
	BorderColor  graphics.Color
	Background   graphics.Color
	TextColor    graphics.Color
	ShadowOffset graphics.Offset
}

// StyleSheet dictates the style of a widget across interaction states.
type StyleSheet interface {
	Enabled() Style
	Hovered() Style
	Pressed() Style
	Disabled() Style
}

// StyleFor selects the state style. Disabled takes precedence over the
// pointer states; pressed requires the pointer to still be over the
// widget.
func StyleFor(sheet StyleSheet, disabled, hovered, pressed bool) Style {
	switch {
	case disabled:
		return sheet.Disabled()
	case hovered && pressed:
		return sheet.Pressed()
	case hovered:
		return sheet.Hovered()
	default:
		return sheet.Enabled()
	}
}

// disabledAlpha halves the opacity of the background and text colors.
const disabledAlpha = 0x80

// HoverStyle derives the hovered appearance from an enabled style by
// shifting the shadow down one pixel.
func HoverStyle(enabled Style) Style {
	enabled.ShadowOffset.Y += 1
	return enabled
}

// PressStyle derives the pressed appearance from an enabled style by
// dropping the shadow.
func PressStyle(enabled Style) Style {
	enabled.ShadowOffset = graphics.Offset{}
	return enabled
}

// DisableStyle derives the disabled appearance from an enabled style by
// dropping the shadow and fading the background and text.
func DisableStyle(enabled Style) Style {
	enabled.ShadowOffset = graphics.Offset{}
	enabled.Background = enabled.Background.WithAlpha(disabledAlpha)
	enabled.TextColor = enabled.TextColor.WithAlpha(disabledAlpha)
	return enabled
}

// FixedSheet is a StyleSheet that derives every state from one enabled
// style using the standard derivations.
type FixedSheet struct {
	Base Style
}

func (s FixedSheet) Enabled() Style  { return s.Base }
func (s FixedSheet) Hovered() Style  { return HoverStyle(s.Base) }
func (s FixedSheet) Pressed() Style  { return PressStyle(s.Base) }
func (s FixedSheet) Disabled() Style { return DisableStyle(s.Base) }

var defaultStyle = Style{
	MinHeight:    24,
	BorderWidth:  1,
	BorderRadius: 2,
	BorderColor:  graphics.RGB(0xB3, 0xB3, 0xB3),
	Background:   graphics.RGB(0xDE, 0xDE, 0xDE),
	TextColor:    graphics.ColorBlack,
}

// Default returns the default button style sheet.
func Default() StyleSheet {
	return FixedSheet{Base: defaultStyle}
}
