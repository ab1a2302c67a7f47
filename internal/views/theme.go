package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"modeshell/internal/state"
)

// scaledTheme pins the variant to the selected display mode and multiplies
// every size by the zoom factor.
type scaledTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	zoom    float32
	font    fyne.Resource
}

func newScaledTheme(s state.ApplicationState, font fyne.Resource) *scaledTheme {
	return &scaledTheme{
		base:    theme.DefaultTheme(),
		variant: variantFor(s.Theme()),
		zoom:    float32(s.ZoomFactor),
		font:    font,
	}
}

func variantFor(t state.Theme) fyne.ThemeVariant {
	if t == state.ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

func (t *scaledTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *scaledTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace && !style.Symbol {
		return t.font
	}
	return t.base.Font(style)
}

func (t *scaledTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *scaledTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name) * t.zoom
}

func (t *scaledTheme) same(o *scaledTheme) bool {
	return o != nil && t.variant == o.variant && t.zoom == o.zoom
}
