package config

import "image/color"

// Palette holds every colour the window draws with for one theme.
type Palette struct {
	BackgroundTop    color.RGBA
	BackgroundBottom color.RGBA
	Particle         color.RGBA
	Panel            color.RGBA
	Display          color.RGBA
	DisplayText      color.RGBA
	Button           color.RGBA
	ButtonHover      color.RGBA
	ButtonPressed    color.RGBA
	ButtonText       color.RGBA
	Ring             color.RGBA
	ModeStandard     color.RGBA
	ModeScientific   color.RGBA
	Icon             color.RGBA
}

var (
	lightPalette = Palette{
		BackgroundTop:    color.RGBA{R: 191, G: 219, B: 254, A: 255}, // blue-200
		BackgroundBottom: color.RGBA{R: 216, G: 180, B: 254, A: 255}, // purple-300
		Particle:         color.RGBA{R: 168, G: 85, B: 247, A: 255},  // purple-500
		Panel:            color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Display:          color.RGBA{R: 243, G: 244, B: 246, A: 255},
		DisplayText:      color.RGBA{R: 31, G: 41, B: 55, A: 255},
		Button:           color.RGBA{R: 229, G: 231, B: 235, A: 255},
		ButtonHover:      color.RGBA{R: 209, G: 213, B: 219, A: 255},
		ButtonPressed:    color.RGBA{R: 190, G: 195, B: 203, A: 255},
		ButtonText:       color.RGBA{R: 31, G: 41, B: 55, A: 255},
		Ring:             color.RGBA{R: 59, G: 130, B: 246, A: 255},
		ModeStandard:     color.RGBA{R: 59, G: 130, B: 246, A: 255},
		ModeScientific:   color.RGBA{R: 34, G: 197, B: 94, A: 255},
		Icon:             color.RGBA{R: 107, G: 114, B: 128, A: 255},
	}

	darkPalette = Palette{
		BackgroundTop:    color.RGBA{R: 17, G: 24, B: 39, A: 255},   // gray-900
		BackgroundBottom: color.RGBA{R: 49, G: 46, B: 129, A: 255},  // indigo-900
		Particle:         color.RGBA{R: 59, G: 130, B: 246, A: 255}, // blue-500
		Panel:            color.RGBA{R: 31, G: 41, B: 55, A: 255},
		Display:          color.RGBA{R: 55, G: 65, B: 81, A: 255},
		DisplayText:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Button:           color.RGBA{R: 55, G: 65, B: 81, A: 255},
		ButtonHover:      color.RGBA{R: 75, G: 85, B: 99, A: 255},
		ButtonPressed:    color.RGBA{R: 40, G: 48, B: 62, A: 255},
		ButtonText:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Ring:             color.RGBA{R: 59, G: 130, B: 246, A: 255},
		ModeStandard:     color.RGBA{R: 59, G: 130, B: 246, A: 255},
		ModeScientific:   color.RGBA{R: 34, G: 197, B: 94, A: 255},
		Icon:             color.RGBA{R: 156, G: 163, B: 175, A: 255},
	}
)

func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// WithAlpha scales c to the given opacity. Colours are premultiplied, so
// every channel is scaled.
func WithAlpha(c color.RGBA, opacity float64) color.RGBA {
	opacity = clamp01(opacity) * float64(c.A) / 255
	scale := func(v uint8) uint8 { return uint8(float64(v)*opacity + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: uint8(255*opacity + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
