package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/particle-calc/internal/layout"
)

type faces struct {
	button  *text.GoTextFace
	label   *text.GoTextFace
	display *text.GoTextFace
}

// loadFaces uses the Go fonts, which cover × ÷ ± π √ ² ³.
func loadFaces() (faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load bold font: %w", err)
	}
	return faces{
		button:  &text.GoTextFace{Source: bold, Size: 20},
		label:   &text.GoTextFace{Source: regular, Size: 14},
		display: &text.GoTextFace{Source: bold, Size: 36},
	}, nil
}

// drawText draws s vertically centred on y, aligned horizontally on x.
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

func fillRect(dst *ebiten.Image, r layout.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

func strokeRect(dst *ebiten.Image, r layout.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, true)
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
