package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/messages"
)

// drawColoredText draws a line of text with its top-left corner at x, y.
// Terminal colour codes in str are stripped.
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	face := e.getFontFace()

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, messages.Plain(str), face, op)
}

// getTextWidth returns the width of str in pixels
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	w, _ := text.Measure(messages.Plain(str), e.getFontFace(), 0)
	return w
}
