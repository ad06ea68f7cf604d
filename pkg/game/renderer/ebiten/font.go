package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the bundled monospace font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = src
	return nil
}

// getFontFace returns a cached face for HUD text
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	if e.cachedFace == nil {
		e.cachedFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedFace
}
