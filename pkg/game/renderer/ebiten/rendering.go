package ebiten

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/messages"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Draw renders the latest scene (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.monoFontSource == nil {
		return
	}
	s := snap.scene

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	footerHeight := (messageLines + 2) * int(baseFontSize+4)

	mapX := mapMargin
	mapY := headerHeight + mapMargin
	mapW := screenWidth - mapMargin*2
	mapH := screenHeight - mapY - footerHeight - mapMargin
	if mapW <= 0 || mapH <= 0 {
		return
	}

	vector.DrawFilledRect(screen, float32(mapX), float32(mapY), float32(mapW), float32(mapH), colorMapBackground, false)

	proj := renderer.Fit(s, float64(mapX), float64(mapY), float64(mapW), float64(mapH))
	e.drawMap(screen, s, proj)

	e.drawHeader(screen, s.HUD, screenWidth)
	e.drawMessages(screen, s.HUD, screenWidth, screenHeight-footerHeight)
}

// drawMap draws every drawable from above in scene order
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, s renderer.Scene, proj renderer.Projection) {
	for _, d := range s.Drawables {
		pos := d.Pose.Position.XZ()
		switch d.Kind {
		case renderer.KindFloor:
			fillRect(screen, proj, pos, d.Half, colorFloor)
		case renderer.KindWall:
			fillRect(screen, proj, pos, d.Half, wallColor(d.Door))
		case renderer.KindKey:
			x, y := proj.Point(pos)
			vector.DrawFilledCircle(screen, float32(x), float32(y), keyRadius, colorKey, true)
		case renderer.KindDecor:
			x, y := proj.Point(pos)
			vector.DrawFilledRect(screen, float32(x)-4, float32(y)-4, 8, 8, colorDecor, false)
		case renderer.KindPlayer:
			e.drawPlayer(screen, d.Pose, proj)
		}
	}
}

// drawPlayer draws a disc with a line showing where the player faces
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, pose geom.Pose, proj renderer.Projection) {
	pos := pose.Position.XZ()
	x, y := proj.Point(pos)
	vector.DrawFilledCircle(screen, float32(x), float32(y), playerRadius, colorPlayer, true)

	reach := float64(playerRadius*3) / math.Max(proj.Scale, 1e-6)
	tx, ty := proj.Point(pos.Add(pose.Rotate(geom.Vec2{Z: reach})))
	vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 2, colorPlayer, true)
}

func fillRect(screen *ebiten.Image, proj renderer.Projection, center, half geom.Vec2, clr color.Color) {
	x, y, w, h := proj.Rect(center, half)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(max(w, 1)), float32(max(h, 1)), clr, false)
}

func wallColor(door world.DoorState) color.Color {
	switch door {
	case world.DoorOpen:
		return colorDoorOpen
	case world.DoorLocked:
		return colorDoorLocked
	default:
		return colorWall
	}
}

// drawHeader draws the current room, owned keys and status
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, h renderer.HUD, screenWidth int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), headerHeight, colorPanel, false)

	where := messages.T("NOT_IN_ROOM")
	if h.InRoom {
		where = messages.Format("LOCATED", int(h.Room))
	}
	e.drawColoredText(screen, where, mapMargin, 12, colorText)

	keys := messages.T("NO_KEYS")
	if len(h.Keys) > 0 {
		keys = strings.Join(h.Keys, ", ")
	}
	label := fmt.Sprintf("%s: %s", messages.T("KEYS"), keys)
	x := screenWidth - mapMargin - int(e.getTextWidth(label))
	e.drawColoredText(screen, label, max(x, screenWidth/2), 12, colorKey)

	if h.Status == state.StatusWon {
		won := messages.T("STATUS_WON")
		e.drawColoredText(screen, won, (screenWidth-int(e.getTextWidth(won)))/2, 12, colorWon)
	}
}

// drawMessages draws the latest messages below the map
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, h renderer.HUD, screenWidth, top int) {
	lineHeight := int(baseFontSize + 4)
	vector.DrawFilledRect(screen, 0, float32(top), float32(screenWidth), float32((messageLines+2)*lineHeight), colorPanel, false)

	msgs := h.Messages
	if len(msgs) > messageLines {
		msgs = msgs[len(msgs)-messageLines:]
	}
	if len(msgs) == 0 {
		e.drawColoredText(screen, "(no messages)", mapMargin, top+lineHeight/2, colorSubtle)
		return
	}
	for i, msg := range msgs {
		e.drawColoredText(screen, msg, mapMargin, top+lineHeight/2+i*lineHeight, colorText)
	}
}
