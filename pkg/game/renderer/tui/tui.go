// Package tui draws the game as a top-down plan in the terminal and reads
// typed commands as input.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/messages"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Space around the plan
const (
	ViewportMinRows = 5
	ViewportMinCols = 20
	ViewportSide    = 4
	// header (2), keys (2), actions (1), messages pane (7), prompt (2)
	ViewportFooter = 14
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorFloor      color.Style
	colorWall       color.Style
	colorDoorOpen   color.Style
	colorDoorLocked color.Style
	colorKey        color.Style
	colorDecor      color.Style
	colorPlayer     color.Style
	colorSubtle     color.Style
	colorAction     color.Style
	colorWon        color.Style

	in       *input.LineReader
	out      io.Writer
	turnStep float64

	// fixed plan size; zero follows the terminal
	rows, cols int
	clear      bool
}

// New creates a TUI renderer reading commands from in and drawing to out.
// Each turn command rotates the player by turnStep radians.
func New(in io.Reader, out io.Writer, turnStep float64) *TUIRenderer {
	return &TUIRenderer{
		in:       input.NewLineReader(in),
		out:      out,
		turnStep: turnStep,
	}
}

// NewStdio creates a TUI renderer on the process's terminal
func NewStdio(turnStep float64) *TUIRenderer {
	t := New(os.Stdin, os.Stdout, turnStep)
	t.clear = terminal.Interactive()
	return t
}

// SetViewportSize fixes the plan size instead of following the terminal
func (t *TUIRenderer) SetViewportSize(rows, cols int) {
	t.rows, t.cols = rows, cols
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorFloor = color.Style{color.FgGray}
	t.colorWall = color.Style{color.FgWhite}
	t.colorDoorOpen = color.Style{color.FgGreen}
	t.colorDoorLocked = color.Style{color.FgYellow, color.OpBold}
	t.colorKey = color.Style{color.FgYellow, color.OpBold}
	t.colorDecor = color.Style{color.FgMagenta}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorWon = color.Style{color.FgGreen, color.OpBold}
	return nil
}

// Close has nothing to release for a terminal
func (t *TUIRenderer) Close() {
	fmt.Fprintln(t.out)
}

// GetViewportSize returns the plan dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	if t.rows > 0 && t.cols > 0 {
		return t.rows, t.cols
	}
	cols, rows = terminal.Viewport(ViewportSide, ViewportFooter)
	return max(rows, ViewportMinRows), max(cols, ViewportMinCols)
}

// PollInput blocks for one typed line. End of input quits.
func (t *TUIRenderer) PollInput() input.Frame {
	line, err := t.in.ReadLine()
	if err != nil {
		f := input.NewFrame()
		f.Release(input.ActionQuit)
		return f
	}
	return input.ParseCommand(line, t.turnStep)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s renderer.Scene) {
	if t.clear {
		c := exec.Command("clear")
		c.Stdout = os.Stdout
		c.Run()
	}

	t.printHeader(s.HUD)
	t.printPlan(s)
	t.printKeys(s.HUD)
	fmt.Fprintln(t.out, messages.Expand(messages.T("ACTIONS")))
	t.printMessagesPane(s.HUD)

	if s.HUD.Status != state.StatusWon {
		fmt.Fprint(t.out, "\n"+messages.T("PROMPT"))
	}
}

func (t *TUIRenderer) printHeader(h renderer.HUD) {
	var where string
	if h.InRoom {
		where = messages.Format("LOCATED", int(h.Room))
	} else {
		where = t.colorSubtle.Sprint(messages.T("NOT_IN_ROOM"))
	}
	if h.Status == state.StatusWon {
		where = t.colorWon.Sprint(messages.T("STATUS_WON")) + "  " + where
	}
	fmt.Fprintf(t.out, "%s  %s\n\n", where, t.colorSubtle.Sprintf("(%.0f, %.0f)", h.Position.X, h.Position.Z))
}

func (t *TUIRenderer) printPlan(s renderer.Scene) {
	rows, cols := t.GetViewportSize()
	plan := renderer.NewPlan(s, cols, rows)
	indent := strings.Repeat(" ", ViewportSide/2)

	for _, row := range plan.Cells(s) {
		var b strings.Builder
		b.WriteString(indent)
		for _, cell := range row {
			b.WriteString(t.renderCell(cell))
		}
		fmt.Fprintln(t.out, b.String())
	}
	fmt.Fprintln(t.out)
}

// renderCell returns the string representation of a plan cell
func (t *TUIRenderer) renderCell(c renderer.PlanCell) string {
	switch c.Kind {
	case renderer.KindFloor:
		return t.colorFloor.Sprint(c.Icon)
	case renderer.KindWall:
		switch c.Door {
		case world.DoorOpen:
			return t.colorDoorOpen.Sprint(c.Icon)
		case world.DoorLocked:
			return t.colorDoorLocked.Sprint(c.Icon)
		}
		return t.colorWall.Sprint(c.Icon)
	case renderer.KindKey:
		return t.colorKey.Sprint(c.Icon)
	case renderer.KindDecor:
		return t.colorDecor.Sprint(c.Icon)
	case renderer.KindPlayer:
		return t.colorPlayer.Sprint(c.Icon)
	default:
		return renderer.IconVoid
	}
}

// printKeys renders the owned keys
func (t *TUIRenderer) printKeys(h renderer.HUD) {
	fmt.Fprint(t.out, t.colorSubtle.Sprint(messages.T("KEYS")+": "))
	if len(h.Keys) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(messages.T("NO_KEYS")))
	} else {
		items := make([]string, 0, len(h.Keys))
		for _, k := range h.Keys {
			items = append(items, t.colorKey.Sprint(k))
		}
		fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
	}
	fmt.Fprintln(t.out)
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(h renderer.HUD) {
	_, cols := t.GetViewportSize()
	width := cols + ViewportSide

	label := " Messages "
	sideLen := max((width-len(label))/2, 1)
	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-len(label), 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(h.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range h.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
