package terminal

import (
	"fmt"

	"github.com/KirkDiggler/spinwheel/internal/wheel"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle   = tcell.StyleDefault.Bold(true)
	stylePointer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCursor  = tcell.StyleDefault.Reverse(true)
)

// draw paints the whole screen from the current state
func (a *App) draw() {
	a.mu.Lock()
	frame := a.frame
	glow, glowLevel := a.glow, a.glowLevel
	options := a.options
	autoDisable := a.autoDisable
	history := a.history
	cursor := a.cursor
	line := string(a.line)
	result := a.result
	a.mu.Unlock()

	a.screen.Clear()
	width, height := a.screen.Size()
	if width <= 0 || height < 4 {
		a.screen.Show()
		return
	}

	auto := "off"
	if autoDisable {
		auto = "on"
	}
	drawText(a.screen, 0, 0, width, styleTitle,
		fmt.Sprintf("Roulette   ctrl+s spin  ctrl+x remove last  ctrl+e toggle  ctrl+t auto-disable [%s]  ctrl+z undo  esc quit", auto))

	wheelWidth := width / 2
	wheelHeight := height - 3
	if frame != nil {
		drawWheel(a.screen, 0, 1, wheelWidth, wheelHeight, frame, glow, glowLevel)
	}

	// option list and recent results to the right of the wheel
	x := wheelWidth + 2
	panel := width - x
	y := 1
	drawText(a.screen, x, y, panel, styleTitle, "Options")
	y++

	colors := map[int]string{}
	if frame != nil {
		enabled := 0
		segments := frame.Segments()
		for i, option := range options {
			if option.Enabled && enabled < len(segments) {
				colors[i] = segments[enabled].Color
				enabled++
			}
		}
	}

	for i, option := range options {
		if y >= height-3-recentLines-1 {
			drawText(a.screen, x, y, panel, styleDim, fmt.Sprintf("…and %d more", len(options)-i))
			y++
			break
		}
		mark := "[ ]"
		if option.Enabled {
			mark = "[x]"
		}
		style := styleText
		if i == cursor {
			style = styleCursor
		}
		if color, ok := colors[i]; ok {
			a.screen.SetContent(x, y, segmentRune, nil, tcell.StyleDefault.Foreground(tcell.GetColor(color)))
		}
		drawText(a.screen, x+2, y, panel-2, style, fmt.Sprintf("%s %s", mark, option.Text))
		y++
	}
	if len(options) == 0 {
		drawText(a.screen, x, y, panel, styleDim, "Type an option and press Enter")
		y++
	}

	y++
	drawText(a.screen, x, y, panel, styleTitle, "Recent")
	y++
	for i, entry := range history {
		if i == recentLines || y >= height-2 {
			break
		}
		drawText(a.screen, x, y, panel, styleDim, fmt.Sprintf("%s  %s", entry.Time, entry.Result))
		y++
	}

	drawText(a.screen, 0, height-2, width, styleText, "> "+line)
	a.screen.SetContent(2+runewidth.StringWidth(line), height-2, ' ', nil, styleCursor)

	status := a.status.Message()
	if status == "" {
		status = result
	}
	drawText(a.screen, 0, height-1, width, styleStatus, status)

	a.screen.Show()
}

// drawWheel rasterises frame into the box at (left, top)
func drawWheel(screen Screen, left, top, width, height int, frame *wheel.Frame, glow int, glowLevel float64) {
	if len(frame.Options) == 0 {
		drawText(screen, left, top+height/2, width, styleDim, "No options enabled")
		return
	}

	disc := Rasterise(frame, width, height)
	if disc.Radius == 0 {
		return
	}

	segments := frame.Segments()
	for y := 0; y < disc.Height; y++ {
		for x := 0; x < disc.Width; x++ {
			index := disc.At(x, y)
			if index < 0 {
				continue
			}
			r := segmentRune
			if index == glow && glowLevel > 0.5 {
				r = glowRune
			}
			style := tcell.StyleDefault.Foreground(tcell.GetColor(segments[index].Color))
			screen.SetContent(left+x, top+y, r, nil, style)
		}
	}

	px, py := disc.Pointer()
	screen.SetContent(left+px, top+py, pointerRune, nil, stylePointer)
}

// drawText writes s from (x, y), clipped to max cells. Wide runes take
// two cells.
func drawText(screen Screen, x, y, max int, style tcell.Style, s string) {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > max {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
}
