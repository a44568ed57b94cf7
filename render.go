package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	labelYes = "<YES>"
	labelNo  = "<NO>"
)

// redraw brings the scroll offsets up to date with the cursor and paints
// the cheapest frame that shows every pending change.
func (e *Editor) redraw() {
	if e.view.setGutter(e.lineNumbers, e.doc.LineCount()) {
		e.invalidate(redrawFull)
	}
	line, _ := e.doc.LineAt(e.doc.cursorLine)
	if e.view.follow(line, e.doc.cursorLine, e.doc.cursorChar) {
		e.invalidate(redrawFull)
	}

	if e.needs == redrawCursor {
		e.drawCursorOnly()
	} else {
		e.draw()
	}
	e.needs = redrawNone
	e.limiter.mark()
}

// drawCursorOnly refreshes the status line and hardware cursor and leaves
// the text region alone.
func (e *Editor) drawCursorOnly() {
	e.drawStatusBar()
	e.placeCursor()
	e.screen.Show()
}

func (e *Editor) draw() {
	e.screen.Clear()
	e.drawLines()
	e.drawStatusBar()
	e.placeCursor()
	e.drawConfirmation()
	e.drawMessage()
	e.screen.Show()
}

// drawLines paints the visible document rows. Tabs are blank runs of
// tabWidth columns.
func (e *Editor) drawLines() {
	v := &e.view
	digits := v.gutter - 1
	for row := 1; row < v.height; row++ {
		lineIdx := v.lineScroll + row - 1
		line, ok := e.doc.LineAt(lineIdx)
		if !ok {
			break
		}
		if v.gutter > 0 {
			num := fmt.Sprintf("%*d", digits, lineIdx+1)
			e.drawText(0, row, num, e.styles.gutter)
		}

		// One cell per code point, matching displayColumn.
		col := v.gutter - v.charScroll
		for _, ch := range line {
			if col >= v.width {
				break
			}
			if ch == '\t' {
				col += v.tabWidth
				continue
			}
			if col >= v.gutter {
				e.screen.SetContent(col, row, ch, nil, e.styles.text)
			}
			col++
		}
	}
}

// drawStatusBar fills row 0: the command line while it is open, otherwise
// the document title and cursor position.
func (e *Editor) drawStatusBar() {
	for x := 0; x < e.view.width; x++ {
		e.screen.SetContent(x, 0, ' ', nil, e.styles.status)
	}

	var status string
	if e.mode == modeCommand {
		status = string([]rune(e.cmdline.Text())[e.commandScroll():])
	} else {
		line, char := e.doc.CursorPosition()
		modified := ""
		if e.doc.IsModified() {
			modified = "~"
		}
		status = fmt.Sprintf("%s%s  [%d,%d]  lines: %d", modified, e.doc.Title(), line+1, char+1, e.doc.LineCount())
	}
	e.drawText(0, 0, status, e.styles.status)
}

// commandScroll is how many leading chars of the command line are hidden so
// its cursor stays on the status row.
func (e *Editor) commandScroll() int {
	if over := e.cmdline.Cursor() - e.view.width + 1; over > 0 {
		return over
	}
	return 0
}

// placeCursor puts the hardware cursor on the command line or, when it is
// visible, on the document cursor.
func (e *Editor) placeCursor() {
	if e.mode == modeCommand {
		e.screen.ShowCursor(e.cmdline.Cursor()-e.commandScroll(), 0)
		return
	}
	line, _ := e.doc.LineAt(e.doc.cursorLine)
	x := e.view.screenColumn(line, e.doc.cursorChar)
	y := e.doc.cursorLine - e.view.lineScroll + 1
	if y >= 1 && y < e.view.height && x >= e.view.gutter && x < e.view.width {
		e.screen.ShowCursor(x, y)
	} else {
		e.screen.HideCursor()
	}
}

// drawMessage shows the oldest queued notification centred on the bottom
// row. Each frame consumes one message.
func (e *Editor) drawMessage() {
	msg, ok := e.nextMessage()
	if !ok {
		return
	}
	x := e.view.width/2 - runewidth.StringWidth(msg)/2
	if x < 0 {
		x = 0
	}
	e.drawText(x, e.view.height-1, msg, e.styles.message)
}

// drawConfirmation paints the pending question as a centred box with the
// selected answer highlighted.
func (e *Editor) drawConfirmation() {
	c := e.pending
	if c == nil {
		return
	}
	boxWidth := runewidth.StringWidth(c.text) + 2
	boxX := e.view.width/2 - boxWidth/2
	boxY := e.view.height/2 - 2
	e.fillRect(boxX, boxY, boxWidth, 5, e.styles.dialog)

	bold := e.styles.dialog.Bold(true)
	e.drawText(boxX+1, boxY+1, c.text, bold)

	yesStyle, noStyle := bold, e.styles.selected.Bold(true)
	if c.yes {
		yesStyle, noStyle = noStyle, yesStyle
	}
	e.drawText(boxX+boxWidth/2-7, boxY+3, labelYes, yesStyle)
	e.drawText(boxX+boxWidth/2+3, boxY+3, labelNo, noStyle)
}

func (e *Editor) fillRect(x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			e.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (e *Editor) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= e.view.width {
			break
		}
		if col >= 0 {
			e.screen.SetContent(col, y, r, nil, style)
		}
		col += runewidth.RuneWidth(r)
	}
}
