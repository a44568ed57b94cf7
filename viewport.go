package main

import "strconv"

const defaultTabWidth = 4

// viewport is the visible window onto the document. Row 0 of the screen is
// the status line, so text uses rows 1..height-1.
type viewport struct {
	width, height int
	lineScroll    int // first document line shown
	charScroll    int // display columns hidden on the left
	tabWidth      int
	gutter        int // columns left of the text, used by line numbers
}

// textRows is the number of rows available for document lines.
func (v *viewport) textRows() int {
	if v.height < 2 {
		return 1
	}
	return v.height - 1
}

// displayColumn is the column of char index upto within line. Every tab
// counts as tabWidth columns regardless of where it sits.
func displayColumn(line []rune, upto, tabWidth int) int {
	col := 0
	for i := 0; i < upto && i < len(line); i++ {
		if line[i] == '\t' {
			col += tabWidth
		} else {
			col++
		}
	}
	return col
}

// screenColumn maps a char index of line to a screen x coordinate.
func (v *viewport) screenColumn(line []rune, char int) int {
	return v.gutter + displayColumn(line, char, v.tabWidth) - v.charScroll
}

// follow scrolls until the cursor is visible and reports whether any offset
// changed. Vertical correction moves one row at a time.
func (v *viewport) follow(line []rune, cursorLine, cursorChar int) bool {
	changed := false
	for cursorLine < v.lineScroll {
		v.lineScroll--
		changed = true
	}
	for cursorLine > v.lineScroll+v.textRows()-1 {
		v.lineScroll++
		changed = true
	}

	col := v.screenColumn(line, cursorChar)
	if col < v.gutter && v.charScroll != 0 {
		v.charScroll = 0
		changed = true
		col = v.screenColumn(line, cursorChar)
	}
	if col >= v.width && v.width > v.gutter {
		v.charScroll += col - v.width + 1
		changed = true
	}
	return changed
}

// setGutter sizes the line number column for lineCount lines, or removes it.
// It reports whether the width changed.
func (v *viewport) setGutter(enabled bool, lineCount int) bool {
	g := 0
	if enabled {
		g = gutterWidth(lineCount)
	}
	if g == v.gutter {
		return false
	}
	v.gutter = g
	return true
}

// gutterWidth is the digit count of lineCount plus one blank column.
func gutterWidth(lineCount int) int {
	return len(strconv.Itoa(lineCount)) + 1
}
