package main

import "strings"

// lineEditor is the editing surface shared by the document and the command
// line.
type lineEditor interface {
	MoveLeft()
	MoveRight()
	InsertCharacter(ch rune)
	DeleteBackward()
	DeleteForward()
}

// CommandLine is a single-line view over a Document. It exposes no vertical
// motion and no line splitting, so the buffer never grows past one line.
type CommandLine struct {
	buf *Document
}

func newCommandLine() *CommandLine {
	return &CommandLine{buf: NewDocument()}
}

func (c *CommandLine) MoveLeft()               { c.buf.MoveLeft() }
func (c *CommandLine) MoveRight()              { c.buf.MoveRight() }
func (c *CommandLine) InsertCharacter(ch rune) { c.buf.InsertCharacter(ch) }
func (c *CommandLine) DeleteBackward()         { c.buf.DeleteBackward() }
func (c *CommandLine) DeleteForward()          { c.buf.DeleteForward() }

// Clear empties the command line.
func (c *CommandLine) Clear() {
	c.buf.Reset()
}

// Preset replaces the contents with text and puts the cursor after it.
func (c *CommandLine) Preset(text string) {
	c.Clear()
	for _, ch := range text {
		c.buf.InsertCharacter(ch)
	}
}

func (c *CommandLine) Text() string {
	return c.buf.String()
}

// Cursor is the char index of the cursor within the line.
func (c *CommandLine) Cursor() int {
	_, ch := c.buf.CursorPosition()
	return ch
}

// Trimmed is the text with surrounding whitespace removed.
func (c *CommandLine) Trimmed() string {
	return strings.TrimSpace(c.Text())
}
