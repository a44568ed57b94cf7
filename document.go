package main

// untitledLabel is shown in the status line for documents without a path.
const untitledLabel = "<Untitled>"

// Document is a line-oriented text buffer with a cursor.
//
// Lines are stored as code points. There is always at least one line, and
// the cursor char index may equal the line length (end of line).
type Document struct {
	path       string
	hasPath    bool
	lines      [][]rune
	cursorLine int
	cursorChar int
	modified   bool // content differs from the last successful load/save
}

// NewDocument returns an empty, untitled and unmodified document.
func NewDocument() *Document {
	return &Document{lines: [][]rune{{}}}
}

// NewDocumentWithPath returns an empty document associated with path, so it
// can be saved without naming it again.
func NewDocumentWithPath(path string) *Document {
	d := NewDocument()
	d.SetPath(path)
	return d
}

// documentFromText splits text on '\n'. A trailing newline produces a
// trailing empty line.
func documentFromText(text string) *Document {
	lines := [][]rune{{}}
	for _, ch := range text {
		if ch == '\n' {
			lines = append(lines, []rune{})
			continue
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], ch)
	}
	return &Document{lines: lines}
}

// Reset turns d back into an empty untitled document.
func (d *Document) Reset() {
	*d = *NewDocument()
}

// replace takes over all state of other.
func (d *Document) replace(other *Document) {
	*d = *other
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineAt returns the characters of line i, or false if i is out of range.
// The returned slice must not be modified.
func (d *Document) LineAt(i int) ([]rune, bool) {
	if i < 0 || i >= len(d.lines) {
		return nil, false
	}
	return d.lines[i], true
}

// CursorPosition returns the cursor as (line, char).
func (d *Document) CursorPosition() (int, int) {
	return d.cursorLine, d.cursorChar
}

// Path returns the associated path, if any.
func (d *Document) Path() (string, bool) {
	return d.path, d.hasPath
}

func (d *Document) SetPath(path string) {
	d.path = path
	d.hasPath = true
}

// Title is the path, or a placeholder for untitled documents.
func (d *Document) Title() string {
	if !d.hasPath {
		return untitledLabel
	}
	return d.path
}

func (d *Document) IsModified() bool {
	return d.modified
}

// String joins the lines with '\n'. A loaded file that ended with a newline
// carries an empty last line, so the newline is written back. No extra
// newline is added, so a save followed by a load gives the same lines.
func (d *Document) String() string {
	n := 0
	for _, line := range d.lines {
		n += len(line) + 1
	}
	out := make([]rune, 0, n)
	for i, line := range d.lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, line...)
	}
	return string(out)
}

func (d *Document) currentLineLen() int {
	return len(d.lines[d.cursorLine])
}

// clampChar keeps the char index within the current line.
func (d *Document) clampChar() {
	if n := d.currentLineLen(); d.cursorChar > n {
		d.cursorChar = n
	}
}

func (d *Document) MoveUp() {
	if d.cursorLine == 0 {
		return
	}
	d.cursorLine--
	d.clampChar()
}

func (d *Document) MoveDown() {
	if d.cursorLine >= len(d.lines)-1 {
		return
	}
	d.cursorLine++
	d.clampChar()
}

// MoveLeft wraps to the end of the previous line at line start.
func (d *Document) MoveLeft() {
	if d.cursorChar > 0 {
		d.cursorChar--
		return
	}
	if d.cursorLine > 0 {
		d.MoveUp()
		d.cursorChar = d.currentLineLen()
	}
}

// MoveRight wraps to the start of the next line at line end.
func (d *Document) MoveRight() {
	if d.cursorChar < d.currentLineLen() {
		d.cursorChar++
		return
	}
	if d.cursorLine < len(d.lines)-1 {
		d.MoveDown()
		d.cursorChar = 0
	}
}

// InsertCharacter inserts ch at the cursor and advances past it.
func (d *Document) InsertCharacter(ch rune) {
	line := d.lines[d.cursorLine]
	line = append(line, 0)
	copy(line[d.cursorChar+1:], line[d.cursorChar:])
	line[d.cursorChar] = ch
	d.lines[d.cursorLine] = line
	d.MoveRight()
	d.modified = true
}

// DeleteBackward removes the character before the cursor, or merges the
// current line onto the previous one at line start.
func (d *Document) DeleteBackward() {
	switch {
	case d.cursorChar > 0:
		line := d.lines[d.cursorLine]
		d.lines[d.cursorLine] = append(line[:d.cursorChar-1], line[d.cursorChar:]...)
		d.cursorChar--
	case d.cursorLine > 0:
		prev := d.lines[d.cursorLine-1]
		mergeAt := len(prev)
		d.lines[d.cursorLine-1] = append(prev, d.lines[d.cursorLine]...)
		d.removeLine(d.cursorLine)
		d.cursorLine--
		d.cursorChar = mergeAt
	}
	// Marked even when nothing changed at document start.
	d.modified = true
}

// DeleteForward removes the character under the cursor, or pulls the next
// line up onto the current one at line end.
func (d *Document) DeleteForward() {
	line := d.lines[d.cursorLine]
	switch {
	case d.cursorChar < len(line):
		d.lines[d.cursorLine] = append(line[:d.cursorChar], line[d.cursorChar+1:]...)
	case d.cursorLine < len(d.lines)-1:
		d.lines[d.cursorLine] = append(line, d.lines[d.cursorLine+1]...)
		d.removeLine(d.cursorLine + 1)
	}
	// Marked even when nothing changed at document end.
	d.modified = true
}

// SplitLine breaks the current line at the cursor and moves to the start of
// the new line.
func (d *Document) SplitLine() {
	line := d.lines[d.cursorLine]
	tail := make([]rune, len(line)-d.cursorChar)
	copy(tail, line[d.cursorChar:])
	d.lines[d.cursorLine] = line[:d.cursorChar:d.cursorChar]

	d.lines = append(d.lines, nil)
	copy(d.lines[d.cursorLine+2:], d.lines[d.cursorLine+1:])
	d.lines[d.cursorLine+1] = tail

	d.cursorLine++
	d.cursorChar = 0
	d.modified = true
}

func (d *Document) removeLine(i int) {
	copy(d.lines[i:], d.lines[i+1:])
	d.lines[len(d.lines)-1] = nil
	d.lines = d.lines[:len(d.lines)-1]
}
