package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteKey(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		mode editMode
		want action
	}{
		{"ctrl-n", keyEvent(tcell.KeyCtrlN), modeDocument, action{kind: actNew}},
		{"ctrl-o in command", keyEvent(tcell.KeyCtrlO), modeCommand, action{kind: actOpenPrompt}},
		{"ctrl-s", keyEvent(tcell.KeyCtrlS), modeDocument, action{kind: actSave}},
		{"ctrl-w", keyEvent(tcell.KeyCtrlW), modeDocument, action{kind: actSaveAsPrompt}},
		{"ctrl-q in command", keyEvent(tcell.KeyCtrlQ), modeCommand, action{kind: actQuit}},
		{"escape", keyEvent(tcell.KeyEscape), modeDocument, action{kind: actToggleMode}},
		{"up", keyEvent(tcell.KeyUp), modeDocument, action{kind: actUp}},
		{"up in command", keyEvent(tcell.KeyUp), modeCommand, action{}},
		{"down in command", keyEvent(tcell.KeyDown), modeCommand, action{}},
		{"left in command", keyEvent(tcell.KeyLeft), modeCommand, action{kind: actLeft}},
		{"right", keyEvent(tcell.KeyRight), modeDocument, action{kind: actRight}},
		{"backspace", keyEvent(tcell.KeyBackspace), modeDocument, action{kind: actDeleteBackward}},
		{"backspace2", keyEvent(tcell.KeyBackspace2), modeCommand, action{kind: actDeleteBackward}},
		{"delete", keyEvent(tcell.KeyDelete), modeDocument, action{kind: actDeleteForward}},
		{"tab", keyEvent(tcell.KeyTab), modeDocument, action{kind: actInsert, ch: '\t'}},
		{"tab in command", keyEvent(tcell.KeyTab), modeCommand, action{}},
		{"enter", keyEvent(tcell.KeyEnter), modeDocument, action{kind: actSplitLine}},
		{"enter in command", keyEvent(tcell.KeyEnter), modeCommand, action{kind: actSubmit}},
		{"space", runeEvent(' '), modeCommand, action{kind: actInsert, ch: ' '}},
		{"letter", runeEvent('é'), modeDocument, action{kind: actInsert, ch: 'é'}},
		{"unhandled control", keyEvent(tcell.KeyCtrlB), modeDocument, action{}},
		{"function key", keyEvent(tcell.KeyF5), modeDocument, action{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, routeKey(tc.ev, tc.mode))
		})
	}
}

func TestEscapeTogglesAndClearsCommandLine(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)

	press(e, tcell.KeyEscape)
	assert.Equal(t, modeCommand, e.mode)
	typeText(e, "sav")
	assert.Equal(t, "sav", e.cmdline.Text())
	assert.Equal(t, []string{""}, docLines(e.doc))

	press(e, tcell.KeyEscape)
	assert.Equal(t, modeDocument, e.mode)
	assert.Equal(t, "", e.cmdline.Text())
}

func TestCommandLineEditing(t *testing.T) {
	e, _, _ := newTestEditor(t, documentFromText("a\nb"))
	press(e, tcell.KeyEscape)
	typeText(e, "ab")
	press(e, tcell.KeyLeft, tcell.KeyBackspace2)
	typeText(e, "x")
	press(e, tcell.KeyTab, tcell.KeyUp, tcell.KeyDown, tcell.KeyRight, tcell.KeyDelete)

	assert.Equal(t, "xb", e.cmdline.Text())
	assert.Equal(t, 2, e.cmdline.Cursor())
	assert.Equal(t, [2]int{0, 0}, cursorOf(e.doc), "document cursor untouched")
}

func TestShortcutsPresetCommandLine(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)

	press(e, tcell.KeyCtrlO)
	assert.Equal(t, modeCommand, e.mode)
	assert.Equal(t, "open ", e.cmdline.Text())
	assert.Equal(t, 5, e.cmdline.Cursor())

	press(e, tcell.KeyCtrlW)
	assert.Equal(t, "save ", e.cmdline.Text())
}

func TestSubmitCommandLine(t *testing.T) {
	e, _, mfs := newTestEditor(t, nil)
	typeText(e, "body")

	press(e, tcell.KeyCtrlW)
	typeText(e, "out.txt")
	press(e, tcell.KeyEnter)

	assert.Equal(t, modeDocument, e.mode)
	assert.Equal(t, "body", string(mfs.files["out.txt"]))
	assert.Equal(t, "out.txt", e.doc.Title())
	assert.Equal(t, []string{"body"}, docLines(e.doc), "enter did not split a document line")
}

func TestCtrlSSaves(t *testing.T) {
	e, _, mfs := newTestEditor(t, NewDocumentWithPath("p.txt"))
	typeText(e, "hey")
	press(e, tcell.KeyCtrlS)
	assert.Equal(t, "hey", string(mfs.files["p.txt"]))
	assert.False(t, e.doc.IsModified())
}

func TestTabInsertsLiteralTab(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)
	press(e, tcell.KeyTab)
	typeText(e, "x")
	assert.Equal(t, []string{"\tx"}, docLines(e.doc))
}

func TestBackspaceScenario(t *testing.T) {
	doc := documentFromText("abc")
	doc.cursorChar = 3
	e, _, _ := newTestEditor(t, doc)

	press(e, tcell.KeyBackspace2, tcell.KeyBackspace2, tcell.KeyBackspace2)
	assert.Equal(t, []string{""}, docLines(e.doc))
	assert.Equal(t, [2]int{0, 0}, cursorOf(e.doc))

	e.doc.modified = false
	press(e, tcell.KeyBackspace2)
	assert.Equal(t, []string{""}, docLines(e.doc))
	assert.True(t, e.doc.IsModified())
}

func TestRedrawLevels(t *testing.T) {
	e, _, _ := newTestEditor(t, documentFromText("ab\ncd"))

	e.handleKey(keyEvent(tcell.KeyRight))
	assert.Equal(t, redrawCursor, e.needs)

	e.handleKey(runeEvent('x'))
	assert.Equal(t, redrawFull, e.needs, "edits escalate")

	e.needs = redrawNone
	e.handleKey(keyEvent(tcell.KeyF5))
	assert.Equal(t, redrawNone, e.needs, "ignored keys need no frame")

	e.handleKey(keyEvent(tcell.KeyEscape))
	assert.Equal(t, redrawFull, e.needs, "mode change repaints")
}

func TestThrottledKeyIsFlushedOnIdle(t *testing.T) {
	e, _, _ := newTestEditor(t, documentFromText("abc"))
	clock := time.Unix(100, 0)
	e.limiter = newFrameLimiter(20*time.Millisecond, false)
	e.limiter.now = func() time.Time { return clock }
	e.redraw()

	e.handleEvent(runeEvent('x'))
	assert.True(t, e.limiter.pending)
	assert.Equal(t, redrawFull, e.needs)

	e.handleEvent(nil)
	assert.True(t, e.limiter.pending, "not due yet")

	clock = clock.Add(20 * time.Millisecond)
	e.handleEvent(nil)
	assert.False(t, e.limiter.pending)
	assert.Equal(t, redrawNone, e.needs)
}

func TestPollTimesOutForPendingRedraw(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)
	e.limiter = newFrameLimiter(time.Millisecond, false)
	e.limiter.mark()
	e.limiter.skip()

	events := make(chan tcell.Event)
	ev, ok := e.poll(events)
	assert.True(t, ok)
	assert.Nil(t, ev)
}

func TestRunExitsOnQuit(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)
	events := make(chan tcell.Event, 4)
	events <- runeEvent('a')
	events <- keyEvent(tcell.KeyCtrlQ)
	events <- keyEvent(tcell.KeyRight)
	events <- keyEvent(tcell.KeyEnter)

	done := make(chan struct{})
	go func() {
		e.run(events)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
	assert.False(t, e.running)
	require.Equal(t, []string{"a"}, docLines(e.doc))
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	e, _, _ := newTestEditor(t, nil)
	events := make(chan tcell.Event)
	close(events)
	e.run(events)
	assert.True(t, e.running)
}
