package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// actionKind is what a key press means in the current mode.
type actionKind int

const (
	actNone actionKind = iota
	actNew
	actOpenPrompt
	actSave
	actSaveAsPrompt
	actQuit
	actToggleMode
	actUp
	actDown
	actLeft
	actRight
	actDeleteBackward
	actDeleteForward
	actSplitLine
	actSubmit
	actInsert
)

type action struct {
	kind actionKind
	ch   rune // for actInsert
}

// routeKey classifies a key press. It does not look at or change any state
// besides the mode it is given.
func routeKey(ev *tcell.EventKey, mode editMode) action {
	inCommand := mode == modeCommand

	switch ev.Key() {
	// Shortcuts work in both modes.
	case tcell.KeyCtrlN:
		return action{kind: actNew}
	case tcell.KeyCtrlO:
		return action{kind: actOpenPrompt}
	case tcell.KeyCtrlS:
		return action{kind: actSave}
	case tcell.KeyCtrlW:
		return action{kind: actSaveAsPrompt}
	case tcell.KeyCtrlQ:
		return action{kind: actQuit}

	case tcell.KeyEscape:
		return action{kind: actToggleMode}

	case tcell.KeyUp:
		if inCommand {
			return action{}
		}
		return action{kind: actUp}
	case tcell.KeyDown:
		if inCommand {
			return action{}
		}
		return action{kind: actDown}
	case tcell.KeyLeft:
		return action{kind: actLeft}
	case tcell.KeyRight:
		return action{kind: actRight}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return action{kind: actDeleteBackward}
	case tcell.KeyDelete:
		return action{kind: actDeleteForward}
	case tcell.KeyTab:
		if inCommand {
			return action{}
		}
		return action{kind: actInsert, ch: '\t'}
	case tcell.KeyEnter:
		if inCommand {
			return action{kind: actSubmit}
		}
		return action{kind: actSplitLine}

	case tcell.KeyRune:
		if r := ev.Rune(); !unicode.IsControl(r) {
			return action{kind: actInsert, ch: r}
		}
	}
	return action{}
}

// handleKey applies one key press to the session.
func (e *Editor) handleKey(ev *tcell.EventKey) {
	if e.pending != nil {
		e.confirmKey(ev)
		e.invalidate(redrawFull)
		return
	}

	act := routeKey(ev, e.mode)
	switch act.kind {
	case actNone:
		return
	case actNew:
		e.execute("new")
	case actOpenPrompt:
		e.openCommandLine("open ")
	case actSave:
		e.execute("save")
	case actSaveAsPrompt:
		e.openCommandLine("save ")
	case actQuit:
		e.execute("quit")
	case actSubmit:
		e.execute(e.cmdline.Trimmed())

	case actToggleMode:
		if e.mode == modeCommand {
			e.cmdline.Clear()
			e.mode = modeDocument
		} else {
			e.mode = modeCommand
		}

	case actUp:
		e.doc.MoveUp()
		e.invalidate(redrawCursor)
		return
	case actDown:
		e.doc.MoveDown()
		e.invalidate(redrawCursor)
		return
	case actLeft:
		e.active().MoveLeft()
		e.invalidate(redrawCursor)
		return
	case actRight:
		e.active().MoveRight()
		e.invalidate(redrawCursor)
		return

	case actDeleteBackward:
		e.active().DeleteBackward()
	case actDeleteForward:
		e.active().DeleteForward()
	case actSplitLine:
		e.doc.SplitLine()
	case actInsert:
		e.active().InsertCharacter(act.ch)
	}
	e.invalidate(redrawFull)
}

// openCommandLine switches to command mode with text already typed.
func (e *Editor) openCommandLine(text string) {
	e.mode = modeCommand
	e.cmdline.Preset(text)
}

// handleEvent processes one event from the terminal. A nil event is an
// idle tick.
func (e *Editor) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.handleKey(ev)
		e.redrawAfterKey()
	case *tcell.EventResize:
		e.handleResize(ev.Size())
		e.screen.Sync()
		e.invalidate(redrawFull)
		e.redraw()
	case *tcell.EventError:
		e.log.Warn("terminal error", "error", ev)
	case nil:
		if e.limiter.due() {
			e.redraw()
		}
	}
}

// redrawAfterKey paints after a key press unless the frame limit says to
// wait, in which case the loop flushes it later.
func (e *Editor) redrawAfterKey() {
	if e.needs == redrawNone {
		return
	}
	if !e.limiter.ready() {
		e.limiter.skip()
		return
	}
	e.redraw()
}

// poll waits for the next event. While a redraw is held back it returns nil
// once that redraw is due. ok is false when the event source has closed.
func (e *Editor) poll(events <-chan tcell.Event) (ev tcell.Event, ok bool) {
	wait, timed := e.limiter.wait()
	if !timed {
		ev, ok = <-events
		return ev, ok
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case ev, ok = <-events:
		return ev, ok
	case <-timer.C:
		return nil, true
	}
}

// run draws the first frame and processes events until quit. The loop only
// checks for quit between events.
func (e *Editor) run(events <-chan tcell.Event) {
	e.redraw()
	for e.running {
		ev, ok := e.poll(events)
		if !ok {
			e.log.Warn("event source closed")
			return
		}
		e.handleEvent(ev)
	}
	e.log.Info("quit")
}
