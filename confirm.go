package main

import "github.com/gdamore/tcell/v2"

const (
	promptUnsaved = "unsaved changes! continue?"
	promptExists  = "file already exists! continue?"
)

// deferredAction is an operation held back until the user confirms it.
// The set of implementations is closed; see (*Editor).applyDeferred.
type deferredAction interface {
	prompt() string
}

type discardAndNew struct{}

type discardAndOpen struct{ path string }

type overwriteAndSave struct{ path string }

type discardAndQuit struct{}

func (discardAndNew) prompt() string    { return promptUnsaved }
func (discardAndOpen) prompt() string   { return promptUnsaved }
func (overwriteAndSave) prompt() string { return promptExists }
func (discardAndQuit) prompt() string   { return promptUnsaved }

// Confirmation is a pending yes/no question guarding a deferred action.
type Confirmation struct {
	text   string
	action deferredAction
	yes    bool // current selection, starts at no
}

func newConfirmation(action deferredAction) *Confirmation {
	return &Confirmation{text: action.prompt(), action: action}
}

// confirmResult is what the gate decided for one key press.
type confirmResult int

const (
	confirmPending confirmResult = iota
	confirmAccepted
	confirmRejected
)

// handleKey toggles the selection on Left/Right and resolves on Enter.
// Other keys are swallowed.
func (c *Confirmation) handleKey(ev *tcell.EventKey) confirmResult {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight:
		c.yes = !c.yes
	case tcell.KeyEnter:
		if c.yes {
			return confirmAccepted
		}
		return confirmRejected
	}
	return confirmPending
}

// raiseConfirmation installs a new question with "no" selected. Input is
// captured until it is answered.
func (e *Editor) raiseConfirmation(action deferredAction) {
	e.pending = newConfirmation(action)
	e.log.Debug("confirmation raised", "prompt", e.pending.text)
}

// confirmKey routes a key to the pending confirmation and applies its action
// once accepted. The mode that was active before is left as it was.
func (e *Editor) confirmKey(ev *tcell.EventKey) {
	c := e.pending
	switch c.handleKey(ev) {
	case confirmPending:
		return
	case confirmAccepted:
		e.pending = nil
		e.applyDeferred(c.action)
	case confirmRejected:
		e.pending = nil
	}
	e.log.Debug("confirmation resolved", "yes", c.yes)
}

func (e *Editor) applyDeferred(action deferredAction) {
	switch a := action.(type) {
	case discardAndNew:
		e.doc.Reset()
	case discardAndOpen:
		e.report(e.openDocument(a.path))
	case overwriteAndSave:
		e.report(e.saveDocumentCopy(a.path))
	case discardAndQuit:
		e.running = false
	default:
		panic("unhandled deferred action")
	}
}
