package main

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// editMode selects which buffer receives editing keys.
type editMode int

const (
	modeDocument editMode = iota
	modeCommand
)

// redrawLevel is the cheapest repaint that shows all pending changes.
type redrawLevel int

const (
	redrawNone redrawLevel = iota
	redrawCursor
	redrawFull
)

// Editor is the session state owned by the run loop.
type Editor struct {
	screen tcell.Screen
	fs     FileSystem
	log    *slog.Logger

	doc     *Document
	cmdline *CommandLine
	mode    editMode
	pending *Confirmation // non-nil captures all key input
	// messages are shown one per frame, oldest first
	messages []string

	view        viewport
	lineNumbers bool
	styles      styles
	limiter     frameLimiter
	needs       redrawLevel
	running     bool
}

func NewEditor(screen tcell.Screen, doc *Document, cfg Config, fs FileSystem, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = discardLogger()
	}
	width, height := screen.Size()
	e := &Editor{
		screen:      screen,
		fs:          fs,
		log:         logger,
		doc:         doc,
		cmdline:     newCommandLine(),
		mode:        modeDocument,
		lineNumbers: cfg.LineNumbers,
		styles:      cfg.styles(),
		limiter:     newFrameLimiter(cfg.FrameInterval.Duration, !cfg.Throttle),
		running:     true,
		view: viewport{
			width:    width,
			height:   height,
			tabWidth: cfg.TabWidth,
		},
	}
	e.view.setGutter(e.lineNumbers, doc.LineCount())
	return e
}

// active returns the buffer editing keys apply to in the current mode.
func (e *Editor) active() lineEditor {
	if e.mode == modeCommand {
		return e.cmdline
	}
	return e.doc
}

// invalidate raises the pending redraw to at least level.
func (e *Editor) invalidate(level redrawLevel) {
	if level > e.needs {
		e.needs = level
	}
}

// notify queues a one-line message for the bottom row.
func (e *Editor) notify(message string) {
	e.log.Debug("notify", "message", message)
	e.messages = append(e.messages, message)
	e.invalidate(redrawFull)
}

// nextMessage pops the oldest queued message.
func (e *Editor) nextMessage() (string, bool) {
	if len(e.messages) == 0 {
		return "", false
	}
	msg := e.messages[0]
	e.messages = e.messages[1:]
	return msg, true
}

func (e *Editor) handleResize(width, height int) {
	e.view.width, e.view.height = width, height
	e.log.Debug("resize", "width", width, "height", height)
}
