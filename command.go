package main

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput is returned for a blank command line.
var ErrEmptyInput = errors.New("no input")

// UsageError reports a command invoked without a required argument.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// UnknownCommandError reports a command name that is not recognised.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Name
}

// execute closes the command line and runs command. Failures become a
// single notification; nothing here stops the session.
func (e *Editor) execute(command string) {
	e.cmdline.Clear()
	e.mode = modeDocument
	e.report(e.interpret(command))
}

// interpret runs one command line. Destructive commands raise a
// confirmation instead of acting when they would lose work.
func (e *Editor) interpret(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ErrEmptyInput
	}
	name, args := fields[0], fields[1:]
	e.log.Info("command", "name", name, "args", args)

	switch name {
	case "new":
		if e.doc.IsModified() {
			e.raiseConfirmation(discardAndNew{})
			return nil
		}
		e.doc.Reset()
		return nil

	case "open":
		if len(args) == 0 {
			return &UsageError{Usage: "open <file>"}
		}
		if e.doc.IsModified() {
			e.raiseConfirmation(discardAndOpen{path: args[0]})
			return nil
		}
		return e.openDocument(args[0])

	case "save":
		if len(args) == 0 {
			if err := e.doc.Save(e.fs); err != nil {
				return err
			}
			e.notify("saved")
			return nil
		}
		target := args[0]
		// Only a different, existing file needs confirming.
		if current, ok := e.doc.Path(); (!ok || current != target) && e.fs.Exists(target) {
			e.raiseConfirmation(overwriteAndSave{path: target})
			return nil
		}
		return e.saveDocumentTo(target)

	case "quit":
		if e.doc.IsModified() {
			e.raiseConfirmation(discardAndQuit{})
			return nil
		}
		e.running = false
		return nil
	}
	return &UnknownCommandError{Name: name}
}

func (e *Editor) openDocument(path string) error {
	if err := e.doc.Open(e.fs, path); err != nil {
		return err
	}
	e.notify("opened")
	return nil
}

// saveDocumentTo writes to path and adopts it as the document path.
func (e *Editor) saveDocumentTo(path string) error {
	if err := e.doc.SaveTo(e.fs, path); err != nil {
		return err
	}
	e.doc.SetPath(path)
	e.notify("saved")
	return nil
}

// saveDocumentCopy writes to path and keeps the document's own path.
func (e *Editor) saveDocumentCopy(path string) error {
	if err := e.doc.SaveTo(e.fs, path); err != nil {
		return err
	}
	e.notify("saved")
	return nil
}

// report turns a command failure into a notification.
func (e *Editor) report(err error) {
	if err == nil {
		return
	}
	e.log.Warn("command failed", "error", err)
	e.notify(fmt.Sprintf("error: %v", err))
}
