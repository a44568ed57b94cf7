package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

type options struct {
	configPath  string
	logPath     string
	logLevel    string
	noThrottle  bool
	lineNumbers bool
	args        []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cedit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", defaultConfigPath(), "path to the TOML config file")
	fs.StringVar(&opts.logPath, "log", "", "write logs to this file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&opts.noThrottle, "no-throttle", false, "redraw on every key press")
	fs.BoolVar(&opts.lineNumbers, "line-numbers", false, "show line numbers")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cedit [flags] [file]\n")
		fmt.Fprintf(stderr, "\nA minimal terminal text editor.\n")
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Esc     Toggle the command line\n")
		fmt.Fprintf(stderr, "  Ctrl+N  New document\n")
		fmt.Fprintf(stderr, "  Ctrl+O  Open a file (prompts)\n")
		fmt.Fprintf(stderr, "  Ctrl+S  Save\n")
		fmt.Fprintf(stderr, "  Ctrl+W  Save as (prompts)\n")
		fmt.Fprintf(stderr, "  Ctrl+Q  Quit\n")
		fmt.Fprintf(stderr, "\nCommands: new, open <file>, save [file], quit\n")
		fmt.Fprintf(stderr, "\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.args = fs.Args()
	return opts, nil
}

// resolveConfig applies command line overrides to the file config.
func (o options) resolveConfig(cfg Config) Config {
	if o.logPath != "" {
		cfg.Log.File = o.logPath
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.noThrottle {
		cfg.Throttle = false
	}
	if o.lineNumbers {
		cfg.LineNumbers = true
	}
	return cfg
}

// initialDocument picks the starting document: untitled with no argument,
// an empty document bound to the path if it does not exist yet, otherwise
// the loaded file.
func initialDocument(fs FileSystem, args []string) (*Document, error) {
	if len(args) == 0 {
		return NewDocument(), nil
	}
	path := args[0]
	if !fs.Exists(path) {
		return NewDocumentWithPath(path), nil
	}
	doc, err := LoadDocument(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not open specified file: %w", err)
	}
	return doc, nil
}

func run(args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	fileCfg, unknown, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg := opts.resolveConfig(fileCfg)

	logger, logFile, err := newLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	for _, key := range unknown {
		logger.Warn("unknown config key", "key", key, "path", opts.configPath)
	}

	fsys := osFS{}
	doc, err := initialDocument(fsys, opts.args)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	editor := NewEditor(screen, doc, cfg, fsys, logger)
	logger.Info("start", "title", doc.Title(), "lines", doc.LineCount())

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	editor.run(events)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
