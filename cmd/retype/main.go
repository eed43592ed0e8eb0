package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"retype/internal/config"
	"retype/internal/drill"
	"retype/internal/ime"
	"retype/internal/layout"
	"retype/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "retype: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath   string
	layout       string
	customLayout string
	passages     string
	passage      string
	logLevel     string
	logFile      string
	noPreview    bool
	listLayouts  bool
	listPassages bool
	convert      bool
}

func parseFlags(args []string) (*options, *ff.FlagSet, error) {
	opts := &options{}
	fs := ff.NewFlagSet("retype")
	fs.StringVar(&opts.configPath, 'c', "config", config.DefaultPath(), "INI configuration file")
	fs.StringVar(&opts.layout, 'l', "layout", "", fmt.Sprintf("keyboard layout (%s)", strings.Join(layout.AvailableLayouts(), ", ")))
	fs.StringVar(&opts.customLayout, 0, "custom-layout", "", "TOML file with key overrides")
	fs.StringVar(&opts.passages, 'p', "passages", "", "TOML passage book (bundled passages when empty)")
	fs.StringVar(&opts.passage, 0, "passage", "", "title of the passage to start with")
	fs.StringVar(&opts.logLevel, 0, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&opts.logFile, 0, "log-file", "", "write logs to this file instead of stderr")
	fs.BoolVar(&opts.noPreview, 0, "no-preview", "do not color the syllable under composition")
	fs.BoolVar(&opts.listLayouts, 0, "list-layouts", "print available layouts and exit")
	fs.BoolVar(&opts.listPassages, 0, "list-passages", "print passage titles and exit")
	fs.BoolVar(&opts.convert, 0, "convert", "convert key sequences read from stdin to Hangul and exit")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("RETYPE")); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

func run(args []string) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	merge(&cfg, opts)

	logWriter, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFile == "" && level < log.WarnLevel {
		// The drill owns the terminal.
		level = log.WarnLevel
	}
	log.SetLevel(level)
	lg := logger.NewWithWriter(logWriter, "retype", level)

	if opts.listLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	book, err := drill.LoadBook(cfg.Passages)
	if err != nil {
		return err
	}
	if opts.listPassages {
		for _, title := range book.Titles() {
			fmt.Println(title)
		}
		return nil
	}

	lay, err := loadLayout(cfg.Layout, cfg.CustomLayout)
	if err != nil {
		return err
	}

	if opts.convert {
		return convert(os.Stdin, os.Stdout, lay)
	}

	start := 0
	if cfg.Passage != "" {
		idx := indexOf(book, cfg.Passage)
		if idx < 0 {
			return fmt.Errorf("no passage titled %q", cfg.Passage)
		}
		start = idx
	}

	lg.Debug("starting drill", "layout", lay.Name(), "passages", len(book.Passages))
	return runDrill(book, start, cfg, lg)
}

// merge lets flags and RETYPE_ variables override the file.
func merge(cfg *config.Config, opts *options) {
	if opts.layout != "" {
		cfg.Layout = opts.layout
	}
	if opts.customLayout != "" {
		cfg.CustomLayout = opts.customLayout
	}
	if opts.passages != "" {
		cfg.Passages = opts.passages
	}
	if opts.passage != "" {
		cfg.Passage = opts.passage
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.noPreview {
		cfg.ShowPreview = false
	}
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func loadLayout(name, custom string) (*layout.Layout, error) {
	lay, err := layout.Load(name)
	if err != nil {
		return nil, err
	}
	if custom == "" {
		return lay, nil
	}
	pairs, err := layout.LoadCustomPairs(custom)
	if err != nil {
		return nil, err
	}
	if err := layout.ApplyCustomPairs(lay, pairs); err != nil {
		return nil, err
	}
	return lay, nil
}

func convert(r io.Reader, w io.Writer, lay *layout.Layout) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(w)
	defer writer.Flush()

	for scanner.Scan() {
		if _, err := writer.WriteString(ime.Convert(lay, scanner.Text())); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func indexOf(book *drill.Book, title string) int {
	want, ok := book.Find(title)
	if !ok {
		return -1
	}
	for i, p := range book.Passages {
		if p.Title == want.Title {
			return i
		}
	}
	return -1
}
