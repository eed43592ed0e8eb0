package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/eiannone/keyboard"

	"retype/internal/config"
	"retype/internal/drill"
	"retype/internal/render"
)

const clearScreen = "\x1b[H\x1b[2J"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

type drillLoop struct {
	book     *drill.Book
	index    int
	cfg      config.Config
	log      *log.Logger
	renderer *render.Renderer
	session  *drill.Session
	out      io.Writer
}

func runDrill(book *drill.Book, start int, cfg config.Config, lg *log.Logger) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer func() { _ = keyboard.Close() }()

	d := &drillLoop{
		book:     book,
		index:    start,
		cfg:      cfg,
		log:      lg,
		renderer: render.New(render.WithPreview(cfg.ShowPreview)),
		out:      os.Stdout,
	}
	if err := d.open(start); err != nil {
		return err
	}

	for {
		d.draw()
		ch, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if !d.handle(ch, key) {
			fmt.Fprint(d.out, "\r\n")
			return nil
		}
	}
}

func (d *drillLoop) open(i int) error {
	p := d.book.At(i)
	name := d.cfg.Layout
	if p.Layout != "" {
		name = p.Layout
	}
	lay, err := loadLayout(name, d.cfg.CustomLayout)
	if err != nil {
		return fmt.Errorf("passage %q: %w", p.Title, err)
	}
	d.index = i
	d.session = drill.NewSession(p, lay, drill.WithLogger(d.log))
	d.log.Debug("opened passage", "title", p.Title, "layout", lay.Name())
	return nil
}

// handle applies one key and reports false when the user quits.
func (d *drillLoop) handle(ch rune, key keyboard.Key) bool {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return false
	case keyboard.KeyTab:
		d.next()
		return true
	}
	if d.session.Done() {
		d.next()
		return true
	}

	switch key {
	case keyboard.KeyEnter:
		d.session.Enter()
	case keyboard.KeySpace:
		d.session.Space()
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		d.session.Backspace()
	default:
		if ch != 0 && !d.session.Key(ch) {
			d.log.Debug("unmapped key", "rune", string(ch))
		}
	}
	return true
}

func (d *drillLoop) next() {
	if err := d.open(d.index + 1); err != nil {
		d.log.Error("cannot open next passage", "err", err)
	}
}

func (d *drillLoop) draw() {
	s := d.session
	p := s.Passage()
	progress := s.Progress()

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d/%d)", p.Title, d.index%len(d.book.Passages)+1, len(d.book.Passages))))
	b.WriteString("\n\n")
	b.WriteString(d.renderer.Paragraph(p.Target(), s.Grades(), s.State(), s.Preview()))
	b.WriteString("\n\n")
	b.WriteString(inputStyle.Render(s.Text()))
	b.WriteString("\n\n")
	b.WriteString(d.renderer.Status(progress.Summary, progress.Elapsed))
	b.WriteString("\n")
	if progress.Done {
		b.WriteString(doneStyle.Render("done! any key for the next passage"))
	} else {
		b.WriteString(helpStyle.Render("tab: skip · esc: quit"))
	}
	// Raw mode leaves output post-processing off.
	fmt.Fprint(d.out, strings.ReplaceAll(b.String(), "\n", "\r\n"))
}
