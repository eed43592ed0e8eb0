package tracker

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Paragraph tracks a multi-line input. Each line owns a Tracker; the line
// holding the cursor is active and receives composition events.
type Paragraph struct {
	mu     sync.Mutex
	log    *log.Logger
	lines  []*Tracker
	active int
}

func NewParagraph(opts ...Option) *Paragraph {
	o := buildOptions(opts)
	p := &Paragraph{log: o.log}
	p.resize(1)
	return p
}

func (p *Paragraph) OnEvent(ev Event) State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.Kind != EventEdit {
		return p.lines[p.active].OnEvent(ev)
	}

	rows := strings.Split(ev.Buffer, "\n")
	p.resize(len(rows))

	cursor := Locate(ev.Buffer, ev.Cursor)
	next := min(cursor.Line, len(rows)-1)
	if next != p.active {
		// A composition cannot follow the cursor onto another line.
		if p.active < len(p.lines) && p.lines[p.active].Composing() {
			p.log.Debug("closing composition left behind", "line", p.active)
			p.lines[p.active].OnEvent(End())
		}
		p.active = next
	}

	for i, row := range rows {
		col := len([]rune(row))
		if i == p.active {
			col = cursor.Column
		}
		p.lines[i].OnEvent(Edit(row, col))
	}
	return p.lines[p.active].State()
}

// resize keeps one tracker per line. Trackers of removed lines are dropped.
func (p *Paragraph) resize(n int) {
	for len(p.lines) < n {
		p.lines = append(p.lines, New(WithLine(len(p.lines)), WithLogger(p.log)))
	}
	if len(p.lines) > n {
		p.lines = p.lines[:n]
	}
	if p.active >= n {
		p.active = n - 1
	}
}

func (p *Paragraph) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lines[p.active].State()
}

func (p *Paragraph) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

func (p *Paragraph) Line(i int) (*Tracker, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.lines) {
		return nil, false
	}
	return p.lines[i], true
}

func (p *Paragraph) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lines)
}

// Grade grades each target line against the tracker of the same index.
// Lines the user has not reached yet come back entirely unsettled.
func (p *Paragraph) Grade(target string) [][]Mark {
	p.mu.Lock()
	lines := append([]*Tracker(nil), p.lines...)
	p.mu.Unlock()

	rows := strings.Split(target, "\n")
	return lo.Map(rows, func(row string, i int) []Mark {
		if i < len(lines) {
			return lines[i].Grade(row)
		}
		return New().Grade(row)
	})
}

// Matched reports whether every target line is fully matched and nothing
// was typed on extra lines.
func (p *Paragraph) Matched(target string) bool {
	p.mu.Lock()
	lines := append([]*Tracker(nil), p.lines...)
	p.mu.Unlock()

	rows := strings.Split(target, "\n")
	for i, line := range lines {
		if i >= len(rows) {
			if len(Normalize(line.Text())) > 0 {
				return false
			}
			continue
		}
		if !line.Matched(rows[i]) {
			return false
		}
	}
	return len(lines) >= len(rows) || lo.EveryBy(rows[len(lines):], func(row string) bool {
		return len(Normalize(row)) == 0
	})
}
