// Package tracker follows input-method composition on an editable line and
// decides which typed characters are settled enough to grade.
package tracker

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"retype/internal/logger"
	"retype/internal/match"
)

type options struct {
	log  *log.Logger
	line int
}

type Option func(*options)

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithLine sets the line index reported in hints.
func WithLine(line int) Option {
	return func(o *options) { o.line = line }
}

func buildOptions(opts []Option) options {
	o := options{log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tracker is the composition state of one line. It is Idle or Composing;
// settled only moves on composition end or on edits made while idle.
type Tracker struct {
	mu        sync.Mutex
	log       *log.Logger
	line      int
	raw       string
	composing bool
	settled   int
}

func New(opts ...Option) *Tracker {
	o := buildOptions(opts)
	return &Tracker{log: o.log, line: o.line}
}

// OnEvent applies ev and returns the resulting state. Events are serialized.
func (t *Tracker) OnEvent(ev Event) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case EventCompositionStart:
		t.composing = true
		t.log.Debug("composition start", "line", t.line, "settled", t.settled)
	case EventCompositionEnd:
		t.composing = false
		t.settled = len(Normalize(t.raw))
		t.log.Debug("composition end", "line", t.line, "settled", t.settled)
	case EventEdit:
		t.raw = ev.Buffer
		if !t.composing {
			t.settled = len(Normalize(t.raw))
		}
	default:
		t.log.Warn("ignoring unknown event", "kind", ev.Kind)
	}
	return t.stateLocked()
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Tracker) stateLocked() State {
	return State{
		Settled:     t.settled,
		Hint:        Position{Line: t.line, Column: t.settled},
		HintVisible: !t.composing,
		Composing:   t.composing,
	}
}

func (t *Tracker) Composing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.composing
}

// Text returns the raw buffer, spaces and unsettled characters included.
func (t *Tracker) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.raw
}

// Mark is the grading of one normalized position. Verdict is only
// meaningful when Settled is true; other positions render as not yet typed.
type Mark struct {
	Typed   rune
	Target  rune
	Verdict match.Verdict
	Settled bool
}

// Grade classifies every settled position against target. The result covers
// the whole target, plus any settled characters typed past its end.
func (t *Tracker) Grade(target string) []Mark {
	t.mu.Lock()
	typed := Normalize(t.raw)
	settled := min(t.settled, len(typed))
	t.mu.Unlock()

	want := Normalize(target)
	marks := make([]Mark, max(len(want), settled))
	for i := range marks {
		m := Mark{Target: at(want, i)}
		if i < len(typed) {
			m.Typed = typed[i]
		}
		if i < settled {
			m.Settled = true
			// A trail can only be reserved for a next syllable not yet typed.
			var next rune
			if i+1 >= settled {
				next = at(want, i+1)
			}
			m.Verdict = match.Classify(typed[i], m.Target, next)
		}
		marks[i] = m
	}
	return marks
}

// Preview classifies the character still under composition. The verdict is
// provisional and never feeds Grade; ok is false when nothing is composing.
func (t *Tracker) Preview(target string) (Mark, bool) {
	t.mu.Lock()
	typed := Normalize(t.raw)
	composing, settled := t.composing, t.settled
	t.mu.Unlock()

	i := len(typed) - 1
	if !composing || i < settled || i < 0 {
		return Mark{}, false
	}
	want := Normalize(target)
	return Mark{
		Typed:   typed[i],
		Target:  at(want, i),
		Verdict: match.Classify(typed[i], at(want, i), at(want, i+1)),
	}, true
}

// Matched reports whether the settled text equals target in full.
func (t *Tracker) Matched(target string) bool {
	if t.Composing() {
		return false
	}
	return lo.EveryBy(t.Grade(target), func(m Mark) bool {
		return m.Settled && m.Verdict == match.Complete
	})
}

func at(runes []rune, i int) rune {
	if i < 0 || i >= len(runes) {
		return 0
	}
	return runes[i]
}

// Summary counts verdicts over a set of marks.
type Summary struct {
	Complete        int
	Partial         int
	PartialComplete int
	Wrong           int
	Pending         int
}

func Summarize(marks []Mark) Summary {
	counts := lo.CountValuesBy(marks, func(m Mark) string {
		if !m.Settled {
			return "pending"
		}
		return m.Verdict.String()
	})
	return Summary{
		Complete:        counts[match.Complete.String()],
		Partial:         counts[match.Partial.String()],
		PartialComplete: counts[match.PartialComplete.String()],
		Wrong:           counts[match.Wrong.String()],
		Pending:         counts["pending"],
	}
}

// Accuracy is the share of settled marks that were complete.
func (s Summary) Accuracy() float64 {
	graded := s.Complete + s.Partial + s.PartialComplete + s.Wrong
	if graded == 0 {
		return 0
	}
	return float64(s.Complete) / float64(graded)
}
