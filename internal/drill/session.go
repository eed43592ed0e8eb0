package drill

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"retype/internal/ime"
	"retype/internal/layout"
	"retype/internal/logger"
	"retype/internal/tracker"
)

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is one attempt at one passage. The clock starts on the first key
// and stops when the whole passage is matched.
type Session struct {
	passage   Passage
	target    string
	paragraph *tracker.Paragraph
	editor    *ime.Editor
	log       *log.Logger
	now       func() time.Time
	started   time.Time
	finished  time.Time
}

func NewSession(p Passage, lay *layout.Layout, opts ...Option) *Session {
	s := &Session{
		passage: p,
		target:  p.Target(),
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.paragraph = tracker.NewParagraph(tracker.WithLogger(s.log))
	s.editor = ime.NewEditor(lay, s.paragraph, ime.WithLogger(s.log))
	return s
}

func (s *Session) Passage() Passage { return s.passage }

// Key types one key rune and reports whether the layout handled it.
func (s *Session) Key(r rune) bool {
	if s.Done() {
		return false
	}
	s.start()
	ok := s.editor.TypeKey(r)
	s.check()
	return ok
}

func (s *Session) Backspace() {
	if s.Done() {
		return
	}
	s.editor.Backspace()
	s.check()
}

// Enter moves to the next line, or on the last line commits the pending
// syllable so the passage can complete.
func (s *Session) Enter() {
	if s.Done() {
		return
	}
	s.start()
	if s.paragraph.Active() >= len(s.passage.Lines())-1 {
		s.editor.Flush()
	} else {
		s.editor.Enter()
	}
	s.check()
}

func (s *Session) Space() {
	if s.Done() {
		return
	}
	s.start()
	s.editor.Space()
	s.check()
}

// Text is the input as the user sees it, preedit included.
func (s *Session) Text() string { return s.editor.Text() }

func (s *Session) State() tracker.State { return s.paragraph.State() }

func (s *Session) Grades() [][]tracker.Mark { return s.paragraph.Grade(s.target) }

// Preview is the provisional mark of the character under composition on
// the active line, or nil.
func (s *Session) Preview() *tracker.Mark {
	line, ok := s.paragraph.Line(s.paragraph.Active())
	if !ok {
		return nil
	}
	rows := s.passage.Lines()
	active := s.paragraph.Active()
	if active >= len(rows) {
		return nil
	}
	mark, ok := line.Preview(rows[active])
	if !ok {
		return nil
	}
	return &mark
}

func (s *Session) Done() bool { return !s.finished.IsZero() }

// Elapsed is the time since the first key, frozen once the passage is done.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case s.Done():
		return s.finished.Sub(s.started)
	}
	return s.now().Sub(s.started)
}

type Progress struct {
	Summary tracker.Summary
	Line    int
	Lines   int
	Elapsed time.Duration
	Done    bool
}

func (s *Session) Progress() Progress {
	grades := s.Grades()
	return Progress{
		Summary: tracker.Summarize(lo.Flatten(grades)),
		Line:    s.paragraph.Active(),
		Lines:   len(grades),
		Elapsed: s.Elapsed(),
		Done:    s.Done(),
	}
}

func (s *Session) start() {
	if s.started.IsZero() {
		s.started = s.now()
		s.log.Debug("session started", "passage", s.passage.Title)
	}
}

func (s *Session) check() {
	if s.Done() || !s.paragraph.Matched(s.target) {
		return
	}
	s.finished = s.now()
	s.log.Info("passage complete", "passage", s.passage.Title, "elapsed", s.Elapsed())
}
