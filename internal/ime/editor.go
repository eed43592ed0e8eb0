// Package ime drives a Hangul composer from key runes and reports every
// change to a tracker as composition events, the way a desktop input method
// notifies its text field.
package ime

import (
	"strings"

	"github.com/charmbracelet/log"

	"retype/internal/hangul"
	"retype/internal/layout"
	"retype/internal/logger"
	"retype/internal/tracker"
)

// Sink receives the events of an Editor. Both tracker.Tracker and
// tracker.Paragraph satisfy it.
type Sink interface {
	OnEvent(tracker.Event) tracker.State
}

type Option func(*Editor)

func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// Editor is an input line with an input method attached. Committed text
// lives in text; the syllable under composition is the composer's preedit.
type Editor struct {
	layout   *layout.Layout
	composer *hangul.Composer
	sink     Sink
	log      *log.Logger
	text     []rune
	state    tracker.State
}

func NewEditor(l *layout.Layout, sink Sink, opts ...Option) *Editor {
	e := &Editor{
		layout:   l,
		composer: hangul.NewComposer(),
		sink:     sink,
		log:      logger.Discard(),
		text:     make([]rune, 0, 64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TypeKey handles one key rune. It reports false when the layout does not
// map the key.
func (e *Editor) TypeKey(key rune) bool {
	symbol := e.layout.Translate(key)
	if symbol == nil {
		return false
	}
	switch symbol.Kind {
	case layout.SymbolJamo:
		e.feed(symbol.Jamo, symbol.Role)
	case layout.SymbolText:
		e.AppendString(symbol.Text)
	default:
		e.AppendLiteral(key)
	}
	return true
}

// AppendLiteral commits any pending syllable and then types r as-is.
func (e *Editor) AppendLiteral(r rune) {
	e.AppendString(string(r))
}

func (e *Editor) AppendString(s string) {
	if s == "" {
		return
	}
	e.commit()
	e.text = append(e.text, []rune(s)...)
	e.edit()
}

func (e *Editor) Space() { e.AppendLiteral(' ') }

// Enter starts a new line.
func (e *Editor) Enter() { e.AppendLiteral('\n') }

// Backspace removes the last jamo of the syllable under composition, or the
// last committed rune when nothing is composing.
func (e *Editor) Backspace() {
	if e.composer.Composing() {
		e.composer.Backspace()
		e.edit()
		if !e.composer.Composing() {
			e.emit(tracker.End())
		}
		return
	}
	if len(e.text) == 0 {
		return
	}
	e.text = e.text[:len(e.text)-1]
	e.edit()
}

// Flush commits the pending syllable, if any.
func (e *Editor) Flush() { e.commit() }

// Reset clears the line, ending any composition first.
func (e *Editor) Reset() {
	e.composer.Flush()
	e.text = e.text[:0]
	e.edit()
	if e.state.Composing {
		e.emit(tracker.End())
	}
}

// Text is what the text field shows: committed text plus the preedit.
func (e *Editor) Text() string {
	var b strings.Builder
	b.Grow(len(e.text) + 4)
	b.WriteString(string(e.text))
	b.WriteString(e.composer.Preedit())
	return b.String()
}

func (e *Editor) Committed() string { return string(e.text) }

func (e *Editor) Preedit() string { return e.composer.Preedit() }

// State is the sink's state after the last event.
func (e *Editor) State() tracker.State { return e.state }

func (e *Editor) feed(jamo rune, role hangul.JamoRole) {
	wasComposing := e.composer.Composing()
	res := e.composer.Feed(jamo, role)

	if res.Commit != "" {
		e.text = append(e.text, []rune(res.Commit)...)
		if wasComposing {
			// The preedit already belongs to the next syllable.
			committed := string(e.text)
			e.emit(tracker.Edit(committed, len(e.text)))
			e.emit(tracker.End())
			wasComposing = false
		}
	}
	if !wasComposing && e.composer.Composing() {
		e.emit(tracker.Start())
	}
	e.edit()
}

// commit moves the preedit into the text and ends the composition. The
// edit always lands before the end so the tracker settles the final text.
func (e *Editor) commit() {
	if !e.composer.Composing() {
		return
	}
	e.text = append(e.text, []rune(e.composer.Flush())...)
	e.edit()
	e.emit(tracker.End())
}

func (e *Editor) edit() {
	buffer := e.Text()
	e.emit(tracker.Edit(buffer, len([]rune(buffer))))
}

func (e *Editor) emit(ev tracker.Event) {
	e.state = e.sink.OnEvent(ev)
	e.log.Debug("ime event", "kind", ev.Kind, "buffer", ev.Buffer, "settled", e.state.Settled)
}

// Convert replays keys through a fresh editor and returns the resulting
// text. Keys the layout does not map are copied through.
func Convert(l *layout.Layout, keys string) string {
	e := NewEditor(l, tracker.New())
	for _, key := range keys {
		if !e.TypeKey(key) {
			e.AppendLiteral(key)
		}
	}
	e.Flush()
	return e.Text()
}
