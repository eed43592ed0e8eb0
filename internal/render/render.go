// Package render draws graded target text for a terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"retype/internal/match"
	"retype/internal/tracker"
)

// Styles holds one style per verdict plus the untyped, hint and preview
// looks.
type Styles struct {
	Complete        lipgloss.Style
	Partial         lipgloss.Style
	PartialComplete lipgloss.Style
	Wrong           lipgloss.Style
	Pending         lipgloss.Style
	Hint            lipgloss.Style
	Preview         lipgloss.Style
	Status          lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Complete: lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")),
		Partial: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
		PartialComplete: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		Wrong: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Pending: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Underline(true),
		Preview: lipgloss.NewStyle().
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) verdict(v match.Verdict) lipgloss.Style {
	switch v {
	case match.Complete:
		return s.Complete
	case match.Partial:
		return s.Partial
	case match.PartialComplete:
		return s.PartialComplete
	default:
		return s.Wrong
	}
}

type Option func(*Renderer)

func WithStyles(styles Styles) Option {
	return func(r *Renderer) { r.styles = styles }
}

// WithPreview colors the character under composition by its provisional
// verdict instead of leaving it pending.
func WithPreview(enabled bool) Option {
	return func(r *Renderer) { r.preview = enabled }
}

type Renderer struct {
	styles  Styles
	preview bool
}

func New(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Line draws one target line. Spaces of the target are kept as-is; every
// other character takes the style of its mark. Characters typed past the
// end of the target are appended in the wrong style. hint is the column to
// underline, or -1.
func (r *Renderer) Line(target string, marks []tracker.Mark, hint int, preview *tracker.Mark) string {
	var b strings.Builder
	i := 0
	for _, ch := range norm.NFC.String(target) {
		if ch == ' ' {
			b.WriteRune(ch)
			continue
		}
		var m tracker.Mark
		if i < len(marks) {
			m = marks[i]
		}
		b.WriteString(r.cell(ch, m, i == hint, preview))
		i++
	}
	for ; i < len(marks); i++ {
		if marks[i].Typed != 0 {
			b.WriteString(r.styles.Wrong.Render(string(marks[i].Typed)))
		}
	}
	return b.String()
}

func (r *Renderer) cell(ch rune, m tracker.Mark, hint bool, preview *tracker.Mark) string {
	s := string(ch)
	switch {
	case m.Settled:
		return r.styles.verdict(m.Verdict).Render(s)
	case preview != nil && r.preview && m.Typed != 0 && m.Typed == preview.Typed:
		return r.styles.verdict(preview.Verdict).Inherit(r.styles.Preview).Render(s)
	case hint:
		return r.styles.Hint.Render(s)
	}
	return r.styles.Pending.Render(s)
}

// Paragraph draws every target line. The hint is only drawn when visible
// and only on its own line; the preview only applies to the active line.
func (r *Renderer) Paragraph(target string, grades [][]tracker.Mark, state tracker.State, preview *tracker.Mark) string {
	rows := strings.Split(target, "\n")
	out := make([]string, len(rows))
	for i, row := range rows {
		var marks []tracker.Mark
		if i < len(grades) {
			marks = grades[i]
		}
		hint := -1
		if state.HintVisible && state.Hint.Line == i {
			hint = state.Hint.Column
		}
		var p *tracker.Mark
		if state.Hint.Line == i {
			p = preview
		}
		out[i] = r.Line(row, marks, hint, p)
	}
	return strings.Join(out, "\n")
}

// Status is the one-line summary shown under the passage.
func (r *Renderer) Status(summary tracker.Summary, elapsed time.Duration) string {
	line := fmt.Sprintf("%d complete · %d partial · %d wrong · %d left · %.0f%% · %s",
		summary.Complete,
		summary.Partial+summary.PartialComplete,
		summary.Wrong,
		summary.Pending,
		summary.Accuracy()*100,
		elapsed.Round(time.Second),
	)
	return r.styles.Status.Render(line)
}
