package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retype/internal/match"
	"retype/internal/tracker"
)

func tagged(tag string) lipgloss.Style {
	return lipgloss.NewStyle().Transform(func(s string) string {
		return tag + "(" + s + ")"
	})
}

func markerStyles() Styles {
	return Styles{
		Complete:        tagged("C"),
		Partial:         tagged("P"),
		PartialComplete: tagged("PC"),
		Wrong:           tagged("W"),
		Pending:         tagged("_"),
		Hint:            tagged("H"),
		Preview:         lipgloss.NewStyle(),
		Status:          lipgloss.NewStyle(),
	}
}

func TestLineKeepsTargetText(t *testing.T) {
	tr := tracker.New()
	tr.OnEvent(tracker.Edit("동하", 2))
	const target = "동해 물과"

	out := New().Line(target, tr.Grade(target), 2, nil)
	assert.Equal(t, target, ansi.Strip(out))
}

func TestLineStylesByVerdict(t *testing.T) {
	tr := tracker.New()
	tr.OnEvent(tracker.Edit("동하", 2))
	const target = "동해 물과"
	state := tr.State()

	out := New(WithStyles(markerStyles())).Line(target, tr.Grade(target), state.Hint.Column, nil)
	assert.Equal(t, "C(동)W(해) H(물)_(과)", ansi.Strip(out))
}

func TestLineOverrunIsAppended(t *testing.T) {
	tr := tracker.New()
	tr.OnEvent(tracker.Edit("가나다", 3))

	out := New(WithStyles(markerStyles())).Line("가나", tr.Grade("가나"), -1, nil)
	assert.Equal(t, "C(가)C(나)W(다)", ansi.Strip(out))
}

func TestLinePreview(t *testing.T) {
	tr := tracker.New()
	tr.OnEvent(tracker.Edit("동해", 2))
	tr.OnEvent(tracker.Start())
	tr.OnEvent(tracker.Edit("동해묽", 3))
	const target = "동해물과"

	preview, ok := tr.Preview(target)
	require.True(t, ok)
	marks := tr.Grade(target)

	withPreview := New(WithStyles(markerStyles()), WithPreview(true))
	assert.Equal(t, "C(동)C(해)PC(물)_(과)", ansi.Strip(withPreview.Line(target, marks, -1, &preview)))

	without := New(WithStyles(markerStyles()))
	assert.Equal(t, "C(동)C(해)_(물)_(과)", ansi.Strip(without.Line(target, marks, -1, &preview)))
}

func TestParagraphHintOnActiveLineOnly(t *testing.T) {
	p := tracker.NewParagraph()
	state := p.OnEvent(tracker.Edit("동해물과\n백", 6))
	const target = "동해물과\n백두"

	out := New(WithStyles(markerStyles())).Paragraph(target, p.Grade(target), state, nil)
	assert.Equal(t, "C(동)C(해)C(물)C(과)\nC(백)H(두)", ansi.Strip(out))
}

func TestParagraphHidesHintWhileComposing(t *testing.T) {
	p := tracker.NewParagraph()
	p.OnEvent(tracker.Edit("동", 1))
	p.OnEvent(tracker.Start())
	state := p.OnEvent(tracker.Edit("동ㅎ", 2))
	require.False(t, state.HintVisible)

	out := New(WithStyles(markerStyles())).Paragraph("동해", p.Grade("동해"), state, nil)
	assert.Equal(t, "C(동)_(해)", ansi.Strip(out))
}

func TestStatus(t *testing.T) {
	summary := tracker.Summary{Complete: 3, Partial: 1, Wrong: 0, Pending: 2}
	out := ansi.Strip(New().Status(summary, 61*time.Second+400*time.Millisecond))
	assert.Equal(t, "3 complete · 1 partial · 0 wrong · 2 left · 75% · 1m1s", out)
}

func TestStylesVerdictFallback(t *testing.T) {
	s := markerStyles()
	assert.Equal(t, "W(x)", s.verdict(match.Verdict(42)).Render("x"))
}
