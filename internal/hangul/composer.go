package hangul

import (
	gohangul "github.com/suapapa/go_hangul"
)

type JamoRole int

const (
	RoleAuto JamoRole = iota
	RoleLeading
	RoleTrailing
)

// Result is the outcome of one automaton step: text that left the
// automaton for good, and the syllable still being assembled.
type Result struct {
	Commit  string
	Preedit string
}

// Composer is a dubeolsik composition automaton. Zero runes mean the slot is
// empty. It produces the same provisional snapshots a desktop input method
// shows, e.g. 무 → 물 → 묽 → (commit 물) 고 → 과.
type Composer struct {
	lead  rune
	vowel rune
	trail rune
}

func NewComposer() *Composer {
	return &Composer{}
}

// Composing reports whether a syllable is being assembled.
func (c *Composer) Composing() bool {
	return c.lead != 0 || c.vowel != 0
}

func (c *Composer) Preedit() string {
	switch {
	case c.lead != 0 && c.vowel != 0:
		return string(gohangul.Join(c.lead, c.vowel, c.trail))
	case c.lead != 0:
		return string(c.lead)
	case c.vowel != 0:
		return string(c.vowel)
	}
	return ""
}

func (c *Composer) Feed(ch rune, role JamoRole) Result {
	var commit string
	if IsVowel(ch) {
		commit = c.feedVowel(ch)
	} else {
		commit = c.feedConsonant(ch, role)
	}
	return Result{Commit: commit, Preedit: c.Preedit()}
}

// Flush commits whatever is being assembled and resets the automaton.
func (c *Composer) Flush() string {
	commit := c.Preedit()
	c.reset()
	return commit
}

// Backspace removes the most recent jamo. Compound vowels, clusters and
// tense leads fall back to their first component. It reports false when
// nothing was being composed.
func (c *Composer) Backspace() (string, bool) {
	switch {
	case c.trail != 0:
		if first, _, ok := SplitCluster(c.trail); ok {
			c.trail = first
		} else {
			c.trail = 0
		}
	case c.vowel != 0:
		if first, _, ok := SplitVowel(c.vowel); ok {
			c.vowel = first
		} else {
			c.vowel = 0
		}
	case c.lead != 0:
		if pair, ok := tenseSplit[c.lead]; ok {
			c.lead = pair[0]
		} else {
			c.lead = 0
		}
	default:
		return "", false
	}
	return c.Preedit(), true
}

func (c *Composer) reset() {
	c.lead, c.vowel, c.trail = 0, 0, 0
}

// restart commits the current syllable and begins a new one at ch.
func (c *Composer) restart(lead, vowel rune) string {
	commit := c.Preedit()
	c.lead, c.vowel, c.trail = lead, vowel, 0
	return commit
}

func (c *Composer) feedConsonant(ch rune, role JamoRole) string {
	if !c.Composing() {
		c.lead = ch
		return ""
	}
	if c.lead == 0 || role == RoleLeading {
		return c.restart(ch, 0)
	}

	if c.vowel == 0 {
		if tense, ok := tenseLeads[[2]rune{c.lead, ch}]; ok {
			c.lead = tense
			return ""
		}
		return c.restart(ch, 0)
	}

	if c.trail == 0 {
		if ch != 0 && IsTrail(ch) {
			c.trail = ch
			return ""
		}
		return c.restart(ch, 0)
	}

	if cluster, ok := JoinCluster(c.trail, ch); ok {
		c.trail = cluster
		return ""
	}
	return c.restart(ch, 0)
}

func (c *Composer) feedVowel(ch rune) string {
	if c.vowel == 0 {
		c.vowel = ch
		return ""
	}

	if c.trail != 0 {
		// The trailing consonant (or the second half of a cluster) moves to
		// the next syllable once a vowel follows it.
		moving := c.trail
		if first, second, ok := SplitCluster(c.trail); ok {
			c.trail = first
			moving = second
		} else {
			c.trail = 0
		}
		return c.restart(moving, ch)
	}

	if compound, ok := JoinVowel(c.vowel, ch); ok {
		c.vowel = compound
		return ""
	}
	return c.restart(0, ch)
}
