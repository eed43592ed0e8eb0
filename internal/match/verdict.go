package match

import "fmt"

// Verdict is the relationship between a typed character and the character
// it should become.
type Verdict int

const (
	Wrong Verdict = iota
	// Partial: a valid prefix of the target that still needs more jamo.
	Partial
	// PartialComplete: the typed syllable carries a cluster whose second
	// half belongs to the next target syllable.
	PartialComplete
	Complete
)

var verdictNames = [...]string{
	Wrong:           "wrong",
	Partial:         "partial",
	PartialComplete: "partial_complete",
	Complete:        "complete",
}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
	return verdictNames[v]
}

// Acceptable reports whether the verdict should not be shown as an error.
func (v Verdict) Acceptable() bool {
	return v != Wrong
}

func (v Verdict) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("match: unknown verdict %d", int(v))
	}
	return []byte(verdictNames[v]), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	for i, name := range verdictNames {
		if name == string(text) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("match: unknown verdict %q", text)
}
