// Package hangul holds the jamo tables, syllable arithmetic and a dubeolsik
// composition automaton.
package hangul

const (
	SyllableFirst = 0xAC00
	SyllableLast  = 0xD7A3
	JamoFirst     = 0x3131
	JamoLast      = 0x3163

	leadCount  = 19
	vowelCount = 21
	trailCount = 28
	blockSize  = vowelCount * trailCount
)

// Syllable is a decomposed Hangul syllable. Trail is 0 when the syllable has
// no final consonant.
type Syllable struct {
	Lead  rune
	Vowel rune
	Trail rune
}

func IsSyllable(r rune) bool {
	return r >= SyllableFirst && r <= SyllableLast
}

// IsJamo reports whether r is a standalone compatibility jamo, the form an
// input method shows before a consonant has met its vowel.
func IsJamo(r rune) bool {
	return r >= JamoFirst && r <= JamoLast
}

// Decompose splits a precomposed syllable. It reports false for anything
// outside U+AC00..U+D7A3.
func Decompose(r rune) (Syllable, bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	offset := int(r - SyllableFirst)
	return Syllable{
		Lead:  leads[offset/blockSize],
		Vowel: vowels[(offset%blockSize)/trailCount],
		Trail: trails[offset%trailCount],
	}, true
}

// Compose is the inverse of Decompose.
func Compose(s Syllable) (rune, bool) {
	li, ok := leadIndex[s.Lead]
	if !ok {
		return 0, false
	}
	vi, ok := vowelIndex[s.Vowel]
	if !ok {
		return 0, false
	}
	ti, ok := trailIndex[s.Trail]
	if !ok {
		return 0, false
	}
	return rune(SyllableFirst + li*blockSize + vi*trailCount + ti), true
}

// HasTrail reports whether the syllable closes with a consonant.
func (s Syllable) HasTrail() bool { return s.Trail != 0 }

// WithTrail returns a copy of s closed by t.
func (s Syllable) WithTrail(t rune) Syllable {
	s.Trail = t
	return s
}

func (s Syllable) String() string {
	r, ok := Compose(s)
	if !ok {
		return ""
	}
	return string(r)
}
