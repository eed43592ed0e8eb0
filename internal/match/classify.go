// Package match judges a typed character against the character it should
// become, while the input method may still be assembling it.
package match

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"retype/internal/hangul"
)

// Classify compares typed against target. next is the target character that
// follows, or 0 at the end of the text; typed is 0 when nothing was typed.
//
// A trailing consonant is ambiguous until the following vowel arrives: in
// 물 typed toward 무과 the ㄹ may still move to the next syllable. Classify
// accepts both readings.
func Classify(typed, target, next rune) Verdict {
	if typed == 0 {
		return Wrong
	}
	if typed == target || foldASCII(typed) == foldASCII(target) {
		return Complete
	}

	want, ok := hangul.Decompose(target)
	if !ok {
		return Wrong
	}

	if hangul.IsJamo(typed) {
		if typed == want.Lead || typed == want.Vowel {
			return Partial
		}
		return Wrong
	}

	got, ok := hangul.Decompose(typed)
	if !ok || got.Lead != want.Lead {
		return Wrong
	}
	if got.Vowel != want.Vowel {
		return classifyVowel(got, want)
	}
	return classifyTrail(got, want, next)
}

// ClassifyString is Classify for callers holding strings. Each argument is
// NFC-normalized first; one that is not a single rune afterwards is compared
// literally.
func ClassifyString(typed, target, next string) Verdict {
	typed, target, next = norm.NFC.String(typed), norm.NFC.String(target), norm.NFC.String(next)
	if typed == "" {
		return Wrong
	}
	t, tok := single(typed)
	g, gok := single(target)
	if !tok || !gok {
		if typed == target {
			return Complete
		}
		return Wrong
	}
	n, _ := single(next)
	return Classify(t, g, n)
}

func classifyVowel(got, want hangul.Syllable) Verdict {
	if got.HasTrail() {
		return Wrong
	}
	first, _, ok := hangul.SplitVowel(want.Vowel)
	if ok && first == got.Vowel {
		return Partial
	}
	return Wrong
}

func classifyTrail(got, want hangul.Syllable, next rune) Verdict {
	if got.Trail == want.Trail {
		return Complete
	}
	if !got.HasTrail() {
		return Partial
	}

	nextLead := leadOf(next)

	if !want.HasTrail() && nextLead != 0 && got.Trail == nextLead {
		return Complete
	}

	if first, _, ok := hangul.SplitCluster(want.Trail); ok && first == got.Trail {
		return Partial
	}

	if first, second, ok := hangul.SplitCluster(got.Trail); ok {
		if first == want.Trail && nextLead != 0 && second == nextLead {
			return PartialComplete
		}
	}
	return Wrong
}

func leadOf(r rune) rune {
	s, ok := hangul.Decompose(r)
	if !ok {
		return 0
	}
	return s.Lead
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func single(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
