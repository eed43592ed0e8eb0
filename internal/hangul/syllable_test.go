package hangul

import (
	"testing"

	gohangul "github.com/suapapa/go_hangul"
)

func TestDecomposeRoundTrip(t *testing.T) {
	for r := rune(SyllableFirst); r <= SyllableLast; r++ {
		s, ok := Decompose(r)
		if !ok {
			t.Fatalf("expected %U to decompose", r)
		}
		back, ok := Compose(s)
		if !ok {
			t.Fatalf("expected %+v to compose", s)
		}
		if back != r {
			t.Fatalf("round trip of %U produced %U", r, back)
		}
		if joined := gohangul.Join(s.Lead, s.Vowel, s.Trail); joined != r {
			t.Fatalf("go_hangul joins %+v to %U, expected %U", s, joined, r)
		}
	}
}

func TestDecomposeKnownSyllables(t *testing.T) {
	tests := []struct {
		in   rune
		want Syllable
	}{
		{'가', Syllable{Lead: 'ㄱ', Vowel: 'ㅏ'}},
		{'닳', Syllable{Lead: 'ㄷ', Vowel: 'ㅏ', Trail: 'ㅀ'}},
		{'묽', Syllable{Lead: 'ㅁ', Vowel: 'ㅜ', Trail: 'ㄺ'}},
		{'과', Syllable{Lead: 'ㄱ', Vowel: 'ㅘ'}},
		{'힣', Syllable{Lead: 'ㅎ', Vowel: 'ㅣ', Trail: 'ㅎ'}},
	}
	for _, tt := range tests {
		got, ok := Decompose(tt.in)
		if !ok {
			t.Fatalf("expected %q to decompose", tt.in)
		}
		if got != tt.want {
			t.Fatalf("Decompose(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestDecomposeOutsideBlock(t *testing.T) {
	for _, r := range []rune{'a', '1', ' ', 'ㄱ', 'ㅏ', SyllableFirst - 1, SyllableLast + 1, '漢'} {
		if _, ok := Decompose(r); ok {
			t.Fatalf("expected %U not to decompose", r)
		}
	}
}

func TestComposeRejectsUnknownSymbols(t *testing.T) {
	if _, ok := Compose(Syllable{Lead: 'ㄳ', Vowel: 'ㅏ'}); ok {
		t.Fatalf("expected cluster to be rejected as a lead")
	}
	if _, ok := Compose(Syllable{Lead: 'ㄱ', Vowel: 'ㅏ', Trail: 'ㄸ'}); ok {
		t.Fatalf("expected ㄸ to be rejected as a trail")
	}
}

func TestIsJamo(t *testing.T) {
	for _, r := range []rune{'ㄱ', 'ㅎ', 'ㅏ', 'ㅣ', 'ㄺ'} {
		if !IsJamo(r) {
			t.Fatalf("expected %q to be a compatibility jamo", r)
		}
	}
	for _, r := range []rune{'가', 'a', 0x1100} {
		if IsJamo(r) {
			t.Fatalf("expected %U not to be a compatibility jamo", r)
		}
	}
}

func TestTableSizes(t *testing.T) {
	if got := len(Leads()); got != 19 {
		t.Fatalf("expected 19 leads, got %d", got)
	}
	if got := len(Vowels()); got != 21 {
		t.Fatalf("expected 21 vowels, got %d", got)
	}
	if got := len(Trails()); got != 28 {
		t.Fatalf("expected 28 trails, got %d", got)
	}
	if len(trailClusters) != 11 {
		t.Fatalf("expected 11 trailing clusters, got %d", len(trailClusters))
	}
	if len(vowelPairs) != 7 {
		t.Fatalf("expected 7 compound vowels, got %d", len(vowelPairs))
	}
}

func TestSplitAndJoin(t *testing.T) {
	first, second, ok := SplitCluster('ㄺ')
	if !ok || first != 'ㄹ' || second != 'ㄱ' {
		t.Fatalf("expected ㄺ to split into ㄹ+ㄱ, got %q+%q (ok=%v)", first, second, ok)
	}
	if _, _, ok := SplitCluster('ㄲ'); ok {
		t.Fatalf("expected ㄲ not to be a cluster")
	}
	if v, ok := JoinVowel('ㅡ', 'ㅣ'); !ok || v != 'ㅢ' {
		t.Fatalf("expected ㅡ+ㅣ to join into ㅢ, got %q", v)
	}
	for cluster, pair := range clusterSplit {
		joined, ok := JoinCluster(pair[0], pair[1])
		if !ok || joined != cluster {
			t.Fatalf("expected %q+%q to join into %q", pair[0], pair[1], cluster)
		}
	}
}
