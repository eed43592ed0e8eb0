package hangul

// Symbols are compatibility jamo (U+3131..U+3163). Trailing consonants share
// codepoints with leading ones, so a trail can be compared to the lead of the
// following syllable directly.
var (
	leads  = [leadCount]rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	vowels = [vowelCount]rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	trails = [trailCount]rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	tenseLeads = map[[2]rune]rune{
		{'ㄱ', 'ㄱ'}: 'ㄲ',
		{'ㄷ', 'ㄷ'}: 'ㄸ',
		{'ㅂ', 'ㅂ'}: 'ㅃ',
		{'ㅈ', 'ㅈ'}: 'ㅉ',
		{'ㅅ', 'ㅅ'}: 'ㅆ',
	}
	vowelPairs = map[[2]rune]rune{
		{'ㅗ', 'ㅏ'}: 'ㅘ',
		{'ㅗ', 'ㅐ'}: 'ㅙ',
		{'ㅗ', 'ㅣ'}: 'ㅚ',
		{'ㅜ', 'ㅓ'}: 'ㅝ',
		{'ㅜ', 'ㅔ'}: 'ㅞ',
		{'ㅜ', 'ㅣ'}: 'ㅟ',
		{'ㅡ', 'ㅣ'}: 'ㅢ',
	}
	// ㄲ and ㅆ are single keys on dubeolsik and are not treated as clusters.
	trailClusters = map[[2]rune]rune{
		{'ㄱ', 'ㅅ'}: 'ㄳ',
		{'ㄴ', 'ㅈ'}: 'ㄵ',
		{'ㄴ', 'ㅎ'}: 'ㄶ',
		{'ㄹ', 'ㄱ'}: 'ㄺ',
		{'ㄹ', 'ㅁ'}: 'ㄻ',
		{'ㄹ', 'ㅂ'}: 'ㄼ',
		{'ㄹ', 'ㅅ'}: 'ㄽ',
		{'ㄹ', 'ㅌ'}: 'ㄾ',
		{'ㄹ', 'ㅍ'}: 'ㄿ',
		{'ㄹ', 'ㅎ'}: 'ㅀ',
		{'ㅂ', 'ㅅ'}: 'ㅄ',
	}
)

var (
	tenseSplit   = invertPairs(tenseLeads)
	vowelSplit   = invertPairs(vowelPairs)
	clusterSplit = invertPairs(trailClusters)
)

var (
	leadIndex  = buildIndex(leads[:])
	vowelIndex = buildIndex(vowels[:])
	trailIndex = buildIndex(trails[:])
)

func invertPairs(src map[[2]rune]rune) map[rune][2]rune {
	dst := make(map[rune][2]rune, len(src))
	for pair, value := range src {
		dst[value] = pair
	}
	return dst
}

func buildIndex(list []rune) map[rune]int {
	idx := make(map[rune]int, len(list))
	for i, ch := range list {
		idx[ch] = i
	}
	return idx
}

// Leads returns the 19 leading consonants in codepoint order.
func Leads() []rune { return append([]rune(nil), leads[:]...) }

// Vowels returns the 21 vowels in codepoint order.
func Vowels() []rune { return append([]rune(nil), vowels[:]...) }

// Trails returns the 28 trailing slots; index 0 is the empty trail.
func Trails() []rune { return append([]rune(nil), trails[:]...) }

// IsLead reports whether r is one of the 19 leading consonants.
func IsLead(r rune) bool {
	_, ok := leadIndex[r]
	return ok
}

// IsVowel reports whether r is one of the 21 vowels, compounds included.
func IsVowel(r rune) bool {
	_, ok := vowelIndex[r]
	return ok
}

// IsTrail reports whether r can close a syllable. The empty trail (0) counts.
func IsTrail(r rune) bool {
	_, ok := trailIndex[r]
	return ok
}

// SplitVowel returns the two simple vowels a compound vowel is typed from.
func SplitVowel(v rune) (first, second rune, ok bool) {
	pair, ok := vowelSplit[v]
	return pair[0], pair[1], ok
}

// JoinVowel is the inverse of SplitVowel.
func JoinVowel(first, second rune) (rune, bool) {
	v, ok := vowelPairs[[2]rune{first, second}]
	return v, ok
}

// SplitCluster returns the two consonants of a trailing cluster such as ㄺ.
func SplitCluster(t rune) (first, second rune, ok bool) {
	pair, ok := clusterSplit[t]
	return pair[0], pair[1], ok
}

// JoinCluster is the inverse of SplitCluster.
func JoinCluster(first, second rune) (rune, bool) {
	t, ok := trailClusters[[2]rune{first, second}]
	return t, ok
}
