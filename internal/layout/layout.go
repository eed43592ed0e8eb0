// Package layout maps terminal key runes to what the input method should do
// with them.
package layout

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"retype/internal/hangul"
)

type SymbolKind int

const (
	// SymbolPassthrough: the key is typed as-is after committing any
	// pending syllable.
	SymbolPassthrough SymbolKind = iota
	SymbolText
	SymbolJamo
)

type Symbol struct {
	Kind SymbolKind
	Text string
	Jamo rune
	Role hangul.JamoRole
}

// Entry holds the symbols of one physical key; Shifted may be nil.
type Entry struct {
	Normal  *Symbol
	Shifted *Symbol
}

type Layout struct {
	name    string
	mapping map[rune]Entry
}

func NewLayout(name string) *Layout {
	return &Layout{name: name, mapping: make(map[rune]Entry)}
}

func (l *Layout) Name() string { return l.name }

// Translate returns the symbol for a typed key rune. Upper-case letters use
// the shifted symbol of their lower-case key and fall back to the normal
// one. A nil result means the key is not mapped.
func (l *Layout) Translate(key rune) *Symbol {
	if l == nil {
		return nil
	}
	shift := false
	if unicode.IsUpper(key) {
		key = unicode.ToLower(key)
		shift = true
	}
	entry, ok := l.mapping[key]
	if !ok {
		return nil
	}
	if shift && entry.Shifted != nil {
		return entry.Shifted
	}
	if entry.Normal != nil {
		return entry.Normal
	}
	return entry.Shifted
}

// ApplyOverride replaces one side of a key's entry.
func (l *Layout) ApplyOverride(key rune, shift bool, symbol *Symbol) {
	if l == nil {
		return
	}
	key = unicode.ToLower(key)
	entry := l.mapping[key]
	if shift {
		entry.Shifted = symbol
	} else {
		entry.Normal = symbol
	}
	l.mapping[key] = entry
}

func NewTextSymbol(value string) *Symbol {
	return &Symbol{Kind: SymbolText, Text: value}
}

func NewJamoSymbol(value rune, role hangul.JamoRole) *Symbol {
	return &Symbol{Kind: SymbolJamo, Jamo: value, Role: role}
}

func NewPassthroughSymbol() *Symbol {
	return &Symbol{Kind: SymbolPassthrough}
}

func jamo(value rune) *Symbol { return NewJamoSymbol(value, hangul.RoleAuto) }

func (l *Layout) add(key rune, normal, shifted *Symbol) {
	l.mapping[key] = Entry{Normal: normal, Shifted: shifted}
}

func buildDubeolsik() *Layout {
	l := NewLayout("dubeolsik")

	l.add('q', jamo('ㅂ'), jamo('ㅃ'))
	l.add('w', jamo('ㅈ'), jamo('ㅉ'))
	l.add('e', jamo('ㄷ'), jamo('ㄸ'))
	l.add('r', jamo('ㄱ'), jamo('ㄲ'))
	l.add('t', jamo('ㅅ'), jamo('ㅆ'))
	l.add('y', jamo('ㅛ'), nil)
	l.add('u', jamo('ㅕ'), nil)
	l.add('i', jamo('ㅑ'), nil)
	l.add('o', jamo('ㅐ'), jamo('ㅒ'))
	l.add('p', jamo('ㅔ'), jamo('ㅖ'))

	l.add('a', jamo('ㅁ'), nil)
	l.add('s', jamo('ㄴ'), nil)
	l.add('d', jamo('ㅇ'), nil)
	l.add('f', jamo('ㄹ'), nil)
	l.add('g', jamo('ㅎ'), nil)
	l.add('h', jamo('ㅗ'), nil)
	l.add('j', jamo('ㅓ'), nil)
	l.add('k', jamo('ㅏ'), nil)
	l.add('l', jamo('ㅣ'), nil)

	l.add('z', jamo('ㅋ'), nil)
	l.add('x', jamo('ㅌ'), nil)
	l.add('c', jamo('ㅊ'), nil)
	l.add('v', jamo('ㅍ'), nil)
	l.add('b', jamo('ㅠ'), nil)
	l.add('n', jamo('ㅜ'), nil)
	l.add('m', jamo('ㅡ'), nil)

	for _, key := range "`1234567890-=[]\\;',./ " {
		l.add(key, NewPassthroughSymbol(), nil)
	}
	return l
}

func buildLatin() *Layout {
	l := NewLayout("latin")
	for key := ' '; key <= '~'; key++ {
		if unicode.IsUpper(key) {
			continue
		}
		l.add(key, NewPassthroughSymbol(), nil)
	}
	return l
}

var builders = map[string]func() *Layout{
	"dubeolsik": buildDubeolsik,
	"latin":     buildLatin,
}

func AvailableLayouts() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Load(name string) (*Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dubeolsik", "2beolsik", "두벌식":
		return buildDubeolsik(), nil
	case "latin", "none", "raw":
		return buildLatin(), nil
	default:
		return nil, fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(AvailableLayouts(), ", "))
	}
}
