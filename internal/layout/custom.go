package layout

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"retype/internal/hangul"
)

// CustomPair overrides one key. Example:
//
//	[[key]]
//	key = "q"
//	kind = "jamo"
//	normal = "ㅂ"
//	shifted = "ㅃ"
type CustomPair struct {
	Key     string `toml:"key"`
	Kind    string `toml:"kind"`
	Normal  string `toml:"normal"`
	Shifted string `toml:"shifted"`
	Role    string `toml:"role"`
}

type customFile struct {
	Keys []CustomPair `toml:"key"`
}

func LoadCustomPairs(path string) ([]CustomPair, error) {
	var file customFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("parse custom keypair file: %w", err)
	}
	return file.Keys, nil
}

func ApplyCustomPairs(l *Layout, pairs []CustomPair) error {
	for _, pair := range pairs {
		key, err := resolveKey(pair.Key)
		if err != nil {
			return err
		}
		entry := l.mapping[key]

		switch strings.ToLower(pair.Kind) {
		case "passthrough":
			entry.Normal = NewPassthroughSymbol()
			entry.Shifted = nil
		case "text":
			entry.Normal = NewTextSymbol(pair.Normal)
			entry.Shifted = nil
			if pair.Shifted != "" {
				entry.Shifted = NewTextSymbol(pair.Shifted)
			}
		case "jamo":
			normal, shifted, err := makeJamoPair(pair.Normal, pair.Shifted, pair.Role)
			if err != nil {
				return err
			}
			entry.Normal = normal
			entry.Shifted = shifted
		default:
			return fmt.Errorf("unsupported custom keypair kind '%s'", pair.Kind)
		}

		l.mapping[key] = entry
	}
	return nil
}

func makeJamoPair(normal, shifted, role string) (*Symbol, *Symbol, error) {
	makeSymbol := func(value string) (*Symbol, error) {
		if value == "" {
			return nil, nil
		}
		r := []rune(value)
		if len(r) != 1 || !hangul.IsJamo(r[0]) {
			return nil, fmt.Errorf("jamo value must be a single compatibility jamo, got %q", value)
		}
		return NewJamoSymbol(r[0], parseRole(role)), nil
	}

	normalSymbol, err := makeSymbol(normal)
	if err != nil {
		return nil, nil, err
	}
	shiftedSymbol, err := makeSymbol(shifted)
	if err != nil {
		return nil, nil, err
	}
	return normalSymbol, shiftedSymbol, nil
}

func parseRole(role string) hangul.JamoRole {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "leading":
		return hangul.RoleLeading
	case "trailing":
		return hangul.RoleTrailing
	default:
		return hangul.RoleAuto
	}
}

func resolveKey(name string) (rune, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return 0, fmt.Errorf("empty key name")
	case "space":
		return ' ', nil
	}
	r := []rune(strings.TrimSpace(name))
	if len(r) != 1 {
		return 0, fmt.Errorf("unknown key name '%s'", name)
	}
	if r[0] < ' ' || r[0] > '~' {
		return 0, fmt.Errorf("key '%s' is not a printable ASCII key", name)
	}
	return unicode.ToLower(r[0]), nil
}
