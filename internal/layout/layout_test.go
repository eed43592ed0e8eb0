package layout

import (
	"os"
	"path/filepath"
	"testing"

	"retype/internal/hangul"
)

func TestAvailableLayouts(t *testing.T) {
	names := AvailableLayouts()

	expected := []string{"dubeolsik", "latin"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d layouts, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Fatalf("expected layout %d to be %q, got %q", i, name, names[i])
		}
	}
}

func TestLoadDubeolsik(t *testing.T) {
	layout, err := Load("dubeolsik")
	if err != nil {
		t.Fatalf("unexpected error loading dubeolsik: %v", err)
	}

	symbol := layout.Translate('q')
	if symbol == nil {
		t.Fatalf("expected symbol for q")
	}
	if symbol.Kind != SymbolJamo || symbol.Jamo != 'ㅂ' || symbol.Role != hangul.RoleAuto {
		t.Fatalf("unexpected symbol for q: %#v", symbol)
	}

	shifted := layout.Translate('Q')
	if shifted == nil || shifted.Jamo != 'ㅃ' {
		t.Fatalf("expected shifted symbol 'ㅃ', got %#v", shifted)
	}

	fallback := layout.Translate('K')
	if fallback == nil || fallback.Jamo != 'ㅏ' {
		t.Fatalf("expected K to fall back to 'ㅏ', got %#v", fallback)
	}

	if space := layout.Translate(' '); space == nil || space.Kind != SymbolPassthrough {
		t.Fatalf("expected space to pass through, got %#v", space)
	}

	if missing := layout.Translate('가'); missing != nil {
		t.Fatalf("expected no mapping for unknown key")
	}
}

func TestLoadAliases(t *testing.T) {
	for _, name := range []string{"", "2beolsik", " Dubeolsik "} {
		layout, err := Load(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if layout.Name() != "dubeolsik" {
			t.Fatalf("expected %q to resolve to dubeolsik, got %q", name, layout.Name())
		}
	}
}

func TestLoadUnknownLayout(t *testing.T) {
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatalf("expected error for unknown layout")
	}
}

func TestApplyOverride(t *testing.T) {
	lay, err := Load("latin")
	if err != nil {
		t.Fatalf("load latin: %v", err)
	}
	lay.ApplyOverride('a', false, NewTextSymbol("å"))

	sym := lay.Translate('a')
	if sym == nil || sym.Text != "å" {
		t.Fatalf("expected override text 'å', got %#v", sym)
	}
}

func TestApplyCustomPairsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.toml")
	contents := `
[[key]]
key = "Q"
kind = "jamo"
normal = "ㅋ"
shifted = "ㅃ"

[[key]]
key = ";"
kind = "text"
normal = "·"
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write custom keys: %v", err)
	}

	pairs, err := LoadCustomPairs(path)
	if err != nil {
		t.Fatalf("LoadCustomPairs returned error: %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}

	lay, _ := Load("dubeolsik")
	if err := ApplyCustomPairs(lay, pairs); err != nil {
		t.Fatalf("ApplyCustomPairs returned error: %v", err)
	}
	if sym := lay.Translate('q'); sym == nil || sym.Jamo != 'ㅋ' {
		t.Fatalf("expected q to produce 'ㅋ', got %#v", sym)
	}
	if sym := lay.Translate(';'); sym == nil || sym.Kind != SymbolText || sym.Text != "·" {
		t.Fatalf("expected ; to produce text '·', got %#v", sym)
	}
}

func TestApplyCustomPairsRejectsBadJamo(t *testing.T) {
	lay, _ := Load("dubeolsik")
	err := ApplyCustomPairs(lay, []CustomPair{{Key: "q", Kind: "jamo", Normal: "가"}})
	if err == nil {
		t.Fatalf("expected error for a syllable used as jamo")
	}
	err = ApplyCustomPairs(lay, []CustomPair{{Key: "q", Kind: "unknown"}})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
