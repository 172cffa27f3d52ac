package ortograf

import (
	"reflect"
	"testing"
)

func TestEncliticStrip(t *testing.T) {
	analyzer := encliticAnalyzer{clitics: spanishClitics}

	cases := []struct {
		word     string
		base     string
		pronouns []string
	}{
		{"decirle", "decir", []string{"le"}},
		{"dármelo", "dar", []string{"me", "lo"}},
		{"diciéndotelo", "diciendo", []string{"te", "lo"}},
		{"dámelo", "da", []string{"me", "lo"}},
		{"dime", "di", []string{"me"}},
		{"ponlo", "pon", []string{"lo"}},
		{"cantándose", "cantando", []string{"se"}},
		{"cantarle", "cantar", []string{"le"}},
		{"hazlo", "haz", []string{"lo"}},
	}
	for _, c := range cases {
		res, ok := analyzer.strip(c.word)
		if !ok {
			t.Errorf("strip(%q) failed, want base %q", c.word, c.base)
			continue
		}
		if res.base != c.base {
			t.Errorf("strip(%q) base = %q, want %q", c.word, res.base, c.base)
		}
		if !reflect.DeepEqual(res.pronouns, c.pronouns) {
			t.Errorf("strip(%q) pronouns = %v, want %v", c.word, res.pronouns, c.pronouns)
		}
	}
}

func TestEncliticStripRejects(t *testing.T) {
	analyzer := encliticAnalyzer{clitics: spanishClitics}

	for _, w := range []string{"cantar", "canto", "hablo", "casa", "lo"} {
		if res, ok := analyzer.strip(w); ok {
			t.Errorf("strip(%q) = %+v, want no match", w, res)
		}
	}
}

func TestRestoreAccent(t *testing.T) {
	cases := []struct{ in, want string }{
		{"dár", "dar"},
		{"decír", "decir"},
		{"cantándo", "cantando"},
		{"diciéndo", "diciendo"},
		{"analicémos", "analicemos"},
		{"dí", "di"},
		{"cantar", "cantar"},
		{"cantando", "cantando"},
	}
	for _, c := range cases {
		if got := restoreAccent(c.in); got != c.want {
			t.Errorf("restoreAccent(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestVerbBaseShapes(t *testing.T) {
	valid := []string{"cantar", "dár", "cantando", "diciéndo", "canta", "come", "di", "pon", "haz", "cantad", "cantemos"}
	for _, b := range valid {
		if !isValidVerbBase(b) {
			t.Errorf("isValidVerbBase(%q) = false, want true", b)
		}
	}
	invalid := []string{"", "x", "hab", "casaq", "cantu"}
	for _, b := range invalid {
		if isValidVerbBase(b) {
			t.Errorf("isValidVerbBase(%q) = true, want false", b)
		}
	}
}

func TestStripVerbPrefix(t *testing.T) {
	prefixes := NewSpanish().VerbPrefixes()

	cases := []struct {
		word   string
		prefix string
		base   string
	}{
		{"deshago", "des", "hago"},
		{"rehice", "re", "hice"},
		{"predigo", "pre", "digo"},
		{"contradigo", "contra", "digo"},
		{"compusieron", "com", "pusieron"},
		{"convienen", "con", "vienen"},
		{"dispusieron", "dis", "pusieron"},
		{"propusieron", "pro", "pusieron"},
		{"impusieron", "im", "pusieron"},
	}
	for _, c := range cases {
		prefix, base, ok := stripVerbPrefix(c.word, prefixes)
		if !ok {
			t.Errorf("stripVerbPrefix(%q) failed", c.word)
			continue
		}
		if prefix != c.prefix || base != c.base {
			t.Errorf("stripVerbPrefix(%q) = (%q, %q), want (%q, %q)",
				c.word, prefix, base, c.prefix, c.base)
		}
	}

	for _, w := range []string{"canto", "hago", "des"} {
		if _, _, ok := stripVerbPrefix(w, prefixes); ok {
			t.Errorf("stripVerbPrefix(%q) matched, want no match", w)
		}
	}
}
