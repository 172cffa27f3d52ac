package ortograf

import (
	"strings"
	"unicode"
)

// spanishPrefixes are the derivational prefixes tried when recognizing
// verb forms like "deshago" (des+hago) or "predije" (pre+dije).
// Ordered longest first so matching finds the longest prefix.
var spanishPrefixes = []string{
	"contra", "entre", "sobre", "super", "trans", "inter",
	"ante", "anti", "auto", "semi", "pre", "sub", "com", "con", "dis", "pro",
	"des", "re", "co", "ex", "in", "en", "im",
}

// spanishClitics are the pronouns that attach to imperative, gerund and
// infinitive forms: dámelo = da+me+lo, decirle = decir+le.
var spanishClitics = []string{
	"me", "te", "se", "nos", "os",
	"lo", "la", "le", "los", "las", "les",
}

// Spanish is the Language implementation for Spanish.
type Spanish struct{}

// NewSpanish returns the Spanish language descriptor.
func NewSpanish() *Spanish {
	return &Spanish{}
}

func (*Spanish) Code() string { return "es" }

func (*Spanish) Name() string { return "Español" }

// DepluralizeCandidates proposes singular candidates for a Spanish
// plural, most specific rule first: veces→vez, canciones→canción,
// alemanes→alemán, franceses→francés, leones→león, rubíes→rubí,
// ciudades→ciudad, abuelas→abuela, and consonant+s loanwords like
// banners→banner. Candidates are not validated against any dictionary.
func (*Spanish) DepluralizeCandidates(word string) []string {
	w := strings.ToLower(word)
	var candidates []string
	seen := make(map[string]bool)
	push := func(s string) {
		if !seen[s] {
			seen[s] = true
			candidates = append(candidates, s)
		}
	}

	suffixRules := []struct {
		plural   string
		singular string
	}{
		{"ces", "z"},
		{"iones", "ión"},
		{"anes", "án"},
		{"enes", "én"},
		{"eses", "és"},
		{"ines", "ín"},
	}
	for _, rule := range suffixRules {
		if stem, ok := strings.CutSuffix(w, rule.plural); ok && stem != "" {
			push(stem + rule.singular)
		}
	}

	// "-ones" but not "-iones": leones → león.
	if strings.HasSuffix(w, "ones") && !strings.HasSuffix(w, "iones") {
		if stem := strings.TrimSuffix(w, "ones"); stem != "" {
			push(stem + "ón")
		}
	}

	if stem, ok := strings.CutSuffix(w, "unes"); ok && stem != "" {
		push(stem + "ún")
	}

	// Stressed final vowel + es: rubíes → rubí, tabúes → tabú.
	if stem, ok := strings.CutSuffix(w, "íes"); ok && stem != "" {
		push(stem + "í")
	}
	if stem, ok := strings.CutSuffix(w, "úes"); ok && stem != "" {
		push(stem + "ú")
	}

	// Consonant (including y) + es: ciudades → ciudad, leyes → ley.
	if stem, ok := strings.CutSuffix(w, "es"); ok && stem != "" {
		if last, _ := lastRune(stem); !isSpanishVowel(last) {
			push(stem)
		}
	}

	// Vowel + s: abuelas → abuela, cafés → café.
	if stem, ok := strings.CutSuffix(w, "s"); ok && stem != "" {
		if last, _ := lastRune(stem); isSpanishVowel(last) {
			push(stem)
		}
	}

	// Consonant + s, mostly loanwords: banners → banner. Last priority;
	// only useful when the singular is in the dictionary.
	if stem, ok := strings.CutSuffix(w, "s"); ok && stem != "" {
		if last, _ := lastRune(stem); !isSpanishVowel(last) {
			push(stem)
		}
	}

	return candidates
}

func lastRune(s string) (rune, bool) {
	var last rune
	found := false
	for _, r := range s {
		last = r
		found = true
	}
	return last, found
}

// IsKnownAbbreviation reports whether word is one of the conventional
// Spanish ordinal abbreviations (n.º, n.ª).
func (*Spanish) IsKnownAbbreviation(word string) bool {
	w := strings.ToLower(word)
	return w == "n.º" || w == "n.ª"
}

// IsWordInternalRune accepts letters and the hyphen.
func (*Spanish) IsWordInternalRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-'
}

func (*Spanish) VerbPrefixes() []string { return spanishPrefixes }

func (*Spanish) CliticPronouns() []string { return spanishClitics }
