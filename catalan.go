package ortograf

import (
	"strings"
	"unicode"
)

// Catalan is a minimal Language implementation: no verb recognition
// tables, but enough policy for dictionary lookups and apostrophe
// elisions (l'home, d'aigua) to work against a Catalan dictionary.
type Catalan struct{}

// NewCatalan returns the Catalan language descriptor.
func NewCatalan() *Catalan {
	return &Catalan{}
}

func (*Catalan) Code() string { return "ca" }

func (*Catalan) Name() string { return "Català" }

// DepluralizeCandidates strips the regular plural endings: -es maps
// back to the feminine -a (cases → casa) as well as a bare stem, and
// -os, -ns and -s strip plainly.
func (*Catalan) DepluralizeCandidates(word string) []string {
	w := strings.ToLower(word)
	var candidates []string
	if stem, ok := strings.CutSuffix(w, "es"); ok && stem != "" {
		candidates = append(candidates, stem+"a", stem)
	}
	for _, suffix := range []string{"os", "ns", "s"} {
		if stem, ok := strings.CutSuffix(w, suffix); ok && stem != "" {
			candidates = append(candidates, stem)
		}
	}
	return candidates
}

func (*Catalan) IsKnownAbbreviation(string) bool { return false }

// IsWordInternalRune accepts letters, the hyphen, the apostrophe used in
// elisions and the ela geminada's middle dot (col·legi).
func (*Catalan) IsWordInternalRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-' || r == '\'' || r == '’' || r == '·'
}

func (*Catalan) VerbPrefixes() []string { return nil }

func (*Catalan) CliticPronouns() []string { return nil }
