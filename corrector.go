package ortograf

import (
	"math"
	"sort"
	"strings"
)

// Suggestion is one ranked correction candidate.
type Suggestion struct {
	Word      string `json:"word"`
	Distance  int    `json:"distance"`
	Frequency int    `json:"frequency"`
}

const (
	defaultMaxDistance    = 2
	defaultMaxSuggestions = 5
)

// Corrector answers "is this word acceptable" and "what should it be
// instead" for one language, composing dictionary containment, elision
// handling, plural derivation and verb-form recognition.
type Corrector struct {
	dict           *Trie
	lang           Language
	verbs          *VerbRecognizer
	maxDistance    int
	maxSuggestions int
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithMaxDistance bounds the fuzzy search used for suggestions.
func WithMaxDistance(d int) Option {
	return func(c *Corrector) { c.maxDistance = d }
}

// WithMaxSuggestions caps how many suggestions are returned.
func WithMaxSuggestions(n int) Option {
	return func(c *Corrector) { c.maxSuggestions = n }
}

// WithVerbRecognizer attaches a prebuilt recognizer so conjugated verb
// forms count as correct. Building one is expensive; share it.
func WithVerbRecognizer(r *VerbRecognizer) Option {
	return func(c *Corrector) { c.verbs = r }
}

// NewCorrector builds a corrector over dict for lang. The dictionary's
// depluralizer is set from the language so plural derivation works both
// here and in direct trie queries.
func NewCorrector(dict *Trie, lang Language, opts ...Option) *Corrector {
	c := &Corrector{
		dict:           dict,
		lang:           lang,
		maxDistance:    defaultMaxDistance,
		maxSuggestions: defaultMaxSuggestions,
	}
	dict.SetDepluralizer(lang.DepluralizeCandidates)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsCorrect reports whether word is acceptable: a dictionary hit, a
// valid elision, a known abbreviation, a derivable plural, or a
// recognized verb form. A verb-form match is suppressed when the word
// looks like a j/g confusion of a dictionary word (coje vs coge), so
// the misspelling still gets flagged.
func (c *Corrector) IsCorrect(word string) bool {
	w := strings.ToLower(word)

	if c.dict.Contains(w) {
		return true
	}
	if c.isCorrectElision(w) {
		return true
	}
	if c.lang.IsKnownAbbreviation(word) {
		return true
	}
	if _, ok := c.dict.DerivePluralInfo(w); ok {
		return true
	}
	if c.verbs != nil && c.verbs.IsValidVerbForm(word) {
		return len(c.jotaConfusions(w)) == 0
	}
	return false
}

var apostrophes = []rune{'\'', '’'}

// isCorrectElision accepts apostrophe contractions (Catalan l'home)
// when the prefix including the apostrophe and the suffix are both
// independently known. The suffix also accepts the derived-plural
// fallback.
func (c *Corrector) isCorrectElision(w string) bool {
	for _, apos := range apostrophes {
		pos := strings.IndexRune(w, apos)
		if pos < 0 {
			continue
		}
		cut := pos + len(string(apos))
		prefix, suffix := w[:cut], w[cut:]
		if suffix == "" || !c.dict.Contains(prefix) {
			continue
		}
		if c.dict.Contains(suffix) {
			return true
		}
		if _, ok := c.dict.DerivePluralInfo(suffix); ok {
			return true
		}
	}
	return false
}

// Suggestions ranks correction candidates for word: ascending edit
// distance, then descending frequency, then lexicographic, truncated
// to the configured maximum. An exact dictionary hit yields nothing.
func (c *Corrector) Suggestions(word string) []Suggestion {
	w := strings.ToLower(word)

	if c.dict.Contains(w) {
		return nil
	}

	// Elisions: keep the prefix, search only the part after the
	// apostrophe. Candidates with non-word characters are noise from
	// technical vocabulary and get filtered out.
	for _, apos := range apostrophes {
		pos := strings.IndexRune(w, apos)
		if pos < 0 {
			continue
		}
		cut := pos + len(string(apos))
		prefix, suffix := w[:cut], w[cut:]
		if suffix == "" || !c.dict.Contains(prefix) {
			continue
		}
		var suggestions []Suggestion
		for _, m := range c.dict.SearchWithinDistance(suffix, c.maxDistance) {
			if !c.isWordLike(m.Word) {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Word:      prefix + m.Word,
				Distance:  m.Distance,
				Frequency: m.Info.Frequency,
			})
		}
		rankSuggestions(suggestions)
		return truncate(suggestions, c.maxSuggestions)
	}

	var suggestions []Suggestion
	for _, m := range c.dict.SearchWithinDistance(w, c.maxDistance) {
		suggestions = append(suggestions, Suggestion{
			Word:      m.Word,
			Distance:  m.Distance,
			Frequency: m.Info.Frequency,
		})
	}
	rankSuggestions(suggestions)
	suggestions = truncate(suggestions, c.maxSuggestions)
	// Boosting can add variants that did not survive the cut, so the cap
	// is enforced again afterwards.
	return truncate(c.boostJotaConfusions(w, suggestions), c.maxSuggestions)
}

func rankSuggestions(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Distance != s[j].Distance {
			return s[i].Distance < s[j].Distance
		}
		if s[i].Frequency != s[j].Frequency {
			return s[i].Frequency > s[j].Frequency
		}
		return s[i].Word < s[j].Word
	})
}

func truncate(s []Suggestion, max int) []Suggestion {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func (c *Corrector) isWordLike(word string) bool {
	for _, r := range word {
		if !c.lang.IsWordInternalRune(r) {
			return false
		}
	}
	return true
}

// jotaConfusions returns the dictionary words obtained by replacing a
// "j" before a front vowel with "g": coje → coge, dijiste stays since
// digiste is not a word. This substitution is by far the most common
// spelling confusion involving j, so matches outrank ordinary
// distance-1 candidates.
func (c *Corrector) jotaConfusions(w string) []string {
	var out []string
	runes := []rune(w)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != 'j' {
			continue
		}
		switch runes[i+1] {
		case 'e', 'i', 'é', 'í':
		default:
			continue
		}
		variant := string(runes[:i]) + "g" + string(runes[i+1:])
		if variant != w && c.dict.Contains(variant) {
			out = append(out, variant)
		}
	}
	return out
}

// boostJotaConfusions prepends j→g corrections to the ranked list,
// deduplicated, at distance 1 with maximal frequency.
func (c *Corrector) boostJotaConfusions(w string, suggestions []Suggestion) []Suggestion {
	confusions := c.jotaConfusions(w)
	if len(confusions) == 0 {
		return suggestions
	}

	boosted := make([]Suggestion, 0, len(confusions)+len(suggestions))
	seen := make(map[string]bool, len(confusions))
	for _, variant := range confusions {
		if seen[variant] {
			continue
		}
		seen[variant] = true
		boosted = append(boosted, Suggestion{
			Word:      variant,
			Distance:  1,
			Frequency: math.MaxInt,
		})
	}
	for _, s := range suggestions {
		if !seen[s.Word] {
			boosted = append(boosted, s)
		}
	}
	return boosted
}

// MaxDistance returns the configured fuzzy-search bound.
func (c *Corrector) MaxDistance() int { return c.maxDistance }

// MaxSuggestions returns the configured suggestion cap.
func (c *Corrector) MaxSuggestions() int { return c.maxSuggestions }
