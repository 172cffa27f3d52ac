package ortograf

// Language bundles the per-language policy the corrector and the verb
// recognizer depend on. Implementations must be stateless and safe for
// concurrent use; the core treats every method as opaque, swappable
// policy rather than compiled-in branching.
type Language interface {
	// Code returns the ISO 639-1 code, e.g. "es".
	Code() string
	// Name returns the language's own name for itself.
	Name() string

	// DepluralizeCandidates proposes singular candidates for a plural
	// surface form, most specific rule first. It does not consult any
	// dictionary; candidates are probed by Trie.DerivePluralInfo.
	DepluralizeCandidates(word string) []string

	// IsKnownAbbreviation reports whether word belongs to the language's
	// closed list of conventional abbreviations.
	IsKnownAbbreviation(word string) bool

	// IsWordInternalRune reports whether r may appear inside a word of
	// the language. Used to filter noisy technical-symbol matches out of
	// elision suggestions.
	IsWordInternalRune(r rune) bool

	// VerbPrefixes returns the derivational prefixes tried by the verb
	// recognizer, longest first. Empty disables prefix stripping.
	VerbPrefixes() []string

	// CliticPronouns returns the pronouns that attach to imperative,
	// gerund and infinitive forms. Empty disables enclitic stripping.
	CliticPronouns() []string
}
