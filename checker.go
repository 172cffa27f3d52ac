package ortograf

// Checker bundles the dictionary, language descriptor, verb recognizer
// and corrector into one ready-to-use engine. Construction is the only
// mutating phase; a built Checker is safe for concurrent reads.
type Checker struct {
	dict      *Trie
	lang      Language
	verbs     *VerbRecognizer
	corrector *Corrector
}

// NewChecker loads the dictionary at dictPath and builds the full
// engine for lang.
func NewChecker(dictPath string, lang Language, opts ...Option) (*Checker, error) {
	dict, err := LoadDictionary(dictPath)
	if err != nil {
		return nil, err
	}
	return NewCheckerFromTrie(dict, lang, opts...), nil
}

// NewCheckerFromTrie builds the engine over an already-populated trie.
// The trie must not be mutated afterwards while the Checker is in use.
func NewCheckerFromTrie(dict *Trie, lang Language, opts ...Option) *Checker {
	verbs := NewVerbRecognizer(dict, lang)
	opts = append([]Option{WithVerbRecognizer(verbs)}, opts...)
	return &Checker{
		dict:      dict,
		lang:      lang,
		verbs:     verbs,
		corrector: NewCorrector(dict, lang, opts...),
	}
}

// IsCorrect reports whether word is acceptable.
func (c *Checker) IsCorrect(word string) bool {
	return c.corrector.IsCorrect(word)
}

// Suggestions ranks correction candidates for word.
func (c *Checker) Suggestions(word string) []Suggestion {
	return c.corrector.Suggestions(word)
}

// Infinitive resolves a conjugated form to its infinitive.
func (c *Checker) Infinitive(form string) (string, bool) {
	return c.verbs.Infinitive(form)
}

// Dict exposes the underlying dictionary.
func (c *Checker) Dict() *Trie { return c.dict }

// Language exposes the language descriptor.
func (c *Checker) Language() Language { return c.lang }

// Verbs exposes the verb recognizer.
func (c *Checker) Verbs() *VerbRecognizer { return c.verbs }
