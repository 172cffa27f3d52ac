package ortograf

import "strings"

// trieNode is one character of the prefix tree. Children are keyed by
// lowercase rune; keys are case-folded on insertion and lookup.
type trieNode struct {
	children map[rune]*trieNode
	info     WordInfo
	isWord   bool
}

func (n *trieNode) child(r rune) *trieNode {
	if n.children == nil {
		return nil
	}
	return n.children[r]
}

func (n *trieNode) ensureChild(r rune) *trieNode {
	if n.children == nil {
		n.children = make(map[rune]*trieNode)
	}
	c := n.children[r]
	if c == nil {
		c = &trieNode{}
		n.children[r] = c
	}
	return c
}

// Trie is a prefix-tree dictionary. Construction is single-writer; once
// built, all read operations are safe for concurrent use. Insert and
// SetWordInfo require exclusive access.
type Trie struct {
	root      trieNode
	wordCount int

	// depluralize produces singular candidates for a plural surface form.
	// Injected per language; nil disables plural derivation.
	depluralize func(word string) []string
}

// NewTrie returns an empty dictionary.
func NewTrie() *Trie {
	return &Trie{}
}

// SetDepluralizer injects the language's depluralization function used by
// DerivePluralInfo and GetOrDerive.
func (t *Trie) SetDepluralizer(fn func(word string) []string) {
	t.depluralize = fn
}

// Insert adds word with the given metadata. Keys are lowercased. If the
// word is already present, the existing entry is only overwritten when
// the incoming frequency is strictly greater.
func (t *Trie) Insert(word string, info WordInfo) {
	node := &t.root
	for _, r := range strings.ToLower(word) {
		node = node.ensureChild(r)
	}
	if !node.isWord {
		t.wordCount++
		node.isWord = true
		node.info = info
		return
	}
	if info.Frequency > node.info.Frequency {
		node.info = info
	}
}

// InsertWord adds word with default metadata.
func (t *Trie) InsertWord(word string) {
	t.Insert(word, DefaultWordInfo())
}

// SetWordInfo replaces the metadata of word unconditionally, inserting
// the word if it is not yet present.
func (t *Trie) SetWordInfo(word string, info WordInfo) {
	node := &t.root
	for _, r := range strings.ToLower(word) {
		node = node.ensureChild(r)
	}
	if !node.isWord {
		t.wordCount++
		node.isWord = true
	}
	node.info = info
}

func (t *Trie) walkTo(word string) *trieNode {
	node := &t.root
	for _, r := range strings.ToLower(word) {
		node = node.child(r)
		if node == nil {
			return nil
		}
	}
	return node
}

// Contains reports whether word is stored, ignoring case.
func (t *Trie) Contains(word string) bool {
	node := t.walkTo(word)
	return node != nil && node.isWord
}

// Lookup returns the metadata stored for word.
func (t *Trie) Lookup(word string) (WordInfo, bool) {
	node := t.walkTo(word)
	if node == nil || !node.isWord {
		return WordInfo{}, false
	}
	return node.info, true
}

// WordsWithPrefix returns every stored word beginning with prefix, in no
// particular order.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	p := strings.ToLower(prefix)
	node := t.walkTo(p)
	if node == nil {
		return nil
	}
	var words []string
	collectWords(node, p, func(w string, _ WordInfo) {
		words = append(words, w)
	})
	return words
}

// Words calls fn for every stored word with its metadata, in no
// particular order.
func (t *Trie) Words(fn func(word string, info WordInfo)) {
	collectWords(&t.root, "", fn)
}

func collectWords(node *trieNode, prefix string, fn func(string, WordInfo)) {
	if node.isWord {
		fn(prefix, node.info)
	}
	for r, child := range node.children {
		collectWords(child, prefix+string(r), fn)
	}
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.wordCount
}

// DerivePluralInfo synthesizes plural metadata for a word that is not
// stored literally: the injected depluralizer proposes singular
// candidates, and the first stored candidate that is a noun or adjective
// and not already plural supplies the entry. The result carries the
// singular's category and gender, number forced to plural, and half the
// singular's frequency (floor 1). Nothing is materialized into the tree.
// What counts as a plural surface form is entirely the depluralizer's
// business; words it returns no candidates for derive nothing.
func (t *Trie) DerivePluralInfo(word string) (WordInfo, bool) {
	if t.depluralize == nil {
		return WordInfo{}, false
	}
	w := strings.ToLower(word)
	if t.Contains(w) {
		return WordInfo{}, false
	}
	for _, singular := range t.depluralize(w) {
		info, ok := t.Lookup(singular)
		if !ok {
			continue
		}
		if info.Category != CategoryNoun && info.Category != CategoryAdjective {
			continue
		}
		if info.Number == NumberPlural {
			continue
		}
		derived := info
		derived.Number = NumberPlural
		derived.Frequency = info.Frequency / 2
		if derived.Frequency < 1 {
			derived.Frequency = 1
		}
		return derived, true
	}
	return WordInfo{}, false
}

// GetOrDerive looks word up, falling back to plural derivation when the
// word is not stored literally.
func (t *Trie) GetOrDerive(word string) (WordInfo, bool) {
	if info, ok := t.Lookup(word); ok {
		return info, true
	}
	return t.DerivePluralInfo(word)
}
