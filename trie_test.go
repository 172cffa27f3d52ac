package ortograf

import (
	"sort"
	"strings"
	"testing"
)

func nounInfo(freq int) WordInfo {
	return WordInfo{Category: CategoryNoun, Gender: GenderFeminine, Number: NumberSingular, Frequency: freq}
}

func TestTrieInsertAndContains(t *testing.T) {
	trie := NewTrie()
	trie.Insert("casa", nounInfo(10))
	trie.InsertWord("perro")

	if !trie.Contains("casa") {
		t.Error("casa should be in the trie")
	}
	if !trie.Contains("perro") {
		t.Error("perro should be in the trie")
	}
	if trie.Contains("gato") {
		t.Error("gato should not be in the trie")
	}
	if trie.Contains("cas") {
		t.Error("prefix cas is not a word")
	}
	if got := trie.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestTrieCaseFolding(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Hola", DefaultWordInfo())

	for _, w := range []string{"hola", "HOLA", "HoLa"} {
		if !trie.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}
}

func TestTrieFrequencyDominance(t *testing.T) {
	trie := NewTrie()
	trie.Insert("casa", nounInfo(10))
	trie.Insert("casa", nounInfo(5))

	info, ok := trie.Lookup("casa")
	if !ok {
		t.Fatal("casa should exist")
	}
	if info.Frequency != 10 {
		t.Errorf("lower frequency overwrote entry: got %d, want 10", info.Frequency)
	}

	trie.Insert("casa", nounInfo(20))
	info, _ = trie.Lookup("casa")
	if info.Frequency != 20 {
		t.Errorf("higher frequency should overwrite: got %d, want 20", info.Frequency)
	}

	if got := trie.Len(); got != 1 {
		t.Errorf("reinsertion changed word count: Len() = %d, want 1", got)
	}
}

func TestTrieSetWordInfo(t *testing.T) {
	trie := NewTrie()
	trie.Insert("casa", nounInfo(100))

	// Unconditional replace, even with a lower frequency.
	trie.SetWordInfo("casa", nounInfo(1))
	info, _ := trie.Lookup("casa")
	if info.Frequency != 1 {
		t.Errorf("SetWordInfo did not replace: got %d, want 1", info.Frequency)
	}

	// Also inserts when absent.
	trie.SetWordInfo("mesa", nounInfo(7))
	if !trie.Contains("mesa") {
		t.Error("SetWordInfo should insert missing words")
	}
	if got := trie.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestTrieWordsWithPrefix(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"casa", "casado", "caso", "cantar", "perro"} {
		trie.InsertWord(w)
	}

	got := trie.WordsWithPrefix("cas")
	sort.Strings(got)
	want := []string{"casa", "casado", "caso"}
	if len(got) != len(want) {
		t.Fatalf("WordsWithPrefix(cas) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WordsWithPrefix(cas)[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if got := trie.WordsWithPrefix("zz"); len(got) != 0 {
		t.Errorf("WordsWithPrefix(zz) = %v, want empty", got)
	}
}

func TestDerivePluralInfo(t *testing.T) {
	lang := NewSpanish()
	trie := NewTrie()
	trie.SetDepluralizer(lang.DepluralizeCandidates)

	trie.Insert("abuela", WordInfo{Category: CategoryNoun, Gender: GenderFeminine, Number: NumberSingular, Frequency: 40})
	trie.Insert("canción", WordInfo{Category: CategoryNoun, Gender: GenderFeminine, Number: NumberSingular, Frequency: 30})
	trie.Insert("cantar", WordInfo{Category: CategoryVerb, Frequency: 100})

	info, ok := trie.DerivePluralInfo("abuelas")
	if !ok {
		t.Fatal("abuelas should derive from abuela")
	}
	if info.Number != NumberPlural {
		t.Errorf("derived number = %v, want plural", info.Number)
	}
	if info.Frequency != 20 {
		t.Errorf("derived frequency = %d, want 20 (halved)", info.Frequency)
	}
	if info.Gender != GenderFeminine {
		t.Errorf("derived gender = %v, want feminine", info.Gender)
	}

	// The synthesized entry is never materialized.
	if trie.Contains("abuelas") {
		t.Error("derivation must not insert the plural")
	}

	// -iones plural.
	if _, ok := trie.DerivePluralInfo("canciones"); !ok {
		t.Error("canciones should derive from canción")
	}

	// Verbs never derive.
	if _, ok := trie.DerivePluralInfo("cantares"); ok {
		t.Error("verb category must not derive a plural")
	}

	// A word literally present does not derive.
	trie.Insert("cosas", WordInfo{Category: CategoryNoun, Number: NumberPlural, Frequency: 5})
	if _, ok := trie.DerivePluralInfo("cosas"); ok {
		t.Error("present keys must not derive")
	}
}

// The plural marker is the depluralizer's business, not the trie's: a
// depluralizer for a language marking plurals with -x derives fine, and
// a word the depluralizer proposes nothing for derives nothing.
func TestDerivePluralMarkerIsLanguagePolicy(t *testing.T) {
	trie := NewTrie()
	trie.SetDepluralizer(func(word string) []string {
		if stem, ok := strings.CutSuffix(word, "x"); ok && stem != "" {
			return []string{stem}
		}
		return nil
	})
	trie.Insert("casa", WordInfo{Category: CategoryNoun, Gender: GenderFeminine, Number: NumberSingular, Frequency: 40})

	info, ok := trie.DerivePluralInfo("casax")
	if !ok {
		t.Fatal("casax should derive from casa under the -x marker")
	}
	if info.Number != NumberPlural || info.Frequency != 20 {
		t.Errorf("derived = %+v, want plural with frequency 20", info)
	}

	if _, ok := trie.DerivePluralInfo("casas"); ok {
		t.Error("casas proposes no candidates under the -x marker")
	}
}

func TestDerivePluralFrequencyFloor(t *testing.T) {
	lang := NewSpanish()
	trie := NewTrie()
	trie.SetDepluralizer(lang.DepluralizeCandidates)
	trie.Insert("flor", WordInfo{Category: CategoryNoun, Gender: GenderFeminine, Number: NumberSingular, Frequency: 1})

	info, ok := trie.DerivePluralInfo("flores")
	if !ok {
		t.Fatal("flores should derive from flor")
	}
	if info.Frequency != 1 {
		t.Errorf("halved frequency floor = %d, want 1", info.Frequency)
	}
}

func TestGetOrDerive(t *testing.T) {
	lang := NewSpanish()
	trie := NewTrie()
	trie.SetDepluralizer(lang.DepluralizeCandidates)
	trie.Insert("mesa", nounInfo(12))

	if info, ok := trie.GetOrDerive("mesa"); !ok || info.Frequency != 12 {
		t.Errorf("GetOrDerive(mesa) = %+v, %v; want stored entry", info, ok)
	}
	if info, ok := trie.GetOrDerive("mesas"); !ok || info.Number != NumberPlural {
		t.Errorf("GetOrDerive(mesas) = %+v, %v; want derived plural", info, ok)
	}
	if _, ok := trie.GetOrDerive("sillas"); ok {
		t.Error("GetOrDerive(sillas) should fail, singular unknown")
	}
}

func TestSearchWithinDistance(t *testing.T) {
	trie := NewTrie()
	words := []string{"casa", "cosa", "caza", "masa", "cantar", "problema", "casona"}
	for _, w := range words {
		trie.Insert(w, WordInfo{Category: CategoryNoun, Frequency: 10})
	}

	matches := trie.SearchWithinDistance("casa", 1)
	byWord := map[string]int{}
	for _, m := range matches {
		byWord[m.Word] = m.Distance
	}

	if d, ok := byWord["casa"]; !ok || d != 0 {
		t.Errorf("casa: distance %d, found %v; want 0, true", d, ok)
	}
	for _, w := range []string{"cosa", "caza", "masa"} {
		if d, ok := byWord[w]; !ok || d != 1 {
			t.Errorf("%s: distance %d, found %v; want 1, true", w, d, ok)
		}
	}
	if _, ok := byWord["cantar"]; ok {
		t.Error("cantar is far from casa and must be pruned")
	}
	if _, ok := byWord["casona"]; ok {
		t.Error("casona is at distance 2, outside maxDistance 1")
	}
}

// Every reported match must agree with the reference edit distance, and
// no in-tolerance word may be missed.
func TestSearchWithinDistanceMatchesReference(t *testing.T) {
	trie := NewTrie()
	words := []string{
		"cantar", "cantor", "contar", "cortar", "catar", "cazar",
		"casa", "cosa", "caza", "taza", "raza", "plaza",
	}
	for _, w := range words {
		trie.InsertWord(w)
	}

	for _, query := range []string{"cantar", "casa", "plaz", "xyz"} {
		for maxDist := 0; maxDist <= 2; maxDist++ {
			got := map[string]int{}
			for _, m := range trie.SearchWithinDistance(query, maxDist) {
				got[m.Word] = m.Distance
			}
			for _, w := range words {
				ref := Levenshtein(query, w)
				d, found := got[w]
				if ref <= maxDist && !found {
					t.Errorf("query %q maxDist %d: missing %q (distance %d)", query, maxDist, w, ref)
				}
				if found && d != ref {
					t.Errorf("query %q: %q reported distance %d, reference %d", query, w, d, ref)
				}
				if found && ref > maxDist {
					t.Errorf("query %q maxDist %d: %q out of tolerance (distance %d)", query, maxDist, w, ref)
				}
			}
		}
	}
}

func TestSearchWithinDistanceReturnsInfo(t *testing.T) {
	trie := NewTrie()
	trie.Insert("casa", nounInfo(77))

	matches := trie.SearchWithinDistance("cassa", 2)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Info.Frequency != 77 {
		t.Errorf("match frequency = %d, want 77", matches[0].Info.Frequency)
	}
}
