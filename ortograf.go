// Package ortograf provides spelling correction for inflected languages,
// built around a prefix-tree dictionary with bounded fuzzy lookup and a
// verb-form recognition engine. Spanish is the fully specified language;
// other languages plug in through the Language interface.
package ortograf

import "strings"

// WordCategory is the grammatical category of a dictionary entry.
type WordCategory int

const (
	CategoryOther WordCategory = iota
	CategoryNoun
	CategoryVerb
	CategoryAdjective
	CategoryAdverb
	CategoryArticle
	CategoryPreposition
	CategoryConjunction
	CategoryPronoun
	CategoryDeterminer
)

// ParseCategory maps a dictionary-file field to a WordCategory.
// Spanish names, English names and short forms are all accepted.
func ParseCategory(s string) WordCategory {
	switch strings.ToLower(s) {
	case "sustantivo", "noun", "n":
		return CategoryNoun
	case "verbo", "verb", "v":
		return CategoryVerb
	case "adjetivo", "adjective", "adj":
		return CategoryAdjective
	case "adverbio", "adverb", "adv":
		return CategoryAdverb
	case "articulo", "artículo", "article", "art":
		return CategoryArticle
	case "preposicion", "preposición", "preposition", "prep":
		return CategoryPreposition
	case "conjuncion", "conjunción", "conjunction", "conj":
		return CategoryConjunction
	case "pronombre", "pronoun", "pron":
		return CategoryPronoun
	case "determinante", "determiner", "det":
		return CategoryDeterminer
	default:
		return CategoryOther
	}
}

func (c WordCategory) String() string {
	switch c {
	case CategoryNoun:
		return "noun"
	case CategoryVerb:
		return "verb"
	case CategoryAdjective:
		return "adjective"
	case CategoryAdverb:
		return "adverb"
	case CategoryArticle:
		return "article"
	case CategoryPreposition:
		return "preposition"
	case CategoryConjunction:
		return "conjunction"
	case CategoryPronoun:
		return "pronoun"
	case CategoryDeterminer:
		return "determiner"
	default:
		return "other"
	}
}

// Gender is the grammatical gender of a dictionary entry.
type Gender int

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
)

// ParseGender maps a dictionary-file field to a Gender.
func ParseGender(s string) Gender {
	switch strings.ToLower(s) {
	case "m", "masc", "masculine", "masculino":
		return GenderMasculine
	case "f", "fem", "feminine", "femenino":
		return GenderFeminine
	default:
		return GenderNone
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "m"
	case GenderFeminine:
		return "f"
	default:
		return ""
	}
}

// Number is the grammatical number of a dictionary entry.
type Number int

const (
	NumberNone Number = iota
	NumberSingular
	NumberPlural
)

// ParseNumber maps a dictionary-file field to a Number.
func ParseNumber(s string) Number {
	switch strings.ToLower(s) {
	case "s", "sing", "singular":
		return NumberSingular
	case "p", "pl", "plural":
		return NumberPlural
	default:
		return NumberNone
	}
}

func (n Number) String() string {
	switch n {
	case NumberSingular:
		return "s"
	case NumberPlural:
		return "p"
	default:
		return ""
	}
}

// WordInfo is the metadata attached to a dictionary word.
type WordInfo struct {
	Category  WordCategory
	Gender    Gender
	Number    Number
	Extra     string
	Frequency int
}

// DefaultWordInfo returns the metadata used when a word is inserted
// without explicit fields: category other, frequency 1.
func DefaultWordInfo() WordInfo {
	return WordInfo{Category: CategoryOther, Frequency: 1}
}
