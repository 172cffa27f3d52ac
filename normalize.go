package ortograf

import "strings"

// accentReplacer strips the acute accents Spanish spelling uses to mark
// stress. Clitic attachment and imperative stress shifts add or move
// these accents, so recognition frequently needs the bare form.
var accentReplacer = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// stripAccents removes acute accents from the lowercase vowels of s.
// The diaeresis (ü) and ñ are untouched: they are letters in their own
// right, not stress marks.
func stripAccents(s string) string {
	return accentReplacer.Replace(s)
}

// countVowels counts vowel runes in s, a cheap syllable approximation
// used to detect monosyllabic imperative bases.
func countVowels(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune("aeiouáéíóúü", r) {
			n++
		}
	}
	return n
}

func isSpanishVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'á', 'é', 'í', 'ó', 'ú', 'ü':
		return true
	}
	return false
}
