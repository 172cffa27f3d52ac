package ortograf

import "strings"

// encliticResult is a verb base with the pronouns that were attached to
// it: dámelo → base "da", pronouns [me lo].
type encliticResult struct {
	base     string
	pronouns []string
}

// encliticAnalyzer strips clitic pronouns off imperative, gerund and
// infinitive forms. The pronoun inventory comes from the language
// descriptor; the base-shape validation is Spanish morphology.
type encliticAnalyzer struct {
	clitics []string
}

// strip tries to remove one to three trailing pronouns such that what
// remains is a plausible verb base. More pronouns are tried before
// fewer, so "dámelo" resolves as da+me+lo rather than dáme+lo.
func (e encliticAnalyzer) strip(word string) (encliticResult, bool) {
	if len(e.clitics) == 0 {
		return encliticResult{}, false
	}
	for n := 3; n >= 1; n-- {
		if res, ok := e.stripN(word, n, nil); ok {
			return res, true
		}
	}
	return encliticResult{}, false
}

func (e encliticAnalyzer) stripN(current string, remaining int, pronouns []string) (encliticResult, bool) {
	if remaining == 0 {
		if !isValidVerbBase(current) {
			return encliticResult{}, false
		}
		return encliticResult{base: restoreAccent(current), pronouns: pronouns}, true
	}

	for _, clitic := range e.clitics {
		base, ok := strings.CutSuffix(current, clitic)
		if !ok || base == "" {
			continue
		}
		if len([]rune(base)) < 2 {
			continue
		}
		next := append([]string{clitic}, pronouns...)
		if res, ok := e.stripN(base, remaining-1, next); ok {
			return res, true
		}
	}
	return encliticResult{}, false
}

// isValidVerbBase reports whether base has the shape of a verb form that
// can carry enclitics: an infinitive, a gerund, an imperative (including
// the irregular monosyllabic ones), an exhortative first-person plural,
// or a vosotros imperative. Accented variants are accepted since clitic
// attachment shifts stress.
func isValidVerbBase(base string) bool {
	if base == "" {
		return false
	}

	// Exhortative 1st plural keeps its clitics: analicémoslo → analicémos.
	for _, suffix := range []string{"amos", "emos", "imos", "ámos", "émos", "ímos"} {
		if strings.HasSuffix(base, suffix) {
			return len([]rune(base)) >= 4
		}
	}

	runes := []rune(base)
	last := runes[len(runes)-1]
	switch last {
	case 'r':
		// Infinitive, possibly accented: dár, decír.
		if len(runes) < 2 {
			return false
		}
		switch runes[len(runes)-2] {
		case 'a', 'e', 'i', 'á', 'é', 'í':
			return true
		}
		return false
	case 'o':
		// Gerund, possibly accented: cantándo, diciéndo.
		for _, suffix := range []string{"ando", "ándo", "iendo", "iéndo", "yendo", "yéndo"} {
			if strings.HasSuffix(base, suffix) {
				return true
			}
		}
		return false
	case 'a', 'á', 'e', 'é':
		// tú imperative: canta, cánta, come, víve.
		return len(runes) >= 2
	case 'i', 'í', 'n', 'z', 'l':
		// Monosyllabic imperatives: di, pon, sal, haz.
		return isMonosyllabicImperative(base) || isMonosyllabicImperative(stripAccents(base))
	case 'd':
		// vosotros imperative: cantad, comed, vivid.
		if len(runes) < 2 {
			return false
		}
		switch runes[len(runes)-2] {
		case 'a', 'e', 'i':
			return true
		}
		return false
	}
	return false
}

// restoreAccent undoes the stress mark that clitic attachment added:
// dármelo strips to "dár" which restores to "dar", cantándose to
// "cantándo" → "cantando", analicémoslo to "analicémos" → "analicemos".
func restoreAccent(base string) string {
	for _, shift := range []struct{ accented, plain string }{
		{"ámos", "amos"}, {"émos", "emos"}, {"ímos", "imos"},
	} {
		if stem, ok := strings.CutSuffix(base, shift.accented); ok {
			return stem + shift.plain
		}
	}

	if strings.HasSuffix(base, "ár") || strings.HasSuffix(base, "ér") || strings.HasSuffix(base, "ír") {
		return stripAccents(base)
	}

	if countVowels(base) == 1 {
		plain := stripAccents(base)
		if isMonosyllabicImperative(plain) {
			return plain
		}
	}

	if stem, ok := strings.CutSuffix(base, "ándo"); ok {
		return stem + "ando"
	}
	if stem, ok := strings.CutSuffix(base, "iéndo"); ok {
		return stem + "iendo"
	}

	return base
}

func isMonosyllabicImperative(word string) bool {
	switch word {
	case "da", "dá", "di", "dí", "ve", "pon", "sal", "ten", "ven", "haz", "se", "sé":
		return true
	}
	return false
}

// isInfinitiveShape reports whether base ends in one of the three
// infinitive suffixes.
func isInfinitiveShape(base string) bool {
	return strings.HasSuffix(base, "ar") || strings.HasSuffix(base, "er") || strings.HasSuffix(base, "ir")
}

// isGerundShape reports whether base ends in a gerund suffix, accented
// or not.
func isGerundShape(base string) bool {
	for _, suffix := range []string{"ando", "iendo", "yendo", "ándo", "iéndo", "yéndo"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// couldBeImperative reports whether base has an imperative shape. Hard
// to pin down without context, so this over-accepts; callers confirm
// against the infinitive set.
func couldBeImperative(base string) bool {
	if isMonosyllabicImperative(base) {
		return true
	}

	// Exhortative 1st plural: hagamos, analicemos, demos.
	for _, suffix := range []string{"amos", "emos", "imos", "ámos", "émos", "ímos"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}

	runes := []rune(base)
	if len(runes) >= 2 {
		switch string(runes[len(runes)-2:]) {
		case "ad", "ed", "id":
			return true
		}
	}
	if len(runes) >= 1 {
		switch runes[len(runes)-1] {
		case 'a', 'e':
			return true
		}
	}
	return false
}
