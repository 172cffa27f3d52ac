package ortograf

import "strings"

// VerbRecognizer decides whether a word is a conjugated form of a verb
// the dictionary knows, without every form being listed. It layers six
// strategies, tried in order: the irregular table, regular conjugation
// endings, stem alternations, orthographic spelling changes, known
// derivational prefixes, and enclitic pronoun stripping.
type VerbRecognizer struct {
	infinitives  map[string]bool
	irregular    map[string]string
	stemChanging map[string]StemChange
	pronominal   map[string]string
	enclitics    encliticAnalyzer
	prefixes     []string
}

// NewVerbRecognizer collects every infinitive the dictionary marks as a
// verb and pairs it with the shared irregular and stem-change tables.
// Pronominal infinitives (sentirse) also register their base (sentir),
// so conjugated forms resolve back to the pronominal entry.
func NewVerbRecognizer(dict *Trie, lang Language) *VerbRecognizer {
	r := &VerbRecognizer{
		infinitives:  make(map[string]bool),
		irregular:    irregularForms(),
		stemChanging: stemChangingVerbs(),
		pronominal:   make(map[string]string),
		enclitics:    encliticAnalyzer{clitics: lang.CliticPronouns()},
		prefixes:     lang.VerbPrefixes(),
	}

	dict.Words(func(word string, info WordInfo) {
		if info.Category != CategoryVerb {
			return
		}
		pronominal := strings.HasSuffix(word, "arse") ||
			strings.HasSuffix(word, "erse") ||
			strings.HasSuffix(word, "irse")
		if !pronominal && !isInfinitiveShape(word) {
			return
		}
		r.infinitives[word] = true
		if pronominal {
			base := word[:len(word)-len("se")]
			r.pronominal[base] = word
			r.infinitives[base] = true
		}
	})

	return r
}

// IsValidVerbForm reports whether word is a recognizable conjugated
// form. Matching is case-insensitive.
func (r *VerbRecognizer) IsValidVerbForm(word string) bool {
	w := strings.ToLower(word)

	if _, ok := r.irregular[w]; ok {
		return true
	}
	if r.recognizeRegular(w) {
		return true
	}
	if r.recognizeStemChanging(w) {
		return true
	}
	if r.recognizeOrthographicZar(w) {
		return true
	}
	if r.recognizeOrthographicGar(w) {
		return true
	}
	if r.recognizeOrthographicCar(w) {
		return true
	}
	if r.recognizePrefixed(w) {
		return true
	}
	return r.recognizeWithEnclitics(w)
}

// IsGerund reports whether word is the gerund of a known verb. Unlike a
// bare suffix check this confirms the base: "comiendo" is a gerund of
// comer, but "blando" and "mando" are not gerunds at all.
func (r *VerbRecognizer) IsGerund(word string) bool {
	w := strings.ToLower(word)
	if !isGerundShape(w) {
		return false
	}
	return r.recognizeGerundBase(w)
}

// Infinitive resolves a conjugated form to its infinitive. When the
// dictionary carries a pronominal version of the verb, that version is
// returned: sientes → sentirse.
func (r *VerbRecognizer) Infinitive(word string) (string, bool) {
	w := strings.ToLower(word)

	if inf, ok := r.irregular[w]; ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractRegular(w); ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractStemChanging(w); ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractOrthographicZar(w); ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractOrthographicGar(w); ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractOrthographicCar(w); ok {
		return r.preferPronominal(inf), true
	}
	if inf, ok := r.extractPrefixed(w); ok {
		return inf, true
	}
	return r.extractWithEnclitics(w)
}

func (r *VerbRecognizer) preferPronominal(inf string) string {
	if pronominal, ok := r.pronominal[inf]; ok {
		return pronominal
	}
	return inf
}

// InfinitiveCount returns how many infinitives the recognizer knows.
func (r *VerbRecognizer) InfinitiveCount() int { return len(r.infinitives) }

// IrregularCount returns the size of the irregular-form table.
func (r *VerbRecognizer) IrregularCount() int { return len(r.irregular) }

// PronominalCount returns how many pronominal verbs were registered.
func (r *VerbRecognizer) PronominalCount() int { return len(r.pronominal) }

// Regular forms.

func (r *VerbRecognizer) recognizeRegular(word string) bool {
	for _, class := range verbClasses {
		if _, ok := r.extractFromClass(word, class); ok {
			return true
		}
	}
	_, ok := r.extractFutureConditional(word)
	return ok
}

func (r *VerbRecognizer) extractRegular(word string) (string, bool) {
	for _, class := range verbClasses {
		if inf, ok := r.extractFromClass(word, class); ok {
			return inf, true
		}
	}
	return r.extractFutureConditional(word)
}

func (r *VerbRecognizer) extractFromClass(word string, class verbClass) (string, bool) {
	for _, ending := range allEndings(class) {
		stem, ok := strings.CutSuffix(word, ending)
		if !ok || stem == "" {
			continue
		}
		candidate := stem + class.infinitiveSuffix()
		if r.infinitives[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// extractFutureConditional handles the two tenses built on the full
// infinitive (cantaré, cantaría) plus the contracted irregular stems
// (tendré → tener, saldría → salir, sabré → saber, querré → querer).
func (r *VerbRecognizer) extractFutureConditional(word string) (string, bool) {
	for _, endings := range [][]string{futuro, condicional} {
		for _, ending := range endings {
			base, ok := strings.CutSuffix(word, ending)
			if !ok {
				continue
			}
			if r.infinitives[base] {
				return base, true
			}
			if inf, ok := r.extractIrregularFutureStem(base); ok {
				return inf, true
			}
		}
	}
	return "", false
}

func (r *VerbRecognizer) extractIrregularFutureStem(stem string) (string, bool) {
	for _, shape := range irregularFutureStemShapes {
		if !strings.HasSuffix(stem, shape.stemSuffix) {
			continue
		}
		base := stem[:len(stem)-shape.trimLen]
		for _, suffix := range shape.infinitives {
			if candidate := base + suffix; r.infinitives[candidate] {
				return candidate, true
			}
		}
	}
	return "", false
}

// Stem alternations.

func (r *VerbRecognizer) recognizeStemChanging(word string) bool {
	_, ok := r.extractStemChanging(word)
	return ok
}

func (r *VerbRecognizer) extractStemChanging(word string) (string, bool) {
	for _, class := range verbClasses {
		if inf, ok := r.extractVowelStemChange(word, class); ok {
			return inf, true
		}
	}
	// c→zc covers -ecer/-ocer (-er) and -ucir (-ir).
	for _, suffix := range []string{"er", "ir"} {
		if inf, ok := r.extractCToZc(word, suffix); ok {
			return inf, true
		}
	}
	return "", false
}

func (r *VerbRecognizer) extractVowelStemChange(word string, class verbClass) (string, bool) {
	suffix := class.infinitiveSuffix()
	for _, ending := range stemChangeEndings(class) {
		changedStem, ok := strings.CutSuffix(word, ending)
		if !ok || changedStem == "" {
			continue
		}
		for _, change := range vowelStemChanges {
			originalStem, ok := change.reverseChange(changedStem)
			if !ok {
				continue
			}
			candidate := originalStem + suffix
			if !r.infinitives[candidate] {
				continue
			}
			registered, ok := r.stemChanging[candidate]
			if !ok {
				continue
			}
			if registered == change {
				return candidate, true
			}
			// -ir verbs classified e→ie raise to e→i in the third
			// person preterite and the gerund: invertir → invirtió.
			if class == classIr && registered == StemEToIe && change == StemEToI &&
				containsString(irPreteriteGerundEndings, ending) {
				return candidate, true
			}
		}
	}
	return "", false
}

func (r *VerbRecognizer) extractCToZc(word, infSuffix string) (string, bool) {
	for _, ending := range cToZcEndings {
		changedStem, ok := strings.CutSuffix(word, ending)
		if !ok || changedStem == "" {
			continue
		}
		originalStem, ok := StemCToZc.reverseChange(changedStem)
		if !ok {
			continue
		}
		candidate := originalStem + infSuffix
		if !r.infinitives[candidate] {
			continue
		}
		if registered, ok := r.stemChanging[candidate]; ok && registered == StemCToZc {
			return candidate, true
		}
	}
	return "", false
}

// Orthographic spelling changes before e.

// zarEndings, garEndings and carEndings are the subjunctive present and
// first-person preterite shapes where -zar, -gar and -car verbs shift
// spelling to keep their stem consonant sound: garantice, largué,
// indiqué.
var (
	zarEndings = []string{"e", "es", "emos", "éis", "en", "é"}
	garEndings = []string{"ue", "ues", "uemos", "uéis", "uen", "ué"}
	carEndings = []string{"que", "ques", "quemos", "quéis", "quen", "qué"}
)

func (r *VerbRecognizer) recognizeOrthographicZar(word string) bool {
	_, ok := r.extractOrthographicZar(word)
	return ok
}

func (r *VerbRecognizer) extractOrthographicZar(word string) (string, bool) {
	for _, ending := range zarEndings {
		stem, ok := strings.CutSuffix(word, ending)
		if !ok || len(stem) < 2 || !strings.HasSuffix(stem, "c") {
			continue
		}
		originalStem := stem[:len(stem)-1] + "z"
		if candidate := originalStem + "ar"; r.infinitives[candidate] {
			return candidate, true
		}
		// Combined with o→ue: fuerce → forzar, almuerce → almorzar.
		if strings.Contains(originalStem, "ue") {
			stemWithO := strings.Replace(originalStem, "ue", "o", 1)
			if candidate := stemWithO + "ar"; r.infinitives[candidate] {
				return candidate, true
			}
		}
	}
	return "", false
}

func (r *VerbRecognizer) recognizeOrthographicGar(word string) bool {
	_, ok := r.extractOrthographicGar(word)
	return ok
}

func (r *VerbRecognizer) extractOrthographicGar(word string) (string, bool) {
	for _, ending := range garEndings {
		stem, ok := strings.CutSuffix(word, ending)
		if !ok || stem == "" || !strings.HasSuffix(stem, "g") {
			continue
		}
		if candidate := stem + "ar"; r.infinitives[candidate] {
			return candidate, true
		}
	}
	return "", false
}

func (r *VerbRecognizer) recognizeOrthographicCar(word string) bool {
	_, ok := r.extractOrthographicCar(word)
	return ok
}

func (r *VerbRecognizer) extractOrthographicCar(word string) (string, bool) {
	for _, ending := range carEndings {
		stem, ok := strings.CutSuffix(word, ending)
		if !ok || stem == "" {
			continue
		}
		if candidate := stem + "car"; r.infinitives[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// Prefixed forms.

func (r *VerbRecognizer) recognizePrefixed(word string) bool {
	prefix, base, ok := stripVerbPrefix(word, r.prefixes)
	if !ok {
		return false
	}
	if _, found := r.irregular[base]; found {
		return true
	}
	if r.recognizeRegular(base) {
		return true
	}
	if r.recognizeStemChanging(base) {
		return true
	}
	if r.infinitives[base] {
		return true
	}
	if baseInf, found := r.extractBaseInfinitive(base); found {
		if r.infinitives[prefix+baseInf] {
			return true
		}
	}
	return false
}

// extractPrefixed reconstructs the prefixed infinitive from the base
// form: deshago → des + hago → des + hacer → deshacer. The
// reconstruction is returned even when the dictionary lacks it, since
// prefixed derivations are productive.
func (r *VerbRecognizer) extractPrefixed(word string) (string, bool) {
	prefix, base, ok := stripVerbPrefix(word, r.prefixes)
	if !ok {
		return "", false
	}
	baseInf, ok := r.extractBaseInfinitive(base)
	if !ok {
		return "", false
	}
	return prefix + baseInf, true
}

func (r *VerbRecognizer) extractBaseInfinitive(word string) (string, bool) {
	if inf, ok := r.irregular[word]; ok {
		return inf, true
	}
	if inf, ok := r.extractRegular(word); ok {
		return inf, true
	}
	return r.extractStemChanging(word)
}

// Enclitic forms.

func (r *VerbRecognizer) recognizeWithEnclitics(word string) bool {
	res, ok := r.enclitics.strip(word)
	if !ok {
		return false
	}
	base := res.base

	if isInfinitiveShape(base) && r.infinitives[base] {
		return true
	}

	if isGerundShape(base) {
		if _, found := r.irregular[stripAccents(base)]; found {
			return true
		}
		if r.recognizeGerundBase(base) {
			return true
		}
	}

	if couldBeImperative(base) {
		if _, found := r.irregular[base]; found {
			return true
		}
		if _, ok := r.extractImperativeBase(base); ok {
			return true
		}
	}
	return false
}

func (r *VerbRecognizer) extractWithEnclitics(word string) (string, bool) {
	res, ok := r.enclitics.strip(word)
	if !ok {
		return "", false
	}
	base := res.base

	if isInfinitiveShape(base) && r.infinitives[base] {
		return r.preferPronominal(base), true
	}

	if isGerundShape(base) {
		if inf, ok := r.extractGerundBase(base); ok {
			return inf, true
		}
	}

	if couldBeImperative(base) {
		if inf, found := r.irregular[base]; found {
			return inf, true
		}
		if inf, ok := r.extractImperativeBase(base); ok {
			return inf, true
		}
	}
	return "", false
}

func (r *VerbRecognizer) recognizeGerundBase(base string) bool {
	_, ok := r.extractGerundBase(base)
	return ok
}

func (r *VerbRecognizer) extractGerundBase(base string) (string, bool) {
	if stem, ok := strings.CutSuffix(base, "ando"); ok {
		if inf := stem + "ar"; r.infinitives[inf] {
			return inf, true
		}
	}
	for _, suffix := range []string{"iendo", "yendo"} {
		if stem, ok := strings.CutSuffix(base, suffix); ok {
			for _, ending := range []string{"er", "ir"} {
				if inf := stem + ending; r.infinitives[inf] {
					return inf, true
				}
			}
		}
	}
	// Accented gerunds from clitic attachment: diciéndo → decir.
	if stem, ok := strings.CutSuffix(base, "ándo"); ok {
		if inf := stem + "ar"; r.infinitives[inf] {
			return inf, true
		}
	}
	if stem, ok := strings.CutSuffix(base, "iéndo"); ok {
		for _, ending := range []string{"er", "ir"} {
			if inf := stem + ending; r.infinitives[inf] {
				return inf, true
			}
		}
	}
	return "", false
}

func (r *VerbRecognizer) extractImperativeBase(base string) (string, bool) {
	// Clitic attachment may have accented the form: cánta → canta.
	base = stripAccents(base)

	// vosotros: cantad, comed, vivid.
	if stem, ok := strings.CutSuffix(base, "ad"); ok {
		if inf := stem + "ar"; r.infinitives[inf] {
			return inf, true
		}
	}
	if stem, ok := strings.CutSuffix(base, "ed"); ok {
		if inf := stem + "er"; r.infinitives[inf] {
			return inf, true
		}
	}
	if stem, ok := strings.CutSuffix(base, "id"); ok {
		if inf := stem + "ir"; r.infinitives[inf] {
			return inf, true
		}
	}
	// tú: canta → cantar, come → comer, vive → vivir.
	if stem, ok := strings.CutSuffix(base, "a"); ok && stem != "" {
		if inf := stem + "ar"; r.infinitives[inf] {
			return inf, true
		}
	}
	if stem, ok := strings.CutSuffix(base, "e"); ok && stem != "" {
		for _, ending := range []string{"er", "ir"} {
			if inf := stem + ending; r.infinitives[inf] {
				return inf, true
			}
		}
	}
	return "", false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
