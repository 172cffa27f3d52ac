package ortograf

import (
	"fmt"
	"strings"
)

// ConjugationTable holds the synthesized paradigm of a verb. Tense rows
// list six forms in person order 1s 2s 3s 1p 2p 3p.
type ConjugationTable struct {
	Infinitive string              `json:"infinitive"`
	Gerund     string              `json:"gerund"`
	Participle string              `json:"participle"`
	Tenses     map[string][]string `json:"tenses"`
}

// Tense row names of a ConjugationTable.
const (
	TensePresente             = "presente"
	TensePreterito            = "pretérito"
	TenseImperfecto           = "imperfecto"
	TenseFuturo               = "futuro"
	TenseCondicional          = "condicional"
	TenseSubjuntivoPresente   = "subjuntivo presente"
	TenseSubjuntivoImperfecto = "subjuntivo imperfecto"
	TenseImperativo           = "imperativo"
)

// bootPersons are the stressed persons where a vowel stem change
// surfaces: 1s, 2s, 3s and 3p.
var bootPersons = [...]int{0, 1, 2, 5}

// Conjugate synthesizes the paradigm of infinitive, applying the
// registered stem change and the z→c, g→gu, c→qu spelling adjustments.
// Verbs with a suppletive paradigm in the irregular table are refused;
// their forms cannot be generated from the stem.
func (r *VerbRecognizer) Conjugate(infinitive string) (*ConjugationTable, error) {
	inf := strings.ToLower(infinitive)
	inf = strings.TrimSuffix(inf, "se")

	class, stem, ok := splitInfinitive(inf)
	if !ok {
		return nil, fmt.Errorf("conjugate %q: not an -ar, -er or -ir infinitive", infinitive)
	}
	for _, irregularInf := range r.irregular {
		if irregularInf == inf {
			return nil, fmt.Errorf("conjugate %q: irregular paradigm", infinitive)
		}
	}

	change, hasChange := r.stemChanging[inf]
	mutated := stem
	if hasChange {
		mutated = applyStemChange(stem, change)
	}

	table := &ConjugationTable{
		Infinitive: inf,
		Gerund:     gerundOf(class, stem, change, hasChange),
		Participle: participleOf(class, stem),
		Tenses:     make(map[string][]string),
	}

	table.Tenses[TensePresente] = presentRow(class, stem, mutated, hasChange && change == StemCToZc)
	table.Tenses[TensePreterito] = preteriteRow(class, stem, change, hasChange)
	table.Tenses[TenseImperfecto] = attachRow(class, stem, imperfectRow(class))
	table.Tenses[TenseFuturo] = attachRow(class, inf, futuro)
	table.Tenses[TenseCondicional] = attachRow(class, inf, condicional)
	table.Tenses[TenseSubjuntivoPresente] = subjunctiveRow(class, stem, mutated, change, hasChange)
	table.Tenses[TenseSubjuntivoImperfecto] = pastSubjunctiveRow(class, stem, change, hasChange)
	table.Tenses[TenseImperativo] = imperativeRow(class, table.Tenses[TensePresente][2], stem)

	return table, nil
}

func splitInfinitive(inf string) (verbClass, string, bool) {
	for _, class := range verbClasses {
		if stem, ok := strings.CutSuffix(inf, class.infinitiveSuffix()); ok && stem != "" {
			return class, stem, true
		}
	}
	return classAr, "", false
}

// applyStemChange mutates the last matching vowel of the stem:
// pens→piens, cont→cuent, conoc→conozc.
func applyStemChange(stem string, change StemChange) string {
	original, changed := change.changePair()
	if change == StemCToZc {
		if base, ok := strings.CutSuffix(stem, "c"); ok {
			return base + "zc"
		}
		return stem
	}
	pos := strings.LastIndex(stem, original)
	if pos < 0 {
		return stem
	}
	return stem[:pos] + changed + stem[pos+len(original):]
}

// raisedStem is the -ir third-person preterite and gerund stem: e→i for
// e→ie and e→i verbs (sentir→sint, pedir→pid), o→u for o→ue verbs
// (dormir→durm).
func raisedStem(stem string, change StemChange) string {
	var original, raised string
	switch change {
	case StemEToIe, StemEToI:
		original, raised = "e", "i"
	case StemOToUe:
		original, raised = "o", "u"
	default:
		return stem
	}
	pos := strings.LastIndex(stem, original)
	if pos < 0 {
		return stem
	}
	return stem[:pos] + raised + stem[pos+len(original):]
}

// adjustSpelling keeps the stem-final consonant sound across the class
// vowel switch. For -ar verbs a hard consonant meets an e-initial
// ending: garantiz+é→garanticé, llegu+é→llegué, indiqu+é→indiqué. For
// -er and -ir verbs a soft consonant meets an a-initial ending:
// venz+a→venza, coj+a→coja, sig+a→siga.
func adjustSpelling(class verbClass, stem, ending string) string {
	if class == classAr {
		if !strings.HasPrefix(ending, "e") && !strings.HasPrefix(ending, "é") {
			return stem
		}
		switch {
		case strings.HasSuffix(stem, "z"):
			return strings.TrimSuffix(stem, "z") + "c"
		case strings.HasSuffix(stem, "gu"):
			return stem
		case strings.HasSuffix(stem, "g"):
			return stem + "u"
		case strings.HasSuffix(stem, "c"):
			return strings.TrimSuffix(stem, "c") + "qu"
		}
		return stem
	}

	if !strings.HasPrefix(ending, "a") && !strings.HasPrefix(ending, "á") && !strings.HasPrefix(ending, "o") {
		return stem
	}
	switch {
	case strings.HasSuffix(stem, "zc"):
		return stem
	case strings.HasSuffix(stem, "gu"):
		return strings.TrimSuffix(stem, "gu") + "g"
	case strings.HasSuffix(stem, "c"):
		return strings.TrimSuffix(stem, "c") + "z"
	case strings.HasSuffix(stem, "g"):
		return strings.TrimSuffix(stem, "g") + "j"
	case strings.HasSuffix(stem, "qu"):
		return strings.TrimSuffix(stem, "qu") + "c"
	}
	return stem
}

func attachRow(class verbClass, stem string, endings []string) []string {
	row := make([]string, len(endings))
	for i, e := range endings {
		row[i] = adjustSpelling(class, stem, e) + e
	}
	return row
}

func presentEndings(class verbClass) []string {
	switch class {
	case classAr:
		return presenteAr
	case classEr:
		return presenteEr
	default:
		return presenteIr
	}
}

func presentRow(class verbClass, stem, mutated string, zc bool) []string {
	endings := presentEndings(class)
	row := attachRow(class, stem, endings)
	if zc {
		// zc surfaces in the first person only: conozco, conocemos.
		row[0] = mutated + endings[0]
		return row
	}
	if mutated != stem {
		for _, i := range bootPersons {
			row[i] = adjustSpelling(class, mutated, endings[i]) + endings[i]
		}
	}
	return row
}

func preteriteRow(class verbClass, stem string, change StemChange, hasChange bool) []string {
	var endings []string
	switch class {
	case classAr:
		endings = preteritoAr
	case classEr:
		endings = preteritoEr
	default:
		endings = preteritoIr
	}
	row := attachRow(class, stem, endings)
	if class == classIr && hasChange {
		raised := raisedStem(stem, change)
		if raised != stem {
			row[2] = raised + endings[2]
			row[5] = raised + endings[5]
		}
	}
	return row
}

func imperfectRow(class verbClass) []string {
	if class == classAr {
		return imperfectoAr
	}
	return imperfectoEr
}

func subjunctiveRow(class verbClass, stem, mutated string, change StemChange, hasChange bool) []string {
	var endings []string
	switch class {
	case classAr:
		endings = subjuntivoPresenteAr
	case classEr:
		endings = subjuntivoPresenteEr
	default:
		endings = subjuntivoPresenteIr
	}

	if hasChange && change == StemCToZc {
		// The whole present subjunctive keeps zc: conozca, conozcamos.
		return attachRow(class, mutated, endings)
	}

	row := attachRow(class, stem, endings)
	if mutated != stem {
		for _, i := range bootPersons {
			row[i] = adjustSpelling(class, mutated, endings[i]) + endings[i]
		}
		// -ir verbs raise the unstressed persons: sintamos, pidamos.
		if class == classIr {
			raised := raisedStem(stem, change)
			row[3] = raised + endings[3]
			row[4] = raised + endings[4]
		}
	}
	return row
}

func pastSubjunctiveRow(class verbClass, stem string, change StemChange, hasChange bool) []string {
	var endings []string
	switch class {
	case classAr:
		endings = subjuntivoImperfectoRaAr
	case classEr:
		endings = subjuntivoImperfectoRaEr
	default:
		endings = subjuntivoImperfectoRaIr
	}
	base := stem
	if class == classIr && hasChange {
		base = raisedStem(stem, change)
	}
	return attachRow(class, base, endings)
}

// imperativeRow lists the affirmative tú and vosotros forms; the rest
// of the imperative borrows the present subjunctive.
func imperativeRow(class verbClass, thirdPersonPresent, stem string) []string {
	var vosotros string
	switch class {
	case classAr:
		vosotros = stem + imperativoVosotrosAr
	case classEr:
		vosotros = stem + imperativoVosotrosEr
	default:
		vosotros = stem + imperativoVosotrosIr
	}
	return []string{thirdPersonPresent, vosotros}
}

func gerundOf(class verbClass, stem string, change StemChange, hasChange bool) string {
	if class == classAr {
		return stem + gerundioAr
	}
	base := stem
	if class == classIr && hasChange {
		base = raisedStem(stem, change)
	}
	// Vowel-final stems take y: leer→leyendo, construir→construyendo.
	if last, ok := lastRune(base); ok && isSpanishVowel(last) {
		return base + "yendo"
	}
	return base + gerundioEr
}

func participleOf(class verbClass, stem string) string {
	if class == classAr {
		return stem + participioAr
	}
	// Vowel-final stems stress the i: leer→leído, caer→caído.
	if last, ok := lastRune(stem); ok && isSpanishVowel(last) {
		return stem + "ído"
	}
	return stem + participioEr
}
