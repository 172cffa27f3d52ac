package ortograf

import (
	"strings"
	"sync"
)

// StemChange classifies the stem alternation a verb undergoes in its
// stressed or otherwise mutated forms.
type StemChange int

const (
	// StemEToIe: pensar → pienso, entender → entiendo.
	StemEToIe StemChange = iota
	// StemOToUe: contar → cuento, dormir → duermo.
	StemOToUe
	// StemEToI: pedir → pido, servir → sirvo. Only -ir verbs.
	StemEToI
	// StemUToUe: jugar → juego, the one common u→ue verb.
	StemUToUe
	// StemCToZc: conocer → conozco. Verbs in -ecer, -ocer, -ucir.
	StemCToZc
)

var vowelStemChanges = [...]StemChange{StemEToIe, StemOToUe, StemEToI, StemUToUe}

// changePair returns the (original, mutated) substring pair.
func (c StemChange) changePair() (string, string) {
	switch c {
	case StemEToIe:
		return "e", "ie"
	case StemOToUe:
		return "o", "ue"
	case StemEToI:
		return "e", "i"
	case StemUToUe:
		return "u", "ue"
	default:
		return "c", "zc"
	}
}

// reverseChange recovers the unmutated stem from a mutated surface stem:
// piens→pens, cuent→cont, conozc→conoc. Vowel changes replace the last
// occurrence of the mutated substring; c→zc only applies when the stem
// ends in "zc".
func (c StemChange) reverseChange(stem string) (string, bool) {
	original, changed := c.changePair()

	if c == StemCToZc {
		if base, ok := strings.CutSuffix(stem, "zc"); ok {
			return base + "c", true
		}
		return "", false
	}

	pos := strings.LastIndex(stem, changed)
	if pos < 0 {
		return "", false
	}
	return stem[:pos] + original + stem[pos+len(changed):], true
}

func buildStemChangingVerbs() map[string]StemChange {
	m := make(map[string]StemChange, 180)

	// e → ie, -ar verbs.
	for _, verb := range []string{
		"acertar", "apretar", "atravesar", "calentar", "cerrar", "comenzar",
		"confesar", "despertar", "empezar", "encerrar", "gobernar", "helar",
		"manifestar", "merendar", "negar", "nevar", "pensar", "plegar", "recomendar",
		"regar", "sembrar", "sentar", "temblar", "tropezar",
	} {
		m[verb] = StemEToIe
	}

	// e → ie, -er verbs.
	for _, verb := range []string{
		"ascender", "atender", "defender", "descender", "encender", "entender",
		"extender", "perder", "tender", "trascender", "verter",
	} {
		m[verb] = StemEToIe
	}

	// e → ie, -ir verbs.
	for _, verb := range []string{
		"advertir", "arrepentirse", "conferir", "consentir", "convertir", "divertir",
		"herir", "hervir", "inferir", "invertir", "mentir", "preferir", "presentir",
		"referir", "sentir", "sugerir", "transferir",
	} {
		m[verb] = StemEToIe
	}

	// o → ue, -ar verbs. The -zar ones (forzar, reforzar, almorzar) also
	// take the z→c spelling change in the subjunctive.
	for _, verb := range []string{
		"acordar", "acostar", "almorzar", "apostar", "aprobar", "colgar",
		"comprobar", "contar", "costar", "demostrar", "encontrar", "esforzar",
		"forzar", "mostrar", "probar", "recordar", "reforzar", "renovar",
		"rodar", "rogar", "soltar", "sonar", "soñar", "tostar", "volar", "volcar",
	} {
		m[verb] = StemOToUe
	}

	// o → ue, -er verbs.
	for _, verb := range []string{
		"absolver", "cocer", "conmover", "devolver", "disolver", "doler", "envolver",
		"llover", "morder", "mover", "oler", "promover", "remover", "resolver",
		"revolver", "soler", "torcer", "volver",
	} {
		m[verb] = StemOToUe
	}

	// o → ue, -ir verbs.
	m["dormir"] = StemOToUe
	m["morir"] = StemOToUe

	// e → i, only -ir verbs.
	for _, verb := range []string{
		"adherir", "competir", "concebir", "conseguir", "corregir", "derretir", "despedir",
		"elegir", "freír", "gemir", "impedir", "medir", "pedir", "perseguir",
		"proseguir", "reír", "rendir", "repetir", "reñir", "seguir", "servir",
		"sonreír", "teñir", "vestir",
	} {
		m[verb] = StemEToI
	}

	// u → ue.
	m["jugar"] = StemUToUe

	// c → zc: -ecer, -ocer and -ucir verbs.
	for _, verb := range []string{
		"agradecer", "amanecer", "anochecer", "aparecer", "apetecer",
		"carecer", "compadecer", "complacer", "conocer", "crecer",
		"desaparecer", "desconocer", "desobedecer", "embellecer", "empobrecer",
		"enloquecer", "enmudecer", "enorgullecer", "enriquecer", "enternecer",
		"envejecer", "esclarecer", "establecer", "estremecer", "favorecer", "florecer",
		"fortalecer", "humedecer", "merecer", "nacer", "obedecer",
		"obscurecer", "ofrecer", "oscurecer", "padecer", "palidecer",
		"parecer", "perecer", "permanecer", "pertenecer", "prevalecer",
		"reconocer", "rejuvenecer", "resplandecer", "restablecer",
		"conducir", "deducir", "inducir", "introducir", "lucir",
		"producir", "reducir", "reproducir", "seducir", "traducir",
	} {
		m[verb] = StemCToZc
	}

	return m
}

// stemChangingVerbs returns the shared infinitive → StemChange table,
// built once. Callers must not mutate it; tests needing isolation build
// a fresh table with buildStemChangingVerbs.
var stemChangingVerbs = sync.OnceValue(buildStemChangingVerbs)

// Endings that can carry a mutated stem, per class: the stressed
// present indicative and subjunctive persons, plus for -ar the -gar
// subjunctive shapes (juegue) and for -ir the raised preterite/gerund.
var stemChangeEndingsAr = []string{
	"o", "as", "a", "an", "e", "es", "e", "en", "ue", "ues", "uen",
}
var stemChangeEndingsEr = []string{"o", "es", "e", "en", "a", "as", "a", "an"}
var stemChangeEndingsIr = []string{
	"o", "es", "e", "en", "a", "as", "a", "an", "iendo", "ió", "ieron",
}

// Endings carrying the zc insertion: first person present and the whole
// present subjunctive. Shared by -er and -ir (-ucir) verbs.
var cToZcEndings = []string{"o", "a", "as", "amos", "áis", "an"}

// irPreteriteGerundEndings are the endings where an -ir verb classified
// e→ie surfaces with e→i instead: invertir → invirtió, invirtieron,
// invirtiendo.
var irPreteriteGerundEndings = []string{"ió", "ieron", "iendo"}

func stemChangeEndings(c verbClass) []string {
	switch c {
	case classAr:
		return stemChangeEndingsAr
	case classEr:
		return stemChangeEndingsEr
	default:
		return stemChangeEndingsIr
	}
}
