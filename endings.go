package ortograf

// verbClass is one of the three Spanish conjugation classes.
type verbClass int

const (
	classAr verbClass = iota
	classEr
	classIr
)

var verbClasses = [...]verbClass{classAr, classEr, classIr}

func (c verbClass) infinitiveSuffix() string {
	switch c {
	case classAr:
		return "ar"
	case classEr:
		return "er"
	default:
		return "ir"
	}
}

// Regular ending tables, person order 1s 2s 3s 1p 2p 3p.

var presenteAr = []string{"o", "as", "a", "amos", "áis", "an"}
var presenteEr = []string{"o", "es", "e", "emos", "éis", "en"}
var presenteIr = []string{"o", "es", "e", "imos", "ís", "en"}

var preteritoAr = []string{"é", "aste", "ó", "amos", "asteis", "aron"}
var preteritoEr = []string{"í", "iste", "ió", "imos", "isteis", "ieron"}
var preteritoIr = preteritoEr

var imperfectoAr = []string{"aba", "abas", "aba", "ábamos", "abais", "aban"}
var imperfectoEr = []string{"ía", "ías", "ía", "íamos", "íais", "ían"}
var imperfectoIr = imperfectoEr

// Futuro and condicional attach to the full infinitive, not the stem,
// so they are handled separately in the recognizer.
var futuro = []string{"é", "ás", "á", "emos", "éis", "án"}
var condicional = []string{"ía", "ías", "ía", "íamos", "íais", "ían"}

var subjuntivoPresenteAr = []string{"e", "es", "e", "emos", "éis", "en"}
var subjuntivoPresenteEr = []string{"a", "as", "a", "amos", "áis", "an"}
var subjuntivoPresenteIr = subjuntivoPresenteEr

var subjuntivoImperfectoRaAr = []string{"ara", "aras", "ara", "áramos", "arais", "aran"}
var subjuntivoImperfectoRaEr = []string{"iera", "ieras", "iera", "iéramos", "ierais", "ieran"}
var subjuntivoImperfectoRaIr = subjuntivoImperfectoRaEr

var subjuntivoImperfectoSeAr = []string{"ase", "ases", "ase", "ásemos", "aseis", "asen"}
var subjuntivoImperfectoSeEr = []string{"iese", "ieses", "iese", "iésemos", "ieseis", "iesen"}
var subjuntivoImperfectoSeIr = subjuntivoImperfectoSeEr

// Rare but still valid.
var subjuntivoFuturoAr = []string{"are", "ares", "are", "áremos", "areis", "aren"}
var subjuntivoFuturoEr = []string{"iere", "ieres", "iere", "iéremos", "iereis", "ieren"}
var subjuntivoFuturoIr = subjuntivoFuturoEr

const (
	gerundioAr = "ando"
	gerundioEr = "iendo"
	gerundioIr = "iendo"

	participioAr = "ado"
	participioEr = "ido"
	participioIr = "ido"

	// The remaining imperative forms coincide with present or
	// subjunctive endings already in the tables.
	imperativoVosotrosAr = "ad"
	imperativoVosotrosEr = "ed"
	imperativoVosotrosIr = "id"
)

var allEndingsByClass = map[verbClass][]string{
	classAr: buildEndings(
		presenteAr, preteritoAr, imperfectoAr, subjuntivoPresenteAr,
		subjuntivoImperfectoRaAr, subjuntivoImperfectoSeAr, subjuntivoFuturoAr,
		[]string{gerundioAr, participioAr, imperativoVosotrosAr},
	),
	classEr: buildEndings(
		presenteEr, preteritoEr, imperfectoEr, subjuntivoPresenteEr,
		subjuntivoImperfectoRaEr, subjuntivoImperfectoSeEr, subjuntivoFuturoEr,
		[]string{gerundioEr, participioEr, imperativoVosotrosEr},
	),
	classIr: buildEndings(
		presenteIr, preteritoIr, imperfectoIr, subjuntivoPresenteIr,
		subjuntivoImperfectoRaIr, subjuntivoImperfectoSeIr, subjuntivoFuturoIr,
		[]string{gerundioIr, participioIr, imperativoVosotrosIr},
	),
}

func buildEndings(tables ...[]string) []string {
	var out []string
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// allEndings returns every stem-attached ending of the class. Futuro and
// condicional are excluded; see futuro and condicional above.
func allEndings(c verbClass) []string {
	return allEndingsByClass[c]
}

// tryIrregularFutureStemSuffixes lists the characteristic consonant
// clusters of irregular future/conditional stems and the infinitive
// suffix families they map back to: valdr→valer, saldr→salir,
// sabr→saber, querr→querer, podr→poder.
var irregularFutureStemShapes = []struct {
	stemSuffix  string
	trimLen     int
	infinitives []string
}{
	{"odr", 3, []string{"oder"}},
	{"dr", 2, []string{"er", "ir"}},
	{"br", 2, []string{"ber"}},
	{"rr", 2, []string{"rer"}},
}
