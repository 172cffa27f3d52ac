package ortograf

import "sync"

// irregularForms returns the shared conjugated-form → infinitive table
// for the closed set of hand-curated irregular verbs. Built once;
// callers must not mutate it. Tests needing isolation build a fresh
// table with buildIrregularForms.
var irregularForms = sync.OnceValue(buildIrregularForms)

// buildIrregularForms assembles the full irregular table. Forms shared
// between verbs keep the later registration: "di" is listed for decir
// and then dar, "ven" for ver and then venir.
func buildIrregularForms() map[string]string {
	m := make(map[string]string, 900)

	addSer(m)
	addEstar(m)
	addIr(m)
	addHaber(m)
	addTener(m)
	addHacer(m)
	addPoder(m)
	addQuerer(m)
	addDecir(m)
	addVer(m)
	addDar(m)
	addSaber(m)
	addVenir(m)
	addPoner(m)
	addSalir(m)
	addTraer(m)
	addOir(m)
	addCaer(m)
	addUirVerbs(m)
	addUcirVerbs(m)

	return m
}

func addForms(m map[string]string, infinitive string, forms ...string) {
	for _, f := range forms {
		m[f] = infinitive
	}
}

func addSer(m map[string]string) {
	addForms(m, "ser",
		"soy", "eres", "es", "somos", "sois", "son",
		"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron",
		"era", "eras", "éramos", "erais", "eran",
		"seré", "serás", "será", "seremos", "seréis", "serán",
		"sería", "serías", "seríamos", "seríais", "serían",
		"sea", "seas", "seamos", "seáis", "sean",
		"fuera", "fueras", "fuéramos", "fuerais", "fueran",
		"fuese", "fueses", "fuésemos", "fueseis", "fuesen",
		"sido", "siendo",
	)
}

func addEstar(m map[string]string) {
	addForms(m, "estar",
		"estoy", "estás", "está", "estamos", "estáis", "están",
		"estuve", "estuviste", "estuvo", "estuvimos", "estuvisteis", "estuvieron",
		"esté", "estés", "estemos", "estéis", "estén",
		"estuviera", "estuvieras", "estuviéramos", "estuvierais", "estuvieran",
		"estuviese", "estuvieses", "estuviésemos", "estuvieseis", "estuviesen",
		"estando", "estado",
	)
}

func addIr(m map[string]string) {
	// The preterite (fui, fue, ...) is shared with ser and already added.
	addForms(m, "ir",
		"voy", "vas", "va", "vamos", "vais", "van",
		"iba", "ibas", "íbamos", "ibais", "iban",
		"iré", "irás", "irá", "iremos", "iréis", "irán",
		"iría", "irías", "iríamos", "iríais", "irían",
		"vaya", "vayas", "vayamos", "vayáis", "vayan",
		"yendo", "ido",
	)
}

func addHaber(m map[string]string) {
	addForms(m, "haber",
		"he", "has", "ha", "hay", "hemos", "habéis", "han",
		"hube", "hubiste", "hubo", "hubimos", "hubisteis", "hubieron",
		"había", "habías", "habíamos", "habíais", "habían",
		"habré", "habrás", "habrá", "habremos", "habréis", "habrán",
		"habría", "habrías", "habríamos", "habríais", "habrían",
		"haya", "hayas", "hayamos", "hayáis", "hayan",
		"hubiera", "hubieras", "hubiéramos", "hubierais", "hubieran",
		"hubiese", "hubieses", "hubiésemos", "hubieseis", "hubiesen",
		"habido", "habiendo",
	)
}

func addTener(m map[string]string) {
	addForms(m, "tener",
		"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen",
		"tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron",
		"tendré", "tendrás", "tendrá", "tendremos", "tendréis", "tendrán",
		"tendría", "tendrías", "tendríamos", "tendríais", "tendrían",
		"tenga", "tengas", "tengamos", "tengáis", "tengan",
		"tuviera", "tuvieras", "tuviéramos", "tuvierais", "tuvieran",
		"tuviese", "tuvieses", "tuviésemos", "tuvieseis", "tuviesen",
		"tenido", "teniendo",
		"ten", "tened",
	)
}

func addHacer(m map[string]string) {
	addForms(m, "hacer",
		"hago", "haces", "hace", "hacemos", "hacéis", "hacen",
		"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron",
		"haré", "harás", "hará", "haremos", "haréis", "harán",
		"haría", "harías", "haríamos", "haríais", "harían",
		"haga", "hagas", "hagamos", "hagáis", "hagan",
		"hiciera", "hicieras", "hiciéramos", "hicierais", "hicieran",
		"hiciese", "hicieses", "hiciésemos", "hicieseis", "hiciesen",
		"hecho", "haciendo",
		"haz", "haced",
	)
}

func addPoder(m map[string]string) {
	addForms(m, "poder",
		"puedo", "puedes", "puede", "podemos", "podéis", "pueden",
		"pude", "pudiste", "pudo", "pudimos", "pudisteis", "pudieron",
		"podré", "podrás", "podrá", "podremos", "podréis", "podrán",
		"podría", "podrías", "podríamos", "podríais", "podrían",
		"pueda", "puedas", "podamos", "podáis", "puedan",
		"pudiera", "pudieras", "pudiéramos", "pudierais", "pudieran",
		"pudiese", "pudieses", "pudiésemos", "pudieseis", "pudiesen",
		"podido", "pudiendo",
	)
}

func addQuerer(m map[string]string) {
	addForms(m, "querer",
		"quiero", "quieres", "quiere", "queremos", "queréis", "quieren",
		"quise", "quisiste", "quiso", "quisimos", "quisisteis", "quisieron",
		"querré", "querrás", "querrá", "querremos", "querréis", "querrán",
		"querría", "querrías", "querríamos", "querríais", "querrían",
		"quiera", "quieras", "queramos", "queráis", "quieran",
		"quisiera", "quisieras", "quisiéramos", "quisierais", "quisieran",
		"quisiese", "quisieses", "quisiésemos", "quisieseis", "quisiesen",
		"querido", "queriendo",
		"quered",
	)
}

func addDecir(m map[string]string) {
	addForms(m, "decir",
		"digo", "dices", "dice", "decimos", "decís", "dicen",
		"dije", "dijiste", "dijo", "dijimos", "dijisteis", "dijeron",
		"diré", "dirás", "dirá", "diremos", "diréis", "dirán",
		"diría", "dirías", "diríamos", "diríais", "dirían",
		"diga", "digas", "digamos", "digáis", "digan",
		"dijera", "dijeras", "dijéramos", "dijerais", "dijeran",
		"dijese", "dijeses", "dijésemos", "dijeseis", "dijesen",
		"dicho", "diciendo",
		"di", "decid",
	)
}

func addVer(m map[string]string) {
	addForms(m, "ver",
		"veo", "ves", "ve", "vemos", "veis", "ven",
		"vi", "viste", "vio", "vimos", "visteis", "vieron",
		"veía", "veías", "veíamos", "veíais", "veían",
		"vea", "veas", "veamos", "veáis", "vean",
		"visto", "viendo",
	)
}

func addDar(m map[string]string) {
	addForms(m, "dar",
		"doy", "das", "da", "damos", "dais", "dan",
		"di", "diste", "dio", "dimos", "disteis", "dieron",
		"dé", "des", "demos", "deis", "den",
		"diera", "dieras", "diéramos", "dierais", "dieran",
		"diese", "dieses", "diésemos", "dieseis", "diesen",
		"dado", "dando",
	)
}

func addSaber(m map[string]string) {
	addForms(m, "saber",
		"sé", "sabes", "sabe", "sabemos", "sabéis", "saben",
		"supe", "supiste", "supo", "supimos", "supisteis", "supieron",
		"sabré", "sabrás", "sabrá", "sabremos", "sabréis", "sabrán",
		"sabría", "sabrías", "sabríamos", "sabríais", "sabrían",
		"sepa", "sepas", "sepamos", "sepáis", "sepan",
		"supiera", "supieras", "supiéramos", "supierais", "supieran",
		"supiese", "supieses", "supiésemos", "supieseis", "supiesen",
		"sabido", "sabiendo",
	)
}

func addVenir(m map[string]string) {
	addForms(m, "venir",
		"vengo", "vienes", "viene", "venimos", "venís", "vienen",
		"vine", "viniste", "vino", "vinimos", "vinisteis", "vinieron",
		"vendré", "vendrás", "vendrá", "vendremos", "vendréis", "vendrán",
		"vendría", "vendrías", "vendríamos", "vendríais", "vendrían",
		"venga", "vengas", "vengamos", "vengáis", "vengan",
		"viniera", "vinieras", "viniéramos", "vinierais", "vinieran",
		"viniese", "vinieses", "viniésemos", "vinieseis", "viniesen",
		"venido", "viniendo",
		"ven", "venid",
	)
}

func addPoner(m map[string]string) {
	addForms(m, "poner",
		"pongo", "pones", "pone", "ponemos", "ponéis", "ponen",
		"puse", "pusiste", "puso", "pusimos", "pusisteis", "pusieron",
		"pondré", "pondrás", "pondrá", "pondremos", "pondréis", "pondrán",
		"pondría", "pondrías", "pondríamos", "pondríais", "pondrían",
		"ponga", "pongas", "pongamos", "pongáis", "pongan",
		"pusiera", "pusieras", "pusiéramos", "pusierais", "pusieran",
		"pusiese", "pusieses", "pusiésemos", "pusieseis", "pusiesen",
		"puesto", "poniendo",
		"pon", "poned",
	)
}

func addSalir(m map[string]string) {
	addForms(m, "salir",
		"salgo", "sales", "sale", "salimos", "salís", "salen",
		"saldré", "saldrás", "saldrá", "saldremos", "saldréis", "saldrán",
		"saldría", "saldrías", "saldríamos", "saldríais", "saldrían",
		"salga", "salgas", "salgamos", "salgáis", "salgan",
		"salido", "saliendo",
		"sal", "salid",
	)
}

func addTraer(m map[string]string) {
	addForms(m, "traer",
		"traigo", "traes", "trae", "traemos", "traéis", "traen",
		"traje", "trajiste", "trajo", "trajimos", "trajisteis", "trajeron",
		"traiga", "traigas", "traigamos", "traigáis", "traigan",
		"trajera", "trajeras", "trajéramos", "trajerais", "trajeran",
		"trajese", "trajeses", "trajésemos", "trajeseis", "trajesen",
		"traído", "trayendo",
		"traed",
	)
}

func addOir(m map[string]string) {
	addForms(m, "oír",
		"oigo", "oyes", "oye", "oímos", "oís", "oyen",
		"oí", "oíste", "oyó", "oísteis", "oyeron",
		"oiga", "oigas", "oigamos", "oigáis", "oigan",
		"oído", "oyendo",
		"oíd",
	)
}

func addCaer(m map[string]string) {
	addForms(m, "caer",
		"caigo", "caes", "cae", "caemos", "caéis", "caen",
		"caí", "caíste", "cayó", "caímos", "caísteis", "cayeron",
		"caiga", "caigas", "caigamos", "caigáis", "caigan",
		"cayera", "cayeras", "cayéramos", "cayerais", "cayeran",
		"cayese", "cayeses", "cayésemos", "cayeseis", "cayesen",
		"caído", "cayendo",
	)
}

// -uir verbs insert y before a back vowel: construyo, huyó, incluyendo.
// Coverage varies by how frequent the verb is.
func addUirVerbs(m map[string]string) {
	core := []string{"yo", "yes", "ye", "yen", "yó", "yeron", "yendo"}
	subjunctive := []string{"ya", "yas", "yamos", "yan"}
	pastSubjunctive := []string{"yera", "yeras", "yeran", "yese", "yesen"}

	addUir := func(infinitive string, suffixSets ...[]string) {
		stem := infinitive[:len(infinitive)-len("ir")]
		for _, set := range suffixSets {
			for _, suffix := range set {
				m[stem+suffix] = infinitive
			}
		}
	}

	for _, verb := range []string{"contribuir", "construir"} {
		addUir(verb, core, subjunctive, pastSubjunctive)
	}
	for _, verb := range []string{"destruir", "huir", "incluir"} {
		addUir(verb, core, subjunctive)
	}
	for _, verb := range []string{
		"distribuir", "concluir", "excluir", "influir",
		"sustituir", "constituir", "instruir", "atribuir", "disminuir",
	} {
		addUir(verb, core)
	}
}

// -ucir verbs take the j-preterite (conduje, tradujo) and the matching
// imperfect and future subjunctives.
func addUcirVerbs(m map[string]string) {
	suffixes := []string{
		"uje", "ujiste", "ujo", "ujimos", "ujisteis", "ujeron",
		"ujera", "ujeras", "ujéramos", "ujerais", "ujeran",
		"ujese", "ujeses", "ujésemos", "ujeseis", "ujesen",
		"ujere", "ujeres", "ujéremos", "ujereis", "ujeren",
	}
	for _, verb := range []string{
		"conducir", "traducir", "producir", "reducir", "deducir",
		"inducir", "introducir", "reproducir", "seducir",
	} {
		stem := verb[:len(verb)-len("ucir")]
		for _, suffix := range suffixes {
			m[stem+suffix] = verb
		}
	}
}
