package enrich

// French stopword list used by the keyword extractor and the noun-phrase
// candidate filter, with a handful of English function words for mixed
// language content.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// articles, determiners
		"le", "la", "les", "un", "une", "des", "du", "de", "d", "l",
		"ce", "cet", "cette", "ces", "mon", "ma", "mes", "ton", "ta", "tes",
		"son", "sa", "ses", "notre", "nos", "votre", "vos", "leur", "leurs",
		"quel", "quelle", "quels", "quelles", "chaque", "tout", "toute",
		"tous", "toutes", "autre", "autres", "même", "mêmes",
		// pronouns
		"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles",
		"me", "te", "se", "lui", "eux", "y", "en", "qui", "que", "quoi",
		"dont", "où", "celui", "celle", "ceux", "celles", "cela", "ça",
		// prepositions, conjunctions
		"à", "au", "aux", "dans", "par", "pour", "sur", "sous", "vers",
		"avec", "sans", "entre", "chez", "avant", "après", "pendant",
		"depuis", "contre", "selon", "et", "ou", "mais", "donc", "or",
		"ni", "car", "si", "comme", "lorsque", "quand", "puisque", "ainsi",
		"alors", "aussi", "encore", "toujours", "jamais", "souvent",
		"très", "trop", "peu", "plus", "moins", "bien", "mal", "ici",
		// common verbs and auxiliaries
		"être", "est", "sont", "était", "étaient", "sera", "seront",
		"avoir", "a", "ont", "avait", "avaient", "aura", "auront",
		"faire", "fait", "font", "peut", "peuvent", "doit", "doivent",
		"va", "vont", "été", "ayant", "étant", "soit",
		// misc
		"pas", "ne", "non", "oui", "dès", "afin", "cas", "fois", "parce",
		"cependant", "toutefois", "néanmoins", "notamment", "etc",
		// english function words
		"the", "a", "an", "and", "or", "of", "to", "in", "on", "for",
		"with", "that", "this", "is", "are", "was", "were", "be", "by",
		"from", "at", "as", "it", "its",
	} {
		stopwords[w] = struct{}{}
	}
}

// isStopword reports whether a lowercase token is a stopword.
func isStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
