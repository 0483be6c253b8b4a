package search

// Synonyms maps a canonical skill name to the aliases HR systems use for it.
// Keys and values are in NormalizeSkill form.
var Synonyms = map[string][]string{
	"javascript":              {"js", "ecmascript"},
	"typescript":              {"ts"},
	"node js":                 {"node", "nodejs"},
	"react":                   {"react js", "reactjs"},
	"postgresql":              {"postgres", "psql"},
	"kubernetes":              {"k8s"},
	"amazon web services":     {"aws"},
	"google cloud platform":   {"gcp", "google cloud"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
	"user experience":         {"ux", "ux design"},
	"user interface":          {"ui", "ui design"},
	"continuous integration":  {"ci", "ci cd"},
	"project management":      {"pm", "project manager"},
	"golang":                  {"go"},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range Synonyms {
		for _, a := range aliases {
			idx[a] = canonical
		}
	}
	return idx
}

// GetSynonyms returns every other known name for a normalized skill, whether
// it is given in canonical or alias form.
func GetSynonyms(name string) []string {
	if name == "" {
		return []string{}
	}
	canonical := name
	if c, ok := aliasIndex[name]; ok {
		canonical = c
	}
	aliases, ok := Synonyms[canonical]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(aliases)+1)
	if canonical != name {
		out = append(out, canonical)
	}
	for _, a := range aliases {
		if a != name {
			out = append(out, a)
		}
	}
	return out
}
