package dictionary

import "strings"

// datasets maps short language codes to the dataset path segments
// dictionary.cambridge.org uses in its URLs.
var datasets = map[string]string{
	"en":    "english",
	"en-cn": "english-chinese-simplified",
	"en-tw": "english-chinese-traditional",
	"en-fr": "english-french",
	"en-de": "english-german",
	"en-it": "english-italian",
	"en-ja": "english-japanese",
	"en-pl": "english-polish",
	"en-pt": "english-portuguese",
	"en-es": "english-spanish",
	"en-ru": "english-russian",
}

// NormalizeLanguage resolves a short language code to the dataset segment
// used in dictionary URLs. Unrecognized values pass through unchanged so
// full dataset names keep working.
func NormalizeLanguage(language string) string {
	normalized := strings.ToLower(strings.TrimSpace(language))
	if dataset, ok := datasets[normalized]; ok {
		return dataset
	}
	return normalized
}
