package dictionary

import "errors"

// ErrNotFound means the dictionary has no entry for the requested word.
var ErrNotFound = errors.New("word not found")

// Entry is a dictionary entry as served by the JSON API.
type Entry struct {
	Word           string          `json:"word"`
	POS            []string        `json:"pos"`
	Verbs          []VerbForm      `json:"verbs"`
	Pronunciations []Pronunciation `json:"pronunciation"`
	Definitions    []Definition    `json:"definition"`
}

// VerbForm is one irregular inflection, like "past tense: went".
type VerbForm struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

type Pronunciation struct {
	POS  string `json:"pos"`
	Lang string `json:"lang"`
	URL  string `json:"url"`
	Pron string `json:"pron"`
}

type Definition struct {
	ID          int       `json:"id"`
	POS         string    `json:"pos"`
	Source      string    `json:"source"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
	Examples    []Example `json:"example"`
}

type Example struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}
