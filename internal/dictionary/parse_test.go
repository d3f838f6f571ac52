package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		want    Entry
	}{
		{
			name:    "entry with multiple parts of speech",
			fixture: "hello.html",
			want: Entry{
				Word:  "hello",
				POS:   []string{"exclamation", "noun"},
				Verbs: []VerbForm{},
				Pronunciations: []Pronunciation{
					{
						POS:  "exclamation",
						Lang: "uk",
						URL:  "https://dictionary.cambridge.org/media/english/uk_pron/u/ukh/ukhec/ukhello.mp3",
						Pron: "/heˈləʊ/",
					},
					{
						POS:  "exclamation",
						Lang: "us",
						URL:  "https://dictionary.cambridge.org/media/english/us_pron/h/hel/hello/hello.mp3",
						Pron: "/heˈloʊ/",
					},
				},
				Definitions: []Definition{
					{
						ID:     0,
						POS:    "exclamation",
						Source: "cald4",
						Text:   "used when meeting or greeting someone:",
						Examples: []Example{
							{ID: 0, Text: "Hello, Paul. I haven't seen you for ages."},
							{ID: 1, Text: "I know her vaguely - we've exchanged hellos a few times."},
						},
					},
					{
						ID:     1,
						POS:    "noun",
						Source: "cald4",
						Text:   `an occasion when someone says "hello":`,
						Examples: []Example{
							{ID: 0, Text: "We said our hellos and got straight down to business."},
						},
					},
				},
			},
		},
		{
			name:    "verb entry with irregular forms",
			fixture: "go.html",
			want: Entry{
				Word: "go",
				POS:  []string{"verb"},
				Verbs: []VerbForm{
					{ID: 0, Type: "past tense", Text: "went"},
					{ID: 1, Type: "past participle", Text: "gone"},
				},
				Pronunciations: []Pronunciation{
					{
						POS:  "verb",
						Lang: "uk",
						URL:  "https://dictionary.cambridge.org/media/english/uk_pron/u/ukg/ukgnu/ukgnu__005.mp3",
						Pron: "/ɡəʊ/",
					},
				},
				Definitions: []Definition{
					{
						ID:     0,
						POS:    "verb",
						Source: "cald4",
						Text:   "to travel or move to another place:",
						Examples: []Example{
							{ID: 0, Text: "We went into the house."},
						},
					},
				},
			},
		},
		{
			name:    "bilingual entry with translations",
			fixture: "hello_russian.html",
			want: Entry{
				Word:  "hello",
				POS:   []string{"exclamation"},
				Verbs: []VerbForm{},
				Pronunciations: []Pronunciation{
					{
						POS:  "exclamation",
						Lang: "uk",
						URL:  "https://dictionary.cambridge.org/media/english/uk_pron/u/ukh/ukhec/ukhello.mp3",
						Pron: "/heˈləʊ/",
					},
				},
				Definitions: []Definition{
					{
						ID:          0,
						POS:         "exclamation",
						Source:      "cenru",
						Text:        "used when meeting or greeting someone:",
						Translation: "привет, здравствуйте",
						Examples: []Example{
							{ID: 0, Text: "Hello, Paul.", Translation: "Привет, Пол."},
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := os.ReadFile(filepath.Join("testdata", tt.fixture))
			require.NoError(t, err)

			got, err := parsePage("https://dictionary.cambridge.org", body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePage_SuggestionPage(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "suggestion.html"))
	require.NoError(t, err)

	got, err := parsePage("https://dictionary.cambridge.org", body)
	require.NoError(t, err)
	assert.Empty(t, got.Word)
	assert.Empty(t, got.Definitions)
}
