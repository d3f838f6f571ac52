package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{
			name:     "short code",
			language: "en",
			want:     "english",
		},
		{
			name:     "short code is case insensitive",
			language: "EN",
			want:     "english",
		},
		{
			name:     "bilingual short code",
			language: "en-ru",
			want:     "english-russian",
		},
		{
			name:     "full dataset name passes through",
			language: "english-chinese-simplified",
			want:     "english-chinese-simplified",
		},
		{
			name:     "surrounding whitespace is ignored",
			language: " en ",
			want:     "english",
		},
		{
			name:     "unknown value passes through",
			language: "english-arabic",
			want:     "english-arabic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLanguage(tt.language))
		})
	}
}
