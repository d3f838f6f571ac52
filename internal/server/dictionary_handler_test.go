package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ashatilov/camdict/internal/dictionary"
	mock_dictionary "github.com/ashatilov/camdict/internal/mocks/dictionary"
)

func TestServer_HandleDictionary(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(provider *mock_dictionary.MockProvider)
		wantStatus int
		wantBody   string
	}{
		{
			name: "entry found",
			path: "/api/dictionary/en/hello",
			setup: func(provider *mock_dictionary.MockProvider) {
				provider.EXPECT().
					Lookup(gomock.Any(), "en", "hello").
					Return(dictionary.Entry{
						Word:  "hello",
						POS:   []string{"exclamation"},
						Verbs: []dictionary.VerbForm{},
						Pronunciations: []dictionary.Pronunciation{
							{
								POS:  "exclamation",
								Lang: "uk",
								URL:  "https://dictionary.cambridge.org/media/english/uk_pron/u/ukh/ukhec/ukhello.mp3",
								Pron: "/heˈləʊ/",
							},
						},
						Definitions: []dictionary.Definition{
							{
								ID:       0,
								POS:      "exclamation",
								Source:   "cald4",
								Text:     "used when meeting or greeting someone:",
								Examples: []dictionary.Example{{ID: 0, Text: "Hello, Paul."}},
							},
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"word": "hello",
				"pos": ["exclamation"],
				"verbs": [],
				"pronunciation": [
					{"pos": "exclamation", "lang": "uk", "url": "https://dictionary.cambridge.org/media/english/uk_pron/u/ukh/ukhec/ukhello.mp3", "pron": "/heˈləʊ/"}
				],
				"definition": [
					{"id": 0, "pos": "exclamation", "source": "cald4", "text": "used when meeting or greeting someone:", "translation": "", "example": [{"id": 0, "text": "Hello, Paul.", "translation": ""}]}
				]
			}`,
		},
		{
			name: "word not found",
			path: "/api/dictionary/en/zzzzzz",
			setup: func(provider *mock_dictionary.MockProvider) {
				provider.EXPECT().
					Lookup(gomock.Any(), "en", "zzzzzz").
					Return(dictionary.Entry{}, dictionary.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"word not found"}`,
		},
		{
			name: "language is passed through to the lookup",
			path: "/api/dictionary/en-ru/hello",
			setup: func(provider *mock_dictionary.MockProvider) {
				provider.EXPECT().
					Lookup(gomock.Any(), "en-ru", "hello").
					Return(dictionary.Entry{}, dictionary.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"word not found"}`,
		},
		{
			name: "upstream failure",
			path: "/api/dictionary/en/hello",
			setup: func(provider *mock_dictionary.MockProvider) {
				provider.EXPECT().
					Lookup(gomock.Any(), "en", "hello").
					Return(dictionary.Entry{}, errors.New("s.fetchPage > status code: 503, body: maintenance"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"s.fetchPage > status code: 503, body: maintenance"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			provider := mock_dictionary.NewMockProvider(ctrl)
			tt.setup(provider)

			srv := newTestServer(t, provider, mock_dictionary.NewMockFetcher(ctrl))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
