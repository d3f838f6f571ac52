package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioDownloader_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mozilla/5.0", r.Header.Get("User-Agent"))
		if r.URL.Path != "/media/uk.mp3" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	downloader := NewAudioDownloader(5 * time.Second)

	t.Run("downloads the recording", func(t *testing.T) {
		data, err := downloader.Download(context.Background(), server.URL+"/media/uk.mp3")

		require.NoError(t, err)
		assert.Equal(t, []byte("mp3 bytes"), data)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		_, err := downloader.Download(context.Background(), server.URL+"/media/missing.mp3")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code: 404")
	})
}
