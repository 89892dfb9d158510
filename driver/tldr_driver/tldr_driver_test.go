package tldr_driver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unrot/domain"
)

func TestTLDRDriver_FetchPage(t *testing.T) {
	t.Run("returns body on success", func(t *testing.T) {
		var gotPath, gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html>digest</html>"))
		}))
		defer server.Close()

		driver := NewTLDRDriver(server.URL+"/", time.Second, "unrot-test")
		body, err := driver.FetchPage(context.Background(), "tech", "2026-10-16")

		require.NoError(t, err)
		assert.Equal(t, "<html>digest</html>", body)
		assert.Equal(t, "/tech/2026-10-16", gotPath)
		assert.Equal(t, "unrot-test", gotUA)
	})

	t.Run("surfaces upstream status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		driver := NewTLDRDriver(server.URL, time.Second, "")
		_, err := driver.FetchPage(context.Background(), "tech", "2026-10-16")

		var httpErr *domain.ExternalHTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
		assert.Equal(t, server.URL+"/tech/2026-10-16", httpErr.URL)
	})

	t.Run("times out slow upstreams", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		driver := NewTLDRDriver(server.URL, 50*time.Millisecond, "")
		_, err := driver.FetchPage(context.Background(), "tech", "2026-10-16")

		require.Error(t, err)
	})
}
