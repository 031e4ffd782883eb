package insights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollyFetcher_Fetch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>home</html>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewCollyFetcher(FetcherConfig{UserAgent: "insights-test"})
	defer f.Close()

	t.Run("returns body and status", func(t *testing.T) {
		res, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, res.Body, "home")
	})

	t.Run("non-2xx is data not error", func(t *testing.T) {
		res, err := f.Fetch(context.Background(), srv.URL+"/missing")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("follows redirects", func(t *testing.T) {
		res, err := f.Fetch(context.Background(), srv.URL+"/redirect")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, res.Body, "home")
	})
}

func TestCollyFetcher_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	dead := srv.URL
	srv.Close()

	f := NewCollyFetcher(FetcherConfig{})
	defer f.Close()

	_, err := f.Fetch(context.Background(), dead)
	require.Error(t, err)

	var unreachable *SiteUnreachableError
	assert.ErrorAs(t, err, &unreachable)
	assert.Equal(t, dead, unreachable.URL)
}

func TestCollyFetcher_CloseIdempotent(t *testing.T) {
	t.Parallel()

	f := NewCollyFetcher(FetcherConfig{})
	f.Close()
	f.Close()
}
