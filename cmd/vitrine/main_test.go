package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

const collectionJSON = `{"data": [
	{"id": 1, "title": "Nighthawks", "artist_display": "Edward Hopper\nAmerican", "image_id": "abc", "artwork_type_title": "Painting"},
	{"id": 2, "title": "The Child's Bath", "artist_display": "Mary Cassatt", "image_id": null, "artwork_type_title": "Print"},
	{"id": 3, "title": "Paris Street; Rainy Day", "artist_display": "Gustave Caillebotte", "image_id": "def", "artwork_type_title": "Painting"},
	{"id": 4, "title": "Untyped", "artist_display": "Nobody", "image_id": null, "artwork_type_title": null}
]}`

const detailJSON = `{"data": {"id": 1, "title": "Nighthawks", "artist_display": "Edward Hopper", "image_id": "abc",
	"date_display": "1942", "medium_display": "Oil on canvas", "description": "<p>A diner at night.</p>",
	"dimensions": "84.1 × 152.4 cm", "credit_line": "Friends of American Art Collection"}}`

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/artworks", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, collectionJSON)
	})
	mux.HandleFunc("/artworks/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, detailJSON)
	})
	mux.HandleFunc("/artworks/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status": 404, "error": "Not found", "detail": "The item you requested cannot be found."}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`api:
  base_url: %s
logging:
  file: %s
  level: debug
`, baseURL, filepath.Join(dir, "vitrine.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	t.Cleanup(a.close)
	root := newRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListSortedByArtist(t *testing.T) {
	srv := newAPI(t)
	cfg := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfg, "list", "--sort", "artist")
	require.NoError(t, err)

	hopper := strings.Index(out, "Nighthawks")
	caillebotte := strings.Index(out, "Paris Street")
	cassatt := strings.Index(out, "The Child's Bath")
	require.True(t, hopper >= 0 && caillebotte >= 0 && cassatt >= 0, out)
	assert.Less(t, hopper, caillebotte)
	assert.Less(t, caillebotte, cassatt)
	assert.NotContains(t, out, "Untyped", "records without a type are dropped")
}

func TestListSearchWithoutMatches(t *testing.T) {
	srv := newAPI(t)
	cfg := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfg, "list", "--search", "nighthawk")
	require.NoError(t, err)
	assert.Contains(t, out, "Nighthawks")

	out, err = execute(t, "--config", cfg, "list", "--search", "nightawks")
	require.NoError(t, err)
	assert.Contains(t, out, "No artworks match.")
}

func TestGalleryFiltersByCategory(t *testing.T) {
	srv := newAPI(t)
	cfg := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfg, "gallery", "--category", "Print")
	require.NoError(t, err)
	assert.Contains(t, out, "The Child's Bath")
	assert.NotContains(t, out, "Nighthawks")

	out, err = execute(t, "--config", cfg, "gallery", "--category", "Painting")
	require.NoError(t, err)
	assert.Contains(t, out, "/abc/full/400,/0/default.jpg")
}

func TestCategories(t *testing.T) {
	srv := newAPI(t)
	cfg := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfg, "categories")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Painting"), strings.Index(out, "Print"))
}

func TestShow(t *testing.T) {
	srv := newAPI(t)
	cfg := writeConfig(t, srv.URL)

	out, err := execute(t, "--config", cfg, "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Nighthawks")
	assert.Contains(t, out, "Oil on canvas")
	assert.Contains(t, out, "/abc/full/843,/0/default.jpg")
	assert.Contains(t, out, "A diner at night.")

	_, err = execute(t, "--config", cfg, "show", "404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "artwork 404 not found")

	_, err = execute(t, "--config", cfg, "show", "abc")
	assert.Error(t, err)
}

func TestCollectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	cfg := writeConfig(t, srv.URL)

	_, err := execute(t, "--config", cfg, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Could not load artworks. Please try again later.")
}

func TestFailedCommandClosesLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	cfg := writeConfig(t, srv.URL)

	a := &app{}
	err := run(a, []string{"--config", cfg, "list"})
	require.Error(t, err)
	assert.Nil(t, a.closer)

	logged, err := os.ReadFile(filepath.Join(filepath.Dir(cfg), "vitrine.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "collection load failed")
}

func TestTUIRefusesWithoutTerminal(t *testing.T) {
	cfg := writeConfig(t, "https://api.example.test")

	_, err := execute(t, "--config", cfg)
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err, "refuses to overwrite")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
