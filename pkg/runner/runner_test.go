package runner

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjlin0/dirScan/pkg/output"
	"github.com/wjlin0/dirScan/pkg/types"
)

func newTarget(t *testing.T) *httptest.Server {
	router := httprouter.New()
	router.GET("/admin", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte("Welcome admin"))
	})
	router.GET("/backup", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_, _ = w.Write([]byte("Page Not Found"))
	})
	router.GET("/static/:file", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		_, _ = w.Write([]byte("file " + ps.ByName("file")))
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func testOptions(t *testing.T, url string) *types.Options {
	return &types.Options{
		URL:           url,
		Output:        filepath.Join(t.TempDir(), output.DefaultResultFile),
		Concurrency:   5,
		Workers:       2,
		Timeout:       5,
		ChunkSize:     1000,
		StatsInterval: 1,
		Silent:        true,
	}
}

func readLines(t *testing.T, filename string) []string {
	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	return strings.Fields(string(data))
}

func TestRunner_Scenario(t *testing.T) {
	server := newTarget(t)
	options := testOptions(t, server.URL+"/")
	options.Candidates = []string{"admin", "backup", "login"}

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Run(context.Background()))

	state := runner.State()
	assert.Equal(t, int64(3), state.Total())
	assert.Equal(t, int64(3), state.Scanned())
	assert.Equal(t, int64(1), state.Hits())
	assert.Equal(t, []string{server.URL + "/admin"}, state.Discoveries())

	require.Equal(t, options.Output, runner.ResultFile())
	assert.Equal(t, []string{server.URL + "/admin"}, readLines(t, runner.ResultFile()))
}

func TestRunner_FullScanCountsEverything(t *testing.T) {
	server := newTarget(t)
	options := testOptions(t, server.URL+"/")
	options.Workers = 3
	options.ChunkSize = 7
	for i := 0; i < 50; i++ {
		options.Candidates = append(options.Candidates, "static/f"+strings.Repeat("x", i%5)+string(rune('a'+i%26)))
	}
	options.Candidates = append(options.Candidates, "missing1", "missing2")

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Run(context.Background()))

	state := runner.State()
	assert.Equal(t, state.Total(), state.Scanned())
	assert.Equal(t, int64(50), state.Hits())
	assert.LessOrEqual(t, int64(len(state.Discoveries())), state.Scanned())
}

func TestRunner_WordlistFile(t *testing.T) {
	server := newTarget(t)
	options := testOptions(t, server.URL+"/")
	options.Wordlist = filepath.Join(t.TempDir(), "dirWebList.txt")
	require.NoError(t, os.WriteFile(options.Wordlist, []byte("admin\n\nbackup\n"), 0o644))

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Run(context.Background()))
	assert.Equal(t, int64(2), runner.State().Total())
	assert.Equal(t, int64(1), runner.State().Hits())
}

func TestRunner_MissingWordlist(t *testing.T) {
	options := testOptions(t, "http://127.0.0.1:1/")
	options.Wordlist = filepath.Join(t.TempDir(), "missing.txt")

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()

	done := make(chan error, 1)
	go func() { done <- runner.Run(context.Background()) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("empty scan did not finish")
	}
	assert.Equal(t, int64(0), runner.State().Total())
	assert.Equal(t, int64(0), runner.State().Scanned())
	assert.Empty(t, readLines(t, runner.ResultFile()))
}

func TestRunner_CancelledBeforeStart(t *testing.T) {
	server := newTarget(t)
	options := testOptions(t, server.URL+"/")
	options.Candidates = []string{"admin", "backup", "login"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Run(ctx))

	assert.Equal(t, int64(0), runner.State().Scanned())
	// partial results are still written
	assert.FileExists(t, runner.ResultFile())
}

func TestRunner_SecondRunUsesNextFile(t *testing.T) {
	server := newTarget(t)
	options := testOptions(t, server.URL+"/")
	options.Candidates = []string{"admin"}

	runner, err := NewRunner(options)
	require.NoError(t, err)
	defer runner.Close()
	require.NoError(t, runner.Run(context.Background()))
	first := runner.ResultFile()
	require.NoError(t, runner.Run(context.Background()))
	second := runner.ResultFile()

	assert.Equal(t, filepath.Join(filepath.Dir(first), "found_directories1.txt"), second)
	assert.Equal(t, readLines(t, first), readLines(t, second))
}

func TestNewRunner_InvalidURL(t *testing.T) {
	options := testOptions(t, "not a url")
	_, err := NewRunner(options)
	require.Error(t, err)
}
