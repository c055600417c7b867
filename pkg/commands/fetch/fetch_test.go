// pkg/commands/fetch/fetch_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: httptest server, temp filesystem, stub selector
// PURPOSE: Test the fetch pipeline end to end without a real terminal

package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/igno/pkg/cache"
	"github.com/arthur-debert/igno/pkg/commands/fetch"
	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/registry"
	"github.com/arthur-debert/igno/pkg/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSelector returns a fixed choice without any terminal interaction.
type stubSelector struct {
	choice  string
	err     error
	options []string
}

func (s *stubSelector) Choose(options []string) (string, error) {
	s.options = options
	if s.err != nil {
		return "", s.err
	}
	return s.choice, nil
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/contents", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name": "Node.gitignore"}, {"name": "Rust.gitignore"}]`))
	})
	mux.HandleFunc("/raw/Rust.gitignore", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("target/\n"))
	})
	mux.HandleFunc("/raw/Node.gitignore", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("node_modules/\n"))
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newOptions(t *testing.T, srv *httptest.Server) fetch.FetchOptions {
	t.Helper()
	dir := t.TempDir()
	return fetch.FetchOptions{
		Client: registry.NewClient(srv.Client(),
			registry.WithTypesURL(srv.URL+"/contents"),
			registry.WithRawBaseURL(srv.URL+"/raw/")),
		Cache:  cache.NewStore(filepath.Join(dir, "types.json")),
		Output: filepath.Join(dir, ".gitignore"),
		TTL:    time.Hour,
		Mode:   writer.ModeAppend,
	}
}

func TestFetch_ExplicitNamesAreNormalized(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	opts.Names = []string{"rust", "node"}

	result, err := fetch.Fetch(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"Rust", "Node"}, result.Names)
	assert.Equal(t, []string{"Rust", "Node"}, result.Write.Appended)

	written, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Equal(t, "# --- Rust ---\ntarget/\n\n# --- Node ---\nnode_modules/\n\n", string(written))
}

func TestFetch_EmptyNamesUsesSelector(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	selector := &stubSelector{choice: "Rust"}
	opts.Selector = selector

	result, err := fetch.Fetch(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"Node", "Rust"}, selector.options,
		"selector should be offered the full sorted type list")
	assert.Equal(t, []string{"Rust"}, result.Names)
}

func TestFetch_SelectorErrorPropagates(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	opts.Selector = &stubSelector{err: errors.New(errors.ErrSelection, "selection aborted")}

	_, err := fetch.Fetch(context.Background(), opts)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSelection))
}

func TestFetch_UnknownTemplateFailsFast(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	opts.Names = []string{"nope"}

	_, err := fetch.Fetch(context.Background(), opts)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "Nope", "error should name the normalized template")

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written on fetch failure")
}

func TestFetch_BuiltinFlagSkipsNetwork(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	opts.Names = []string{"--locks"}

	result, err := fetch.Fetch(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, []string{"--locks"}, result.Names, "flags must not be normalized")

	written, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	assert.Contains(t, string(written), "# --- --locks ---")
	assert.Contains(t, string(written), "yarn.lock")
}

func TestFetch_DryRunPrintsInsteadOfWriting(t *testing.T) {
	srv := newUpstream(t)
	opts := newOptions(t, srv)
	opts.Names = []string{"rust"}
	opts.Mode = writer.ModeDryRun
	var out strings.Builder
	opts.Out = &out

	_, err := fetch.Fetch(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, "# --- Rust ---\ntarget/\n\n", out.String())

	_, statErr := os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(statErr))
}
