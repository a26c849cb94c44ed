package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/lib/config"
	"github.com/pthm/bulma/lib/logger"
	"github.com/pthm/bulma/lib/showcase"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "bulma 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestRenderCommandWritesPage(t *testing.T) {
	output, err := execute(t, "render", "forms")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"))
	require.Contains(t, output, "<title>Forms")
}

func TestRenderCommandUsesConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bulma.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Acme UI\ntheme: dark\n"), 0o644))

	out := filepath.Join(dir, "home.html")
	_, err := execute(t, "--config", path, "render", "home", "--out", out)
	require.NoError(t, err)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(html), "Acme UI")
	require.Contains(t, string(html), "theme-dark")
}

func TestRenderCommandAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	_, err := execute(t, "render", "--all", "--dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Contains(t, names, "home.html")
	require.Contains(t, names, "docs.html")
	require.Len(t, names, 8)
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := execute(t, "render")
	require.ErrorContains(t, err, "page name required")

	_, err = execute(t, "render", "nope")
	require.ErrorIs(t, err, showcase.ErrNotFound)
	require.ErrorContains(t, err, "docs")
}

func TestVocabCommand(t *testing.T) {
	output, err := execute(t, "vocab", "--plain")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Equal(t, bulma.Vocabulary(), lines)

	output, err = execute(t, "vocab", "--width", "40")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		require.LessOrEqual(t, len(line), 40)
	}
}

func writeVocabularyCSS(t *testing.T, skip string) string {
	t.Helper()
	var css strings.Builder
	for _, tok := range bulma.Vocabulary() {
		if tok != skip {
			css.WriteString("." + tok + "{}\n")
		}
	}
	path := filepath.Join(t.TempDir(), "bulma.css")
	require.NoError(t, os.WriteFile(path, []byte(css.String()), 0o644))
	return path
}

func TestAuditCommand(t *testing.T) {
	output, err := execute(t, "audit", "--css", writeVocabularyCSS(t, ""))
	require.NoError(t, err)
	require.Contains(t, output, "All tokens defined")

	output, err = execute(t, "audit", "--css", writeVocabularyCSS(t, "is-loading"))
	require.ErrorContains(t, err, "1 missing")
	require.Contains(t, output, "is-loading")
}

func TestAuditCommandRequiresCSS(t *testing.T) {
	_, err := execute(t, "audit")
	require.ErrorContains(t, err, `"css" not set`)
}

func TestServerRoutes(t *testing.T) {
	app, err := showcase.New(config.Default(), logger.Nop(), showcase.NewMetrics(nil))
	require.NoError(t, err)
	e := newServer(app, logger.Nop())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/components", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.Contains(t, rec.Body.String(), "Components")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRunServeStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, &rootFlags{logLevel: "error"}, serveOptions{addr: addr})
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
