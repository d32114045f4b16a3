package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"article-tui/internal/logger"
	"article-tui/internal/ui/screens"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestOptionsCommandListsCatalogues(t *testing.T) {
	out, err := execute(t, "options")
	require.NoError(t, err)
	require.Contains(t, out, "PARAMETER")
	require.Contains(t, out, "cormorant-garamond")
	require.Contains(t, out, "#FD24AF")
	require.Contains(t, out, "1394px")
	require.Contains(t, out, "Узкий")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, path)
	require.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	require.Contains(t, out, "is valid")
}

func TestConfigValidateReportsInvalidFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\ndefaults:\n  content_width: 640px\n"), 0o644))

	out, err := execute(t, "--config", path, "config", "validate")
	require.Error(t, err)
	require.Contains(t, out, "Theme")
	require.Contains(t, out, "ContentWidth")
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := execute(t, "unexpected")
	require.Error(t, err)
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := loadConfig(&rootFlags{configPath: path, logLevel: " DEBUG "})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.NotEmpty(t, cfg.Logging.FilePath)
	require.FileExists(t, path)
}

func TestReloadArticle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "article.md")
	require.NoError(t, os.WriteFile(path, []byte("# Заголовок"), 0o644))

	msg := reloadArticle(path)
	loaded, ok := msg.(screens.ArticleLoadedMsg)
	require.True(t, ok)
	require.Equal(t, "# Заголовок", loaded.Markdown)

	failed, ok := reloadArticle(dir).(screens.ArticleLoadFailedMsg)
	require.True(t, ok)
	require.Error(t, failed.Err)
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSender) loaded() []screens.ArticleLoadedMsg {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []screens.ArticleLoadedMsg
	for _, msg := range r.msgs {
		if m, ok := msg.(screens.ArticleLoadedMsg); ok {
			out = append(out, m)
		}
	}
	return out
}

func TestWatchArticleSendsReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.md")
	require.NoError(t, os.WriteFile(path, []byte("первая версия"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recordingSender{}
	watcher, err := watchArticle(ctx, logger.Nop(), rec, path)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte("вторая версия"), 0o644))

	require.Eventually(t, func() bool {
		for _, m := range rec.loaded() {
			if m.Markdown == "вторая версия" {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchArticleMissingDirectory(t *testing.T) {
	_, err := watchArticle(context.Background(), logger.Nop(), &recordingSender{}, filepath.Join(t.TempDir(), "missing", "a.md"))
	require.Error(t, err)
}
