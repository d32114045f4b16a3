package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"article-tui/internal/article"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, article.DefaultState(), article.StateFrom(cfg.ArticleDefaults()))
}

func TestLoadFromCreatesMissingFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.FileExists(t, path)
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, filepath.Join(dir, "cache", AppName, "app.log"), cfg.Logging.FilePath)
}

func TestLoadFromNormalizesInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := `
theme: neon
defaults:
  font_family: Comic Sans
  font_size: 25px
  font_color: "#6FC1FD"
  background_color: red
  content_width: 948px
keybindings:
  toggle_panel: ""
logging:
  level: loud
  file_path: /tmp/article.log
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "/tmp/article.log", cfg.Logging.FilePath)
	require.Equal(t, "Open Sans", cfg.Defaults.FontFamily)
	require.Equal(t, "25px", cfg.Defaults.FontSize)
	require.Equal(t, "#6FC1FD", cfg.Defaults.FontColor)
	require.Equal(t, "#FFFFFF", cfg.Defaults.BackgroundColor)
	require.Equal(t, "948px", cfg.Defaults.ContentWidth)
	require.Equal(t, "ctrl+o", cfg.Keybindings["toggle_panel"])
	require.Equal(t, "f1", cfg.Keybindings["help"])
	require.NoError(t, cfg.Validate())
}

func TestLoadFromRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	cfg, err := LoadFrom(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	cfg.Defaults.ContentWidth = "640px"

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	require.Contains(t, err.Error(), "Theme")
	require.Contains(t, err.Error(), "ContentWidth")
}

func TestValidatorIsSingleton(t *testing.T) {
	require.Same(t, validatorInstance(), validatorInstance())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Article.Path = "/srv/post.md"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	require.Equal(t, "/srv/post.md", back.Article.Path)
	require.True(t, back.Article.Watch)
}

func TestKeyFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings["help"] = " "
	require.Equal(t, "f1", cfg.Key("help"))

	cfg.Keybindings["help"] = "f2"
	require.Equal(t, "f2", cfg.Key("help"))

	var nilCfg *Config
	require.Empty(t, nilCfg.Key("help"))
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/xdg", AppName, "config.yaml"), path)
}

func TestReadKeepsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\nkeybindings:\n  quit: ctrl+q\n"), 0o644))

	cfg, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, "neon", cfg.Theme)
	require.Equal(t, "ctrl+q", cfg.Key(ActionQuit))
	require.Equal(t, "ctrl+o", cfg.Key(ActionTogglePanel))
	require.Error(t, cfg.Validate())

	_, err = Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
