package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"article-tui/internal/article"
)

// AppName используется в путях к файлам конфигурации и логов
const AppName = "article-tui"

// Действия, которым можно назначить клавишу
const (
	ActionQuit        = "quit"
	ActionHelp        = "help"
	ActionTogglePanel = "toggle_panel"
	ActionPalette     = "command_palette"
)

// Config конфигурация приложения
type Config struct {
	// Внешний вид
	Theme string `yaml:"theme" validate:"oneof=dark light"` // "dark" или "light"

	// Статья
	Article ArticleConfig `yaml:"article"`

	// Параметры статьи по умолчанию (используются при сбросе формы)
	Defaults DefaultsConfig `yaml:"defaults"`

	// Горячие клавиши
	Keybindings map[string]string `yaml:"keybindings"`

	// Логирование
	Logging LoggingConfig `yaml:"logging"`
}

// ArticleConfig источник статьи
type ArticleConfig struct {
	Path  string `yaml:"path"`  // Путь к markdown файлу, пусто - встроенная статья
	Watch bool   `yaml:"watch"` // Перечитывать файл при изменении
}

// DefaultsConfig значения формы по умолчанию
type DefaultsConfig struct {
	FontFamily      string `yaml:"font_family" validate:"font_family"`
	FontSize        string `yaml:"font_size" validate:"font_size"`
	FontColor       string `yaml:"font_color" validate:"hexcolor,font_color"`
	BackgroundColor string `yaml:"background_color" validate:"hexcolor,background_color"`
	ContentWidth    string `yaml:"content_width" validate:"content_width"`
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"` // debug, info, warn, error
	FilePath string `yaml:"file_path"`                                     // Путь к файлу логов
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	defaults := article.DefaultState()

	return &Config{
		Theme: "dark",

		Article: ArticleConfig{
			Path:  "",
			Watch: true,
		},

		Defaults: DefaultsConfig{
			FontFamily:      defaults.FontFamily.Value,
			FontSize:        defaults.FontSize.Value,
			FontColor:       defaults.FontColor.Value,
			BackgroundColor: defaults.BackgroundColor.Value,
			ContentWidth:    defaults.ContentWidth.Value,
		},

		Keybindings: map[string]string{
			ActionQuit:        "ctrl+c",
			ActionHelp:        "f1",
			ActionTogglePanel: "ctrl+o",
			ActionPalette:     "ctrl+p",
		},

		Logging: LoggingConfig{
			Level:    "info",
			FilePath: "", // Будет определен автоматически
		},
	}
}

// ArticleDefaults переводит настройки в значения для article.StateFrom
func (c *Config) ArticleDefaults() article.Defaults {
	return article.Defaults{
		FontFamily:      c.Defaults.FontFamily,
		FontSize:        c.Defaults.FontSize,
		FontColor:       c.Defaults.FontColor,
		BackgroundColor: c.Defaults.BackgroundColor,
		ContentWidth:    c.Defaults.ContentWidth,
	}
}

// Load загружает конфигурацию из стандартного места
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), err // Возвращаем конфиг по умолчанию
	}
	return LoadFrom(configPath)
}

// LoadFrom загружает конфигурацию из файла.
// Если файла нет, он создается с настройками по умолчанию.
func LoadFrom(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := cfg.Save(configPath); err != nil {
			return cfg, err
		}
		cfg.applyPathDefaults()
		return cfg, nil
	}

	cfg, err := Read(configPath)
	if err != nil {
		return cfg, err
	}

	cfg.applyPathDefaults()

	// Нормализация значений; ошибки валидации уже исправлены дефолтами
	_ = cfg.Normalize()

	return cfg, nil
}

// Read разбирает файл поверх значений по умолчанию без нормализации,
// чтобы Validate видел значения как они записаны.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", configPath, err)
	}

	// Заполняем отсутствующие привязки клавиш значениями по умолчанию
	cfg.applyKeybindingDefaults(DefaultConfig().Keybindings)
	return cfg, nil
}

func (c *Config) applyPathDefaults() {
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogPath()
	}
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if defaults == nil {
		return
	}
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		current, ok := c.Keybindings[key]
		if !ok || strings.TrimSpace(current) == "" {
			c.Keybindings[key] = value
		}
	}
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Key возвращает привязку клавиши по имени действия
func (c *Config) Key(action string) string {
	if c == nil {
		return ""
	}
	if key := strings.TrimSpace(c.Keybindings[action]); key != "" {
		return key
	}
	return DefaultConfig().Keybindings[action]
}

// DefaultPath возвращает путь к конфигурационному файлу
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, AppName, "config.yaml"), nil
}

// DefaultLogPath возвращает путь к файлу логов по умолчанию
func DefaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, AppName, "app.log")
}
