package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"article-tui/internal/app"
	"article-tui/internal/article"
	"article-tui/internal/config"
	"article-tui/internal/fs"
	"article-tui/internal/logger"
	"article-tui/internal/ui/screens"
)

// runTUI loads configuration and the article, then runs the Bubble Tea
// program until the user quits or ctx is cancelled.
func runTUI(ctx context.Context, stderr io.Writer, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		// Работаем с настройками по умолчанию, но сообщаем о проблеме
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}

	log, closer, err := logger.NewFile(logger.Options{Level: cfg.Logging.Level}, cfg.Logging.FilePath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer closer.Close()

	articlePath := flags.articlePath
	if articlePath == "" {
		articlePath = cfg.Article.Path
	}
	markdown, err := article.Load(articlePath)
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}
	log.WithFields(map[string]any{"article": articlePath, "theme": cfg.Theme}).Info("starting")

	application := app.New(app.Options{
		Config:      cfg,
		Logger:      log,
		ArticlePath: articlePath,
		Markdown:    markdown,
	})
	defer application.Close()

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(),       // Используем альтернативный экран
		tea.WithMouseCellMotion(), // Поддержка мыши
	)

	if articlePath != "" && cfg.Article.Watch {
		watcher, err := watchArticle(ctx, log, program, articlePath)
		if err != nil {
			log.Error(err, "article watch disabled")
		} else {
			defer watcher.Close()
		}
	}

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies command line overrides.
// On a read error the defaults are returned together with the error.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	path, err := flags.resolveConfigPath()
	if err != nil {
		return config.DefaultConfig(), fmt.Errorf("resolve config path: %w", err)
	}
	cfg, loadErr := config.LoadFrom(path)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if level := strings.TrimSpace(flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = config.DefaultLogPath()
	}
	return cfg, loadErr
}

// sender is the part of tea.Program the watcher needs.
type sender interface {
	Send(msg tea.Msg)
}

// watchArticle reloads the article into the program whenever the file is
// written or recreated.
func watchArticle(ctx context.Context, log *logger.Logger, program sender, path string) (*fs.FileWatcher, error) {
	watcher, err := fs.NewFileWatcher(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	err = watcher.WatchFile(path, func(event fs.FileChangeEvent) {
		if !event.Reloadable() {
			return
		}
		program.Send(reloadArticle(path))
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return watcher, nil
}

func reloadArticle(path string) tea.Msg {
	markdown, err := article.Load(path)
	if err != nil {
		return screens.ArticleLoadFailedMsg{Path: path, Err: err}
	}
	return screens.ArticleLoadedMsg{Path: path, Markdown: markdown}
}
