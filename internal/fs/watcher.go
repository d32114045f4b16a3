package fs

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"article-tui/internal/logger"
)

// FileWatcher следит за изменениями отдельных файлов.
// Watching happens on the parent directory so editors that save through
// rename-and-replace are still noticed.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	callbacks map[string][]FileChangeCallback
	dirs      map[string]int
	log       *logger.Logger
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// FileChangeCallback функция обратного вызова для изменений файлов
type FileChangeCallback func(event FileChangeEvent)

// FileChangeEvent событие изменения файла
type FileChangeEvent struct {
	Path      string        // Путь к файлу
	Operation FileOperation // Тип операции
}

// FileOperation тип операции с файлом
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
	FileRenamed
)

// NewFileWatcher создает новый наблюдатель за файлами
func NewFileWatcher(ctx context.Context, log *logger.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	fw := &FileWatcher{
		watcher:   watcher,
		callbacks: make(map[string][]FileChangeCallback),
		dirs:      make(map[string]int),
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	go fw.watchLoop()

	return fw, nil
}

// WatchFile начинает наблюдение за файлом и регистрирует обработчик
func (fw *FileWatcher) WatchFile(path string, callback FileChangeCallback) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.dirs[dir] == 0 {
		if err := fw.watcher.Add(dir); err != nil {
			return err
		}
	}
	if _, seen := fw.callbacks[abs]; !seen {
		fw.dirs[dir]++
	}
	fw.callbacks[abs] = append(fw.callbacks[abs], callback)
	return nil
}

// UnwatchFile прекращает наблюдение за файлом
func (fw *FileWatcher) UnwatchFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, ok := fw.callbacks[abs]; !ok {
		return nil
	}
	delete(fw.callbacks, abs)
	fw.dirs[dir]--
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		return fw.watcher.Remove(dir)
	}
	return nil
}

// Close закрывает наблюдатель и дожидается завершения цикла
func (fw *FileWatcher) Close() error {
	fw.cancel()
	err := fw.watcher.Close()
	<-fw.done
	return err
}

// watchLoop главный цикл наблюдения
func (fw *FileWatcher) watchLoop() {
	defer close(fw.done)
	for {
		select {
		case <-fw.ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Error(err, "file watcher error")
		}
	}
}

// handleEvent обрабатывает событие изменения файла
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	fw.mu.RLock()
	callbacks := append([]FileChangeCallback(nil), fw.callbacks[abs]...)
	fw.mu.RUnlock()

	if len(callbacks) == 0 {
		return
	}
	changeEvent := convertEvent(abs, event)
	for _, callback := range callbacks {
		callback(changeEvent)
	}
}

// convertEvent конвертирует fsnotify.Event в FileChangeEvent
func convertEvent(path string, event fsnotify.Event) FileChangeEvent {
	var operation FileOperation

	switch {
	case event.Op.Has(fsnotify.Create):
		operation = FileCreated
	case event.Op.Has(fsnotify.Write):
		operation = FileModified
	case event.Op.Has(fsnotify.Remove):
		operation = FileDeleted
	case event.Op.Has(fsnotify.Rename):
		operation = FileRenamed
	default:
		operation = FileModified
	}

	return FileChangeEvent{
		Path:      path,
		Operation: operation,
	}
}

// Reloadable reports whether the file content may have changed and should be
// read again.
func (e FileChangeEvent) Reloadable() bool {
	return e.Operation == FileCreated || e.Operation == FileModified
}

// String возвращает строковое представление операции
func (op FileOperation) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileModified:
		return "modified"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}
