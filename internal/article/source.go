package article

import (
	"fmt"
	"os"
)

// MaxSourceSize limits how much of a markdown file is loaded.
const MaxSourceSize = 4 * 1024 * 1024

// Load reads the article markdown. An empty path yields the sample article.
func Load(path string) (string, error) {
	if path == "" {
		return Sample(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat article %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("article %s is a directory", path)
	}
	if info.Size() > MaxSourceSize {
		return "", fmt.Errorf("article %s is too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read article %s: %w", path, err)
	}
	return string(data), nil
}
