package textinput

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileSource polls a spool directory for .txt files, each holding one
// command. Files are deleted after they are picked up.
type FileSource struct {
	dir       string
	processed map[string]bool
	mu        sync.Mutex
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{
		dir:       dir,
		processed: make(map[string]bool),
	}
}

func (f *FileSource) Name() string {
	return "file"
}

func (f *FileSource) Start(_ context.Context) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("creating command dir: %w", err)
	}
	return nil
}

func (f *FileSource) Stop() error {
	return nil
}

func (f *FileSource) NextCommand(ctx context.Context) (string, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			text, ok, err := f.checkForNewFile()
			if err != nil {
				return "", err
			}
			if ok {
				return text, nil
			}
		}
	}
}

func (f *FileSource) checkForNewFile() (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return "", false, fmt.Errorf("reading command dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}
		path := filepath.Join(f.dir, entry.Name())
		if f.processed[path] {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("reading command file: %w", err)
		}

		f.processed[path] = true
		if err := os.Remove(path); err == nil {
			delete(f.processed, path)
		}

		text := strings.TrimSpace(string(data))
		if text == "" {
			continue
		}
		return text, true, nil
	}

	return "", false, nil
}
