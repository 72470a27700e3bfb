package configstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/AntonioJCosta/gogo/internal/core/domain/alias"
	"github.com/AntonioJCosta/gogo/internal/core/domain/failure"
	"github.com/AntonioJCosta/gogo/internal/core/domain/paths"
	"github.com/AntonioJCosta/gogo/internal/core/ports"
)

// FileConfigStore provides access to the gogo config file via the file system.
type FileConfigStore struct {
	paths    paths.Paths
	template []string
	logger   *slog.Logger
}

// NewFileConfigStore creates a new FileConfigStore. template is written to the
// config file when it does not exist yet; see DefaultTemplate.
func NewFileConfigStore(p paths.Paths, template []string, logger *slog.Logger) ports.ConfigStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileConfigStore{paths: p, template: template, logger: logger}
}

// Paths implements the ports.ConfigStore interface.
func (s *FileConfigStore) Paths() paths.Paths {
	return s.paths
}

// EnsureConfigDir implements the ports.ConfigStore interface.
func (s *FileConfigStore) EnsureConfigDir() error {
	info, err := os.Stat(s.paths.Dir)
	if err == nil {
		if !info.IsDir() {
			return &failure.FileSystemError{Op: "create directory", Path: s.paths.Dir, Err: fs.ErrExist}
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &failure.FileSystemError{Op: "stat", Path: s.paths.Dir, Err: err}
	}

	if err := os.MkdirAll(s.paths.Dir, 0o755); err != nil {
		return &failure.FileSystemError{Op: "create directory", Path: s.paths.Dir, Err: err}
	}
	s.logger.Debug("created config directory", "dir", s.paths.Dir)
	return nil
}

// LoadOrInitialize implements the ports.ConfigStore interface.
func (s *FileConfigStore) LoadOrInitialize() ([]string, error) {
	lines, err := readLines(s.paths.File)
	if err == nil {
		s.logger.Debug("loaded config file", "file", s.paths.File, "lines", len(lines))
		return lines, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &failure.FileSystemError{Op: "read", Path: s.paths.File, Err: err}
	}

	content := strings.Join(s.template, "\n") + "\n"
	if err := os.WriteFile(s.paths.File, []byte(content), 0o644); err != nil {
		return nil, &failure.FileSystemError{Op: "create", Path: s.paths.File, Err: err}
	}
	s.logger.Info("created default config file", "file", s.paths.File)

	initialized := make([]string, len(s.template))
	copy(initialized, s.template)
	return initialized, nil
}

// AppendAlias implements the ports.ConfigStore interface.
func (s *FileConfigStore) AppendAlias(newAlias alias.Alias) error {
	file, err := os.OpenFile(s.paths.File, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return &failure.FileSystemError{Op: "open", Path: s.paths.File, Err: err}
	}
	defer file.Close()

	prefix, err := separatorFor(file)
	if err != nil {
		return &failure.FileSystemError{Op: "read", Path: s.paths.File, Err: err}
	}

	aliasLine := fmt.Sprintf("%s%s = %s\n", prefix, newAlias.Name, newAlias.Target)
	if _, err := file.WriteString(aliasLine); err != nil {
		return &failure.FileSystemError{Op: "append to", Path: s.paths.File, Err: err}
	}
	s.logger.Debug("appended alias", "alias", newAlias.Name, "target", newAlias.Target)
	return nil
}

func readLines(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning config file %s: %w", filePath, err)
	}
	return lines, nil
}

// separatorFor returns "\n" when the file is non-empty and does not end with a newline.
func separatorFor(file *os.File) (string, error) {
	info, err := file.Stat()
	if err != nil {
		return "", err
	}
	if info.Size() == 0 {
		return "", nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if last[0] == '\n' {
		return "", nil
	}
	return "\n", nil
}
