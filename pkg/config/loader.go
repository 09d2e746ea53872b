package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/getmockd/pattern/pkg/logging"
)

// Common errors for pattern-set loading.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("configuration file is empty")
	ErrSchema           = errors.New("configuration does not match schema")
)

// Format is a document encoding.
type Format int

// Document formats.
const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file extension: .yaml and .yml are
// YAML, anything else is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Loader reads pattern-set files and resolves their includes.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logging.OrNop(logger)}
}

// LoadFromFile loads path and its includes without logging.
func LoadFromFile(path string) (*File, error) {
	return NewLoader(nil).Load(path)
}

// Load reads path, then every file matched by its include globs, depth
// first in sorted order. The returned File holds the patterns of all files,
// the including file's own patterns first. A file reached twice is read once.
func (l *Loader) Load(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	merged := &File{Version: "1"}
	if err := l.load(abs, map[string]bool{}, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (l *Loader) load(path string, visited map[string]bool, merged *File) error {
	if visited[path] {
		l.logger.Debug("skipping already loaded file", "path", path)
		return nil
	}
	visited[path] = true

	f, err := readFile(path)
	if err != nil {
		return err
	}
	for i := range f.Patterns {
		f.Patterns[i].source = path
	}
	merged.Patterns = append(merged.Patterns, f.Patterns...)
	l.logger.Debug("loaded pattern file", "path", path, "patterns", len(f.Patterns), "includes", len(f.Include))

	baseDir := filepath.Dir(path)
	for _, include := range f.Include {
		glob := include
		if !filepath.IsAbs(glob) {
			glob = filepath.Join(baseDir, glob)
		}

		matches, err := doublestar.FilepathGlob(glob)
		if err != nil {
			return fmt.Errorf("expanding include %q in %s: %w", include, path, err)
		}
		if len(matches) == 0 {
			l.logger.Debug("include matched no files", "path", path, "include", include)
			continue
		}
		slices.Sort(matches)

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}
			if err := l.load(abs, visited, merged); err != nil {
				rel, relErr := filepath.Rel(baseDir, match)
				if relErr != nil {
					rel = match
				}
				return fmt.Errorf("loading %s: %w", rel, err)
			}
		}
	}
	return nil
}

// readFile reads and parses a single document without following includes.
func readFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	f, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and schema-validates a document. Includes are not resolved.
func Parse(data []byte, format Format) (*File, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		doc = normalizeYAML(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	}

	// Round-trip through JSON so the validator and the decoder see the
	// same value types regardless of the source format.
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	var generic any
	if err := json.Unmarshal(canonical, &generic); err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	if err := validateDocument(generic); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(canonical, &f); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &f, nil
}

// ParseYAML parses a YAML document.
func ParseYAML(data []byte) (*File, error) {
	return Parse(data, FormatYAML)
}

// ParseJSON parses a JSON document.
func ParseJSON(data []byte) (*File, error) {
	return Parse(data, FormatJSON)
}

// normalizeYAML converts mappings with non-string keys (for example an
// unquoted positional index "0:") into map[string]any.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	default:
		return v
	}
}

// ToYAML marshals a File to YAML bytes.
func ToYAML(f *File) ([]byte, error) {
	if f == nil {
		return nil, errors.New("file cannot be nil")
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	return data, nil
}
