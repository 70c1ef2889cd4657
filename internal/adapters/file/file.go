package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackramireznewacc/webp-converter/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// StagePath returns a unique scratch path inside dir for writing a pending
// output. Staging in the target directory keeps the final rename atomic.
func StagePath(dir string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, id.String()+".tmp")
	log.Debug().Str("path", path).Msg("staging output file")

	return path, nil
}

// Publish moves a staged file onto its final path, replacing any previous
// output at that location.
func Publish(staged, target string) error {
	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("error publishing output file %w", err)
	}

	log.Debug().Str("path", target).Msg("published output file")

	return nil
}

// Discard removes a staged file that will not be published and logs success
// or failure.
func Discard(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up staged file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up staged file")
}

// FreePath returns target if nothing occupies it, otherwise the first
// "name_N.ext" variant that is free.
func FreePath(target string) string {
	if _, err := os.Stat(target); err != nil {
		return target
	}

	ext := filepath.Ext(target)
	base := strings.TrimSuffix(target, ext)

	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", base, counter, ext)
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// Scanner resolves command line inputs to conversion sources.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Expand resolves an input argument to source files. A directory yields its
// supported image files, any other path passes through unchanged.
func (s *Scanner) Expand(path string) ([]string, error) {
	stat, err := os.Stat(path)
	if err != nil || !stat.IsDir() {
		return []string{path}, nil
	}

	return ScanDir(path)
}

// ScanDir lists the supported image files directly inside dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if domain.IsSupportedInput(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	log.Debug().Str("dir", dir).Int("files", len(paths)).Msg("scanned directory")

	return paths, nil
}
