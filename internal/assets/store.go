package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Store persists uploaded images under the static asset root and enumerates
// the shipped background images. The hub never touches the filesystem; the
// transport layer stores bytes here first and tells the hub afterwards.
type Store struct {
	root   string
	logger zerolog.Logger
}

func NewStore(root string, logger zerolog.Logger) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("static asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static asset root %s is not a directory", root)
	}
	return &Store{root: root, logger: logger}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Save writes an uploaded file into the asset root and returns the URL path
// clients use to fetch it. The filename is flattened to its base so writes
// cannot escape the root.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("unusable upload filename %q", filename)
	}
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("persist upload: %w", err)
	}
	return "/static/" + name, nil
}

// Backgrounds lists the filenames under <root>/backgrounds for the
// connect-time option payload. A missing directory yields an empty list.
func (s *Store) Backgrounds() []string {
	entries, err := os.ReadDir(filepath.Join(s.root, "backgrounds"))
	if err != nil {
		s.logger.Warn().Err(err).Msg("list backgrounds")
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
