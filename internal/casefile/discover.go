package casefile

import (
	"github.com/myrjola/casefile/internal/errors"
	"log/slog"
	"os"
	"path/filepath"
)

// pattern matches the case file naming convention case_<identifier>.yaml.
const pattern = "case_*.yaml"

// Discover lists the case definition files in dir in lexicographic order.
// Subdirectories and files outside the naming convention are skipped.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read case directory", slog.String("dir", dir))
	}

	var files []string
	// os.ReadDir returns entries sorted by name, which fixes the reporting order
	// for the whole batch.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
