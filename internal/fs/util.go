package fs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samson/spritepack/internal/logging"
)

// ListFiles lists the regular files in dir whose extension (lowercased,
// without the leading dot) is contained in exts.
// An empty exts lists all regular files.
// The result is sorted by file name.
func ListFiles(dir string, exts []string) ([]string, error) {
	wanted := make(map[string]bool)
	for _, e := range exts {
		e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")
		if e != "" {
			wanted[e] = true
		}
	}

	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if len(wanted) != 0 {
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
			if !wanted[ext] {
				continue
			}
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(paths)
	logging.Debug("Found %v file(s) in %v", len(paths), dir)
	return paths, nil
}

// EnsureDir creates the given directory if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
