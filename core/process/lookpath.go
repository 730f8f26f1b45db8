package process

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

// EnvPath is the variable holding the command search path.
const EnvPath = "PATH"

// Getenver looks up environment variables.
type Getenver interface {
	Getenv(key string) string
}

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the PATH variable of env, in order. If file contains a slash, it is
// returned as-is and PATH is not consulted; whether it can be run is only
// known when it is started. The result may be an absolute path or a path
// relative to the current directory.
func LookPath(fsys afero.Fs, env Getenver, file string) (string, error) {
	if strings.Contains(file, "/") {
		return file, nil
	}

	path := env.Getenv(EnvPath)
	if path == "" {
		return "", ErrNotFound
	}
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(fsys, path); err == nil {
			if dir == "." {
				// filepath.Join drops the leading "./" which would make the
				// result ambiguous with a PATH lookup.
				return "." + string(filepath.Separator) + path, nil
			}
			return path, nil
		}
	}
	return "", ErrNotFound
}
