// Package env holds the shell's private copy of the process environment.
package env

import (
	"errors"
	"os"
	"strings"
)

// ErrInvalidName is returned when setting a variable whose name is empty or
// contains '='.
var ErrInvalidName = errors.New("invalid variable name")

// VEnv represents a virtual environment.
type VEnv interface {
	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Setenv sets the value of the environment variable named by the key.
	// It returns an error, if any.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true. Otherwise the returned value
	// will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	// It returns the value, which will be empty if the variable is not present.
	// To distinguish between an empty value and an unset value, use LookupEnv.
	Getenv(key string) string

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// Store is an ordered KEY=VALUE environment. It never shares its backing
// array with callers or with the process environment.
type Store struct {
	entries []string
}

var _ VEnv = (*Store)(nil)

// New creates an empty environment.
func New() *Store {
	return &Store{}
}

// NewFromEnvList creates an environment holding a copy of environ. Entries
// without '=' get an empty value, and later duplicates replace earlier ones.
func NewFromEnvList(environ []string) *Store {
	out := &Store{}
	for _, e := range environ {
		key, value := splitEntry(e)
		if key == "" {
			continue
		}
		// Ignore error, key is known to be valid.
		_ = out.Setenv(key, value)
	}
	return out
}

// NewFromOS snapshots the current process environment.
func NewFromOS() *Store {
	return NewFromEnvList(os.Environ())
}

func splitEntry(e string) (key, value string) {
	split := strings.SplitN(e, "=", 2)
	key = split[0]
	if len(split) > 1 {
		value = split[1]
	}
	return key, value
}

func validName(key string) bool {
	return key != "" && !strings.Contains(key, "=")
}

// update is the only way entries change. It builds a fresh list holding every
// current entry except key, then places key=*value where key used to be, or at
// the end if key is new. A nil value removes key.
func (s *Store) update(key string, value *string) {
	next := make([]string, 0, len(s.entries)+1)
	placed := false
	for _, e := range s.entries {
		if k, _ := splitEntry(e); k == key {
			if value != nil && !placed {
				next = append(next, key+"="+*value)
				placed = true
			}
			continue
		}
		next = append(next, e)
	}
	if value != nil && !placed {
		next = append(next, key+"="+*value)
	}
	s.entries = next
}

// Setenv implements VEnv.Setenv.
func (s *Store) Setenv(key, value string) error {
	if !validName(key) {
		return ErrInvalidName
	}
	s.update(key, &value)
	return nil
}

// Unsetenv implements VEnv.Unsetenv. Removing a missing key is not an error.
func (s *Store) Unsetenv(key string) error {
	if _, ok := s.LookupEnv(key); !ok {
		return nil
	}
	s.update(key, nil)
	return nil
}

// LookupEnv implements VEnv.LookupEnv.
func (s *Store) LookupEnv(key string) (string, bool) {
	for _, e := range s.entries {
		if k, v := splitEntry(e); k == key {
			return v, true
		}
	}
	return "", false
}

// Getenv implements VEnv.Getenv.
func (s *Store) Getenv(key string) string {
	val, _ := s.LookupEnv(key)
	return val
}

// Environ implements VEnv.Environ.
func (s *Store) Environ() []string {
	out := make([]string, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of variables set.
func (s *Store) Len() int {
	return len(s.entries)
}

// UserHomeDir returns $HOME.
func (s *Store) UserHomeDir() (string, error) {
	if home := s.Getenv("HOME"); home != "" {
		return home, nil
	}
	return "", errors.New("$HOME is not defined")
}

// Clearenv deletes all environment variables.
func (s *Store) Clearenv() {
	s.entries = nil
}
