package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// LoadFile reads KEY=VALUE lines from path into the process environment so
// that config files can reference them through ${VAR}. Blank lines and lines
// starting with # are skipped, and one pair of surrounding quotes is removed
// from values. Variables already present in the environment are kept.
//
// A missing file is not an error. The number of variables set is returned.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read env file: %w", err)
	}

	set := 0
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return set, fmt.Errorf("%s:%d: expected KEY=VALUE", path, i+1)
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, unquote(strings.TrimSpace(value))); err != nil {
			return set, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		set++
	}
	return set, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
