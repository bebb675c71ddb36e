package drive

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

var defaultIgnoreLines = []string{
	// editors
	"*~",
	"*.swp",
	"*.tmp",
	".idea",
	".vscode",
	// OS-specific
	".DS_Store",
	"Thumbs.db",
	"desktop.ini",
	// tooling
	"node_modules/",
	".git",
}

// IgnoreList decides which drive paths the watcher never reports. It
// combines built-in rules with an optional gitignore-syntax file.
type IgnoreList struct {
	ignore *gitignore.GitIgnore
	rules  int
}

// LoadIgnoreList compiles the default rules plus the lines of path. A
// missing file is not an error.
func LoadIgnoreList(path string) (*IgnoreList, error) {
	lines := append([]string(nil), defaultIgnoreLines...)
	rules := 0

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("opening ignore file: %w", err)
	default:
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			lines = append(lines, line)
			rules++
		}

		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading ignore file: %w", err)
		}
	}

	return &IgnoreList{ignore: gitignore.CompileIgnoreLines(lines...), rules: rules}, nil
}

// Rules returns the number of rules read from the ignore file.
func (l *IgnoreList) Rules() int {
	return l.rules
}

// Matches reports whether the drive path is ignored.
func (l *IgnoreList) Matches(path string) bool {
	return l.ignore.MatchesPath(strings.TrimPrefix(path, "/"))
}
