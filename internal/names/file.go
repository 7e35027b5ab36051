// Package names parses and shapes entrant name lists.
package names

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile reads a newline-delimited names file and returns its parsed entries.
// An unreadable file is an error; an empty result is not, callers decide.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only names file.
			_ = cerr
		}
	}()

	var b strings.Builder
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	return ParseLines(b.String()), nil
}
