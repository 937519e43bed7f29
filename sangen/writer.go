package sangen

import (
	"fmt"
	"os"
	"strings"
)

// WriteLines writes the strings to path, one per line. The write goes
// through a temp file and a rename so a storage failure never leaves a
// truncated artifact behind.
func WriteLines(path string, lines []string) error {
	tmp := path + ".tmp"
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(tmp, []byte(data), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}
