/*
File    : kraber/source/source.go
*/

// Package source reads kraber program text from disk for the CLI entry
// point. It is deliberately thin: the language has no include/import
// statement, so the only file I/O the core ever needs is "load this one
// path before lexing it."
package source

import (
	"fmt"
	"os"
)

// Load reads the file at path and returns its contents as program text.
func Load(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(content), nil
}
