/*
File    : kraber/source/source_test.go
*/
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.kb")
	require.NoError(t, os.WriteFile(path, []byte("declare x as integer\n"), 0o644))

	content, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "declare x as integer\n", content)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.kb"))
	assert.Error(t, err)
}
