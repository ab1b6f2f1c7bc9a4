package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeviceName(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "name"), []byte("kraken2\n"), 0644))

	// WHEN
	name := GetDeviceName(dir)

	// THEN
	assert.Equal(t, "kraken2", name)
}

func TestGetDeviceName_Missing(t *testing.T) {
	// WHEN
	name := GetDeviceName(t.TempDir())

	// THEN
	assert.Empty(t, name)
}
