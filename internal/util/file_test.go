package util

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileHasPermissionsOtherHasWritePermission(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "testfile")

	filePerm := os.FileMode(0o702)
	err := os.WriteFile(filePath, []byte("#!/bin/sh"), filePerm)
	require.NoError(t, err)
	err = os.Chmod(filePath, filePerm)
	require.NoError(t, err)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, false, result)
	assert.Error(t, err)
}

func TestFileHasPermissionsFileMissing(t *testing.T) {
	// WHEN
	result, err := CheckFilePermissionsForExecution(filepath.Join(t.TempDir(), "missing"))

	// THEN
	assert.False(t, result)
	assert.Error(t, err)
}

func TestWriteFileAtomic_CreatesParentDirectories(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "nested", "dir", "profile.json")

	// WHEN
	err := WriteFileAtomic(path, []byte("{}"))

	// THEN
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(content))
}

func TestWriteFileAtomic_ReplacesContent(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0644))

	// WHEN
	err := WriteFileAtomic(path, []byte("new"))

	// THEN
	require.NoError(t, err)
	content, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(content))
}

func TestParseLabeledValues(t *testing.T) {
	// GIVEN
	input := `
# kraken status
Liquid temperature 31.5
Fan speed 1200
Pump speed 2400
`

	// WHEN
	result, err := ParseLabeledValues(strings.NewReader(input))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []LabeledValue{
		{Label: "Liquid temperature", Value: 31.5},
		{Label: "Fan speed", Value: 1200},
		{Label: "Pump speed", Value: 2400},
	}, result)
}

func TestParseLabeledValues_Invalid(t *testing.T) {
	// WHEN
	_, err := ParseLabeledValues(strings.NewReader("Fan speed fast"))

	// THEN
	assert.ErrorContains(t, err, "line 1")

	// WHEN
	_, err = ParseLabeledValues(strings.NewReader("lonely"))

	// THEN
	assert.Error(t, err)
}

func TestReadLabeledValuesFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "status")
	require.NoError(t, os.WriteFile(path, []byte("temp 30\n"), 0644))

	// WHEN
	result, err := ReadLabeledValuesFromFile(path)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []LabeledValue{{Label: "temp", Value: 30}}, result)
}
