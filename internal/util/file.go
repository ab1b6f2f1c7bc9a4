package util

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/natefinch/atomic"
	"github.com/mitchellh/go-homedir"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// CheckFilePermissionsForExecution checks whether the given filePath owner, group and permissions
// are safe to use this file for execution by kraken2go.
func CheckFilePermissionsForExecution(filePath string) (bool, error) {
	var file = filePath

	file, err := filepath.EvalSymlinks(file)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false, errors.New("file not found")
	}

	stat := info.Sys().(*syscall.Stat_t)
	if stat.Uid != 0 {
		return false, errors.New("owner is not root")
	}

	if stat.Gid != 0 {
		mode := info.Mode()
		groupWrite := mode & (os.FileMode(0o020))
		if groupWrite != 0 {
			return false, errors.New("group is not root but has write permission")
		}
	}

	otherWrite := info.Mode() & (os.FileMode(0o002))
	if otherWrite != 0 {
		return false, errors.New("others have write permission")
	}

	return true, nil
}

// ExpandPath resolves a leading "~" to the home directory of the current user
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// WriteFileAtomic replaces the content of the file at path, creating parent directories if necessary.
// Readers will either see the old or the new content, never a partial write.
func WriteFileAtomic(path string, data []byte) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	parentDir := filepath.Dir(path)
	if _, err = os.Stat(parentDir); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(parentDir, 0755); err != nil {
			return err
		}
	}

	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return atomic.WriteFile(path, strings.NewReader(string(data)))
}

// LabeledValue is a single "label value" line as used by file and cmd based devices
type LabeledValue struct {
	Label string
	Value float64
}

// ParseLabeledValues parses lines of the form "<label> <value>".
// The label may contain whitespace, the value is always the last field.
// Empty lines and lines starting with '#' are ignored.
func ParseLabeledValues(reader io.Reader) ([]LabeledValue, error) {
	var result []LabeledValue
	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= 0 || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected '<label> <value>', got '%s'", lineNumber, line)
		}
		valueField := fields[len(fields)-1]
		value, err := strconv.ParseFloat(valueField, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid value '%s': %w", lineNumber, valueField, err)
		}
		label := strings.Join(fields[:len(fields)-1], " ")
		result = append(result, LabeledValue{Label: label, Value: value})
	}
	return result, scanner.Err()
}

// ReadLabeledValuesFromFile reads "label value" lines from the given file
func ReadLabeledValuesFromFile(path string) ([]LabeledValue, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)
	return ParseLabeledValues(file)
}
