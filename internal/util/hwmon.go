package util

import (
	"os"
	"path/filepath"
	"strings"
)

// GetDeviceName reads the name of a hwmon device
func GetDeviceName(devicePath string) string {
	content, _ := os.ReadFile(filepath.Join(devicePath, "name"))
	return strings.TrimSpace(string(content))
}
