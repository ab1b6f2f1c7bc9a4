package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGetWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(2)
	window.Append(40)
	window.Append(42)

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 41.0, avg)
}

func TestGetWindowAvg_OnlyLastValues(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(2)
	window.Append(10)
	window.Append(40)
	window.Append(42)

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 41.0, avg)
}

func TestGetWindowAvg_Empty(t *testing.T) {
	assert.Equal(t, 0.0, GetWindowAvg(CreateRollingWindow(3)))
}
