package profile

import (
	"github.com/markusressel/kraken2go/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_LoadFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "profiles", "kraken.json")
	device := "kraken-x62"
	p := Default(krakenCapabilities(t), BuiltinCurveDefaults)
	p.Device = &device
	p.Ring.Colors = []color.RGB{color.MustParseHex("00ff00")}
	_, err := p.Fan.AddPoint(50, 80)
	require.NoError(t, err)

	// WHEN
	err = SaveFile(path, p)

	// THEN
	require.NoError(t, err)

	// WHEN
	loaded, err := LoadFile(path, BuiltinCurveDefaults)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "kraken-x62", loaded.DeviceId())
	assert.Equal(t, p.Logo, loaded.Logo)
	assert.Equal(t, p.Ring, loaded.Ring)
	assert.Equal(t, p.Fan.Points(), loaded.Fan.Points())
	assert.Equal(t, p.Pump.Points(), loaded.Pump.Points())
}

func TestLoadFile_Missing(t *testing.T) {
	// WHEN
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), BuiltinCurveDefaults)

	// THEN
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_Malformed(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "profile.json")
	// logo is fine, ring has an invalid color: nothing of it may be applied
	doc := `{"preset": {
	  "logo": {"mode": "breathing", "colors": ["#ff0000"], "speed": "fastest"},
	  "ring": {"mode": "wave", "colors": ["#zzzzzz"], "speed": "normal"}
	}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	// WHEN
	p, err := LoadFile(path, BuiltinCurveDefaults)

	// THEN
	var malformed *MalformedProfileError
	assert.ErrorAs(t, err, &malformed)
	assert.Nil(t, p)
}

func TestSaveFile_Unwritable(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte{}, 0o644))
	p := Default(krakenCapabilities(t), BuiltinCurveDefaults)

	// WHEN
	err := SaveFile(filepath.Join(blocker, "profile.json"), p)

	// THEN
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
}
