package device

import (
	"github.com/markusressel/kraken2go/internal/catalog"
	"github.com/markusressel/kraken2go/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestResolveTables_Builtin(t *testing.T) {
	// GIVEN
	config := configuration.DeviceConfig{ID: "kraken", Catalog: catalog.BuiltinKrakenX}
	builtin, err := catalog.GetBuiltin(catalog.BuiltinKrakenX)
	require.NoError(t, err)

	// WHEN
	tables, err := ResolveTables(config, nil)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, builtin.ModeMap(), tables.Modes)
	assert.Equal(t, builtin.DefaultRingMode, tables.DefaultRingMode)
	assert.Equal(t, 2, tables.Speeds["normal"])
}

func TestResolveTables_ExtendsAndOverrides(t *testing.T) {
	// GIVEN
	base := configuration.DeviceConfig{ID: "base", Catalog: catalog.BuiltinKrakenX}
	child := configuration.DeviceConfig{
		ID:              "child",
		Extends:         "base",
		DefaultRingMode: "Wave",
		Modes: []configuration.ColorModeConfig{
			{Name: "Wave", Value: 99, MinColors: 2, MaxColors: 4},
			{Name: "disco", Value: 100, MinColors: 1, MaxColors: 2},
		},
		Speeds: map[string]int{"normal": 7},
	}
	grandChild := configuration.DeviceConfig{
		ID:      "grandchild",
		Extends: "child",
		Speeds:  map[string]int{"ludicrous": 9},
	}
	all := []configuration.DeviceConfig{base, child, grandChild}

	// WHEN
	tables, err := ResolveTables(grandChild, all)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 99, tables.Modes["wave"].Value)
	assert.Equal(t, 4, tables.Modes["wave"].MaxColors)
	assert.Equal(t, "disco", tables.Modes["disco"].Name)
	assert.Contains(t, tables.Modes, "fixed")
	assert.Equal(t, 7, tables.Speeds["normal"])
	assert.Equal(t, 9, tables.Speeds["ludicrous"])
	assert.Equal(t, 0, tables.Speeds["slowest"])
	assert.Equal(t, "wave", tables.DefaultRingMode)
}

func TestResolveTables_Cycle(t *testing.T) {
	// GIVEN
	a := configuration.DeviceConfig{ID: "a", Extends: "b"}
	b := configuration.DeviceConfig{ID: "b", Extends: "a"}

	// WHEN
	_, err := ResolveTables(a, []configuration.DeviceConfig{a, b})

	// THEN
	assert.ErrorContains(t, err, "cycle")
}

func TestResolveTables_UnknownParent(t *testing.T) {
	// GIVEN
	a := configuration.DeviceConfig{ID: "a", Extends: "missing"}

	// WHEN
	_, err := ResolveTables(a, []configuration.DeviceConfig{a})

	// THEN
	assert.EqualError(t, err, "device a: no device definition with id 'missing' found")
}
