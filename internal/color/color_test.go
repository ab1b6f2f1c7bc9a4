package color

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseHex(t *testing.T) {
	// GIVEN
	expectedInputOutput := map[string]RGB{
		"ffffff":  White,
		"#000000": Black,
		"#FF5500": {0xff, 0x55, 0x00},
		"0080ff":  {0x00, 0x80, 0xff},
	}

	for input, output := range expectedInputOutput {
		// WHEN
		result, err := ParseHex(input)

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, output, result)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "#fff", "fffffff", "gggggg", "##ffffff", "ff ff ff"} {
		// WHEN
		_, err := ParseHex(input)

		// THEN
		assert.Error(t, err, input)
	}
}

func TestParseHexList_ReportsIndex(t *testing.T) {
	// WHEN
	_, err := ParseHexList([]string{"ffffff", "nothex"})

	// THEN
	assert.ErrorContains(t, err, "color 1")
}

func TestRGB_String(t *testing.T) {
	// GIVEN
	c := RGB{0xff, 0x00, 0x7f}

	// THEN
	assert.Equal(t, "ff007f", c.Hex())
	assert.Equal(t, "#ff007f", c.String())
	assert.Equal(t, []byte{0xff, 0x00, 0x7f}, c.Bytes())
}

func TestEqual(t *testing.T) {
	a := []RGB{White, Black}

	assert.True(t, Equal(a, []RGB{White, Black}))
	assert.False(t, Equal(a, []RGB{Black, White}))
	assert.False(t, Equal(a, []RGB{White}))
	assert.True(t, Equal(nil, []RGB{}))
}

func TestCopy_IsIndependent(t *testing.T) {
	// GIVEN
	original := []RGB{White}

	// WHEN
	c := Copy(original)
	c[0] = Black

	// THEN
	assert.Equal(t, White, original[0])
	assert.NotNil(t, Copy(nil))
}

func TestRGB_JSON(t *testing.T) {
	// GIVEN
	colors := []RGB{MustParseHex("ff5500"), White}

	// WHEN
	data, err := json.Marshal(colors)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, `["#ff5500","#ffffff"]`, string(data))

	// WHEN
	var decoded []RGB
	err = json.Unmarshal([]byte(`["#00ff00","0000ff"]`), &decoded)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []RGB{MustParseHex("00ff00"), MustParseHex("0000ff")}, decoded)
	assert.Error(t, json.Unmarshal([]byte(`["#00ff0"]`), &decoded))
}
