package curves

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func createTestCurve(t *testing.T) *ControlCurve {
	c, err := NewControlCurve("fan", []ControlPoint{
		{Temperature: 0, Duty: 0},
		{Temperature: 30, Duty: 30},
		{Temperature: 60, Duty: 100},
	})
	require.NoError(t, err)
	return c
}

func TestNewControlCurve_SortsAndClamps(t *testing.T) {
	// WHEN
	c, err := NewControlCurve("pump", []ControlPoint{
		{Temperature: 200, Duty: 150},
		{Temperature: -10, Duty: -5},
		{Temperature: 40, Duty: 50},
	})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []ControlPoint{
		{Temperature: MinTemperature, Duty: 0},
		{Temperature: 40, Duty: 50},
		{Temperature: MaxTemperature, Duty: 100},
	}, c.Points())
	assert.Equal(t, "pump", c.Id())
}

func TestNewControlCurve_Errors(t *testing.T) {
	// WHEN
	_, err := NewControlCurve("fan", []ControlPoint{{Temperature: 10, Duty: 10}})

	// THEN
	var minErr *MinimumPointsError
	assert.ErrorAs(t, err, &minErr)

	// WHEN
	_, err = NewControlCurve("fan", []ControlPoint{{Temperature: 10, Duty: 10}, {Temperature: 10, Duty: 20}})

	// THEN
	var dupErr *DuplicateTemperatureError
	assert.ErrorAs(t, err, &dupErr)
}

func TestNewDefaultCurve(t *testing.T) {
	assert.Equal(t, DefaultFanPoints, NewDefaultCurve(FanCurveId).Points())
	assert.Equal(t, DefaultPumpPoints, NewDefaultCurve(PumpCurveId).Points())
	assert.Equal(t, 4, NewDefaultCurve(PumpCurveId).Len())
}

func TestDutyAt_Interpolates(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)

	// THEN
	assert.Equal(t, 65, c.DutyAt(45))
	assert.Equal(t, 15, c.DutyAt(15))
	assert.Equal(t, 30, c.DutyAt(30))
}

func TestDutyAt_ClampsOutsideOfCurve(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)

	// THEN
	assert.Equal(t, 0, c.DutyAt(-3))
	assert.Equal(t, 0, c.DutyAt(-50))
	assert.Equal(t, 100, c.DutyAt(60))
	assert.Equal(t, 100, c.DutyAt(110))
}

func TestAddPoint_KeepsTemperatureOrder(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)
	expectedDuty := c.DutyAt(45)

	// WHEN
	index, err := c.AddPoint(45, expectedDuty)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, []ControlPoint{
		{Temperature: 0, Duty: 0},
		{Temperature: 30, Duty: 30},
		{Temperature: 45, Duty: 65},
		{Temperature: 60, Duty: 100},
	}, c.Points())
}

func TestAddPoint_ClampsValues(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)

	// WHEN
	index, err := c.AddPoint(150, 120)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 3, index)
	assert.Equal(t, ControlPoint{Temperature: MaxTemperature, Duty: MaxDuty}, c.Points()[3])
}

func TestAddPoint_DuplicateTemperature(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)
	before := c.Points()

	// WHEN
	_, err := c.AddPoint(30, 80)

	// THEN
	var dupErr *DuplicateTemperatureError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 30, dupErr.Temperature)
	assert.Equal(t, before, c.Points())
}

func TestRemovePoint(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)

	// WHEN
	err := c.RemovePoint(0)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []ControlPoint{{Temperature: 30, Duty: 30}, {Temperature: 60, Duty: 100}}, c.Points())
}

func TestRemovePoint_MinimumPoints(t *testing.T) {
	// GIVEN
	c, err := NewControlCurve("fan", []ControlPoint{{Temperature: 20, Duty: 20}, {Temperature: 60, Duty: 100}})
	require.NoError(t, err)

	// WHEN
	err = c.RemovePoint(1)

	// THEN
	var minErr *MinimumPointsError
	assert.ErrorAs(t, err, &minErr)
	assert.Equal(t, 2, c.Len())
}

func TestRemovePoint_IndexOutOfRange(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)

	// WHEN
	err := c.RemovePoint(3)

	// THEN
	var rangeErr *IndexOutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, 3, c.Len())
}

func TestUpdateLive_DoesNotTouchPoints(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)
	before := c.Points()
	_, ok := c.Live()
	assert.False(t, ok)

	// WHEN
	marker := c.UpdateLive(45)

	// THEN
	live, ok := c.Live()
	assert.True(t, ok)
	assert.Equal(t, marker, live)
	assert.Equal(t, 65, live.Duty)
	assert.Equal(t, before, c.Points())
}

func TestCopy_IsIndependent(t *testing.T) {
	// GIVEN
	c := createTestCurve(t)
	c.UpdateLive(20)

	// WHEN
	cp := c.Copy()
	_, err := cp.AddPoint(10, 10)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 4, cp.Len())
	_, ok := cp.Live()
	assert.False(t, ok)
}
