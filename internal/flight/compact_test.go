package flight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysense/airspace-agent/internal/common"
)

func makeSnapshot(region string, n int) Snapshot {
	states := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		states = append(states, Record{
			Callsign:     common.Ptr(fmt.Sprintf("FL%04d", i)),
			BaroAltitude: common.Ptr(30000.0),
			Velocity:     common.Ptr(350.0),
			VerticalRate: common.Ptr(0.0),
			Latitude:     common.Ptr(48.85),
			Longitude:    common.Ptr(2.35),
		})
	}
	return Snapshot{
		Time:   common.Ptr(int64(1700000000)),
		Region: region,
		States: states,
	}
}

func TestCompactBoundsSample(t *testing.T) {
	snap := makeSnapshot("region1", 120)

	c := Compact(snap, 40)
	assert.Equal(t, 120, c.TotalFlights)
	assert.Equal(t, 40, c.SampledFlights)
	require.Len(t, c.States, 40)
	assert.Equal(t, snap.Time, c.Time)
	assert.Equal(t, "region1", c.Region)
}

func TestCompactSampleLargerThanSnapshot(t *testing.T) {
	snap := makeSnapshot("region2", 7)

	c := Compact(snap, 40)
	assert.Equal(t, 7, c.TotalFlights)
	assert.Equal(t, 7, c.SampledFlights)
	assert.Len(t, c.States, 7)
}

func TestCompactZeroSample(t *testing.T) {
	snap := makeSnapshot("region1", 12)

	c := Compact(snap, 0)
	assert.Equal(t, 12, c.TotalFlights)
	assert.Equal(t, 0, c.SampledFlights)
	assert.Empty(t, c.States)
}

func TestCompactEmptySnapshot(t *testing.T) {
	c := Compact(Snapshot{Region: "region5", States: []Record{}}, 40)
	assert.Equal(t, 0, c.TotalFlights)
	assert.Equal(t, 0, c.SampledFlights)
	assert.Empty(t, c.States)
	assert.Nil(t, c.Time)
}

// Compaction takes records in store order so repeated narration over the
// same snapshot talks about the same flights.
func TestCompactPreservesOrder(t *testing.T) {
	snap := makeSnapshot("region3", 50)

	c := Compact(snap, 10)
	require.Len(t, c.States, 10)
	for i, rec := range c.States {
		require.NotNil(t, rec.Callsign)
		assert.Equal(t, fmt.Sprintf("FL%04d", i), *rec.Callsign)
	}
}

func TestCompactProjectsMinimalFields(t *testing.T) {
	snap := makeSnapshot("region1", 3)

	c := Compact(snap, 3)
	for _, rec := range c.States {
		assert.NotNil(t, rec.Callsign)
		assert.NotNil(t, rec.BaroAltitude)
		assert.NotNil(t, rec.Velocity)
		assert.NotNil(t, rec.VerticalRate)
	}
}

func TestCompactCountsAnomaliesInSample(t *testing.T) {
	snap := makeSnapshot("region1", 5)
	// Two anomalous flights inside the sample window, one outside it.
	snap.States[1].BaroAltitude = common.Ptr(5000.0)
	snap.States[2].Velocity = common.Ptr(650.0)
	snap.States[4].VerticalRate = common.Ptr(-4000.0)

	c := Compact(snap, 4)
	assert.Equal(t, 2, c.AnomalousInSample)
}
