package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysense/airspace-agent/internal/common"
)

// fakeStore serves canned snapshots and records how often Load is called.
type fakeStore struct {
	snapshots map[string]Snapshot
	alerts    AlertList
	loads     int
}

func (f *fakeStore) Load(region string) Snapshot {
	f.loads++
	if snap, ok := f.snapshots[region]; ok {
		return snap
	}
	return Snapshot{Region: region, States: []Record{}}
}

func (f *fakeStore) LoadAlerts() AlertList {
	if f.alerts.Alerts == nil {
		return AlertList{Alerts: []Alert{}}
	}
	return f.alerts
}

func (f *fakeStore) Regions() []string {
	regions := make([]string, 0, len(f.snapshots))
	for r := range f.snapshots {
		regions = append(regions, r)
	}
	return regions
}

func lookupFixture() *fakeStore {
	return &fakeStore{
		snapshots: map[string]Snapshot{
			"region1": {
				Region: "region1",
				States: []Record{
					{Callsign: nil, BaroAltitude: common.Ptr(31000.0)},
					{Callsign: common.Ptr("  AFR447  "), Velocity: common.Ptr(420.0)},
					{Callsign: common.Ptr("DLH400"), Velocity: common.Ptr(380.0)},
					{Callsign: common.Ptr("DLH400"), Velocity: common.Ptr(999.0)},
				},
			},
		},
	}
}

func TestLookupTrimsCallsigns(t *testing.T) {
	svc := NewService(lookupFixture())

	r, err := svc.Lookup("region1", " AFR447 ")
	require.NoError(t, err)
	require.NotNil(t, r.Velocity)
	assert.Equal(t, 420.0, *r.Velocity)
}

func TestLookupFirstMatchWins(t *testing.T) {
	svc := NewService(lookupFixture())

	r, err := svc.Lookup("region1", "DLH400")
	require.NoError(t, err)
	require.NotNil(t, r.Velocity)
	assert.Equal(t, 380.0, *r.Velocity)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	svc := NewService(lookupFixture())

	_, err := svc.Lookup("region1", "dlh400")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupEmptyCallsign(t *testing.T) {
	store := lookupFixture()
	svc := NewService(store)

	_, err := svc.Lookup("region1", "")
	assert.ErrorIs(t, err, ErrNotFound)
	// An empty query never scans the snapshot at all.
	assert.Zero(t, store.loads)
}

func TestLookupUnknownCallsign(t *testing.T) {
	svc := NewService(lookupFixture())

	_, err := svc.Lookup("region1", "NOPE99")
	assert.ErrorIs(t, err, ErrNotFound)
}

// A record whose callsign field is null is skipped, never matched; not-found
// stays distinguishable from a null-field record.
func TestLookupSkipsNullCallsigns(t *testing.T) {
	svc := NewService(lookupFixture())

	_, err := svc.Lookup("region1", "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUnknownRegion(t *testing.T) {
	svc := NewService(lookupFixture())

	_, err := svc.Lookup("region9", "AFR447")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertsNeverNil(t *testing.T) {
	svc := NewService(&fakeStore{})
	list := svc.Alerts()
	assert.NotNil(t, list.Alerts)
	assert.Empty(t, list.Alerts)
}
