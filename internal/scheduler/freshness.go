package scheduler

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/skysense/airspace-agent/internal/flight"
)

// RegionFreshness describes how current one region's snapshot is.
type RegionFreshness struct {
	Region      string `json:"region"`
	CaptureTime *int64 `json:"capture_time"`          // unix seconds, nil when no snapshot
	AgeSeconds  *int64 `json:"age_seconds,omitempty"` // nil when capture time unknown
	FlightCount int    `json:"flight_count"`
}

// FreshnessMonitor periodically sweeps the snapshot store and records how
// stale each region's data is. It only observes: request paths keep reading
// snapshots fresh per request regardless of what the monitor sees.
type FreshnessMonitor struct {
	scheduler *gocron.Scheduler
	flights   *flight.Service
	interval  time.Duration

	mu     sync.RWMutex
	report map[string]RegionFreshness
}

// New creates a FreshnessMonitor sweeping at the given interval.
func New(flights *flight.Service, interval time.Duration) *FreshnessMonitor {
	return &FreshnessMonitor{
		scheduler: gocron.NewScheduler(time.UTC),
		flights:   flights,
		interval:  interval,
		report:    make(map[string]RegionFreshness),
	}
}

// Start runs one sweep immediately, then schedules the periodic job.
func (m *FreshnessMonitor) Start() error {
	m.Sweep()

	seconds := int(m.interval.Seconds())
	if seconds <= 0 {
		seconds = 300
	}

	_, err := m.scheduler.Every(seconds).Seconds().Do(func() {
		m.Sweep()
	})
	if err != nil {
		return err
	}

	m.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (m *FreshnessMonitor) Stop() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
}

// Sweep reads every known region's snapshot once and records its freshness.
func (m *FreshnessMonitor) Sweep() {
	now := time.Now().UTC().Unix()
	fresh := make(map[string]RegionFreshness)

	for _, region := range m.flights.Regions() {
		snap := m.flights.Snapshot(region)

		entry := RegionFreshness{
			Region:      region,
			CaptureTime: snap.Time,
			FlightCount: len(snap.States),
		}
		if snap.Time != nil {
			age := now - *snap.Time
			entry.AgeSeconds = &age
		} else {
			log.Printf("INFO: no snapshot capture time for %s", region)
		}
		fresh[region] = entry
	}

	m.mu.Lock()
	m.report = fresh
	m.mu.Unlock()
}

// Freshness returns the latest sweep results in stable region order.
func (m *FreshnessMonitor) Freshness() []RegionFreshness {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]RegionFreshness, 0, len(m.report))
	for _, entry := range m.report {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}
