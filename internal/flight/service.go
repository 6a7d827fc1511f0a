package flight

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Lookup when no record in the region's snapshot
// matches the requested callsign. It is a distinct outcome from a found
// record whose fields happen to be null.
var ErrNotFound = errors.New("no flight data for callsign")

// Store is the contract the file-backed snapshot store must satisfy.
// Load and LoadAlerts never fail; missing data comes back as an empty
// well-formed structure.
type Store interface {
	Load(region string) Snapshot
	LoadAlerts() AlertList
	Regions() []string
}

// Service answers flight data questions against the snapshot store. Each
// call performs a fresh read, so results are as current as the backing
// files at call time.
type Service struct {
	store Store
}

// NewService creates a new Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Snapshot returns the current snapshot for a region.
func (s *Service) Snapshot(region string) Snapshot {
	return s.store.Load(region)
}

// Alerts returns the currently active alerts.
func (s *Service) Alerts() AlertList {
	return s.store.LoadAlerts()
}

// Regions returns the known region names.
func (s *Service) Regions() []string {
	return s.store.Regions()
}

// Lookup finds a flight by callsign within a region's snapshot. Matching is
// whitespace-trimmed, case-sensitive equality against non-empty callsigns;
// the first match in store order wins.
func (s *Service) Lookup(region, callsign string) (Record, error) {
	want := strings.TrimSpace(callsign)
	if want == "" {
		return Record{}, ErrNotFound
	}

	snap := s.store.Load(region)
	for _, r := range snap.States {
		if r.Callsign == nil {
			continue
		}
		if cs := strings.TrimSpace(*r.Callsign); cs != "" && cs == want {
			return r, nil
		}
	}
	return Record{}, ErrNotFound
}
