package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skysense/airspace-agent/internal/flight"
)

const alertsFileName = "alerts.json"

// SnapshotStore reads regional flight snapshots written to disk by an
// external ingestion job. The store never writes; every Load is a fresh
// read of the backing file, so concurrent requests need no coordination.
type SnapshotStore struct {
	dir   string
	files map[string]string // region name -> snapshot path
}

// NewSnapshotStore builds a store over the given snapshots directory for the
// known set of regions. Region "region1" maps to "Region1.json" and so on.
func NewSnapshotStore(dir string, regions []string) *SnapshotStore {
	files := make(map[string]string, len(regions))
	for _, region := range regions {
		region = strings.TrimSpace(region)
		if region == "" {
			continue
		}
		files[region] = filepath.Join(dir, snapshotFileName(region))
	}
	return &SnapshotStore{
		dir:   dir,
		files: files,
	}
}

// Dir returns the snapshots directory the store reads from.
func (s *SnapshotStore) Dir() string {
	return s.dir
}

// Regions returns the known region names in stable order.
func (s *SnapshotStore) Regions() []string {
	regions := make([]string, 0, len(s.files))
	for region := range s.files {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// Load returns the current snapshot for a region. It never fails: an unknown
// region, a missing or unreadable file, and malformed JSON all degrade to an
// empty, well-formed snapshot for that region.
func (s *SnapshotStore) Load(region string) flight.Snapshot {
	empty := flight.Snapshot{
		Region: region,
		States: []flight.Record{},
	}

	path, ok := s.files[region]
	if !ok {
		return empty
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ERROR: reading snapshot for %s: %v", region, err)
		}
		return empty
	}

	var snap flight.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Printf("ERROR: malformed snapshot for %s: %v", region, err)
		return empty
	}

	if snap.States == nil {
		snap.States = []flight.Record{}
	}
	if snap.Region == "" {
		snap.Region = region
	}
	return snap
}

// LoadAlerts returns the currently active alerts. Absence or corruption of
// the alerts file degrades to an empty list, mirroring Load.
func (s *SnapshotStore) LoadAlerts() flight.AlertList {
	empty := flight.AlertList{Alerts: []flight.Alert{}}

	raw, err := os.ReadFile(filepath.Join(s.dir, alertsFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ERROR: reading alerts file: %v", err)
		}
		return empty
	}

	var list flight.AlertList
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("ERROR: malformed alerts file: %v", err)
		return empty
	}

	if list.Alerts == nil {
		list.Alerts = []flight.Alert{}
	}
	return list
}

// snapshotFileName maps a region name to its snapshot file, matching the
// ingestion job's convention of capitalising the region name.
func snapshotFileName(region string) string {
	return strings.ToUpper(region[:1]) + region[1:] + ".json"
}
