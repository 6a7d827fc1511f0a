package flight

// Record is a single flight state vector as captured in a regional snapshot.
// Every field may be null in the source data; consumers must treat a nil
// pointer as "data not available" rather than substituting a value.
type Record struct {
	Callsign      *string  `json:"callsign"`
	OriginCountry *string  `json:"origin_country"`
	BaroAltitude  *float64 `json:"baro_altitude"` // feet
	Velocity      *float64 `json:"velocity"`      // knots
	TrueTrack     *float64 `json:"true_track"`    // degrees
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	VerticalRate  *float64 `json:"vertical_rate"` // feet per minute
}

// Snapshot is a point-in-time capture of all flight records for one region.
// States is never nil: an empty or unreadable source yields an empty slice.
type Snapshot struct {
	Time   *int64   `json:"time"` // capture time, unix seconds
	Region string   `json:"region"`
	States []Record `json:"states"`
}

// CompactRecord is the minimal projection of a Record kept in a
// CompactSnapshot.
type CompactRecord struct {
	Callsign     *string  `json:"callsign"`
	BaroAltitude *float64 `json:"baro_altitude"`
	Velocity     *float64 `json:"velocity"`
	VerticalRate *float64 `json:"vertical_rate"`
}

// CompactSnapshot is a bounded, field-reduced projection of a Snapshot,
// sized to fit a bounded-context generation call. TotalFlights always
// reflects the full snapshot, not the sample.
type CompactSnapshot struct {
	Time              *int64          `json:"time"`
	Region            string          `json:"region"`
	TotalFlights      int             `json:"total_flights"`
	SampledFlights    int             `json:"sampled_flights"`
	AnomalousInSample int             `json:"anomalous_flights"`
	States            []CompactRecord `json:"states"`
}

// Verdict is the result of running the anomaly rules over one Record.
// Reasons lists which rules fired; it is empty when Anomalous is false.
type Verdict struct {
	Anomalous bool     `json:"anomalous"`
	Reasons   []string `json:"reasons,omitempty"`
}

// Alert is an operational alert as published by the alerts source.
// The payload is passed through as-is; only the fields the UI relies on
// are named here.
type Alert struct {
	ID       string `json:"id,omitempty"`
	Region   string `json:"region,omitempty"`
	Callsign string `json:"callsign,omitempty"`
	Severity string `json:"severity,omitempty"`
	Message  string `json:"message,omitempty"`
	Time     *int64 `json:"time,omitempty"`
}

// AlertList wraps the alerts payload. Alerts is never nil.
type AlertList struct {
	Alerts []Alert `json:"alerts"`
}
