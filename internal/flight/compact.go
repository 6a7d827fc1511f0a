package flight

// DefaultMaxSample bounds how many records a compact snapshot carries so the
// grounded context stays within the completion backend's token budget.
const DefaultMaxSample = 40

// Compact bounds a snapshot to at most maxSample records, projected down to
// the minimal field subset. Records are taken in store order so repeated
// calls over the same snapshot narrate the same flights. TotalFlights is
// always the full snapshot length, never the sample length.
func Compact(s Snapshot, maxSample int) CompactSnapshot {
	if maxSample < 0 {
		maxSample = 0
	}

	n := maxSample
	if n > len(s.States) {
		n = len(s.States)
	}

	sampled := make([]CompactRecord, 0, n)
	anomalous := 0
	for _, r := range s.States[:n] {
		sampled = append(sampled, CompactRecord{
			Callsign:     r.Callsign,
			BaroAltitude: r.BaroAltitude,
			Velocity:     r.Velocity,
			VerticalRate: r.VerticalRate,
		})
		if Classify(r).Anomalous {
			anomalous++
		}
	}

	return CompactSnapshot{
		Time:              s.Time,
		Region:            s.Region,
		TotalFlights:      len(s.States),
		SampledFlights:    len(sampled),
		AnomalousInSample: anomalous,
		States:            sampled,
	}
}
