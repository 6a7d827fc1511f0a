package flight

// Kinematic thresholds used by Classify. A flight outside any of these
// bands is flagged for operational review.
const (
	MinBaroAltitudeFt  = 10000.0
	MaxBaroAltitudeFt  = 40000.0
	MinVelocityKts     = 200.0
	MaxVelocityKts     = 500.0
	MaxVerticalRateFpm = 2000.0
)

// Reason strings carried on a Verdict so narration can explain the flag.
const (
	ReasonLowAltitude      = "low altitude"
	ReasonHighAltitude     = "high altitude"
	ReasonLowSpeed         = "low speed"
	ReasonHighSpeed        = "high speed"
	ReasonAbnormalVertRate = "abnormal vertical rate"
)

// Classify evaluates the anomaly rules against a single record. A nil field
// never triggers a rule: missing data is unknown, not anomalous.
func Classify(r Record) Verdict {
	var reasons []string

	if r.BaroAltitude != nil {
		switch {
		case *r.BaroAltitude < MinBaroAltitudeFt:
			reasons = append(reasons, ReasonLowAltitude)
		case *r.BaroAltitude > MaxBaroAltitudeFt:
			reasons = append(reasons, ReasonHighAltitude)
		}
	}

	if r.Velocity != nil {
		switch {
		case *r.Velocity < MinVelocityKts:
			reasons = append(reasons, ReasonLowSpeed)
		case *r.Velocity > MaxVelocityKts:
			reasons = append(reasons, ReasonHighSpeed)
		}
	}

	if r.VerticalRate != nil {
		rate := *r.VerticalRate
		if rate > MaxVerticalRateFpm || rate < -MaxVerticalRateFpm {
			reasons = append(reasons, ReasonAbnormalVertRate)
		}
	}

	return Verdict{
		Anomalous: len(reasons) > 0,
		Reasons:   reasons,
	}
}
