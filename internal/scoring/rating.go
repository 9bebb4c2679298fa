package scoring

// Rating is a qualitative band derived from a percentage in [0, 100].
type Rating int

const (
	Inadequate Rating = iota
	Poor
	Acceptable
	Good
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	case Acceptable:
		return "Acceptable"
	case Poor:
		return "Poor"
	default:
		return "Inadequate"
	}
}

// RatingFromPercentage maps a percentage to a Rating using the thresholds
// >=90 Excellent, >=70 Good, >=50 Acceptable, >=30 Poor, else Inadequate.
// The mapping is total (every float maps to a Rating) and monotone
// non-decreasing in percentage.
func RatingFromPercentage(pct float64) Rating {
	switch {
	case pct >= 90:
		return Excellent
	case pct >= 70:
		return Good
	case pct >= 50:
		return Acceptable
	case pct >= 30:
		return Poor
	default:
		return Inadequate
	}
}
