package seating

// DefaultPairThreshold is the occupancy percentage at which double berths
// start selling seat by seat.
const DefaultPairThreshold = 70.0

// Policy decides whether double berths must be sold as a pair.
type Policy struct {
	PairThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{PairThreshold: DefaultPairThreshold}
}

// RequiresPairedBooking reports whether m is below the pairing threshold.
// It is evaluated against the live map on every call and never cached.
func (p Policy) RequiresPairedBooking(m *SeatMap) bool {
	return p.RequiresPairedAt(m.OccupancyPercentage())
}

// RequiresPairedAt applies the rule to an occupancy percentage.
// The threshold itself is on the independent side.
func (p Policy) RequiresPairedAt(percentage float64) bool {
	return percentage < p.PairThreshold
}
