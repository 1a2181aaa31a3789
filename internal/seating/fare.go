package seating

import "math"

// Fare prices a booking: base fare per seat plus a fixed service fee and tax.
type Fare struct {
	ServiceFee float64
	Tax        float64
}

const (
	DefaultServiceFee = 2.00
	DefaultTax        = 3.50
)

func DefaultFare() Fare {
	return Fare{ServiceFee: DefaultServiceFee, Tax: DefaultTax}
}

// Price returns baseFarePerSeat*seatCount + ServiceFee + Tax rounded to cents.
func (f Fare) Price(baseFarePerSeat float64, seatCount int) float64 {
	return RoundAmount(baseFarePerSeat*float64(seatCount) + f.ServiceFee + f.Tax)
}

// RoundAmount rounds half away from zero to two decimal places.
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
