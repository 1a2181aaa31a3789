package response

import (
	"time"

	"bus-ticketing/internal/seating"
)

type SeatResponse struct {
	Number         int    `json:"number"`
	Side           string `json:"side"`
	Berth          string `json:"berth"`
	Section        string `json:"section"`
	Row            int    `json:"row"`
	PairSeat       *int   `json:"pair_seat,omitempty"`
	Occupied       bool   `json:"occupied"`
	OccupantGender string `json:"occupant_gender,omitempty"`
}

type RowResponse struct {
	Row   int            `json:"row"`
	Seats []SeatResponse `json:"seats"`
}

type SectionResponse struct {
	Section string        `json:"section"`
	Rows    []RowResponse `json:"rows"`
}

type SeatMapResponse struct {
	TripID                string            `json:"trip_id"`
	BaseFare              float64           `json:"base_fare"`
	TotalSeats            int               `json:"total_seats"`
	OccupiedCount         int               `json:"occupied_count"`
	AvailableCount        int               `json:"available_count"`
	OccupancyPercentage   float64           `json:"occupancy_percentage"`
	RequiresPairedBooking bool              `json:"requires_paired_booking"`
	Sections              []SectionResponse `json:"sections"`
}

type SessionResponse struct {
	ID                    string    `json:"id"`
	TripID                string    `json:"trip_id"`
	PendingSeats          []int     `json:"pending_seats"`
	EstimatedTotal        float64   `json:"estimated_total"`
	RequiresPairedBooking bool      `json:"requires_paired_booking"`
	CreatedAt             time.Time `json:"created_at"`
}

func SeatToResponse(s seating.Seat) SeatResponse {
	resp := SeatResponse{
		Number:         s.Number,
		Side:           string(s.Side),
		Berth:          string(s.Berth),
		Section:        string(s.Section),
		Row:            s.Row,
		Occupied:       s.Occupied,
		OccupantGender: string(s.OccupantGender),
	}
	if s.HasPair() {
		pair := s.Pair
		resp.PairSeat = &pair
	}
	return resp
}

// SeatMapToResponse lays the map out section by section, row by row.
func SeatMapToResponse(trip seating.Trip, m *seating.SeatMap, policy seating.Policy) SeatMapResponse {
	sections := make([]SectionResponse, 0, len(m.Layout().Sections))
	for _, section := range m.Layout().Sections {
		rows := make([]RowResponse, 0, m.RowsPerSection())
		for r := 1; r <= m.RowsPerSection(); r++ {
			seats := m.Row(section, r)
			row := RowResponse{Row: r, Seats: make([]SeatResponse, len(seats))}
			for i, s := range seats {
				row.Seats[i] = SeatToResponse(s)
			}
			rows = append(rows, row)
		}
		sections = append(sections, SectionResponse{Section: string(section), Rows: rows})
	}

	return SeatMapResponse{
		TripID:                trip.ID.String(),
		BaseFare:              trip.BaseFare,
		TotalSeats:            m.TotalSeats(),
		OccupiedCount:         m.OccupiedCount(),
		AvailableCount:        m.AvailableCount(),
		OccupancyPercentage:   seating.RoundAmount(m.OccupancyPercentage()),
		RequiresPairedBooking: policy.RequiresPairedBooking(m),
		Sections:              sections,
	}
}
