package seating

import (
	"fmt"
	"sort"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

type Berth string

const (
	BerthSingle Berth = "single"
	BerthDouble Berth = "double"
)

type Section string

const (
	SectionLower Section = "lower"
	SectionUpper Section = "upper"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Seat is one position on the vehicle. Number, Side, Berth, Section, Row and
// Pair are fixed when the map is generated; only Occupied and OccupantGender
// change afterwards.
type Seat struct {
	Number         int
	Side           Side
	Berth          Berth
	Section        Section
	Row            int
	Pair           int // 0 when the seat has no pair
	Occupied       bool
	OccupantGender Gender
}

func (s Seat) HasPair() bool {
	return s.Berth == BerthDouble && s.Pair != 0
}

// Layout describes how a vehicle is cut into sections and rows.
// Each row of each section holds one single seat on the left and one
// double berth (two paired seats) on the right.
type Layout struct {
	Sections    []Section
	SeatsPerRow int
}

// DefaultLayout is the sleeper layout: lower and upper deck, three seats per row.
var DefaultLayout = Layout{
	Sections:    []Section{SectionLower, SectionUpper},
	SeatsPerRow: 3,
}

// GroupSize is the number of seats one row adds across all sections.
func (l Layout) GroupSize() int {
	return len(l.Sections) * l.SeatsPerRow
}

// Occupant is a persisted claim on a seat used to restore a map.
type Occupant struct {
	Number int
	Gender Gender
}

// SeatMap is the seat grid of one trip. Seat i is stored at index i-1.
type SeatMap struct {
	layout Layout
	rows   int
	seats  []Seat
}

// Generate builds an empty seat map of totalSeats seats using DefaultLayout.
func Generate(totalSeats int) (*SeatMap, error) {
	return GenerateLayout(DefaultLayout, totalSeats)
}

// GenerateLayout builds an empty seat map for the given layout.
//
// Numbering is fixed for a given size. With R rows per section:
//   - double berths come first, section by section, row by row: the berth in
//     section s, row r holds seats s*2R + 2r - 1 and s*2R + 2r;
//   - single seats follow: section s, row r is seat 2R*len(sections) + s*R + r.
//
// For 36 seats this gives pairs (1,2)..(11,12) on the lower deck,
// (13,14)..(23,24) on the upper deck, singles 25-30 lower and 31-36 upper.
func GenerateLayout(layout Layout, totalSeats int) (*SeatMap, error) {
	if layout.SeatsPerRow != 3 || len(layout.Sections) == 0 {
		return nil, fmt.Errorf("%w: layout with %d seats per row is not supported",
			ErrConfiguration, layout.SeatsPerRow)
	}

	group := layout.GroupSize()
	if totalSeats <= 0 || totalSeats%group != 0 {
		return nil, fmt.Errorf("%w: %d seats is not a positive multiple of %d",
			ErrConfiguration, totalSeats, group)
	}

	rows := totalSeats / group
	nSections := len(layout.Sections)
	seats := make([]Seat, totalSeats)

	for s, section := range layout.Sections {
		for r := 1; r <= rows; r++ {
			first := s*2*rows + 2*r - 1
			second := first + 1
			seats[first-1] = Seat{
				Number: first, Side: SideRight, Berth: BerthDouble,
				Section: section, Row: r, Pair: second,
			}
			seats[second-1] = Seat{
				Number: second, Side: SideRight, Berth: BerthDouble,
				Section: section, Row: r, Pair: first,
			}

			single := 2*rows*nSections + s*rows + r
			seats[single-1] = Seat{
				Number: single, Side: SideLeft, Berth: BerthSingle,
				Section: section, Row: r,
			}
		}
	}

	return &SeatMap{layout: layout, rows: rows, seats: seats}, nil
}

// Restore generates a map of totalSeats seats and marks the given occupants.
// An occupant naming a seat outside the map is a data error.
func Restore(totalSeats int, occupants []Occupant) (*SeatMap, error) {
	m, err := Generate(totalSeats)
	if err != nil {
		return nil, err
	}

	for _, o := range occupants {
		if !m.contains(o.Number) {
			return nil, fmt.Errorf("%w: occupied seat %d outside a %d seat map",
				ErrConfiguration, o.Number, totalSeats)
		}
		seat := &m.seats[o.Number-1]
		seat.Occupied = true
		seat.OccupantGender = o.Gender
	}

	return m, nil
}

func (m *SeatMap) contains(number int) bool {
	return number >= 1 && number <= len(m.seats)
}

// Seat returns a copy of the seat with the given number.
func (m *SeatMap) Seat(number int) (Seat, bool) {
	if !m.contains(number) {
		return Seat{}, false
	}
	return m.seats[number-1], true
}

// Seats returns a copy of all seats ordered by number.
func (m *SeatMap) Seats() []Seat {
	out := make([]Seat, len(m.seats))
	copy(out, m.seats)
	return out
}

func (m *SeatMap) Layout() Layout {
	return m.layout
}

// RowsPerSection is the number of rows in each section.
func (m *SeatMap) RowsPerSection() int {
	return m.rows
}

// Row returns the seats of one row in display order: the single seat first,
// then the double berth.
func (m *SeatMap) Row(section Section, row int) []Seat {
	var out []Seat
	for _, s := range m.seats {
		if s.Section == section && s.Row == row {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Berth != out[j].Berth {
			return out[i].Berth == BerthSingle
		}
		return out[i].Number < out[j].Number
	})
	return out
}

func (m *SeatMap) TotalSeats() int {
	return len(m.seats)
}

func (m *SeatMap) OccupiedCount() int {
	n := 0
	for _, s := range m.seats {
		if s.Occupied {
			n++
		}
	}
	return n
}

func (m *SeatMap) AvailableCount() int {
	return m.TotalSeats() - m.OccupiedCount()
}

// OccupancyPercentage is occupied / total * 100.
func (m *SeatMap) OccupancyPercentage() float64 {
	if len(m.seats) == 0 {
		return 0
	}
	return float64(m.OccupiedCount()) * 100 / float64(len(m.seats))
}

// Clone returns a deep copy.
func (m *SeatMap) Clone() *SeatMap {
	return &SeatMap{layout: m.layout, rows: m.rows, seats: m.Seats()}
}

// occupy marks every seat in numbers as taken. Callers validate first.
func (m *SeatMap) occupy(numbers []int, gender Gender) {
	for _, n := range numbers {
		m.seats[n-1].Occupied = true
		m.seats[n-1].OccupantGender = gender
	}
}

func (m *SeatMap) release(numbers []int) {
	for _, n := range numbers {
		if !m.contains(n) {
			continue
		}
		m.seats[n-1].Occupied = false
		m.seats[n-1].OccupantGender = ""
	}
}
