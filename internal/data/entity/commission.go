package entity

import "github.com/google/uuid"

// CommissionEntry is one line of an agent's commission ledger. Cancellations
// post a negative entry against the same booking.
type CommissionEntry struct {
	BaseSimple
	AgentID   string    `db:"agent_id"`
	BookingID uuid.UUID `db:"booking_id"`
	Amount    float64   `db:"amount"`
}
