package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== ORDER ID ====================

// GenerateOrderID returns a human readable booking reference,
// BUS-YYYYMMDD-HHMMSS-XXXXXXXX, whose suffix is the first eight hex digits
// of the booking ID. Two bookings only share a reference when their IDs
// share that prefix within the same second.
func GenerateOrderID(now time.Time, bookingID uuid.UUID) string {
	return fmt.Sprintf("BUS-%s-%s-%s",
		now.Format("20060102"),
		now.Format("150405"),
		strings.ToUpper(bookingID.String()[:8]),
	)
}
