// internal/domain/delivery/entity.go
package delivery

import "time"

// Date is one selectable day in the delivery window
type Date struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	IsToday    bool      `json:"is_today"`
	IsTomorrow bool      `json:"is_tomorrow"`
}

// Slot is a bounded time window on a given delivery date. A slot is
// addressed by (DateID, ID), never globally across dates.
type Slot struct {
	ID        string `json:"id"`
	DateID    string `json:"date_id"`
	TimeRange string `json:"time_range"`
	Available bool   `json:"available"`
}

// DefaultSlotTemplate is the fixed daily set of two-hour windows
var DefaultSlotTemplate = []string{
	"08:00 AM - 10:00 AM",
	"10:00 AM - 12:00 PM",
	"12:00 PM - 02:00 PM",
	"02:00 PM - 04:00 PM",
	"04:00 PM - 06:00 PM",
	"06:00 PM - 08:00 PM",
}
