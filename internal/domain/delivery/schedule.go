// internal/domain/delivery/schedule.go
package delivery

import (
	"fmt"
	"time"
)

// GenerateDates produces window consecutive calendar days anchored on the
// given instant. It is a pure function of the anchor; callers generate once
// per screen activation rather than on every render.
func GenerateDates(anchor time.Time, window int) []Date {
	start := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())

	dates := make([]Date, 0, window)
	for i := 0; i < window; i++ {
		day := start.AddDate(0, 0, i)
		dates = append(dates, Date{
			ID:         day.Format("2006-01-02"),
			Date:       day,
			IsToday:    i == 0,
			IsTomorrow: i == 1,
		})
	}
	return dates
}

// GenerateSlots applies the slot template to a date. All slots default to
// available; the flag exists for future blackout logic.
func GenerateSlots(dateID string, template []string) []Slot {
	slots := make([]Slot, 0, len(template))
	for i, window := range template {
		slots = append(slots, Slot{
			ID:        fmt.Sprintf("%s-slot-%d", dateID, i+1),
			DateID:    dateID,
			TimeRange: window,
			Available: true,
		})
	}
	return slots
}

// Selection tracks the chosen delivery date and slot. Slot selection is
// scoped to its date: choosing a different date discards the slot.
type Selection struct {
	date *Date
	slot *Slot
}

// SelectDate chooses a delivery date, discarding any previously chosen slot
// unless the date is unchanged. Re-selecting the same calendar date keeps
// the slot but adopts the given value, so a regenerated date refreshes the
// stored IsToday/IsTomorrow flags.
func (s *Selection) SelectDate(d Date) {
	if s.date != nil && s.date.ID == d.ID {
		s.date = &d
		return
	}
	s.date = &d
	s.slot = nil
}

// SelectSlot chooses a slot on the currently selected date. Slots belonging
// to another date, or unavailable slots, are rejected.
func (s *Selection) SelectSlot(slot Slot) error {
	if s.date == nil {
		return fmt.Errorf("select a delivery date first")
	}
	if slot.DateID != s.date.ID {
		return fmt.Errorf("slot %s does not belong to date %s", slot.ID, s.date.ID)
	}
	if !slot.Available {
		return fmt.Errorf("slot %s is not available", slot.ID)
	}
	s.slot = &slot
	return nil
}

// Date returns the selected date regardless of slot state
func (s *Selection) Date() (Date, bool) {
	if s.date == nil {
		return Date{}, false
	}
	return *s.date, true
}

// Chosen returns the selected date and slot, and whether both are set
func (s *Selection) Chosen() (Date, Slot, bool) {
	if s.date == nil || s.slot == nil {
		return Date{}, Slot{}, false
	}
	return *s.date, *s.slot, true
}

// Reset clears both the date and slot selection
func (s *Selection) Reset() {
	s.date = nil
	s.slot = nil
}
