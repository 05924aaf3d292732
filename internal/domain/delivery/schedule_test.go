package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)

func TestGenerateDates_Window(t *testing.T) {
	dates := GenerateDates(anchor, 7)

	require.Len(t, dates, 7)
	assert.Equal(t, "2026-09-07", dates[0].ID)
	assert.True(t, dates[0].IsToday)
	assert.False(t, dates[0].IsTomorrow)
	assert.Equal(t, "2026-09-08", dates[1].ID)
	assert.True(t, dates[1].IsTomorrow)
	assert.Equal(t, "2026-09-13", dates[6].ID)
	assert.False(t, dates[6].IsToday)
}

func TestGenerateDates_PureFunctionOfAnchor(t *testing.T) {
	first := GenerateDates(anchor, 7)
	second := GenerateDates(anchor, 7)

	assert.Equal(t, first, second)
}

func TestGenerateDates_TruncatesToCalendarDate(t *testing.T) {
	late := time.Date(2026, 9, 7, 23, 59, 0, 0, time.UTC)
	dates := GenerateDates(late, 2)

	assert.Equal(t, 0, dates[0].Date.Hour())
}

func TestGenerateSlots_Template(t *testing.T) {
	slots := GenerateSlots("2026-09-07", DefaultSlotTemplate)

	require.Len(t, slots, 6)
	assert.Equal(t, "2026-09-07-slot-1", slots[0].ID)
	assert.Equal(t, "08:00 AM - 10:00 AM", slots[0].TimeRange)
	for _, slot := range slots {
		assert.Equal(t, "2026-09-07", slot.DateID)
		assert.True(t, slot.Available)
	}
}

func TestSelection_DateChangeResetsSlot(t *testing.T) {
	dates := GenerateDates(anchor, 7)
	d1, d2 := dates[0], dates[1]
	s1 := GenerateSlots(d1.ID, DefaultSlotTemplate)[0]

	var sel Selection
	sel.SelectDate(d1)
	require.NoError(t, sel.SelectSlot(s1))

	_, _, ok := sel.Chosen()
	require.True(t, ok)

	sel.SelectDate(d2)

	_, _, ok = sel.Chosen()
	assert.False(t, ok, "slot from the old date must not survive a date change")
}

func TestSelection_ReselectingSameDateKeepsSlot(t *testing.T) {
	dates := GenerateDates(anchor, 7)
	d1 := dates[0]
	s1 := GenerateSlots(d1.ID, DefaultSlotTemplate)[2]

	var sel Selection
	sel.SelectDate(d1)
	require.NoError(t, sel.SelectSlot(s1))

	sel.SelectDate(d1)

	_, slot, ok := sel.Chosen()
	require.True(t, ok)
	assert.Equal(t, s1.ID, slot.ID)
}

func TestSelection_DateAccessor(t *testing.T) {
	var sel Selection

	_, ok := sel.Date()
	assert.False(t, ok)

	dates := GenerateDates(anchor, 7)
	sel.SelectDate(dates[2])

	d, ok := sel.Date()
	require.True(t, ok)
	assert.Equal(t, dates[2].ID, d.ID)
}

func TestSelection_ReselectingSameDateAdoptsValue(t *testing.T) {
	dates := GenerateDates(anchor, 7)
	d1 := dates[1]
	slot := GenerateSlots(d1.ID, DefaultSlotTemplate)[0]

	var sel Selection
	sel.SelectDate(d1)
	require.NoError(t, sel.SelectSlot(slot))

	// A regenerated window one day later presents the same calendar date
	// with fresh flags
	refreshed := GenerateDates(anchor.AddDate(0, 0, 1), 7)[0]
	require.Equal(t, d1.ID, refreshed.ID)
	require.True(t, refreshed.IsToday)

	sel.SelectDate(refreshed)

	date, kept, ok := sel.Chosen()
	require.True(t, ok, "same calendar date must keep the slot")
	assert.Equal(t, slot.ID, kept.ID)
	assert.True(t, date.IsToday, "the stored date must adopt the refreshed flags")
}

func TestSelection_RejectsForeignSlot(t *testing.T) {
	dates := GenerateDates(anchor, 7)
	d1, d2 := dates[0], dates[1]
	foreign := GenerateSlots(d2.ID, DefaultSlotTemplate)[0]

	var sel Selection
	sel.SelectDate(d1)

	assert.Error(t, sel.SelectSlot(foreign))
}

func TestSelection_RequiresDateBeforeSlot(t *testing.T) {
	slot := GenerateSlots("2026-09-07", DefaultSlotTemplate)[0]

	var sel Selection
	assert.Error(t, sel.SelectSlot(slot))
}

func TestSelection_RejectsUnavailableSlot(t *testing.T) {
	dates := GenerateDates(anchor, 7)
	d1 := dates[0]
	slot := GenerateSlots(d1.ID, DefaultSlotTemplate)[0]
	slot.Available = false

	var sel Selection
	sel.SelectDate(d1)

	assert.Error(t, sel.SelectSlot(slot))
}
