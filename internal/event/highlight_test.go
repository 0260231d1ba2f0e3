package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

// Fixed clock: Monday June 10th 2024, mid-afternoon.
var testNow = time.Date(2024, time.June, 10, 15, 30, 0, 0, time.Local)

func TestDateClassification(t *testing.T) {
	assert.True(t, IsToday("2024-06-10", testNow))
	assert.False(t, IsToday("2024-06-11", testNow))

	assert.True(t, IsTomorrow("2024-06-11", testNow))
	assert.False(t, IsTomorrow("2024-06-10", testNow))
	assert.False(t, IsTomorrow("2024-06-12", testNow))

	// Garbage dates classify as neither
	assert.False(t, IsToday("not-a-date", testNow))
	assert.False(t, IsTomorrow("", testNow))
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "Today", DateLabel("2024-06-10", testNow))
	assert.Equal(t, "Tomorrow", DateLabel("2024-06-11", testNow))
	assert.Equal(t, "Saturday, Jun 15", DateLabel("2024-06-15", testNow))
	assert.Equal(t, "Monday, Jun 17", DateLabel("2024-06-17", testNow))

	// Unparsable dates come back verbatim
	assert.Equal(t, "soon", DateLabel("soon", testNow))
}

func TestBuildScheduleFiltersAndSorts(t *testing.T) {
	events := []content.Event{
		{ID: "e1", Title: "Past Retreat", Date: "2024-06-01"},
		{ID: "e2", Title: "Prayer Night", Date: "2024-06-15"},
		{ID: "e3", Title: "Bible Study", Date: "2024-06-10"},
		{ID: "e4", Title: "Worship Evening", Date: "2024-06-12"},
	}

	schedule := BuildSchedule(events, testNow)

	require.Len(t, schedule.Events, 3)
	assert.Equal(t, "e3", schedule.Events[0].ID)
	assert.Equal(t, "e4", schedule.Events[1].ID)
	assert.Equal(t, "e2", schedule.Events[2].ID)
}

func TestBuildScheduleHighlights(t *testing.T) {
	schedule := BuildSchedule([]content.Event{
		{ID: "e1", Title: "Bible Study", Date: "2024-06-10"},
		{ID: "e2", Title: "Choir Practice", Date: "2024-06-11"},
		{ID: "e3", Title: "Prayer Night", Date: "2024-06-20"},
	}, testNow)

	require.Len(t, schedule.Events, 3)
	assert.Equal(t, "Happening Soon", schedule.Heading)
	assert.True(t, schedule.Events[0].IsHighlight)
	assert.Equal(t, "Today", schedule.Events[0].DateLabel)
	assert.True(t, schedule.Events[1].IsHighlight)
	assert.Equal(t, "Tomorrow", schedule.Events[1].DateLabel)
	assert.False(t, schedule.Events[2].IsHighlight)
}

func TestBuildScheduleHeadingWithoutHighlights(t *testing.T) {
	schedule := BuildSchedule([]content.Event{
		{ID: "e1", Title: "Prayer Night", Date: "2024-06-20"},
	}, testNow)

	assert.Equal(t, "Upcoming Events", schedule.Heading)
}

func TestBuildScheduleEmpty(t *testing.T) {
	schedule := BuildSchedule(nil, testNow)
	assert.Empty(t, schedule.Events)
	assert.Equal(t, "Upcoming Events", schedule.Heading)
}
