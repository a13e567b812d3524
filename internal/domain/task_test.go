package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.October, Day: 18}, d)

	d, err = ParseDate("2026-10-18T23:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.October, Day: 18}, d, "date part is kept as written")

	_, err = ParseDate("18/10/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2026, Month: time.December, Day: 31}
	assert.Equal(t, Date{Year: 2027, Month: time.January, Day: 1}, d.AddDays(1))
	assert.Equal(t, "2026-12-30", d.AddDays(-1).String())
}

func TestTask_JSONRoundTrip(t *testing.T) {
	due := Date{Year: 2026, Month: time.October, Day: 18}
	task := &Task{ID: 3, Title: "Study X", DueDate: &due, Status: StatusDone}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"id":3,"title":"Study X","description":"","due_date":"2026-10-18","status":"Done"}`,
		string(data))

	var decoded Task
	require.NoError(t, json.Unmarshal([]byte(`{"title":"no date","due_date":null}`), &decoded))
	assert.Nil(t, decoded.DueDate)
	assert.Equal(t, StatusPending, decoded.Status, "absent status is the zero value")
}

func TestTask_ApplyUpdateKeepsID(t *testing.T) {
	due := Date{Year: 2026, Month: time.October, Day: 19}
	existing := &Task{ID: 5, Title: "old", Description: "old desc", Status: StatusPending}
	payload := &Task{ID: 99, Title: "new", Description: "new desc", DueDate: &due, Status: StatusDone}

	existing.ApplyUpdate(payload)

	assert.Equal(t, int64(5), existing.ID)
	assert.Equal(t, "new", existing.Title)
	assert.Equal(t, "new desc", existing.Description)
	assert.Equal(t, StatusDone, existing.Status)
	require.NotNil(t, existing.DueDate)
	assert.Equal(t, due, *existing.DueDate)

	payload.DueDate.Day = 1
	assert.Equal(t, 19, existing.DueDate.Day, "update must not alias the payload date")
}

func TestTask_Clone(t *testing.T) {
	due := Date{Year: 2026, Month: time.October, Day: 18}
	orig := &Task{ID: 1, Title: "a", DueDate: &due}

	c := orig.Clone()
	c.DueDate.Day = 2
	c.Title = "b"

	assert.Equal(t, 18, orig.DueDate.Day)
	assert.Equal(t, "a", orig.Title)
	assert.Nil(t, (*Task)(nil).Clone())
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseTaskID(raw)
		assert.ErrorIs(t, err, ErrTaskNotFound, "raw %q", raw)
	}
}
