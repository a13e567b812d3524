package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    Status
		wantErr bool
	}{
		{name: "pending", label: "Pending", want: StatusPending},
		{name: "done", label: "Done", want: StatusDone},
		{name: "pending_source_locale", label: "Pendente", want: StatusPending},
		{name: "done_source_locale", label: "Finalizado", want: StatusDone},
		{name: "wrong_case", label: "pending", wantErr: true},
		{name: "typo", label: "Pendng", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.label)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnrecognizedStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusLenient_FallsBackToDone(t *testing.T) {
	assert.Equal(t, StatusPending, ParseStatusLenient("Pending"))
	assert.Equal(t, StatusPending, ParseStatusLenient("Pendente"))

	for _, label := range []string{"Done", "Finalizado", "pending", "Pendng", "", "anything"} {
		assert.Equal(t, StatusDone, ParseStatusLenient(label), "label %q", label)
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusDone)
	require.NoError(t, err)
	assert.JSONEq(t, `"Done"`, string(data))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"Finalizado"`), &s))
	assert.Equal(t, StatusDone, s)

	err = json.Unmarshal([]byte(`"Archived"`), &s)
	assert.ErrorIs(t, err, ErrUnrecognizedStatus)

	err = json.Unmarshal([]byte(`1`), &s)
	assert.ErrorIs(t, err, ErrUnrecognizedStatus)

	_, err = json.Marshal(Status(7))
	assert.Error(t, err)
}

func TestStatus_UnmarshalNullMatchesDate(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","status":null,"due_date":null}`), &task))
	assert.Equal(t, StatusPending, task.Status)
	assert.Nil(t, task.DueDate)

	s := StatusDone
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, StatusDone, s, "null leaves the value unchanged")
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.String())
	assert.Equal(t, "Done", StatusDone.String())
	assert.Equal(t, "Status(9)", Status(9).String())
	assert.False(t, Status(9).IsValid())
}
