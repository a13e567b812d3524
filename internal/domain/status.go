package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the completion state of a task. It is persisted as a small
// integer code; the zero value is StatusPending.
type Status int16

// The only two task states. Transitions between them are unconstrained.
const (
	StatusPending Status = 0
	StatusDone    Status = 1
)

// Canonical labels used when rendering a Status.
const (
	StatusLabelPending = "Pending"
	StatusLabelDone    = "Done"
)

// Source-locale labels, accepted on input for compatibility with existing clients.
const (
	statusLabelPendingPT = "Pendente"
	statusLabelDonePT    = "Finalizado"
)

// IsValid reports whether s is one of the two defined states.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusDone
}

// String returns the canonical label for s.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return StatusLabelPending
	case StatusDone:
		return StatusLabelDone
	default:
		return fmt.Sprintf("Status(%d)", int16(s))
	}
}

// ParseStatus converts a label into a Status. Matching is exact and
// case-sensitive; any other input returns ErrUnrecognizedStatus.
func ParseStatus(label string) (Status, error) {
	switch label {
	case StatusLabelPending, statusLabelPendingPT:
		return StatusPending, nil
	case StatusLabelDone, statusLabelDonePT:
		return StatusDone, nil
	default:
		return StatusPending, fmt.Errorf("%w: %q", ErrUnrecognizedStatus, label)
	}
}

// ParseStatusLenient maps the Pending labels to StatusPending and every other
// input, including typos and the empty string, to StatusDone. It exists for
// clients that depend on the legacy status filter; new code should use ParseStatus.
func ParseStatusLenient(label string) Status {
	if label == StatusLabelPending || label == statusLabelPendingPT {
		return StatusPending
	}
	return StatusDone
}

// MarshalJSON renders the status as its canonical label.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnrecognizedStatus, int16(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a status label in either supported locale. null
// leaves s unchanged, as an absent field would.
func (s *Status) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("%w: status must be a string", ErrUnrecognizedStatus)
	}
	parsed, err := ParseStatus(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
