package model

import (
	"encoding/json"
	"testing"
)

func TestTimestampAcceptsBackendFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		day   int
	}{
		{"zone-less local datetime", `"2024-01-02T15:04:05"`, 2},
		{"rfc3339", `"2024-01-03T15:04:05Z"`, 3},
		{"fractional seconds", `"2024-01-04T15:04:05.123456"`, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.input), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if ts.Time.Day() != tt.day {
				t.Errorf("day = %d, want %d", ts.Time.Day(), tt.day)
			}
		})
	}
}

func TestTimestampNullAndInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("null: %v", err)
	}
	if !ts.Time.IsZero() {
		t.Error("null should decode to zero time")
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &ts); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}
