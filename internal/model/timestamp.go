package model

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp wraps time.Time to tolerate the backend's date serialization.
// The API emits ISO-8601 local datetimes without a zone offset
// ("2024-01-02T15:04:05"), which encoding/json's time.Time rejects.
type Timestamp struct {
	time.Time
}

const localLayout = "2006-01-02T15:04:05"

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, localLayout, localLayout + ".999999999"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.Time.Format(localLayout) + `"`), nil
}
