package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LaunchDate holds a fund's launch date as ISO text. It accepts a JSON string
// (kept verbatim), null, or a [year, month, day] array, which some backends
// emit for plain dates.
type LaunchDate string

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *LaunchDate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))

	if s == "null" {
		*d = ""
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*d = LaunchDate(text)
		return nil
	}

	var parts []int
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("launchDate: unsupported value %s", s)
	}
	if len(parts) < 3 {
		return fmt.Errorf("launchDate: expected [year, month, day], got %s", s)
	}
	*d = LaunchDate(fmt.Sprintf("%04d-%02d-%02d", parts[0], parts[1], parts[2]))
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d LaunchDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}
