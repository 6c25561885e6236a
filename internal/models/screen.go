package models

import (
	"bytes"
	"encoding/json"
)

// Lookup is the result of a fetch-by-id: the decoded record plus the body as
// the backend sent it.
type Lookup struct {
	Fund Fund            `json:"fund"`
	Raw  json.RawMessage `json:"raw" swaggertype:"object"`
}

// Dump renders the raw body indented by two spaces, keeping the backend's key
// order.
func (l Lookup) Dump() string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, l.Raw, "", "  "); err != nil {
		return string(l.Raw)
	}
	return buf.String()
}

// ScreenState is a point-in-time copy of everything the fund screen shows
type ScreenState struct {
	Funds    []Fund  `json:"funds"`
	Form     Draft   `json:"form"`
	LookupID string  `json:"lookupId"`
	Lookup   *Lookup `json:"lookupResult"`
	Status   string  `json:"statusMessage"`
	EditMode bool    `json:"editMode"`
}
