package types

import "strings"

// LocationInfo contains human-readable location metadata
type LocationInfo struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Label returns "City, State", dropping whichever part is empty
func (l LocationInfo) Label() string {
	parts := make([]string, 0, 2)
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if l.State != "" {
		parts = append(parts, l.State)
	}
	return strings.Join(parts, ", ")
}
