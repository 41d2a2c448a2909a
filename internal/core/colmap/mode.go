package colmap

import (
	"fmt"
	"strings"
)

// Mode selects how logical column names are resolved to physical columns in
// data files.
type Mode string

const (
	// ModeNone resolves columns by their display name.
	ModeNone Mode = "none"
	// ModeID resolves columns by a stable numeric field id.
	ModeID Mode = "id"
	// ModeName resolves columns by a stable physical name.
	ModeName Mode = "name"
)

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts a raw mode string into a Mode. Matching is
// case-insensitive.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(raw) {
	case "none":
		return ModeNone, nil
	case "id":
		return ModeID, nil
	case "name":
		return ModeName, nil
	default:
		return "", fmt.Errorf("unknown column mapping mode %q, must be one of: none, id, name", raw)
	}
}
