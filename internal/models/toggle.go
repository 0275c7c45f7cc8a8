package models

import "strings"

// ParseToggle maps a decoded JSON value to a toggle position.
// Only true, 1, "1", "true" and "on" switch a hazard on.
func ParseToggle(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t == 1
	case string:
		switch lower(t) {
		case "1", "true", "on":
			return true
		}
	}
	return false
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
