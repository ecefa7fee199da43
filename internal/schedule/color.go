package schedule

import (
	"strconv"
	"strings"
)

var Palette = []string{"pink", "green", "blue", "yellow"}

// ColorFor picks a stable palette color for an appointment id. Numeric ids
// keep their modulo color; any other id falls back to the sum of its runes.
func ColorFor(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return Palette[0]
	}

	n := len(Palette)
	if v, err := strconv.ParseInt(id, 10, 64); err == nil {
		idx := int(v % int64(n))
		if idx < 0 {
			idx = -idx
		}
		return Palette[idx]
	}

	sum := 0
	for _, r := range id {
		sum = (sum + int(r)) % n
	}
	return Palette[sum]
}
