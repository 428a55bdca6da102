package utils

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ToBool parses flag-like strings. "1", "true", "yes" and "on" are true in any case.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ToInt parses val, returning def when it is empty or not a number.
func ToInt(val string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return def
	}
	return i
}

// HumanBytes formats a byte count with binary units, e.g. 1536 -> "1.5 KiB".
// Negative counts format as zero.
func HumanBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// Percent returns current as a percentage of total, or -1 when total is unknown.
func Percent(current, total int64) float64 {
	if total <= 0 {
		return -1
	}
	return float64(current) * 100 / float64(total)
}
