package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Months and years use the calendar-agnostic approximations the age
// filter has always used (30 and 365 days).
var ageUnits = map[string]time.Duration{
	"y":   365 * 24 * time.Hour,
	"mon": 30 * 24 * time.Hour,
	"w":   7 * 24 * time.Hour,
	"d":   24 * time.Hour,
	"h":   time.Hour,
	"m":   time.Minute,
	"s":   time.Second,
}

// "mon" must be tried before "m"
var agePattern = regexp.MustCompile(`([0-9]+)\s*(mon|y|w|d|h|m|s)`)

// ParseAge parses an age expression like "1y 2mon 3w 4d 5h 6m 7s".
// Segments may appear in any order and are summed.
func ParseAge(s string) (time.Duration, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("empty age")
	}

	matches := agePattern.FindAllStringSubmatch(trimmed, -1)
	if matches == nil {
		return 0, fmt.Errorf("invalid age %q", s)
	}

	// Reject anything the pattern did not consume
	leftover := agePattern.ReplaceAllString(trimmed, "")
	if strings.TrimSpace(leftover) != "" {
		return 0, fmt.Errorf("invalid age %q", s)
	}

	var total time.Duration
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("invalid age %q: %w", s, err)
		}
		total += time.Duration(n) * ageUnits[m[2]]
	}

	return total, nil
}
