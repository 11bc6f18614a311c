package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finanzas/internal/core"
)

// parseRange resolves the date window for list and summary requests.
// Explicit start and end parameters win over the period keyword; a period
// keyword is resolved against the current date; anything else is unbounded.
func parseRange(query url.Values, now time.Time) core.DateRange {
	startStr := strings.TrimSpace(query.Get("start"))
	endStr := strings.TrimSpace(query.Get("end"))

	if startStr != "" && endStr != "" {
		start, errStart := core.ParseDate(startStr)
		end, errEnd := core.ParseDate(endStr)
		if errStart == nil && errEnd == nil {
			return core.CustomRange(start, end)
		}
		return core.DateRange{}
	}

	period := core.Period(strings.TrimSpace(query.Get("period")))
	return core.ResolveRange(period, now)
}

// parseID extracts the numeric id path segment.
func parseID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
