package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseLimit reads a numeric limit query parameter, falling back to the
// default on missing or malformed values. The store-side ceiling is applied
// later by the query builder.
func ParseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

// ParseStatuses reads a comma-separated status query parameter.
func ParseStatuses(r *http.Request) []string {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	statuses := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			statuses = append(statuses, trimmed)
		}
	}
	return statuses
}
