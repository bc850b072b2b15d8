package db

import "strings"

// OrderClause builds a safe ORDER BY fragment from user-supplied sort
// params. sortBy must be present in allowed (query param name -> column);
// anything else falls back.
func OrderClause(sortBy, sortOrder string, allowed map[string]string, fallback string) string {
	column, ok := allowed[strings.TrimSpace(sortBy)]
	if !ok {
		return fallback
	}
	direction := "asc"
	if strings.EqualFold(strings.TrimSpace(sortOrder), "desc") {
		direction = "desc"
	}
	return column + " " + direction
}
