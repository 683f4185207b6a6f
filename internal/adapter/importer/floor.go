// Package importer maps free-text customer data onto the structured
// entities used by the rest of the service. It runs at import time only;
// pricing never parses addresses.
package importer

import (
	"regexp"
	"strconv"
	"strings"
)

var floorPattern = regexp.MustCompile(`(?i)etage\s+(\d+)|(\d+)\.\s*stock|(\d+)\.\s*etage|stock\s+(\d+)`)

// ExtractFloor scans a free-text address for a floor hint.
//
// Recognized forms: "Etage 3", "3. Stock", "3. Etage", "Stock 3", plus
// "EG"/"Erdgeschoss" for the ground floor. Returned floors use the
// ground-floor-is-1 convention; ok is false when no hint was found.
func ExtractFloor(address string) (floor int, ok bool) {
	lower := strings.ToLower(address)
	if strings.Contains(lower, "erdgeschoss") || containsWord(lower, "eg") {
		return 1, true
	}

	m := floorPattern.FindStringSubmatch(address)
	if m == nil {
		return 0, false
	}
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return 0, false
		}
		// Free text counts floors above ground, internal convention starts
		// at 1 for the ground floor.
		return n + 1, true
	}
	return 0, false
}

func containsWord(s, word string) bool {
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '(' || r == ')'
	}) {
		if f == word {
			return true
		}
	}
	return false
}
