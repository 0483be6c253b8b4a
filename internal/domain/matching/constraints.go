package matching

import (
	"math"
	"strings"

	"talent-match/internal/domain/employee"
)

const remoteLocation = "remote"

// LicenseScore counts required license IDs held with a true validation
// status. Expiry dates are not compared against the current date.
func LicenseScore(held []employee.License, required []string) int {
	if len(required) == 0 {
		return 100
	}

	matched := 0
	for _, id := range required {
		for _, l := range held {
			if l.ID == id && l.ValidationStatus {
				matched++
				break
			}
		}
	}
	return int(math.Round(float64(matched) / float64(len(required)) * 100))
}

// LocationScore is binary: any acceptable location equal to the employee's,
// or any acceptable location of "remote", is a full match.
func LocationScore(location string, acceptable []string) int {
	if len(acceptable) == 0 {
		return 100
	}
	loc := strings.ToLower(location)
	for _, a := range acceptable {
		a = strings.ToLower(a)
		if a == loc || a == remoteLocation {
			return 100
		}
	}
	return 0
}

func CapacityScore(available, required int) int {
	if required == 0 {
		return 100
	}
	if available >= required {
		return 100
	}
	if available <= 0 {
		return 0
	}
	return int(math.Round(float64(available) / float64(required) * 100))
}
