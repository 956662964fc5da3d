// SPDX-License-Identifier: MIT

package gdir

import (
	"fmt"
	"strconv"
	"strings"
)

// RGIPrefix is the RGI v6 id prefix.
const RGIPrefix = "RGI60-"

const (
	maxRegion    = 19
	maxNumDigits = 5
)

// NormalizeRGIID returns the canonical "RGI60-RR.NNNNN" form of id.
//
// Both "11.00897" and "RGI60-11.00897" are accepted; the region is
// zero-padded to two digits and the glacier number to five, so "1.42"
// becomes "RGI60-01.00042". Regions must lie in 1..19.
func NormalizeRGIID(id string) (string, error) {
	region, number, err := parseRGIID(id)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%02d.%05d", RGIPrefix, region, number), nil
}

func parseRGIID(id string) (region, number int, err error) {
	raw := strings.TrimPrefix(strings.TrimSpace(id), RGIPrefix)
	regionPart, numberPart, ok := strings.Cut(raw, ".")
	if !ok || !isDigits(regionPart, 2) || !isDigits(numberPart, maxNumDigits) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRGIID, id)
	}

	region, _ = strconv.Atoi(regionPart)
	number, _ = strconv.Atoi(numberPart)
	if region < 1 || region > maxRegion {
		return 0, 0, fmt.Errorf("%w: region %d out of 1..%d", ErrInvalidRGIID, region, maxRegion)
	}

	return region, number, nil
}

// isDigits reports whether s is 1..maxLen ASCII digits.
func isDigits(s string, maxLen int) bool {
	if s == "" || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// relDir returns the per_glacier path elements of a canonical id:
// per_glacier, RGI60-RR, RGI60-RR.NN, RGI60-RR.NNNNN.
func relDir(canonical string) []string {
	regionEnd := len(RGIPrefix) + 2 // end of "RGI60-RR"
	return []string{
		"per_glacier",
		canonical[:regionEnd],
		canonical[:regionEnd+3], // "RGI60-RR.NN"
		canonical,
	}
}
