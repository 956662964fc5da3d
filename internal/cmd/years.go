// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// maxYears caps a --years expansion.
const maxYears = 100000

// parseYears accepts "A:B" (inclusive, ascending or descending) or a comma
// list "A,B,C". Order is kept: it decides which random draw each year gets.
func parseYears(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", errBadYears)
	}

	if from, to, ok := strings.Cut(s, ":"); ok {
		a, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadYears, s)
		}
		b, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadYears, s)
		}
		lo, hi, step := a, b, 1
		if b < a {
			lo, hi, step = b, a, -1
		}
		// hi >= lo, so the unsigned difference is the exact span
		if span := uint64(hi) - uint64(lo); span >= maxYears {
			return nil, fmt.Errorf("%w: %q spans more than %d years", errBadYears, s, maxYears)
		}
		n := hi - lo + 1
		years := make([]int, 0, n)
		for y := a; len(years) < n; y += step {
			years = append(years, y)
		}
		return years, nil
	}

	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, p := range parts {
		y, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errBadYears, p)
		}
		years = append(years, y)
	}
	return years, nil
}
