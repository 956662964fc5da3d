// SPDX-License-Identifier: MIT

package massbalance

const opSpecific = "SpecificMassBalance"

// SpecificMassBalance returns the glacier-wide balance for year in
// mm w.e. yr-1: the width-weighted mean of m's rates over a flowline
// profile, converted back with c.
//
// Errors (ErrInvalidInput):
//   - heights and widths differ in length, or are empty.
//   - negative or non-finite widths, or a zero total width.
//   - invalid constants.
func SpecificMassBalance(m Model, heights, widths []float64, year int, c Constants) (float64, error) {
	if len(heights) != len(widths) {
		return 0, invalidf(opSpecific, "%d heights vs %d widths", len(heights), len(widths))
	}
	if len(heights) == 0 {
		return 0, invalidf(opSpecific, "empty profile")
	}
	if err := c.Validate(); err != nil {
		return 0, invalidWrap(opSpecific, err)
	}

	var total float64
	for i, w := range widths {
		if !isFinite(w) || w < 0 {
			return 0, invalidf(opSpecific, "width[%d]=%v", i, w)
		}
		total += w
	}
	if total == 0 {
		return 0, invalidf(opSpecific, "zero total width")
	}

	rates := m.AnnualMassBalance(heights, year)
	var acc float64
	for i, r := range rates {
		acc += r * widths[i]
	}

	return c.fromRate(acc / total), nil
}
