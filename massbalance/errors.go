// SPDX-License-Identifier: MIT

package massbalance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by constructors for configuration errors:
	// empty glacier mask, percentile outside [0, 100], shape mismatch between
	// topography and mask, non-finite parameters or constants. It is also
	// returned by SpecificMassBalance for inconsistent profiles.
	ErrInvalidInput = errors.New("massbalance: invalid input")
)

// invalidf tags ErrInvalidInput with the operation and a detail message.
func invalidf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, fmt.Sprintf(format, args...))
}

// invalidWrap tags ErrInvalidInput with the operation and keeps cause in the chain.
func invalidWrap(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, cause)
}
