// SPDX-License-Identifier: MIT

package cmd

import "errors"

var (
	// errNotProcessed is returned when a command needs a product the
	// glacier directory does not have yet.
	errNotProcessed = errors.New("glacier directory is not processed")

	// errBadYears is returned for an unparseable --years value.
	errBadYears = errors.New("invalid --years value")
)
