// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/glacmb/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "model.percentile")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateModel()...)
	errors = append(errors, c.validateConstants()...)

	if c.Store.WorkingDir == "" {
		errors = append(errors, ValidationError{
			Field:   "store.working_dir",
			Value:   c.Store.WorkingDir,
			Message: "must not be empty",
		})
	}
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %v", logging.ValidLevels()),
		})
	}

	return errors
}

func (c *Config) validateModel() []ValidationError {
	var errors []ValidationError

	if !finite(c.Model.Gradient) {
		errors = append(errors, ValidationError{
			Field:   "model.gradient",
			Value:   c.Model.Gradient,
			Message: "must be finite",
		})
	}
	if !finite(c.Model.Percentile) || c.Model.Percentile < 0 || c.Model.Percentile > 100 {
		errors = append(errors, ValidationError{
			Field:   "model.percentile",
			Value:   c.Model.Percentile,
			Message: "must be between 0 and 100",
		})
	}
	if !finite(c.Model.SigmaELA) || c.Model.SigmaELA < 0 {
		errors = append(errors, ValidationError{
			Field:   "model.sigma_ela",
			Value:   c.Model.SigmaELA,
			Message: "must be finite and non-negative",
		})
	}

	return errors
}

func (c *Config) validateConstants() []ValidationError {
	var errors []ValidationError

	if !finite(c.Constants.SecondsPerYear) || c.Constants.SecondsPerYear <= 0 {
		errors = append(errors, ValidationError{
			Field:   "constants.seconds_per_year",
			Value:   c.Constants.SecondsPerYear,
			Message: "must be positive",
		})
	}
	if !finite(c.Constants.IceDensity) || c.Constants.IceDensity <= 0 {
		errors = append(errors, ValidationError{
			Field:   "constants.ice_density",
			Value:   c.Constants.IceDensity,
			Message: "must be positive",
		})
	}

	return errors
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
