// SPDX-License-Identifier: MIT

package problem

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks field-level constraints: both node tables present, no empty
// IDs, no negative capacities or costs, no cost row with an empty endpoint.
// Structural checks (unknown nodes, orientation) are left to network.Build.
func (p *Problem) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil problem", ErrInvalidProblem)
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError turns validator output into one wrapped error per field.
func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var out error
	for _, e := range fieldErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			out = multierr.Append(out, fmt.Errorf("%w: %s is required", ErrInvalidProblem, field))
		case "gte":
			out = multierr.Append(out, fmt.Errorf("%w: %s must be at least %s, got %v",
				ErrInvalidProblem, field, e.Param(), e.Value()))
		default:
			out = multierr.Append(out, fmt.Errorf("%w: %s failed %q", ErrInvalidProblem, field, e.Tag()))
		}
	}

	return out
}
