// Package validate provides functions to validate submission input fields.
package validate

import (
	"errors"
	"strings"
)

// ErrMissingInsuranceType is returned when a submission omits its type.
var ErrMissingInsuranceType = errors.New("Missing insuranceType")

// InsuranceTypePresent checks that the submission names an insurance type.
func InsuranceTypePresent(t string) error {
	if strings.TrimSpace(t) == "" {
		return ErrMissingInsuranceType
	}
	return nil
}

// AccessCode trims whitespace and one layer of surrounding double quotes
// from a submitted access code. An empty result is an error.
func AccessCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)
	if strings.HasPrefix(code, `"`) && strings.HasSuffix(code, `"`) && len(code) >= 2 {
		code = code[1 : len(code)-1]
	}
	if code == "" {
		return "", errors.New("Access code required")
	}
	return code, nil
}
