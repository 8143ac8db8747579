// Package premium computes rule-based premium estimates for quote requests.
//
// Calculation is a pure function of (insurance type, normalized details):
// the intake handler and the queue workers both call it and must agree on
// the result. Missing attributes take neutral defaults rather than failing;
// unparsable numeric attributes are hard errors for the submission.
package premium

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quotelane/insurance-quote-portal/internal/details"
	"github.com/quotelane/insurance-quote-portal/internal/quote"
)

// Base premiums per insurance type.
const (
	autoBase = 500
	homeBase = 400
	lifeBase = 300
)

// Calculate returns the premium for the given insurance type and normalized
// details. Calling it twice with identical input yields an identical result.
func Calculate(t quote.Type, d details.Flat) (int, error) {
	switch t {
	case quote.TypeAuto:
		return auto(d)
	case quote.TypeHome:
		return home(d)
	case quote.TypeLife:
		return life(d)
	}
	return 0, fmt.Errorf("invalid insurance type %q", t)
}

func auto(d details.Flat) (int, error) {
	p := autoBase
	if strings.EqualFold(d["vehicleType"], "suv") {
		p += 100
	}
	year, err := intAttr(d, "year", 2020)
	if err != nil {
		return 0, err
	}
	if year < 2020 {
		p += 75
	}
	if strings.Contains(strings.ToLower(d["drivingHistory"]), "accident") {
		p += 150
	}
	return p, nil
}

func home(d details.Flat) (int, error) {
	p := homeBase
	sqft, err := intAttr(d, "squareFootage", 0)
	if err != nil {
		return 0, err
	}
	if sqft > 2000 {
		p += 100
	}
	built, err := intAttr(d, "yearBuilt", 2025)
	if err != nil {
		return 0, err
	}
	if built < 2000 {
		p += 100
	}
	if strings.EqualFold(d["securitySystem"], "no") {
		p += 75
	}
	return p, nil
}

func life(d details.Flat) (int, error) {
	p := lifeBase
	age, err := intAttr(d, "age", 0)
	if err != nil {
		return 0, err
	}
	if age > 50 {
		p += 100
	}
	if strings.EqualFold(d["smoker"], "yes") {
		p += 150
	}
	if strings.EqualFold(d["health"], "poor") {
		p += 200
	}
	return p, nil
}

// intAttr parses a numeric attribute, falling back to def when the attribute
// is absent. A present but non-numeric value is an error, not a zero.
func intAttr(d details.Flat, key string, def int) (int, error) {
	s, ok := d[key]
	if !ok || strings.TrimSpace(s) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %q is not a number", key, s)
	}
	return n, nil
}
