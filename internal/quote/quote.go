// Package quote defines the data model for insurance quote requests and records.
package quote

import (
	"encoding/json"
	"fmt"
)

// Type identifies the line of insurance a quote is for.
type Type string

// Supported insurance types.
const (
	TypeAuto Type = "auto"
	TypeHome Type = "home"
	TypeLife Type = "life"
)

// ParseType validates a raw insurance type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeAuto, TypeHome, TypeLife:
		return Type(s), nil
	}
	return "", fmt.Errorf("invalid insurance type %q", s)
}

// Submission is a client-submitted quote request. Details is kept raw because
// it may arrive flat, wrapped in wire-format values, or as a JSON string
// containing either; the details package normalizes it.
type Submission struct {
	InsuranceType string          `json:"insuranceType"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Details       json.RawMessage `json:"details"`
}

// Record is a committed quote as stored in DynamoDB. compositeKey is the
// primary key; QuoteID is informational only and never used for lookup.
type Record struct {
	CompositeKey  string            `dynamodbav:"compositeKey" json:"compositeKey"`
	QuoteID       string            `dynamodbav:"quoteId" json:"quoteId"`
	InsuranceType Type              `dynamodbav:"insuranceType" json:"insuranceType"`
	Name          string            `dynamodbav:"name" json:"name"`
	Email         string            `dynamodbav:"email" json:"email"`
	Details       map[string]string `dynamodbav:"details" json:"details"`
	PremiumAmount int               `dynamodbav:"premiumAmount" json:"premiumAmount"`
	CreatedAt     string            `dynamodbav:"createdAt" json:"createdAt"`
}

// IdentityKey derives the deduplication key for a (email, insuranceType)
// pair. Intake's duplicate pre-check, the worker's conditional insert and
// retrieval's prefix scan must all build the key here; parallel
// implementations would silently break deduplication.
func IdentityKey(email string, t Type) string {
	if email == "" {
		email = "unknown"
	}
	return email + "#" + string(t)
}

// KeyPrefix returns the scan prefix matching every record owned by email.
func KeyPrefix(email string) string {
	return email + "#"
}
