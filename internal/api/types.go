// Package api contains types for the API requests and responses.
package api

// SubmitResponse is returned by the submit endpoint for both novel and
// duplicate submissions. Duplicate is only set on the duplicate path.
type SubmitResponse struct {
	Message       string `json:"message"`
	PremiumAmount int    `json:"premiumAmount,omitempty"`
	InsuranceType string `json:"insuranceType"`
	CustomerName  string `json:"customerName,omitempty"`
	Submitted     bool   `json:"submitted"`
	Duplicate     bool   `json:"duplicate,omitempty"`
}

// QuoteSummary is the projection of a stored quote returned to its owner.
type QuoteSummary struct {
	InsuranceType string            `json:"insuranceType"`
	PremiumAmount any               `json:"premiumAmount"`
	CreatedAt     string            `json:"createdAt"`
	Details       map[string]string `json:"details"`
}

// QuotesResponse lists every stored quote for the authenticated user.
type QuotesResponse struct {
	Quotes    []QuoteSummary `json:"quotes"`
	UserEmail string         `json:"userEmail"`
}

// AccessRequest is the body of an access-code validation request.
type AccessRequest struct {
	AccessCode string `json:"accessCode"`
}

// AccessResponse reports the outcome of an access-code validation.
type AccessResponse struct {
	Valid   bool   `json:"valid"`
	Expires string `json:"expires,omitempty"`
	Message string `json:"message"`
}
