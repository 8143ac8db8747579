// Package envelope unwraps queue delivery envelopes around quote submissions.
package envelope

import "encoding/json"

// notification is the SNS-to-SQS delivery shape; only Message matters.
type notification struct {
	Type    string `json:"Type"`
	Message string `json:"Message"`
}

// Unwrap returns the submission JSON inside an SQS record body. A body that
// is an SNS notification (double layer) yields its inner Message; anything
// else is assumed to already be the submission (single layer).
func Unwrap(body string) []byte {
	var n notification
	if err := json.Unmarshal([]byte(body), &n); err == nil && n.Message != "" {
		return []byte(n.Message)
	}
	return []byte(body)
}
