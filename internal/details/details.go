// Package details normalizes the loosely-typed attribute mapping attached to
// a quote submission into a flat string-keyed form.
//
// Details may arrive three ways: a flat JSON object of strings, a wire-format
// object where each value is wrapped as {"S": "<string>"}, or a JSON string
// containing either of the above. Decode collapses all of them to Flat.
package details

import (
	"encoding/json"
	"fmt"
)

// Flat is the normalized attribute mapping consumed by the premium calculator.
type Flat map[string]string

// WireValue is a single wrapped attribute value as it appears on the wire.
type WireValue struct {
	S string `json:"S"`
}

// Wrapped is an attribute mapping in wire format.
type Wrapped map[string]WireValue

// Flatten extracts the string payload of every wrapped value. A missing
// payload becomes the empty string.
func (w Wrapped) Flatten() Flat {
	f := make(Flat, len(w))
	for k, v := range w {
		f[k] = v.S
	}
	return f
}

// Decode parses a raw details payload and normalizes it to Flat.
//
// An absent or empty payload yields an empty mapping. If every value is
// already a plain string the mapping is returned unchanged; otherwise every
// value is assumed wrapped and its string field is extracted.
func Decode(raw json.RawMessage) (Flat, error) {
	if len(raw) == 0 {
		return Flat{}, nil
	}

	// The original submission may carry details as a JSON-encoded string;
	// unquote once and decode the inner document.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		raw = json.RawMessage(s)
		if len(raw) == 0 {
			return Flat{}, nil
		}
	}

	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode details: %w", err)
	}
	if len(values) == 0 {
		return Flat{}, nil
	}

	if flat, ok := tryFlat(values); ok {
		return flat, nil
	}

	var wrapped Wrapped
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode wrapped details: %w", err)
	}
	return wrapped.Flatten(), nil
}

// tryFlat succeeds only when every value is a plain JSON string.
func tryFlat(values map[string]json.RawMessage) (Flat, bool) {
	f := make(Flat, len(values))
	for k, v := range values {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, false
		}
		f[k] = s
	}
	return f, true
}
