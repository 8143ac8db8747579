package details

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecode_FlatIsIdentity(t *testing.T) {
	raw := json.RawMessage(`{"vehicleType":"SUV","year":"2018"}`)
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Flat{"vehicleType": "SUV", "year": "2018"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecode_WrappedIsFlattened(t *testing.T) {
	raw := json.RawMessage(`{"vehicleType":{"S":"SUV"},"year":{"S":"2018"}}`)
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Flat{"vehicleType": "SUV", "year": "2018"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDecode_WrappedMissingPayloadBecomesEmpty(t *testing.T) {
	raw := json.RawMessage(`{"smoker":{"S":"yes"},"health":{}}`)
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["health"] != "" {
		t.Fatalf("health = %q, want empty string", got["health"])
	}
	if got["smoker"] != "yes" {
		t.Fatalf("smoker = %q, want yes", got["smoker"])
	}
}

func TestDecode_StringEncodedDetails(t *testing.T) {
	// The submission may carry details as a JSON string containing the mapping.
	raw := json.RawMessage(`"{\"age\":\"60\"}"`)
	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["age"] != "60" {
		t.Fatalf("age = %q, want 60", got["age"])
	}
}

func TestDecode_EmptyAndAbsent(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`{}`), json.RawMessage(`""`)} {
		got, err := Decode(raw)
		if err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		if len(got) != 0 {
			t.Fatalf("decode %q: got %v, want empty", raw, got)
		}
	}
}

func TestDecode_MalformedIsError(t *testing.T) {
	if _, err := Decode(json.RawMessage(`[1,2]`)); err == nil {
		t.Fatal("expected error for non-object details")
	}
}

func TestWrapped_Flatten(t *testing.T) {
	w := Wrapped{"k": {S: "v"}}
	got := w.Flatten()
	if got["k"] != "v" {
		t.Fatalf("got %v, want map[k:v]", got)
	}
}
