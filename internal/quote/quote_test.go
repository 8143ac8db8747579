package quote

import "testing"

func TestIdentityKey(t *testing.T) {
	cases := []struct {
		email string
		typ   Type
		want  string
	}{
		{"jane@example.com", TypeAuto, "jane@example.com#auto"},
		{"jane@example.com", TypeLife, "jane@example.com#life"},
		{"", TypeHome, "unknown#home"},
	}
	for _, tc := range cases {
		if got := IdentityKey(tc.email, tc.typ); got != tc.want {
			t.Fatalf("IdentityKey(%q, %q) = %q, want %q", tc.email, tc.typ, got, tc.want)
		}
	}
}

func TestKeyPrefixMatchesIdentityKey(t *testing.T) {
	// The retrieval prefix must select exactly the keys intake and the
	// workers build for that email.
	email := "jane@example.com"
	prefix := KeyPrefix(email)
	for _, typ := range []Type{TypeAuto, TypeHome, TypeLife} {
		key := IdentityKey(email, typ)
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			t.Fatalf("key %q does not start with prefix %q", key, prefix)
		}
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"auto", "home", "life"} {
		typ, err := ParseType(s)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", s, err)
		}
		if string(typ) != s {
			t.Fatalf("ParseType(%q) = %q", s, typ)
		}
	}
	if _, err := ParseType("boat"); err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if _, err := ParseType(""); err == nil {
		t.Fatal("expected error for empty type")
	}
}
