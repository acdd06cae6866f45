package task

import "testing"

func TestStatusTokensAreBijective(t *testing.T) {
	all := []Status{Pending, Completed, Deleted, Waiting, Recurring}
	seen := map[string]bool{}
	for _, s := range all {
		token := s.String()
		if seen[token] {
			t.Errorf("Token %q maps to more than one status", token)
		}
		seen[token] = true

		parsed, err := ParseStatus(token)
		if err != nil {
			t.Errorf("ParseStatus(%q) failed: %v", token, err)
		}
		if parsed != s {
			t.Errorf("Expected %q to parse back to %v, got %v", token, s, parsed)
		}
	}
	if len(seen) != len(all) {
		t.Errorf("Expected %d distinct tokens, got %d", len(all), len(seen))
	}
}

func TestParseStatusRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "Pending", "PENDING", "done", "active"} {
		if _, err := ParseStatus(token); err == nil {
			t.Errorf("Expected error for token %q, got none", token)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	b, err := Waiting.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(b) != `"waiting"` {
		t.Errorf(`Expected "waiting", got %s`, b)
	}

	var s Status
	if err := s.UnmarshalJSON([]byte(`"recurring"`)); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	if s != Recurring {
		t.Errorf("Expected Recurring, got %v", s)
	}
	if err := s.UnmarshalJSON([]byte(`"someday"`)); err == nil {
		t.Error("Expected error for unknown token, got none")
	}
}
