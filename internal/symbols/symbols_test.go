package symbols

import "testing"

func TestSearch_ExactSymbol(t *testing.T) {
	results := Search("AAPL")
	if len(results) == 0 {
		t.Fatal("expected a match for AAPL")
	}
	if results[0].Symbol != "AAPL" {
		t.Errorf("expected AAPL first, got %s", results[0].Symbol)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	upper := Search("TESLA")
	lower := Search("tesla")
	if len(upper) != 1 || len(lower) != 1 {
		t.Fatalf("expected one match each, got %d and %d", len(upper), len(lower))
	}
	if upper[0] != lower[0] {
		t.Error("case should not affect results")
	}
}

func TestSearch_SubstringOverName(t *testing.T) {
	results := Search("bank")
	found := false
	for _, r := range results {
		if r.Symbol == "BAC" {
			found = true
		}
	}
	if !found {
		t.Error("expected name substring match to find BAC")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	if got := Search(""); got != nil {
		t.Errorf("empty query must yield no results, got %d", len(got))
	}
	if got := Search("   "); got != nil {
		t.Errorf("blank query must yield no results, got %d", len(got))
	}
}

func TestSearch_CapsResults(t *testing.T) {
	// "A" appears in nearly every entry.
	if got := Search("a"); len(got) > MaxResults {
		t.Errorf("expected at most %d results, got %d", MaxResults, len(got))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if got := Search("ZZZZZZ"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
