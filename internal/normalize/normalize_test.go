package normalize

import "testing"

func TestClean_RuleSequence(t *testing.T) {
	got := Clean("Line1\n\nLine2___,,,....")
	if got != "Line1 Line2" {
		t.Fatalf("expected %q, got %q", "Line1 Line2", got)
	}
}

func TestClean_SinglePeriodsSurvive(t *testing.T) {
	got := Clean("End of sentence. Next sentence.")
	if got != "End of sentence. Next sentence." {
		t.Fatalf("single periods must be kept, got %q", got)
	}
	if Clean("Section 1.2.3") != "Section 1.2.3" {
		t.Fatalf("periods separated by text must be kept")
	}
}

func TestClean_LeaderDots(t *testing.T) {
	if got := Clean("Item A.......12"); got != "Item A12" {
		t.Fatalf("expected leader dots removed, got %q", got)
	}
	if got := Clean("Item B..13"); got != "Item B13" {
		t.Fatalf("two periods already form a run, got %q", got)
	}
}

func TestClean_EscapeMarkers(t *testing.T) {
	if got := Clean(`before\u\u\uafter`); got != "before after" {
		t.Fatalf("expected marker run collapsed to one space, got %q", got)
	}
}

func TestClean_RulesInteract(t *testing.T) {
	// Removing underscores and commas joins the surrounding periods into a
	// run, which the final rule then deletes.
	if got := Clean("a._.b"); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
	if got := Clean("a.,.b"); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Line1\n\nLine2___,,,....",
		"plain text with. single periods.",
		"a._.b and a.,.b",
		`weird \u\u markers __ and ,, and ...`,
		"\n\n\n",
		"tabular......data,,,,end___",
	}
	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Fatalf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
