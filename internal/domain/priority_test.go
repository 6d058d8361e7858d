package domain

import "testing"

func TestPrioritySortOrder(t *testing.T) {
	if PriorityHigh.SortOrder() <= PriorityMedium.SortOrder() {
		t.Error("HIGH must rank above MEDIUM")
	}
	if PriorityMedium.SortOrder() <= PriorityLow.SortOrder() {
		t.Error("MEDIUM must rank above LOW")
	}
}

func TestParsePriority(t *testing.T) {
	for _, s := range []string{"HIGH", "MEDIUM", "LOW"} {
		p, err := ParsePriority(s)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", s, err)
		}
		if string(p) != s {
			t.Errorf("ParsePriority(%q) = %q", s, p)
		}
	}

	for _, s := range []string{"", "high", "URGENT"} {
		if _, err := ParsePriority(s); err == nil {
			t.Errorf("ParsePriority(%q) should fail", s)
		}
	}
}
