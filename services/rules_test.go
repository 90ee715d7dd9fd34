package services

import "testing"

func TestRuleFirstMatchWins(t *testing.T) {
	r := rule("srNumber", 1,
		`SR\s*#\s*(\d+)`,
		`Service\s+Request\s+(\d+)`,
		`Request\s+(\d+)`)

	// Both the second and third pattern match; the second is first in order.
	text := "Header\nService Request 111\nRequest 222\n"
	got, ok := r.Find(text)
	if !ok || got != "111" {
		t.Errorf("Find = (%q, %v), want (111, true)", got, ok)
	}
}

func TestRuleFallbackOrder(t *testing.T) {
	r := rule("srNumber", 1,
		`SR\s*#\s*(\d+)`,
		`Service\s+Request\s+(\d+)`)

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"primary hits", "SR # 42", "42", true},
		{"fallback hits", "Service Request 43", "43", true},
		{"both miss", "no numbers here", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Find(tt.text)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Find(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRuleTrimsCapture(t *testing.T) {
	r := rule("company", 1, `(?m)^Company\s*:?\s+(.+)$`)
	got, ok := r.Find("Company:   Acme Co  \n")
	if !ok || got != "Acme Co" {
		t.Errorf("Find = (%q, %v), want (Acme Co, true)", got, ok)
	}
}

func TestRuleSetOverrides(t *testing.T) {
	base := RuleSet{
		"company": rule("company", 1, `Company\s+(\w+)`),
		"contact": rule("contact", 1, `Contact\s+(\w+)`),
	}
	merged := base.withOverrides([]Rule{
		rule("company", 1, `Customer\s+Name\s+(\w+)`),
	})

	if got, _ := merged.Find("company", "Customer Name Beta"); got != "Beta" {
		t.Errorf("override not applied, got %q", got)
	}
	if got, _ := merged.Find("contact", "Contact Jan"); got != "Jan" {
		t.Errorf("base rule lost after override, got %q", got)
	}
	// The base table must stay untouched.
	if _, ok := base.Find("company", "Customer Name Beta"); ok {
		t.Error("withOverrides mutated the base table")
	}
}

func TestRuleSetUnknownName(t *testing.T) {
	rs := RuleSet{}
	if _, ok := rs.Find("missing", "anything"); ok {
		t.Error("unknown rule name should behave like a miss")
	}
}
