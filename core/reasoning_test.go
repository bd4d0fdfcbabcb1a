package core

import "testing"

func TestParseReasoningLevel(t *testing.T) {
	tests := []struct {
		in   string
		want ReasoningLevel
		ok   bool
	}{
		{in: "minimal", want: ReasoningMinimal, ok: true},
		{in: "LOW", want: ReasoningLow, ok: true},
		{in: " Medium ", want: ReasoningMedium, ok: true},
		{in: "HIGH", want: ReasoningHigh, ok: true},
		{in: "hihg", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseReasoningLevel(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseReasoningLevel(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestReasoningLevelCompare(t *testing.T) {
	if ReasoningMinimal.Compare(ReasoningHigh) >= 0 {
		t.Fatal("minimal should rank below high")
	}
	if ReasoningHigh.Compare(ReasoningLow) <= 0 {
		t.Fatal("high should rank above low")
	}
	if ReasoningMedium.Compare(ReasoningMedium) != 0 {
		t.Fatal("equal levels should compare to zero")
	}
}

func TestReasoningConfigIsZero(t *testing.T) {
	var nilCfg *ReasoningConfig
	if !nilCfg.IsZero() {
		t.Fatal("nil config should be zero")
	}
	if !(&ReasoningConfig{}).IsZero() {
		t.Fatal("empty config should be zero")
	}
	budget := 100
	if (&ReasoningConfig{Budget: &budget}).IsZero() {
		t.Fatal("config with budget should not be zero")
	}
}

func TestReasoningConfigClone(t *testing.T) {
	budget := 100
	include := true
	cfg := &ReasoningConfig{Level: ReasoningHigh, Budget: &budget, IncludeTraces: &include}

	clone := cfg.Clone()
	*clone.Budget = 200
	*clone.IncludeTraces = false

	if *cfg.Budget != 100 || *cfg.IncludeTraces != true {
		t.Fatal("Clone shares pointer fields with the original")
	}
}
