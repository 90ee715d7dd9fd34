package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRates_Full(t *testing.T) {
	raw := []byte(`
labor:
  straight: 100
  overtime: 150
  double: 200
travel:
  weekday: 80
  saturday: 120
  sunday: 160
per_diem: 60
`)
	rates, err := ParseRates(raw)
	if err != nil {
		t.Fatalf("ParseRates() error = %v", err)
	}
	if rates.Straight != 100 || rates.Overtime != 150 || rates.Double != 200 {
		t.Errorf("labor rates = %+v", rates)
	}
	if rates.WeekdayTravel != 80 || rates.SaturdayTravel != 120 || rates.SundayTravel != 160 {
		t.Errorf("travel rates = %+v", rates)
	}
	if rates.PerDiem != 60 {
		t.Errorf("per diem = %v, want 60", rates.PerDiem)
	}
}

func TestParseRates_PartialFallsBackToDefaults(t *testing.T) {
	rates, err := ParseRates([]byte("labor:\n  straight: 135\n"))
	if err != nil {
		t.Fatalf("ParseRates() error = %v", err)
	}
	if rates.Straight != 135 {
		t.Errorf("straight = %v, want 135", rates.Straight)
	}
	if rates.Overtime != DefaultRates().Overtime {
		t.Errorf("overtime = %v, want default %v", rates.Overtime, DefaultRates().Overtime)
	}
}

func TestParseRates_Malformed(t *testing.T) {
	if _, err := ParseRates([]byte("labor: [not, a, map]")); err == nil {
		t.Error("expected error for malformed rates file")
	}
}

func TestLoadRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	if err := os.WriteFile(path, []byte("labor:\n  straight: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rates, err := LoadRates(path)
	if err != nil {
		t.Fatalf("LoadRates() error = %v", err)
	}
	if rates.Straight != 99 {
		t.Errorf("straight = %v, want 99", rates.Straight)
	}

	if _, err := LoadRates(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
