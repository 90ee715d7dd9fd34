package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RateTable is the policy-supplied pricing for the charge buckets. Rates
// are never derived from the entries themselves.
type RateTable struct {
	Straight       float64 `json:"straight"`
	Overtime       float64 `json:"overtime"`
	Double         float64 `json:"double"`
	WeekdayTravel  float64 `json:"weekdayTravel"`
	SaturdayTravel float64 `json:"saturdayTravel"`
	SundayTravel   float64 `json:"sundayTravel"`
	PerDiem        float64 `json:"perDiem"`
}

// DefaultRates is the reference deployment's table.
func DefaultRates() RateTable {
	return RateTable{
		Straight:       120,
		Overtime:       180,
		Double:         240,
		WeekdayTravel:  100,
		SaturdayTravel: 150,
		SundayTravel:   200,
		PerDiem:        75,
	}
}

type ratesFile struct {
	Labor struct {
		Straight float64 `yaml:"straight"`
		Overtime float64 `yaml:"overtime"`
		Double   float64 `yaml:"double"`
	} `yaml:"labor"`
	Travel struct {
		Weekday  float64 `yaml:"weekday"`
		Saturday float64 `yaml:"saturday"`
		Sunday   float64 `yaml:"sunday"`
	} `yaml:"travel"`
	PerDiem float64 `yaml:"per_diem"`
}

// LoadRates reads a rate table from a YAML file. Zero-valued fields fall
// back to the default table so a partial file stays usable.
func LoadRates(path string) (RateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rates file: %w", err)
	}
	return ParseRates(raw)
}

// ParseRates decodes YAML rate config bytes.
func ParseRates(raw []byte) (RateTable, error) {
	var f ratesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return RateTable{}, fmt.Errorf("parse rates file: %w", err)
	}
	rates := DefaultRates()
	setIfNonzero := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setIfNonzero(&rates.Straight, f.Labor.Straight)
	setIfNonzero(&rates.Overtime, f.Labor.Overtime)
	setIfNonzero(&rates.Double, f.Labor.Double)
	setIfNonzero(&rates.WeekdayTravel, f.Travel.Weekday)
	setIfNonzero(&rates.SaturdayTravel, f.Travel.Saturday)
	setIfNonzero(&rates.SundayTravel, f.Travel.Sunday)
	setIfNonzero(&rates.PerDiem, f.PerDiem)
	return rates, nil
}
