package collections

import (
	"fmt"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"servicereports/services"
)

// Seed installs the default rate table when none is active yet. When a
// rates file exists at ratesPath it wins over the built-in defaults.
func Seed(app *pocketbase.PocketBase, ratesPath string) error {
	existing, err := app.FindFirstRecordByFilter("rate_tables", "active = true")
	if err == nil && existing != nil {
		return nil
	}

	rates := services.DefaultRates()
	name := "default"
	if ratesPath != "" {
		if _, statErr := os.Stat(ratesPath); statErr == nil {
			loaded, loadErr := services.LoadRates(ratesPath)
			if loadErr != nil {
				return fmt.Errorf("seed rates: %w", loadErr)
			}
			rates = loaded
			name = ratesPath
		}
	}

	col, err := app.FindCollectionByNameOrId("rate_tables")
	if err != nil {
		return fmt.Errorf("find rate_tables collection: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("active", true)
	record.Set("straight", rates.Straight)
	record.Set("overtime", rates.Overtime)
	record.Set("double", rates.Double)
	record.Set("weekday_travel", rates.WeekdayTravel)
	record.Set("saturday_travel", rates.SaturdayTravel)
	record.Set("sunday_travel", rates.SundayTravel)
	record.Set("per_diem", rates.PerDiem)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("save rate table: %w", err)
	}
	return nil
}

// ActiveRates returns the active rate table, falling back to the built-in
// defaults when none is stored.
func ActiveRates(app *pocketbase.PocketBase) services.RateTable {
	record, err := app.FindFirstRecordByFilter("rate_tables", "active = true")
	if err != nil || record == nil {
		return services.DefaultRates()
	}
	return services.RateTable{
		Straight:       record.GetFloat("straight"),
		Overtime:       record.GetFloat("overtime"),
		Double:         record.GetFloat("double"),
		WeekdayTravel:  record.GetFloat("weekday_travel"),
		SaturdayTravel: record.GetFloat("saturday_travel"),
		SundayTravel:   record.GetFloat("sunday_travel"),
		PerDiem:        record.GetFloat("per_diem"),
	}
}
