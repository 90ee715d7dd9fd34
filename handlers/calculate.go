package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"servicereports/collections"
	"servicereports/services"
)

// HandleCalculate prices an entry list against the active rate table. The
// entries can come from an extraction or from manual form input; either
// way the computation is the same pure function.
// Route: POST /calculate
func HandleCalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload struct {
			Entries []services.TimeEntry `json:"entries"`
		}
		if err := json.NewDecoder(e.Request.Body).Decode(&payload); err != nil {
			return jsonError(e, http.StatusBadRequest, "Invalid entries payload")
		}

		rates := collections.ActiveRates(app)
		summary := services.CalcCharges(payload.Entries, rates)

		perEntry := make([]services.EntryHours, len(payload.Entries))
		for i, entry := range payload.Entries {
			perEntry[i] = services.CalcEntryHours(entry)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"summary": summary,
			"entries": perEntry,
		})
	}
}
