// Package handlers wires the extraction, calculation and export services
// to the HTTP surface. Handlers speak JSON; rendering lives client-side.
package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// jsonError writes a uniform error payload.
func jsonError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]any{"error": message})
}
