// Package collections manages the PocketBase schema backing the report
// store and the rate tables.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the reports and rate_tables
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "reports", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "sr_number", Required: false})
		c.Fields.Add(&core.JSONField{Name: "document", Required: true, MaxSize: 2 << 20})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "rate_tables", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.BoolField{Name: "active"})
		c.Fields.Add(&core.NumberField{Name: "straight", Required: true})
		c.Fields.Add(&core.NumberField{Name: "overtime", Required: true})
		c.Fields.Add(&core.NumberField{Name: "double", Required: true})
		c.Fields.Add(&core.NumberField{Name: "weekday_travel", Required: true})
		c.Fields.Add(&core.NumberField{Name: "saturday_travel", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sunday_travel", Required: true})
		c.Fields.Add(&core.NumberField{Name: "per_diem", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
