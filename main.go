package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"servicereports/collections"
	"servicereports/handlers"
	"servicereports/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	homeBase := os.Getenv("HOME_BASE")
	if homeBase == "" {
		homeBase = services.DefaultHomeBase
	}
	ratesPath := os.Getenv("RATES_FILE")
	if ratesPath == "" {
		ratesPath = "rates.yaml"
	}

	app := pocketbase.New()

	app.RootCmd.AddCommand(newExtractCmd(homeBase))

	// Create collections and seed the rate table on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app, ratesPath); err != nil {
			log.Printf("Warning: rate table seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		store := collections.NewReportStore(app)

		// ── Import & review ──────────────────────────────────────
		se.Router.POST("/reports/import", handlers.HandleReportImport(app, store, homeBase))
		se.Router.GET("/reports", handlers.HandleReportList(store))
		se.Router.GET("/reports/{id}", handlers.HandleReportView(store))
		se.Router.DELETE("/reports/{id}", handlers.HandleReportDelete(store))

		// ── Hours & charges ──────────────────────────────────────
		se.Router.POST("/calculate", handlers.HandleCalculate(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/reports/{id}/export/{format}", handlers.HandleReportExport(store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// newExtractCmd runs one extraction from the command line and prints the
// report JSON, mainly for template debugging without a running server.
func newExtractCmd(homeBase string) *cobra.Command {
	var variantFlag string
	var sheetFlag string
	var yearFlag int

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract a service report from an .xlsx workbook or a .txt page dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			opts := services.ExtractOptions{
				Sheet:    sheetFlag,
				HomeBase: homeBase,
				Year:     yearFlag,
			}

			var report *services.ExtractedReport
			switch strings.ToLower(filepath.Ext(path)) {
			case ".xlsx":
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				grid, err := services.GridFromXLSX(f)
				if err != nil {
					return err
				}
				if variantFlag == "" {
					variantFlag = string(services.VariantSpreadsheet)
				}
				if variantFlag != string(services.VariantSpreadsheet) {
					return fmt.Errorf("workbooks extract with the spreadsheet variant, got %q", variantFlag)
				}
				report, err = services.ExtractFromGrid(grid, opts)
				if err != nil {
					return err
				}
			case ".txt":
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				variant, err := services.ParseVariant(variantFlag)
				if err != nil {
					return fmt.Errorf("text dumps need --variant text-variant-A or text-variant-B: %w", err)
				}
				report, err = services.ExtractFromText(string(raw), nil, variant, opts)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported input %q: expected .xlsx or .txt", path)
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&variantFlag, "variant", "", "format variant (spreadsheet, text-variant-A, text-variant-B)")
	cmd.Flags().StringVar(&sheetFlag, "sheet", "", "sheet name override for workbook input")
	cmd.Flags().IntVar(&yearFlag, "year", 0, "year for M/D date tokens in text input")
	return cmd
}
