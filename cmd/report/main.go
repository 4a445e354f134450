// backend-go/cmd/report/main.go
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"github.com/venperf/backend-go/internal/aggregate"
	"github.com/venperf/backend-go/internal/domain"
	"github.com/venperf/backend-go/internal/feed"
	"github.com/venperf/backend-go/internal/scoring"
	"github.com/venperf/backend-go/internal/sheet"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	app := &cli.App{
		Name:  "report",
		Usage: "Score purchase-order sheet files and export vendor rankings",
		Commands: []*cli.Command{
			{
				Name:      "vendors",
				Usage:     "Rank vendors across one or more sheet files (CSV or XLSX)",
				ArgsUsage: "FILE [FILE...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Usage:   "Output CSV path",
						Value:   "vendor_ranking.csv",
						EnvVars: []string{"REPORT_OUT"},
					},
					&cli.StringFlag{
						Name:    "price-mode",
						Usage:   "Price scoring mode (flat or proportional)",
						Value:   "flat",
						EnvVars: []string{"SCORE_PRICE_MODE"},
					},
					&cli.Float64Flag{
						Name:    "max-po-value",
						Usage:   "Proportional-mode reference ceiling",
						Value:   domain.DefaultMaxPOValueReference,
						EnvVars: []string{"SCORE_MAX_PO_VALUE"},
					},
				},
				Action: runVendorReport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("report failed")
	}
}

func runVendorReport(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one sheet file is required")
	}

	// Read every sheet concurrently; record order within a file is preserved,
	// files are merged in argument order.
	var (
		mu      sync.Mutex
		byPath  = make(map[string][]domain.PORecord, len(paths))
		g, gctx = errgroup.WithContext(c.Context)
	)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			source := &feed.FileSource{Path: path}
			rows, err := source.Fetch(gctx)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			records := sheet.ParseRows(rows)
			mu.Lock()
			byPath[path] = records
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var records []domain.PORecord
	for _, path := range paths {
		records = append(records, byPath[path]...)
	}

	engine := scoring.NewEngine(domain.ScoreConfig{
		PriceMode:           domain.PriceMode(c.String("price-mode")),
		MaxPOValueReference: c.Float64("max-po-value"),
	})
	vendors := aggregate.GroupByVendor(records, aggregate.Options{ExcludePlaceholders: true}, engine)

	outPath := c.String("out")
	if err := exportRankingCSV(outPath, vendors); err != nil {
		return fmt.Errorf("failed to export ranking: %w", err)
	}

	log.Info().
		Int("records", len(records)).
		Int("vendors", len(vendors)).
		Str("out", outPath).
		Msg("vendor ranking written")
	return nil
}
