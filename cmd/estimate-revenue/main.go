package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/insightbi/revenue-etl/internal/config"
	"github.com/insightbi/revenue-etl/internal/excel"
	infra "github.com/insightbi/revenue-etl/internal/infra/bigquery"
	"github.com/insightbi/revenue-etl/internal/logger"
	"github.com/insightbi/revenue-etl/internal/pipeline"
	"github.com/insightbi/revenue-etl/internal/source"
)

// Estimate reports carry an annual-total column between the source
// label and the month columns, hence the gap in the selection.
const estimateColumns = "A,B,D:O"

func main() {
	dir := flag.String("dir", "", "folder with estimate revenue workbooks (overrides REVENUE_SOURCE_DIR)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.SourceDir = *dir
	}

	log := logger.New(cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	var src pipeline.FileSource
	if cfg.GCSBucket != "" {
		gcs, err := source.NewGCS(ctx, cfg.GCSBucket, cfg.GCSPrefix, cfg.FileExt, cfg.ClientOptions()...)
		if err != nil {
			log.Fatal().Err(err).Msg("Connecting to GCS failed")
		}
		defer gcs.Close()
		src = gcs
	} else {
		if cfg.SourceDir == "" {
			log.Fatal().Msg("Error: --dir or REVENUE_SOURCE_DIR is required")
		}
		src = source.NewLocal(cfg.SourceDir, cfg.FileExt)
	}

	reader, err := excel.NewReader(excel.Layout{
		HeaderRow: cfg.HeaderRow,
		Columns:   estimateColumns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid workbook layout")
	}

	sink, err := infra.NewStagingSink(ctx, cfg.ProjectID, cfg.Dataset, cfg.EstimateTable, cfg.ClientOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Connecting to BigQuery failed")
	}
	defer sink.Close()

	log.Info().
		Str("dataset", cfg.Dataset).
		Str("table", cfg.EstimateTable).
		Msg("Starting estimate revenue load")

	orch := pipeline.NewOrchestrator(src, reader, sink, pipeline.PolicyFilterMatches, log)
	summary, err := orch.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Batch failed")
	}

	log.Info().
		Int("files_loaded", summary.LoadedFiles()).
		Int("files_skipped", summary.FailedFiles()).
		Int("rows_loaded", summary.LoadedRows()).
		Msg("All files processed")

	if summary.FailedFiles() > 0 {
		os.Exit(1)
	}
}
