package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/insightbi/revenue-etl/internal/config"
	"github.com/insightbi/revenue-etl/internal/excel"
	infra "github.com/insightbi/revenue-etl/internal/infra/bigquery"
	"github.com/insightbi/revenue-etl/internal/logger"
	"github.com/insightbi/revenue-etl/internal/pipeline"
	"github.com/insightbi/revenue-etl/internal/source"
)

// Actual reports put the twelve month columns right after the code
// and source columns.
const actualColumns = "A:N"

func main() {
	file := flag.String("file", "", "path to one actual revenue workbook (e.g. \"2020 Actual Revenue.xlsx\")")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Debug)

	if *file == "" {
		log.Fatal().Msg("Error: --file is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	reader, err := excel.NewReader(excel.Layout{
		HeaderRow: cfg.HeaderRow,
		Columns:   actualColumns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid workbook layout")
	}

	sink, err := infra.NewStagingSink(ctx, cfg.ProjectID, cfg.Dataset, cfg.ActualTable, cfg.ClientOptions()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Connecting to BigQuery failed")
	}
	defer sink.Close()

	src := source.NewLocal(filepath.Dir(*file), filepath.Ext(*file))
	orch := pipeline.NewOrchestrator(src, reader, sink, pipeline.PolicyTruncateAtLastMatch, log)

	name := filepath.Base(*file)
	log.Info().Str("file", name).Msg("Starting actual revenue load")

	result := orch.ProcessFile(ctx, name)
	if result.Failed() {
		log.Fatal().Str("load_id", result.LoadID).Err(result.Err).Msg("Load failed")
	}

	log.Info().
		Str("load_id", result.LoadID).
		Int("rows_loaded", result.RowsLoaded).
		Str("dataset", cfg.Dataset).
		Str("table", cfg.ActualTable).
		Msg("Load completed")
}
