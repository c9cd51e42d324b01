package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insightbi/revenue-etl/internal/logger"
)

// FileResult is the outcome of processing one input file. A file is
// either fully loaded or fully skipped; Err carries the fatal error
// for a skipped file.
type FileResult struct {
	File       string
	LoadID     string
	RowsLoaded int
	Err        error
}

// Failed reports whether the file was skipped.
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// Summary aggregates per-file results for one batch run.
type Summary struct {
	Results []FileResult
}

// LoadedFiles counts files that made it into the staging table.
func (s Summary) LoadedFiles() int {
	n := 0
	for _, r := range s.Results {
		if !r.Failed() {
			n++
		}
	}
	return n
}

// FailedFiles counts files that were skipped.
func (s Summary) FailedFiles() int {
	return len(s.Results) - s.LoadedFiles()
}

// LoadedRows sums the rows appended across all loaded files.
func (s Summary) LoadedRows() int {
	n := 0
	for _, r := range s.Results {
		n += r.RowsLoaded
	}
	return n
}

// Orchestrator runs the per-file load pipeline over a collection of
// discovered input files. Files are processed sequentially and
// independently: a failure in one is recorded and never aborts the
// rest of the batch. The sink is constructed once by the caller and
// shared across files.
type Orchestrator struct {
	source FileSource
	reader WorkbookReader
	sink   Sink
	policy ValidationPolicy
	log    zerolog.Logger
}

// NewOrchestrator wires the collaborators for one batch run.
func NewOrchestrator(source FileSource, reader WorkbookReader, sink Sink, policy ValidationPolicy, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		source: source,
		reader: reader,
		sink:   sink,
		policy: policy,
		log:    log,
	}
}

// Run discovers the input files and processes each in turn. It fails
// outright only when discovery itself fails or turns up nothing;
// per-file errors end up in the summary.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	files, err := o.source.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list input files: %w", err)
	}
	if len(files) == 0 {
		return Summary{}, errors.New("no Excel files found")
	}

	summary := Summary{Results: make([]FileResult, 0, len(files))}
	for _, name := range files {
		flog := logger.WithFile(o.log, name)
		result := o.ProcessFile(logger.WithContext(ctx, flog), name)
		if result.Failed() {
			flog.Error().
				Str("load_id", result.LoadID).
				Err(result.Err).
				Msg("File skipped")
		} else {
			flog.Info().
				Str("load_id", result.LoadID).
				Int("rows", result.RowsLoaded).
				Msg("File loaded")
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// ProcessFile reads, transforms and persists a single file. Each call
// builds a fresh pipeline state; no state survives across files.
func (o *Orchestrator) ProcessFile(ctx context.Context, name string) FileResult {
	result := FileResult{
		File:   name,
		LoadID: uuid.NewString(),
	}

	data, err := o.source.Open(ctx, name)
	if err != nil {
		result.Err = fmt.Errorf("read input file: %w", err)
		return result
	}

	state := &PipelineState{
		FileName: name,
		FileData: data,
	}
	pipe := NewRevenueLoadPipeline(o.reader, o.policy, o.sink)
	if err := pipe.Execute(ctx, state); err != nil {
		result.Err = err
		return result
	}

	result.RowsLoaded = len(state.Rows)
	return result
}
