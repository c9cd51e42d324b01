package pipeline

import (
	"context"
	"fmt"

	bigquerylib "cloud.google.com/go/bigquery"

	infra "github.com/insightbi/revenue-etl/internal/infra/bigquery"
	"github.com/insightbi/revenue-etl/internal/logger"
)

// PipelineStep represents a single step in the per-file load pipeline.
type PipelineStep interface {
	Execute(ctx context.Context, state *PipelineState) error
}

// PipelineState holds the shared state across all pipeline steps for
// one file. Each file gets a fresh state; nothing is retained across
// files.
type PipelineState struct {
	FileName string
	FileData []byte

	Header  []string
	RawRows [][]string
	Wide    *WideTable
	Year    int
	Records []LongRecord
	Rows    []*infra.RevenueRow
}

// Step 1: ReadWorkbookStep materializes the spreadsheet into header
// and data rows.
type ReadWorkbookStep struct {
	Reader WorkbookReader
}

func (s *ReadWorkbookStep) Execute(ctx context.Context, state *PipelineState) error {
	header, rows, err := s.Reader.Read(state.FileData)
	if err != nil {
		return err
	}
	state.Header = header
	state.RawRows = rows
	return nil
}

// Step 2: ValidateRowsStep checks the header layout, applies the
// validation policy and binds the surviving rows into a wide table.
type ValidateRowsStep struct {
	Policy ValidationPolicy
}

func (s *ValidateRowsStep) Execute(ctx context.Context, state *PipelineState) error {
	if len(state.Header) < 3 {
		return &ValidationError{
			Reason: fmt.Sprintf("schema mismatch: want code, source and at least one month column, got %d columns", len(state.Header)),
		}
	}
	rows, err := FilterRows(state.RawRows, s.Policy)
	if err != nil {
		return err
	}
	log := logger.FromContext(ctx)
	log.Debug().
		Int("rows_in", len(state.RawRows)).
		Int("rows_kept", len(rows)).
		Str("policy", s.Policy.String()).
		Msg("Validated revenue rows")
	wide, err := NewWideTable(state.Header, rows)
	if err != nil {
		return err
	}
	state.Wide = wide
	return nil
}

// Step 3: CleanValuesStep normalizes cells and fills missing source
// labels from the revenue code.
type CleanValuesStep struct{}

func (s *CleanValuesStep) Execute(ctx context.Context, state *PipelineState) error {
	CleanTable(state.Wide)
	return nil
}

// Step 4: ReshapeStep unpivots the wide table into long records.
type ReshapeStep struct{}

func (s *ReshapeStep) Execute(ctx context.Context, state *PipelineState) error {
	state.Records = Reshape(state.Wide)
	return nil
}

// Step 5: ExtractYearStep derives the reporting year from the file
// name.
type ExtractYearStep struct{}

func (s *ExtractYearStep) Execute(ctx context.Context, state *PipelineState) error {
	year, err := ExtractYear(state.FileName)
	if err != nil {
		return err
	}
	state.Year = year
	return nil
}

// Step 6: CompleteCalendarStep reindexes the records onto the full
// code×month grid and reapplies the year.
type CompleteCalendarStep struct{}

func (s *CompleteCalendarStep) Execute(ctx context.Context, state *PipelineState) error {
	state.Records = CompleteCalendar(state.Records)
	ApplyYear(state.Records, state.Year)
	return nil
}

// Step 7: BuildRowsStep coerces values and maps the records into
// typed staging rows.
type BuildRowsStep struct{}

func (s *BuildRowsStep) Execute(ctx context.Context, state *PipelineState) error {
	CoerceValues(state.Records)

	rows := make([]*infra.RevenueRow, 0, len(state.Records))
	for _, r := range state.Records {
		row := &infra.RevenueRow{
			Year:        int64(r.Year),
			Month:       r.Month,
			RevenueCode: r.RevenueCode,
		}
		if r.RevenueSource != nil {
			row.RevenueSource = bigquerylib.NullString{StringVal: *r.RevenueSource, Valid: true}
		}
		if r.Value != nil {
			row.Value = bigquerylib.NullFloat64{Float64: *r.Value, Valid: true}
		}
		rows = append(rows, row)
	}
	state.Rows = rows
	return nil
}

// Step 8: PersistStep appends the finished batch to the staging
// table.
type PersistStep struct {
	Sink Sink
}

func (s *PersistStep) Execute(ctx context.Context, state *PipelineState) error {
	if err := s.Sink.Append(ctx, state.Rows); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []PipelineStep
}

// NewPipeline creates a new pipeline with the given steps.
func NewPipeline(steps ...PipelineStep) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps in the pipeline sequentially, stopping at
// the first failure.
func (p *Pipeline) Execute(ctx context.Context, state *PipelineState) error {
	for _, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return err
		}
	}
	return nil
}

// NewRevenueLoadPipeline creates the standard 8-step pipeline for
// loading one revenue report into the staging table.
func NewRevenueLoadPipeline(reader WorkbookReader, policy ValidationPolicy, sink Sink) *Pipeline {
	return NewPipeline(
		&ReadWorkbookStep{Reader: reader},
		&ValidateRowsStep{Policy: policy},
		&CleanValuesStep{},
		&ReshapeStep{},
		&ExtractYearStep{},
		&CompleteCalendarStep{},
		&BuildRowsStep{},
		&PersistStep{Sink: sink},
	)
}
