package pipeline

import (
	"context"

	infra "github.com/insightbi/revenue-etl/internal/infra/bigquery"
)

// Sink accepts an ordered batch of typed staging rows with append
// semantics. The pipeline treats it as a pure collaborator: it does
// not know the storage technology, only that a write may fail.
type Sink interface {
	Append(ctx context.Context, rows []*infra.RevenueRow) error
}

// WorkbookReader materializes one spreadsheet into a header row and
// the data rows beneath it, with the configured header offset and
// column selection already applied.
type WorkbookReader interface {
	Read(data []byte) (header []string, rows [][]string, err error)
}

// FileSource enumerates input workbooks and reads their bytes. Local
// folders and GCS buckets both satisfy it.
type FileSource interface {
	List(ctx context.Context) ([]string, error)
	Open(ctx context.Context, name string) ([]byte, error)
}
