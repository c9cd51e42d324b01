package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"
)

// StagingSink appends revenue rows to one staging table, identified
// by a dataset+table pair. It holds a shared BigQuery client so a
// batch run over many files reuses one connection; construct it once
// and pass it into each per-file load.
type StagingSink struct {
	client    *bigquery.Client
	projectID string
	datasetID string
	tableID   string
}

// NewStagingSink creates a sink for <datasetID>.<tableID> with a
// shared BigQuery client.
func NewStagingSink(ctx context.Context, projectID, datasetID, tableID string, opts ...option.ClientOption) (*StagingSink, error) {
	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewStagingSink: bigquery client: %w", err)
	}
	return &StagingSink{
		client:    client,
		projectID: projectID,
		datasetID: datasetID,
		tableID:   tableID,
	}, nil
}

// Append inserts a batch of rows with append semantics. No
// transaction spans multiple calls and nothing is rolled back on
// failure; the destination's own guarantees are all there is.
func (s *StagingSink) Append(ctx context.Context, rows []*RevenueRow) error {
	if len(rows) == 0 {
		return nil
	}

	// Fully qualified table name to avoid project ID issues.
	table := s.client.DatasetInProject(s.projectID, s.datasetID).Table(s.tableID)
	if err := table.Inserter().Put(ctx, rows); err != nil {
		return fmt.Errorf("Append: inserting rows into %s.%s: %w", s.datasetID, s.tableID, err)
	}
	return nil
}

// Close releases the underlying client. Call it when the batch run is
// done.
func (s *StagingSink) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
