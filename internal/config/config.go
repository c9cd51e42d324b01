// Package config loads the runtime configuration from the
// environment. The pipeline itself never reads configuration; the
// CLIs materialize it here and wire the collaborators.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"google.golang.org/api/option"
)

// envPrefix namespaces every variable, e.g. REVENUE_BQ_PROJECT.
const envPrefix = "REVENUE"

// Config is the full configuration surface: destination project,
// dataset and tables, credentials, and where the input workbooks
// live (a local folder by default, a GCS bucket when set).
type Config struct {
	ProjectID       string `envconfig:"BQ_PROJECT" required:"true"`
	Dataset         string `envconfig:"BQ_DATASET" default:"InsightStaging"`
	ActualTable     string `envconfig:"ACTUAL_TABLE" default:"Actual_Revenue"`
	EstimateTable   string `envconfig:"ESTIMATE_TABLE" default:"Estimate_Revenue"`
	CredentialsFile string `envconfig:"CREDENTIALS_FILE"`

	SourceDir string `envconfig:"SOURCE_DIR"`
	GCSBucket string `envconfig:"GCS_BUCKET"`
	GCSPrefix string `envconfig:"GCS_PREFIX"`
	FileExt   string `envconfig:"FILE_EXT" default:".xlsx"`

	// HeaderRow is the 0-based row index where the report header
	// sits; the source reports carry three banner rows above it.
	HeaderRow int `envconfig:"HEADER_ROW" default:"3"`

	Debug bool `envconfig:"DEBUG"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// ClientOptions returns the client options shared by the BigQuery
// and Storage clients. With no credentials file configured the
// clients fall back to application default credentials.
func (c *Config) ClientOptions() []option.ClientOption {
	if c.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(c.CredentialsFile)}
}
