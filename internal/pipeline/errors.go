package pipeline

import "fmt"

// ValidationError reports a file whose contents cannot be treated as
// revenue data. Fatal for that file.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConfigError reports a file that does not satisfy the naming
// contract (no 4-digit year embedded in the file name). Fatal for
// that file.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// PersistenceError reports a write rejected by the destination table.
// Fatal for that file; the transformed rows are discarded.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("destination write rejected: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
