package figplot

import "fmt"

// Stage names a step of the pipeline.
type Stage string

// Pipeline stages, in order.
const (
	StageConfig Stage = "config"
	StageData   Stage = "data"
	StageSelect Stage = "select"
	StageRender Stage = "render"
	StageExport Stage = "export"
)

// StageError records the pipeline stage that failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
