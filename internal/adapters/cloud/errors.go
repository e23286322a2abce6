package cloud

import "errors"

// Sentinel kinds for workspace sync errors.
var (
	ErrWorkspaceRequired = errors.New("workspace id is required")
	ErrMissingID         = errors.New("record id is required")
)
