package service

import "errors"

// Sentinel kinds for service errors. The HTTP layer maps these onto
// status codes.
var (
	ErrNotStarted        = errors.New("service not started")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDuplicateSession  = errors.New("session id already exists")
	ErrStaffNameRequired = errors.New("staff name is required")
	ErrCloudDisabled     = errors.New("cloud sync is disabled")
)
