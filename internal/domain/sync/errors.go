package sync

import "errors"

var (
	// ErrSourceNotConfigured indicates the catalog source has no usable configuration
	ErrSourceNotConfigured = errors.New("sync: catalog source not configured")
	// ErrSourceUnavailable indicates the catalog source could not be reached
	ErrSourceUnavailable = errors.New("sync: catalog source temporarily unavailable")
	// ErrSourceRequestFailed indicates a non-success transport response
	ErrSourceRequestFailed = errors.New("sync: catalog source request failed")
	// ErrSourceInvalidResponse indicates an unparseable source payload
	ErrSourceInvalidResponse = errors.New("sync: invalid catalog source response")

	// ErrRunInProgress indicates another synchronization run holds the lock
	ErrRunInProgress = errors.New("sync: another sync run is already in progress")
	// ErrRunCancelled indicates the run was cancelled before completion
	ErrRunCancelled = errors.New("sync: run cancelled")
)
