package sync

import (
	"context"
	"time"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// RunStatus represents the lifecycle state of a sync run
type RunStatus string

const (
	// RunStatusRunning indicates the run is in progress
	RunStatusRunning RunStatus = "running"
	// RunStatusSuccess indicates the run completed and committed
	RunStatusSuccess RunStatus = "success"
	// RunStatusError indicates the run aborted and rolled back
	RunStatusError RunStatus = "error"
	// RunStatusCancelled indicates the run was cancelled and rolled back
	RunStatusCancelled RunStatus = "cancelled"
)

// IsValid returns true if the status is valid
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusRunning, RunStatusSuccess, RunStatusError, RunStatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of RunStatus
func (s RunStatus) String() string {
	return string(s)
}

// SyncRun is the audit record of one orchestrator execution. Created at run
// start, finalized at run end or on unrecoverable error.
type SyncRun struct {
	shared.BaseEntity
	Job        string    `gorm:"type:varchar(50);not null;default:'wix_sync';index"`
	Status     RunStatus `gorm:"type:varchar(20);not null;default:'running'"`
	DryRun     bool      `gorm:"not null;default:false"`
	Limit      int       `gorm:"column:fetch_limit;not null;default:0"`
	StartedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time

	Created          int `gorm:"not null;default:0"`
	Updated          int `gorm:"not null;default:0"`
	Merged           int `gorm:"not null;default:0"`
	Skipped          int `gorm:"not null;default:0"`
	InventoryWritten int `gorm:"not null;default:0"`
	ParentsProcessed int `gorm:"not null;default:0"`
	VariantsSeen     int `gorm:"not null;default:0"`

	// InventoryFetchError records a non-fatal inventory pre-fetch failure
	InventoryFetchError string `gorm:"type:text"`
	// Error records the failure that aborted the run
	Error string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SyncRun) TableName() string {
	return "sync_runs"
}

// NewSyncRun creates a run record in the running state.
func NewSyncRun(job string, limit int, dryRun bool) *SyncRun {
	return &SyncRun{
		BaseEntity: shared.NewBaseEntity(),
		Job:        job,
		Status:     RunStatusRunning,
		DryRun:     dryRun,
		Limit:      limit,
		StartedAt:  time.Now(),
	}
}

// Finish marks the run as completed with the given status.
func (r *SyncRun) Finish(status RunStatus, errText string) {
	now := time.Now()
	r.Status = status
	r.FinishedAt = &now
	r.Error = errText
	r.UpdatedAt = now
}

// SyncRunRepository defines the persistence port for run audit rows.
// The audit row lives outside the sync transaction so that failed and
// dry-run executions remain visible.
type SyncRunRepository interface {
	// Save creates or updates a run record
	Save(ctx context.Context, run *SyncRun) error

	// FindRecent lists the most recent runs, newest first
	FindRecent(ctx context.Context, limit int) ([]SyncRun, error)
}
