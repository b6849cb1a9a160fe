package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/application/wixsync"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
	"github.com/luxurahair/luxura-inventory-api/internal/interfaces/http/dto"
)

// defaultRunHistorySize bounds the run listing when no limit is given
const defaultRunHistorySize = 20

// SyncHandler exposes the catalog synchronization over HTTP
type SyncHandler struct {
	BaseHandler
	syncService *wixsync.SyncService
	runs        syncdomain.SyncRunRepository
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *wixsync.SyncService, runs syncdomain.SyncRunRepository) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
		runs:        runs,
	}
}

// RunRequest represents the trigger parameters of a sync run
type RunRequest struct {
	// Limit bounds the number of catalog parents processed; zero means the
	// whole catalog
	Limit int `form:"limit" binding:"omitempty,min=0"`
	// DryRun executes the full pass and rolls everything back
	DryRun bool `form:"dry_run"`
}

// Run triggers one synchronization pass and blocks until it finishes.
// A run already in progress yields 409; a completed run returns its summary
// even when the run itself failed, since the outcome is recorded either way.
func (h *SyncHandler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.syncService.RunSync(c.Request.Context(), wixsync.Options{
		Limit:  req.Limit,
		DryRun: req.DryRun,
	})
	if err != nil {
		if errors.Is(err, syncdomain.ErrRunInProgress) {
			h.ErrorWithCode(c, dto.ErrCodeSyncInProgress, "A sync run is already in progress")
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RunHistoryResponse represents one sync run audit row
type RunHistoryResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Job                 string     `json:"job"`
	Status              string     `json:"status"`
	DryRun              bool       `json:"dry_run"`
	Limit               int        `json:"limit"`
	StartedAt           time.Time  `json:"started_at"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
	Created             int        `json:"created"`
	Updated             int        `json:"updated"`
	Merged              int        `json:"merged"`
	Skipped             int        `json:"skipped"`
	InventoryWritten    int        `json:"inventory_written"`
	ParentsProcessed    int        `json:"parents_processed"`
	VariantsSeen        int        `json:"variants_seen"`
	InventoryFetchError string     `json:"inventory_fetch_error,omitempty"`
	Error               string     `json:"error,omitempty"`
}

// ListRuns returns the most recent sync runs, newest first
func (h *SyncHandler) ListRuns(c *gin.Context) {
	var req struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Limit <= 0 {
		req.Limit = defaultRunHistorySize
	}

	runs, err := h.runs.FindRecent(c.Request.Context(), req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]RunHistoryResponse, len(runs))
	for i := range runs {
		responses[i] = toRunHistoryResponse(&runs[i])
	}
	h.Success(c, responses)
}

func toRunHistoryResponse(run *syncdomain.SyncRun) RunHistoryResponse {
	return RunHistoryResponse{
		ID:                  run.ID,
		Job:                 run.Job,
		Status:              run.Status.String(),
		DryRun:              run.DryRun,
		Limit:               run.Limit,
		StartedAt:           run.StartedAt,
		FinishedAt:          run.FinishedAt,
		Created:             run.Created,
		Updated:             run.Updated,
		Merged:              run.Merged,
		Skipped:             run.Skipped,
		InventoryWritten:    run.InventoryWritten,
		ParentsProcessed:    run.ParentsProcessed,
		VariantsSeen:        run.VariantsSeen,
		InventoryFetchError: run.InventoryFetchError,
		Error:               run.Error,
	}
}
