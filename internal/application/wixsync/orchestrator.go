package wixsync

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/inventory"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// maxSourcePageSize is the page-size cap enforced by the platform's query
// endpoints.
const maxSourcePageSize = 100

// jobName identifies the catalog sync in the run audit table.
const jobName = "wix_sync"

// errDryRunRollback aborts the transaction after a dry run has finished all
// of its work. It is the mechanism that guarantees a dry run executes the
// exact same code path as a live run while persisting nothing.
var errDryRunRollback = errors.New("wixsync: dry run rollback")

// Options control one sync run.
type Options struct {
	// Limit bounds the number of catalog parents processed. Zero means the
	// whole catalog.
	Limit int
	// DryRun executes the full pass inside a transaction that is always
	// rolled back.
	DryRun bool
}

// SyncService orchestrates a full catalog synchronization: fetch, normalize,
// resolve, reconcile. One run is one transaction; runs are serialized by the
// run lock.
type SyncService struct {
	source     syncdomain.CatalogSource
	scope      TransactionScope
	runs       syncdomain.SyncRunRepository
	lock       RunLock
	normalizer *Normalizer
	resolver   *Resolver
	reconciler *Reconciler

	salonCode string
	salonName string

	logger *zap.Logger
}

// NewSyncService creates the sync orchestrator. salonCode and salonName
// identify the salon that receives the reconciled stock; the salon is
// created on first run if it does not exist.
func NewSyncService(
	source syncdomain.CatalogSource,
	scope TransactionScope,
	runs syncdomain.SyncRunRepository,
	lock RunLock,
	salonCode, salonName string,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		source:     source,
		scope:      scope,
		runs:       runs,
		lock:       lock,
		normalizer: NewNormalizer(),
		resolver:   NewResolver(logger),
		reconciler: NewReconciler(),
		salonCode:  salonCode,
		salonName:  salonName,
		logger:     logger,
	}
}

// RunSync executes one synchronization pass and returns its summary. The
// summary is returned on failure too, with Ok=false and the failure text in
// Error; a nil summary only accompanies lock contention.
func (s *SyncService) RunSync(ctx context.Context, opts Options) (*SyncSummary, error) {
	release, err := s.lock.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	run := syncdomain.NewSyncRun(jobName, opts.Limit, opts.DryRun)
	if err := s.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("wixsync: create run record: %w", err)
	}

	s.logger.Info("sync run started",
		zap.String("run_id", run.GetID().String()),
		zap.Int("limit", opts.Limit),
		zap.Bool("dry_run", opts.DryRun),
	)

	var cnt counters
	var invFetchErr *string

	runErr := s.execute(ctx, opts, &cnt, &invFetchErr)

	summary := s.finalize(ctx, run, opts, &cnt, invFetchErr, runErr)
	return summary, nil
}

// execute performs the pass: pre-fetch everything, then apply inside one
// transaction.
func (s *SyncService) execute(ctx context.Context, opts Options, cnt *counters, invFetchErr **string) error {
	pageSize, maxPages := paging(opts.Limit)

	parents, err := s.source.FetchParents(ctx, pageSize, maxPages)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}
	if opts.Limit > 0 && len(parents) > opts.Limit {
		parents = parents[:opts.Limit]
	}

	// Inventory is fetched best-effort: a failure here degrades the run to
	// catalog-only rather than aborting it.
	stock := make(map[string]syncdomain.InventoryRecord)
	records, err := s.source.FetchInventory(ctx, maxSourcePageSize, 0)
	if err != nil {
		msg := err.Error()
		*invFetchErr = &msg
		s.logger.Warn("inventory fetch failed, syncing catalog only", zap.Error(err))
	} else {
		for _, rec := range records {
			stock[rec.Key()] = rec
		}
	}

	// Category names are display metadata only; a failure leaves products
	// without category labels for this run.
	categories, err := s.source.FetchCategories(ctx)
	if err != nil {
		categories = nil
		s.logger.Warn("category fetch failed, skipping category labels", zap.Error(err))
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		salon, err := s.findOrCreateSalon(ctx, repos.Salons())
		if err != nil {
			return err
		}

		for _, parent := range parents {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("%w: %v", syncdomain.ErrRunCancelled, ctxErr)
			}
			if err := s.processParent(ctx, repos, salon, parent, categories, stock, cnt); err != nil {
				return err
			}
			cnt.parentsProcessed++
		}

		if opts.DryRun {
			return errDryRunRollback
		}
		return nil
	})
}

// processParent expands one parent into its variants and applies each.
func (s *SyncService) processParent(
	ctx context.Context,
	repos TransactionalRepositories,
	salon *inventory.Salon,
	parent syncdomain.CatalogParent,
	categories map[string]string,
	stock map[string]syncdomain.InventoryRecord,
	cnt *counters,
) error {
	variants, err := s.source.FetchVariants(ctx, parent.ID)
	if err != nil {
		return fmt.Errorf("fetch variants of %s: %w", parent.ID, err)
	}

	labels := categoryLabels(parent.CollectionIDs, categories)

	for _, variant := range variants {
		cnt.variantsSeen++

		draft := s.normalizer.Normalize(parent, variant)
		if draft == nil {
			cnt.skipped++
			continue
		}
		draft.Categories = labels

		// The dedicated inventory listing is authoritative over the stock
		// signal embedded in the variant payload. Variants absent from the
		// listing get no inventory write at all.
		var rec *syncdomain.InventoryRecord
		if found, ok := stock[draft.WixProductID+":"+draft.WixVariantID]; ok {
			rec = &found
			draft.TrackQuantity = found.TrackQuantity
			draft.Quantity = found.Quantity
		}

		product, outcome, err := s.resolver.Resolve(ctx, repos.Products(), repos.Inventory(), draft)
		if err != nil {
			return fmt.Errorf("resolve sku %s: %w", draft.SKU, err)
		}
		switch outcome {
		case OutcomeCreated:
			cnt.created++
		case OutcomeUpdated:
			cnt.updated++
		case OutcomeMerged:
			cnt.merged++
		}

		written, err := s.reconciler.Reconcile(ctx, repos.Inventory(), salon, product, rec)
		if err != nil {
			return fmt.Errorf("reconcile sku %s: %w", draft.SKU, err)
		}
		if written {
			cnt.inventoryWritten++
		}
	}
	return nil
}

// finalize writes the audit row and builds the caller-facing summary.
// The audit row lives outside the sync transaction, so dry runs and failed
// runs stay visible.
func (s *SyncService) finalize(
	ctx context.Context,
	run *syncdomain.SyncRun,
	opts Options,
	cnt *counters,
	invFetchErr *string,
	runErr error,
) *SyncSummary {
	summary := &SyncSummary{
		Ok:                  true,
		DryRun:              opts.DryRun,
		Created:             cnt.created,
		Updated:             cnt.updated,
		Merged:              cnt.merged,
		SkippedNoIdentity:   cnt.skipped,
		InventoryWritten:    cnt.inventoryWritten,
		ParentsProcessed:    cnt.parentsProcessed,
		VariantsSeen:        cnt.variantsSeen,
		InventoryFetchError: invFetchErr,
	}

	status := syncdomain.RunStatusSuccess
	errText := ""
	switch {
	case runErr == nil, errors.Is(runErr, errDryRunRollback):
		// Committed, or dry run that completed its pass before rolling back.
	case errors.Is(runErr, syncdomain.ErrRunCancelled):
		status = syncdomain.RunStatusCancelled
		errText = runErr.Error()
		summary.Ok = false
		summary.Error = errText
	default:
		status = syncdomain.RunStatusError
		errText = runErr.Error()
		summary.Ok = false
		summary.Error = errText
	}

	run.Created = cnt.created
	run.Updated = cnt.updated
	run.Merged = cnt.merged
	run.Skipped = cnt.skipped
	run.InventoryWritten = cnt.inventoryWritten
	run.ParentsProcessed = cnt.parentsProcessed
	run.VariantsSeen = cnt.variantsSeen
	if invFetchErr != nil {
		run.InventoryFetchError = *invFetchErr
	}
	run.Finish(status, errText)

	if err := s.runs.Save(ctx, run); err != nil {
		s.logger.Error("failed to finalize run record",
			zap.String("run_id", run.GetID().String()),
			zap.Error(err),
		)
	}

	s.logger.Info("sync run finished",
		zap.String("run_id", run.GetID().String()),
		zap.String("status", status.String()),
		zap.Int("created", cnt.created),
		zap.Int("updated", cnt.updated),
		zap.Int("merged", cnt.merged),
		zap.Int("skipped", cnt.skipped),
		zap.Int("inventory_written", cnt.inventoryWritten),
	)
	return summary
}

// findOrCreateSalon resolves the target salon by code, creating it on the
// first ever run.
func (s *SyncService) findOrCreateSalon(ctx context.Context, salons inventory.SalonRepository) (*inventory.Salon, error) {
	salon, err := salons.FindByCode(ctx, s.salonCode)
	if err == nil {
		return salon, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	salon, err = inventory.NewSalon(s.salonName, s.salonCode)
	if err != nil {
		return nil, err
	}
	if err := salons.Save(ctx, salon); err != nil {
		return nil, err
	}
	return salon, nil
}

// paging derives the page size and page bound from a parent limit. An
// unlimited run drains the listing at the platform's maximum page size.
func paging(limit int) (pageSize, maxPages int) {
	if limit <= 0 {
		return maxSourcePageSize, 0
	}
	pageSize = limit
	if pageSize > maxSourcePageSize {
		pageSize = maxSourcePageSize
	}
	maxPages = (limit + pageSize - 1) / pageSize
	return pageSize, maxPages
}

// categoryLabels maps collection references to display names, dropping
// references the collection listing doesn't know.
func categoryLabels(collectionIDs []string, categories map[string]string) []string {
	if len(collectionIDs) == 0 || len(categories) == 0 {
		return nil
	}
	labels := make([]string, 0, len(collectionIDs))
	for _, id := range collectionIDs {
		if name, ok := categories[id]; ok && name != "" {
			labels = append(labels, name)
		}
	}
	return labels
}
