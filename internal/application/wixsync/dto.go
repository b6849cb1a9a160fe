package wixsync

// SyncSummary is the structured result of one synchronization run. It is
// returned to the caller on success and on failure alike; callers must never
// see a bare error without the surrounding counters.
type SyncSummary struct {
	Ok     bool `json:"ok"`
	DryRun bool `json:"dryRun"`

	Created           int `json:"created"`
	Updated           int `json:"updated"`
	Merged            int `json:"merged"`
	SkippedNoIdentity int `json:"skippedNoIdentity"`
	InventoryWritten  int `json:"inventoryWritten"`
	ParentsProcessed  int `json:"parentsProcessed"`
	VariantsSeen      int `json:"variantsSeen"`

	// InventoryFetchError reports a non-fatal inventory pre-fetch failure;
	// nil when the inventory map was built successfully.
	InventoryFetchError *string `json:"inventoryFetchError"`

	// Error carries the failure text when Ok is false
	Error string `json:"error,omitempty"`
}

// counters aggregates the per-variant outcomes of one pass.
type counters struct {
	created          int
	updated          int
	merged           int
	skipped          int
	inventoryWritten int
	parentsProcessed int
	variantsSeen     int
}
