package wix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	syncdomain "github.com/luxurahair/luxura-inventory-api/internal/domain/sync"
)

// maxResponseSize is the maximum allowed response size from the Wix API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// maxPageSize is the page-size cap enforced by the Wix query endpoints
const maxPageSize = 100

const (
	productsQueryPath    = "/stores-reader/v1/products/query"
	collectionsQueryPath = "/stores-reader/v1/collections/query"
	inventoryQueryPath   = "/stores-reader/v2/inventoryItems/query"
)

// Client implements the sync.CatalogSource port against the Wix Stores API.
// The products and collections listings page with a cursor; the inventory
// listing pages with a limit/offset window; variants are fetched per parent.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a new Wix client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// ---------------------------------------------------------------------------
// CatalogSource
// ---------------------------------------------------------------------------

// FetchParents drains the products listing. The stores-reader variant of the
// endpoint is used because it carries collectionIds, which the plain stores
// endpoint omits.
func (c *Client) FetchParents(ctx context.Context, pageSize, maxPages int) ([]syncdomain.CatalogParent, error) {
	limit := clampPageSize(pageSize)

	var (
		parents []syncdomain.CatalogParent
		cursor  string
		pages   int
	)
	for {
		respBody, err := c.doRequest(ctx, productsQueryPath, newCursorQuery(limit, cursor))
		if err != nil {
			return nil, err
		}

		var resp productsQueryResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("%w: failed to parse products response: %v", syncdomain.ErrSourceInvalidResponse, err)
		}

		for _, p := range resp.listing() {
			parents = append(parents, p.toCatalogParent())
		}

		cursor = resp.nextCursor()
		pages++
		if cursor == "" {
			break
		}
		if maxPages > 0 && pages >= maxPages {
			break
		}
	}

	return parents, nil
}

// FetchVariants lists the variants of one parent. A blank parent ID yields
// an empty listing rather than a request the platform would reject.
func (c *Client) FetchVariants(ctx context.Context, parentID string) ([]syncdomain.CatalogVariant, error) {
	pid := strings.TrimSpace(parentID)
	if pid == "" {
		return nil, nil
	}

	path := fmt.Sprintf("/stores/v1/products/%s/variants/query", url.PathEscape(pid))
	respBody, err := c.doRequest(ctx, path, newCursorQuery(maxPageSize, ""))
	if err != nil {
		return nil, err
	}

	var resp variantsQueryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse variants response: %v", syncdomain.ErrSourceInvalidResponse, err)
	}

	raw := resp.listing()
	variants := make([]syncdomain.CatalogVariant, 0, len(raw))
	for _, entry := range raw {
		variant, err := decodeVariant(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse variant of %s: %v", syncdomain.ErrSourceInvalidResponse, pid, err)
		}
		variants = append(variants, variant)
	}

	return variants, nil
}

// FetchInventory drains the inventory listing. Each platform entry covers
// one product and expands into one record per variant.
func (c *Client) FetchInventory(ctx context.Context, pageSize, maxPages int) ([]syncdomain.InventoryRecord, error) {
	limit := clampPageSize(pageSize)

	var (
		records []syncdomain.InventoryRecord
		offset  int
		pages   int
	)
	for {
		respBody, err := c.doRequest(ctx, inventoryQueryPath, newOffsetQuery(limit, offset))
		if err != nil {
			return nil, err
		}

		var resp inventoryQueryResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("%w: failed to parse inventory response: %v", syncdomain.ErrSourceInvalidResponse, err)
		}

		for _, item := range resp.InventoryItems {
			records = append(records, item.toRecords()...)
		}

		fetched := len(resp.InventoryItems)
		offset += fetched
		pages++
		if fetched < limit {
			break
		}
		if resp.TotalResults > 0 && offset >= resp.TotalResults {
			break
		}
		if maxPages > 0 && pages >= maxPages {
			break
		}
	}

	return records, nil
}

// FetchCategories drains the collections listing into an id-to-name map.
func (c *Client) FetchCategories(ctx context.Context) (map[string]string, error) {
	categories := make(map[string]string)

	var (
		cursor string
		pages  int
	)
	for {
		respBody, err := c.doRequest(ctx, collectionsQueryPath, newCursorQuery(maxPageSize, cursor))
		if err != nil {
			return nil, err
		}

		var resp collectionsQueryResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("%w: failed to parse collections response: %v", syncdomain.ErrSourceInvalidResponse, err)
		}

		for _, col := range resp.listing() {
			if col.ID == "" {
				continue
			}
			categories[col.ID] = col.Name
		}

		cursor = resp.nextCursor()
		pages++
		if cursor == "" {
			break
		}
		// Collections are a bounded vocabulary; a generous fixed page bound
		// guards against a cursor loop on a misbehaving response.
		if pages >= 50 {
			break
		}
	}

	return categories, nil
}

// ---------------------------------------------------------------------------
// Internal Helpers
// ---------------------------------------------------------------------------

// doRequest performs an HTTP POST to the Wix API and returns the raw body
func (c *Client) doRequest(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("wix: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wix: failed to create request: %w", err)
	}

	// API-key auth: the key goes in verbatim, without a Bearer prefix
	req.Header.Set("Authorization", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("wix-site-id", c.config.SiteID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", syncdomain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("wix: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: HTTP %d", syncdomain.ErrSourceRequestFailed, path, resp.StatusCode)
	}

	return respBody, nil
}

// decodeVariant decodes one variant payload twice: typed for the fields the
// pipeline always needs, and as a map for the normalizer's SKU probing.
func decodeVariant(raw json.RawMessage) (syncdomain.CatalogVariant, error) {
	var typed wixVariant
	if err := json.Unmarshal(raw, &typed); err != nil {
		return syncdomain.CatalogVariant{}, err
	}

	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return syncdomain.CatalogVariant{}, err
	}

	variant := syncdomain.CatalogVariant{
		ID:      typed.ID,
		Choices: typed.Choices,
		Raw:     asMap,
	}
	if typed.Variant != nil && typed.Variant.PriceData != nil && typed.Variant.PriceData.Price != nil {
		variant.Price = typed.Variant.PriceData.Price.String()
	}
	if typed.Stock != nil {
		variant.TrackQuantity = typed.Stock.TrackQuantity
		variant.Quantity = typed.Stock.Quantity
	}

	return variant, nil
}

func clampPageSize(pageSize int) int {
	if pageSize < 1 || pageSize > maxPageSize {
		return maxPageSize
	}
	return pageSize
}

// Ensure Client implements the CatalogSource port
var _ syncdomain.CatalogSource = (*Client)(nil)
