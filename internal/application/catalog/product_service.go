package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/luxurahair/luxura-inventory-api/internal/domain/catalog"
	"github.com/luxurahair/luxura-inventory-api/internal/domain/shared"
)

// manualWixProductID is the placeholder parent identity for products created
// over the API rather than by the sync engine. A later sync run that sees the
// same SKU reassigns the real identity onto the row.
const manualWixProductID = "manual"

// ProductService handles product read and curation operations. The sync
// engine owns the bulk of catalog writes; the API additionally supports
// manual creation, field updates, deactivation and deletion.
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// Create registers a product manually. The SKU must not already be taken.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	_, err := s.productRepo.FindBySKU(ctx, req.SKU)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	wixProductID := req.WixProductID
	wixVariantID := req.WixVariantID
	if wixProductID == "" {
		wixProductID = manualWixProductID
		wixVariantID = uuid.NewString()
	}

	product, err := catalog.NewProduct(wixProductID, wixVariantID, req.SKU, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" || !req.Price.IsZero() {
		if err := product.Update(req.Name, req.Description, req.Price); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by its business SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves a page of products with filtering
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := catalog.ProductFilter{
		OnlyActive:    filter.OnlyActive,
		SearchKeyword: filter.Search,
		Page:          filter.Page,
		PageSize:      filter.PageSize,
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductListResponses(products), total, nil
}

// Update applies the mutable catalog fields. Nil request fields keep their
// current value.
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	price := product.Price
	if req.Price != nil {
		price = *req.Price
	}

	if err := product.Update(name, description, price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. Deletion is permanent; Deactivate is the softer
// option for rows that may come back.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

// Deactivate marks a product inactive without deleting it. The next sync run
// reactivates the product if the platform still lists it.
func (s *ProductService) Deactivate(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Deactivate()

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}
