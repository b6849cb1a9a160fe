package catalog

import "errors"

var (
	ErrInvalidWixProductID = errors.New("catalog: wix product ID is required")
	ErrInvalidSKU          = errors.New("catalog: SKU is required")
	ErrInvalidProductName  = errors.New("catalog: product name is required")
	ErrInvalidPrice        = errors.New("catalog: price cannot be negative")
	ErrDuplicateSKU        = errors.New("catalog: SKU already exists")
)
