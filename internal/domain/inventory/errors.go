package inventory

import "errors"

var (
	ErrInvalidSalonName    = errors.New("inventory: salon name is required")
	ErrInvalidSalonID      = errors.New("inventory: salon ID cannot be empty")
	ErrInvalidProductID    = errors.New("inventory: product ID cannot be empty")
	ErrInvalidMovementType = errors.New("inventory: invalid movement type")
	ErrInvalidMovementQty  = errors.New("inventory: movement quantity must be positive")
)
