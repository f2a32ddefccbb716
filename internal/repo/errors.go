package repo

import "errors"

var (
	// ErrSupplierNotFound is returned when a supplier is not found in the repository.
	ErrSupplierNotFound = errors.New("supplier not found")
	// ErrItemNotFound is returned when an item is not found in the repository.
	ErrItemNotFound = errors.New("item not found")
	// ErrShipmentNotFound is returned when a shipment is not found in the repository.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidStockChange is returned when an adjustment would drive stock negative.
	ErrInvalidStockChange = errors.New("stock cannot become negative")
	// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
	ErrDuplicatedValueUnique = errors.New("duplicated value on unique column")
)
