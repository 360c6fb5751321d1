package repo

import "errors"

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateID is returned when adding a product whose ID is already in use.
var ErrDuplicateID = errors.New("a product with this ID already exists")

// ErrInventoryFull is returned when adding a product to a repository at capacity.
var ErrInventoryFull = errors.New("inventory is full")
