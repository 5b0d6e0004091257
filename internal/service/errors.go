package service

import "errors"

// ErrProductNotFound is returned when a product ID is absent from the catalog.
var ErrProductNotFound = errors.New("product not found")
