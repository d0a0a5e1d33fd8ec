// Package errors provides custom error types for product-related operations.
package errors

import "errors"

// ErrProductNotFound reports that no product exists with the requested id.
var ErrProductNotFound = errors.New("product not found")
