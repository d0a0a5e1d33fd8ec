// Package store provides an interface for product storage operations.
package store

import (
	"context"

	"github.com/abgdnv/catalog/internal/store/db"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*db.Product, error)

	// FindAll returns all products ordered by ID.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]db.Product, error)

	// Create adds a new product. The store assigns the ID.
	Create(ctx context.Context, params db.CreateParams) (*db.Product, error)

	// Update replaces the mutable fields of the product identified by product.ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, product db.Product) (*db.Product, error)

	// DeleteByID removes a product by its ID and reports whether a row was removed.
	// Deleting an absent ID is not an error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
