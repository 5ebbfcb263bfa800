package repository

import (
	"context"

	"catalog-api/internal/model"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// Create inserts a new user row. Returns model.ErrUsernameTaken when the
	// username is already present.
	Create(ctx context.Context, user model.User) (*model.User, error)

	// GetByCredentials retrieves the user matching both username and password
	// exactly. Returns nil (and no error) when no row matches.
	GetByCredentials(ctx context.Context, username, password string) (*model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves up to limit products in insertion order, skipping the
	// first skip rows.
	List(ctx context.Context, limit, skip int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil (and no
	// error) when the row is absent.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create inserts a new product row and returns it with its assigned ID.
	Create(ctx context.Context, product model.Product) (*model.Product, error)

	// Update overwrites the row identified by product.ID. Returns nil (and
	// no error) when the row is absent.
	Update(ctx context.Context, product model.Product) (*model.Product, error)

	// Delete removes the row with the given ID. Returns false when no row
	// was removed.
	Delete(ctx context.Context, id int) (bool, error)
}
