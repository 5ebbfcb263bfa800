package service

import (
	"context"

	"catalog-api/internal/model"
)

// AuthService defines operations for registration and login.
type AuthService interface {
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, password string) error

	// Login authenticates the credentials and returns a bearer token bound
	// to the username.
	Login(ctx context.Context, username, password string) (string, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// List retrieves up to limit products in insertion order, skipping skip rows.
	List(ctx context.Context, limit, skip int) ([]model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id int) (*model.Product, error)

	// Create inserts a new product and returns it with its assigned ID.
	Create(ctx context.Context, title, description string, price float64) (*model.Product, error)

	// Update overwrites title and price of an existing product; description
	// is overwritten only when non-nil.
	Update(ctx context.Context, id int, title string, description *string, price float64) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int) error
}
