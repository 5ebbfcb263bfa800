package repository

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// List retrieves up to limit products in insertion order, skipping the first
// skip rows. The serial primary key preserves insertion order.
func (r *productRepository) List(ctx context.Context, limit, skip int) ([]model.Product, error) {
	query := `
		SELECT id, title, description, price
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("skip", skip).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT id, title, description, price
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &p.Price)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product row and returns it with its assigned ID.
func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (title, description, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, product.Title, product.Description, product.Price).
		Scan(&product.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("title", product.Title).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &product, nil
}

// Update overwrites the row identified by product.ID.
func (r *productRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	query := `
		UPDATE products
		SET title = $1, description = $2, price = $3
		WHERE id = $4
		RETURNING id, title, description, price
	`

	var p model.Product
	err := r.pool.QueryRow(ctx, query, product.Title, product.Description, product.Price, product.ID).
		Scan(&p.ID, &p.Title, &p.Description, &p.Price)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("product_id", product.ID).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("product_id", product.ID).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &p, nil
}

// Delete removes the row with the given ID.
func (r *productRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
