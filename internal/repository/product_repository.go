package repository

import (
	"context"
	"errors"

	"github.com/bloomshine/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. The shop sells a single product, so there is no database behind
// the catalog.
type InMemoryProductRepository struct {
	products map[string]models.Product
}

// NewInMemoryProductRepository creates the catalog with the storefront's
// seed data.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := map[string]models.Product{
		"1": {ID: "1", Name: "Bloom&Shine Hair Oil", Size: "50ml", Price: 500.00, Category: "Hair Care"},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
