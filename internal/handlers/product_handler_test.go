package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bloomshine/storefront/internal/models"
	"github.com/bloomshine/storefront/internal/repository"
	"github.com/bloomshine/storefront/internal/service"
	"github.com/bloomshine/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newProductRouter() *chi.Mux {
	repo := repository.NewInMemoryProductRepository()
	svc := service.NewProductService(repo)
	handler := NewProductHandler(svc, logger.New("error"))

	r := chi.NewRouter()
	r.Get("/products", handler.ListProducts)
	r.Get("/products/{productId}", handler.GetProduct)
	return r
}

func TestListProducts(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	if products[0].Name != "Bloom&Shine Hair Oil" {
		t.Errorf("expected product name 'Bloom&Shine Hair Oil', got %s", products[0].Name)
	}

	if products[0].Price != 500.00 {
		t.Errorf("expected product price 500.00, got %f", products[0].Price)
	}
}

func TestGetProduct_Success(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.ID != "1" {
		t.Errorf("expected product ID 1, got %s", product.ID)
	}

	if product.Size != "50ml" {
		t.Errorf("expected size 50ml, got %s", product.Size)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	r := newProductRouter()

	req := httptest.NewRequest(http.MethodGet, "/products/hair-oil", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
