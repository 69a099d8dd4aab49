package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/nicgen/buy-02/clients"
	"github.com/nicgen/buy-02/models"
)

// ProductService builds requests against the product endpoints. Stateless:
// every method is a direct passthrough to the API.
type ProductService struct {
	api *clients.APIClient
}

func NewProductService(api *clients.APIClient) *ProductService {
	return &ProductService{api: api}
}

// List returns the full catalog.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.api.JSON(ctx, http.MethodGet, "/api/products", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SellerProducts returns the products owned by the authenticated seller.
func (s *ProductService) SellerProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.api.JSON(ctx, http.MethodGet, "/api/products/seller", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Search matches products by name. An empty query lists everything rather
// than matching nothing.
func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return s.List(ctx)
	}

	params := url.Values{}
	params.Set("query", query)

	var products []models.Product
	if err := s.api.JSON(ctx, http.MethodGet, "/api/products/search", params, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Filter narrows the catalog by optional price bounds and query. Unset
// bounds and an empty query stay out of the request entirely.
func (s *ProductService) Filter(ctx context.Context, minPrice, maxPrice *float64, query string) ([]models.Product, error) {
	params := url.Values{}
	if minPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*minPrice, 'f', -1, 64))
	}
	if maxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*maxPrice, 'f', -1, 64))
	}
	if strings.TrimSpace(query) != "" {
		params.Set("query", query)
	}

	var products []models.Product
	if err := s.api.JSON(ctx, http.MethodGet, "/api/products/filter", params, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Create adds a product to the seller's catalog.
func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	var created models.Product
	if err := s.api.JSON(ctx, http.MethodPost, "/api/products", nil, product, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// Update replaces a product.
func (s *ProductService) Update(ctx context.Context, id string, product models.Product) (models.Product, error) {
	var updated models.Product
	if err := s.api.JSON(ctx, http.MethodPut, "/api/products/"+id, nil, product, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.api.JSON(ctx, http.MethodDelete, "/api/products/"+id, nil, nil, nil)
}
