// internal/domain/product/service.go
package product

import (
	"context"

	"github.com/your-org/storefront/internal/pkg/apiclient"
)

// ProductsPath is the catalog endpoint on the store API.
const ProductsPath = "/products"

// Service fetches and maps the product catalog.
type Service struct {
	api *apiclient.Client
}

// NewService creates a product service backed by the given API client.
func NewService(api *apiclient.Client) *Service {
	return &Service{api: api}
}

// List fetches the whole catalog and maps every record. Errors from the API
// client propagate unchanged, already classified; structural validation
// beyond JSON decoding is the caller's concern.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	var records []Record
	if err := s.api.GetJSON(ctx, ProductsPath, &records); err != nil {
		return nil, err
	}

	products := make([]Product, len(records))
	for i, rec := range records {
		products[i] = FromRecord(rec)
	}

	return products, nil
}
