// internal/domain/product/service_test.go
package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront/internal/pkg/apiclient"
)

const catalogJSON = `[
	{"id": 111, "title": "Backpack", "price": 109.95, "category": "men's clothing",
	 "rating": {"rate": 3.9, "count": 120}},
	{"id": 222, "title": "", "price": 22.3},
	{"id": 333, "title": "Gold Ring", "category": "jewelery"}
]`

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewService(apiclient.New(server.URL))
}

func TestServiceListMapsRecords(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ProductsPath, r.URL.Path)
		w.Write([]byte(catalogJSON))
	})

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, 111, products[0].ID)
	assert.Equal(t, "Backpack", products[0].Title)
	require.NotNil(t, products[0].Rating)
	assert.Equal(t, 3.9, products[0].Rating.Rate)

	assert.Equal(t, DefaultTitle, products[1].Title, "empty title defaults")
	require.NotNil(t, products[1].Price)
	assert.Equal(t, 22.3, *products[1].Price)
	assert.Nil(t, products[1].Rating)

	assert.Nil(t, products[2].Price, "missing price stays absent")
	assert.Equal(t, "jewelery", products[2].Category, "category is not re-cased at mapping time")
}

func TestServiceListEmptyCatalog(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestServiceListAPIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Service Unavailable"))
	})

	_, err := svc.List(context.Background())
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "[API Error] 503: Service Unavailable", err.Error())
}

func TestServiceListParseError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := svc.List(context.Background())
	require.Error(t, err)

	var parseErr *apiclient.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), parseErr.Err.Error())
}
