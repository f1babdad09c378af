// cmd/storefront/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/pkg/apiclient"
	"github.com/your-org/storefront/internal/pkg/format"
	"github.com/your-org/storefront/internal/pkg/logger"
)

// Quantity bounds accepted by -qty.
const (
	minQuantity = 1
	maxQuantity = 999
)

func main() {
	listFlag := flag.Bool("list", false, "fetch and render the product catalog")
	addFlag := flag.Int("add", 0, "add the product with this id to the cart")
	qtyFlag := flag.Int("qty", 1, "quantity for -add")
	removeFlag := flag.Int("remove", 0, "remove the product with this id from the cart")
	incFlag := flag.Int("inc", 0, "increment the quantity of this product id")
	decFlag := flag.Int("dec", 0, "decrement the quantity of this product id")
	clearFlag := flag.Bool("clear", false, "empty the cart")
	checkoutFlag := flag.Bool("checkout", false, "start checkout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	ctx := context.Background()

	stg, cleanup, err := openStorage(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open storage")
	}
	defer cleanup()

	store := cart.NewStore(ctx, stg, cfg.Cart.StorageKey, log)
	defer store.Close()

	api := apiclient.New(cfg.API.BaseURL, apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	query := product.NewQuery(product.NewService(api))

	switch {
	case *listFlag:
		renderCatalog(ctx, query, cfg.Cart.Currency)
	case *addFlag > 0:
		addToCart(ctx, query, store, *addFlag, clampQuantity(*qtyFlag))
	case *removeFlag > 0:
		store.RemoveFromCart(ctx, *removeFlag)
	case *incFlag > 0:
		store.IncrementQuantity(ctx, *incFlag)
	case *decFlag > 0:
		store.DecrementQuantity(ctx, *decFlag)
	case *clearFlag:
		store.Clear(ctx)
		fmt.Println("Cart cleared.")
	case *checkoutFlag:
		fmt.Println("Checkout is not available yet.")
	}

	renderCart(store, cfg.Cart.Currency)
}

func openStorage(cfg *config.Config, log *logrus.Logger) (storage.Storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), func() {}, nil
	case config.DriverFile:
		return storage.NewFile(cfg.Storage.FilePath), func() {}, nil
	case config.DriverRedis:
		rs, err := storage.DialRedis(storage.RedisOptions{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			Channel:      cfg.Redis.Channel,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() {
			if err := rs.Close(); err != nil {
				log.WithError(err).Warn("failed to close Redis storage")
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func renderCatalog(ctx context.Context, query *product.Query, currency string) {
	res := query.Result(ctx)
	if res.Err != nil {
		fmt.Printf("Could not load products: %v\n", res.Err)
		return
	}
	if len(res.Data) == 0 {
		fmt.Println("No products available.")
		return
	}

	for _, p := range res.Data {
		line := fmt.Sprintf("[%d] %s  %s", p.ID, p.Title, format.Price(p.Price, currency))
		if p.Category != "" {
			line += "  " + format.CapitalizeWord(p.Category)
		}
		if p.Rating != nil {
			line += fmt.Sprintf("  (%.1f/5, %d reviews)", p.Rating.Rate, p.Rating.Count)
		}
		fmt.Println(line)
	}
}

func addToCart(ctx context.Context, query *product.Query, store *cart.Store, productID, quantity int) {
	res := query.Result(ctx)
	if res.Err != nil {
		fmt.Printf("Could not load products: %v\n", res.Err)
		return
	}

	for _, p := range res.Data {
		if p.ID == productID {
			store.AddToCart(ctx, p, quantity)
			return
		}
	}
	fmt.Printf("Product %d not found in the catalog.\n", productID)
}

func renderCart(store *cart.Store, currency string) {
	items := store.Cart()
	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	fmt.Println("Cart:")
	for _, item := range items {
		fmt.Printf("  %dx [%d] %s  %s\n",
			item.Quantity, item.Product.ID, item.Product.Title,
			format.Price(item.Product.Price, currency))
	}

	total := store.TotalPrice()
	fmt.Printf("Items: %d  Total: %s\n", store.TotalItemsCount(), format.Price(&total, currency))
}

func clampQuantity(qty int) int {
	if qty < minQuantity {
		return minQuantity
	}
	if qty > maxQuantity {
		return maxQuantity
	}
	return qty
}
