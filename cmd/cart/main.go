package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	cartgateway "github.com/qashop/storefront-api/internal/domains/cart/adapters/gateway"
	cartlocal "github.com/qashop/storefront-api/internal/domains/cart/adapters/localstore"
	cartapp "github.com/qashop/storefront-api/internal/domains/cart/application"
	cartdomain "github.com/qashop/storefront-api/internal/domains/cart/domain"
	cartports "github.com/qashop/storefront-api/internal/domains/cart/ports"
	catalogstatic "github.com/qashop/storefront-api/internal/domains/catalog/adapters/static"
	catalogports "github.com/qashop/storefront-api/internal/domains/catalog/ports"
)

const usage = `usage: cart <command> [args]

commands:
  products                 list the catalog
  show                     print the cart contents
  add <product-id>         add one unit of a product
  inc <product-id>         increase quantity by one
  dec <product-id>         decrease quantity by one (asks before removing)
  remove <product-id>      remove a product (asks first)
  checkout [flags]         submit the cart as an order
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	catalog := catalogstatic.NewProvider()
	service := newCartService(logger)

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "products":
		runProducts(ctx, catalog)
	case "show":
		runShow(ctx, service)
	case "add":
		runAdd(ctx, service, catalog, args)
	case "inc":
		runAdjust(ctx, service.Increment, args)
	case "dec":
		runAdjust(ctx, service.Decrement, args)
	case "remove":
		runAdjust(ctx, service.Remove, args)
	case "checkout":
		runCheckout(ctx, service, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func newCartService(logger *slog.Logger) *cartapp.Service {
	store := cartlocal.New(cartDir(), logger)
	client, err := cartgateway.NewClient(
		envOrDefault("STOREFRONT_API_URL", "http://localhost:8080"),
		&http.Client{Timeout: 10 * time.Second},
		cartgateway.WithIdempotencyKey(uuid.NewString),
	)
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	return cartapp.NewService(store, cartports.ConfirmerFunc(confirmRemoval), client)
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func cartDir() string {
	if dir := strings.TrimSpace(os.Getenv("CART_DIR")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".qashop-cart"
	}
	return filepath.Join(home, ".qashop-cart")
}

// confirmRemoval mirrors the storefront prompt shown before an item is
// dropped from the cart.
func confirmRemoval(item cartdomain.Item) bool {
	fmt.Printf("Remove %q from your cart? [y/N] ", item.Name)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func runProducts(ctx context.Context, catalog catalogports.Provider) {
	products, err := catalog.Products(ctx)
	if err != nil {
		log.Fatalf("cart: list products: %v", err)
	}
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%-9s %-28s $%8.2f  %s\n", p.ID, p.Name, p.Price, stock)
	}
}

func runShow(ctx context.Context, service *cartapp.Service) {
	cart, err := service.Cart(ctx)
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	if cart.IsEmpty() {
		fmt.Println("Your cart is empty.")
		return
	}
	for _, item := range cart.Items {
		fmt.Printf("%-9s %-28s x%-3d $%8.2f\n", item.ProductID, item.Name, item.Quantity, item.Price)
	}
	fmt.Printf("%d item(s), subtotal $%.2f\n", cart.TotalQuantity(), cart.Subtotal())
}

func runAdd(ctx context.Context, service *cartapp.Service, catalog catalogports.Provider, args []string) {
	if len(args) != 1 {
		log.Fatal("cart: add requires a product id")
	}
	product, err := catalog.FindByID(ctx, args[0])
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	if !product.InStock {
		log.Fatalf("cart: %s is out of stock", product.Name)
	}
	cart, err := service.AddProduct(ctx, cartdomain.Item{
		ProductID:   product.ID,
		Name:        product.Name,
		SKU:         product.SKU,
		Price:       product.Price,
		Description: product.Description,
		Quantity:    1,
	})
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	fmt.Printf("Added %s. Cart now holds %d item(s).\n", product.Name, cart.TotalQuantity())
}

func runAdjust(ctx context.Context, op func(context.Context, string) (*cartdomain.Cart, error), args []string) {
	if len(args) != 1 {
		log.Fatal("cart: command requires a product id")
	}
	cart, err := op(ctx, args[0])
	if err != nil {
		log.Fatalf("cart: %v", err)
	}
	fmt.Printf("Cart now holds %d item(s).\n", cart.TotalQuantity())
}

func runCheckout(ctx context.Context, service *cartapp.Service, args []string) {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	name := fs.String("name", "", "customer name")
	email := fs.String("email", "", "customer email")
	street := fs.String("street", "", "street address")
	city := fs.String("city", "", "city")
	zip := fs.String("zip", "", "zip code")
	shippingMethod := fs.String("shipping-method", "Standard", "shipping method")
	shipping := fs.Float64("shipping", 0, "shipping cost")
	paymentMethod := fs.String("payment-method", "Credit Card", "payment method")
	_ = fs.Parse(args)

	receipt, err := service.Checkout(ctx, cartapp.CheckoutDetails{
		CustomerName:   *name,
		Email:          *email,
		StreetAddress:  *street,
		City:           *city,
		ZipCode:        *zip,
		ShippingMethod: *shippingMethod,
		Shipping:       *shipping,
		PaymentMethod:  *paymentMethod,
	})
	if err != nil {
		log.Fatalf("cart: checkout: %v", err)
	}
	fmt.Printf("Order placed. Your order number is %s.\n", receipt.OrderNumber)
}
