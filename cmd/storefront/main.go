package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/app"
	"github.com/youriscent/storefront/internal/catalog"
	"github.com/youriscent/storefront/internal/checkout"
	"github.com/youriscent/storefront/internal/config"
	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/notify"
	"github.com/youriscent/storefront/internal/store"
	"github.com/youriscent/storefront/internal/ui"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// Open the persistent store
	st, err := store.NewSQLiteStore(cfg.Store.Path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	console := &consoleUI{}
	cat := catalog.Default()

	fmt.Println("=== Catalog ===")
	for _, p := range cat.Products() {
		fmt.Printf("  #%d %s (%s)\n", p.ID, p.Name, p.Category)
	}
	fmt.Println()

	session := app.NewSession(ctx, cfg, st, cat, app.Collaborators{
		Renderer:  console,
		Notifier:  notify.NewCenter(console, cfg.Checkout.NotificationDelay),
		Navigator: console,
		Launcher:  console,
	}, logger)

	if err := runDemo(ctx, session); err != nil {
		fmt.Fprintf(os.Stderr, "Demo flow failed: %v\n", err)
		os.Exit(1)
	}
}

// runDemo drives a full add-to-cart and checkout flow through the
// intent dispatcher and prints the resulting receipt.
func runDemo(ctx context.Context, session *app.Session) error {
	intents := []app.Intent{
		{Kind: app.IntentAddItem, ProductID: 1, Size: "5ml"},
		{Kind: app.IntentAddItem, ProductID: 1, Size: "5ml"},
		{Kind: app.IntentAddItem, ProductID: 3, Size: "10ml"},
		{Kind: app.IntentChangeQuantity, ProductID: 3, Size: "10ml", Delta: -1},
		{Kind: app.IntentBeginCheckout},
		{Kind: app.IntentSubmitContact, Contact: domain.CustomerContact{
			FullName:   "Budi Santoso",
			Email:      "budi@example.com",
			Phone:      "081234567890",
			Address:    "Jl. Melati No. 5",
			City:       "Bandung",
			Province:   "Jawa Barat",
			PostalCode: "40111",
		}},
		{Kind: app.IntentSelectMethod, Method: domain.PaymentBank},
		{Kind: app.IntentConfirmPayment, Channel: domain.ChannelBCA},
	}

	for _, intent := range intents {
		if err := session.Dispatch(ctx, intent); err != nil {
			return fmt.Errorf("%s: %w", intent.Kind, err)
		}
	}

	snap := session.Checkout().Snapshot()
	fmt.Println()
	fmt.Println("=== Receipt ===")
	fmt.Printf("Order ID: %s\n", snap.OrderID)
	fmt.Printf("Payment:  %s\n", snap.Payment)
	fmt.Printf("Total:    %s\n", domain.FormatRupiah(snap.Total))
	fmt.Println()
	fmt.Println(checkout.ComposeMessage("your.i scent", *snap))
	fmt.Println()

	return session.Dispatch(ctx, app.Intent{Kind: app.IntentHandOff})
}

// consoleUI renders the presentation callbacks to stdout.
type consoleUI struct{}

func (c *consoleUI) RenderCart(items []domain.LineItem, totals domain.CartTotals) {
	fmt.Printf("Cart (%d lines):\n", len(items))
	for _, item := range items {
		fmt.Printf("  %s (%s) x%d  %s\n", item.ProductName, item.Size, item.Quantity, domain.FormatRupiah(item.Total()))
	}
	fmt.Printf("  Subtotal %s + Ongkir %s = %s\n",
		domain.FormatRupiah(totals.Subtotal),
		domain.FormatRupiah(totals.ShippingFee),
		domain.FormatRupiah(totals.Total))
}

func (c *consoleUI) FocusField(field string) {
	fmt.Printf("[focus] %s\n", field)
}

func (c *consoleUI) Show(message string, severity ui.Severity) {
	fmt.Printf("[%s] %s\n", severity, message)
}

func (c *consoleUI) Hide() {}

func (c *consoleUI) Navigate(destination string) {
	fmt.Printf("[navigate] %s\n", destination)
}

func (c *consoleUI) OpenLink(url string) {
	fmt.Printf("[open] %s\n", url)
}
