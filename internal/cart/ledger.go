// Package cart implements the cart ledger: the ordered list of
// selected-but-unpurchased line items, mirrored to the persistent
// store on every mutation.
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/catalog"
	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/store"
	"github.com/youriscent/storefront/internal/ui"
	"github.com/youriscent/storefront/pkg/errors"
)

// Ledger owns the in-memory cart and keeps the persistent store and the
// cart view in sync after every mutation.
//
// Not safe for concurrent use: the storefront is a single-actor system
// and the intent dispatcher serializes all mutations.
type Ledger struct {
	items       []domain.LineItem
	shippingFee int64
	store       store.Store
	renderer    ui.Renderer
	notifier    ui.Notifier
	logger      *zap.Logger
}

// NewLedger creates a cart ledger. Call Load to restore persisted state.
func NewLedger(st store.Store, renderer ui.Renderer, notifier ui.Notifier, shippingFee int64, logger *zap.Logger) *Ledger {
	return &Ledger{
		shippingFee: shippingFee,
		store:       st,
		renderer:    renderer,
		notifier:    notifier,
		logger:      logger,
	}
}

// Load restores the cart from the persistent store. An absent or
// malformed payload yields an empty cart; decode failures are logged
// and swallowed.
func (l *Ledger) Load(ctx context.Context) {
	l.items = nil

	raw, err := l.store.Get(ctx, store.KeyCart)
	if err != nil {
		if _, ok := err.(*errors.ErrNotFound); !ok {
			l.logger.Error("Failed to load cart", zap.Error(err))
		}
		l.render()
		return
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		readErr := &errors.ErrStorageRead{Key: store.KeyCart, Err: err}
		l.logger.Warn("Discarding malformed cart payload", zap.Error(readErr))
		l.render()
		return
	}

	l.items = items
	l.render()
}

// AddItem merges a selection into the cart: an existing (product, size)
// line gains quantity 1, otherwise a new line is appended with the
// price locked in.
func (l *Ledger) AddItem(ctx context.Context, product catalog.Product, size string, unitPrice int64) {
	key := domain.ItemKey{ProductID: product.ID, Size: size}

	if item := l.find(key); item != nil {
		item.Quantity++
	} else {
		l.items = append(l.items, domain.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Size:        size,
			UnitPrice:   unitPrice,
			ImageRef:    product.ImageRef,
			Quantity:    1,
		})
	}

	l.persist(ctx)
	l.render()
	l.notifier.Show(fmt.Sprintf("%s (%s) ditambahkan ke keranjang!", product.Name, size), ui.SeveritySuccess)
}

// ChangeQuantity adds delta to the matching line's quantity. Absent
// keys are a silent no-op; a result of zero or less removes the line.
func (l *Ledger) ChangeQuantity(ctx context.Context, productID int, size string, delta int) {
	key := domain.ItemKey{ProductID: productID, Size: size}

	item := l.find(key)
	if item == nil {
		return
	}

	item.Quantity += delta
	if item.Quantity <= 0 {
		l.RemoveItem(ctx, productID, size)
		return
	}

	l.persist(ctx)
	l.render()
}

// RemoveItem drops the matching line from the cart.
func (l *Ledger) RemoveItem(ctx context.Context, productID int, size string) {
	key := domain.ItemKey{ProductID: productID, Size: size}

	kept := l.items[:0]
	for _, item := range l.items {
		if item.Key() != key {
			kept = append(kept, item)
		}
	}
	l.items = kept

	l.persist(ctx)
	l.render()
	l.notifier.Show("Produk dihapus dari keranjang", ui.SeverityInfo)
}

// Clear empties the cart and persists the empty state. Used only at
// checkout completion.
func (l *Ledger) Clear(ctx context.Context) {
	l.items = nil
	l.persist(ctx)
	l.render()
}

// Items returns a copy of the cart in display order.
func (l *Ledger) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// ItemCount returns the sum of all quantities.
func (l *Ledger) ItemCount() int {
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no line items.
func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

// Totals recomputes the derived amounts from the current lines. The
// shipping fee is charged once per order.
func (l *Ledger) Totals() domain.CartTotals {
	var subtotal int64
	for _, item := range l.items {
		subtotal += item.Total()
	}
	return domain.CartTotals{
		Subtotal:    subtotal,
		ShippingFee: l.shippingFee,
		Total:       subtotal + l.shippingFee,
	}
}

func (l *Ledger) find(key domain.ItemKey) *domain.LineItem {
	for i := range l.items {
		if l.items[i].Key() == key {
			return &l.items[i]
		}
	}
	return nil
}

func (l *Ledger) persist(ctx context.Context) {
	items := l.items
	if items == nil {
		items = []domain.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		l.logger.Error("Failed to encode cart", zap.Error(err))
		return
	}
	if err := l.store.Set(ctx, store.KeyCart, raw); err != nil {
		l.logger.Error("Failed to persist cart", zap.Error(err))
	}
}

func (l *Ledger) render() {
	l.renderer.RenderCart(l.Items(), l.Totals())
}
