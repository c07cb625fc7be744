// Package app wires the storefront core together. A Session owns the
// cart ledger, the identity gate and the current checkout attempt, and
// routes discrete user intents to them through a dispatch table. There
// is no ambient global state; everything hangs off the Session.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/cart"
	"github.com/youriscent/storefront/internal/catalog"
	"github.com/youriscent/storefront/internal/checkout"
	"github.com/youriscent/storefront/internal/config"
	"github.com/youriscent/storefront/internal/identity"
	"github.com/youriscent/storefront/internal/store"
	"github.com/youriscent/storefront/internal/ui"
)

// Collaborators groups the presentation-layer implementations the core
// calls out to.
type Collaborators struct {
	Renderer  ui.Renderer
	Notifier  ui.Notifier
	Navigator ui.Navigator
	Launcher  ui.Launcher
}

// Session is the per-device storefront session.
type Session struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	ledger   *cart.Ledger
	gate     *identity.Gate
	attempt  *checkout.Checkout
	collab   Collaborators
	logger   *zap.Logger
	handlers map[IntentKind]func(ctx context.Context, intent Intent) error
}

// NewSession restores persisted state and builds the dispatch table.
func NewSession(ctx context.Context, cfg *config.Config, st store.Store, cat *catalog.Catalog, collab Collaborators, logger *zap.Logger) *Session {
	ledger := cart.NewLedger(st, collab.Renderer, collab.Notifier, cfg.Checkout.ShippingFee, logger)
	ledger.Load(ctx)

	s := &Session{
		cfg:     cfg,
		catalog: cat,
		ledger:  ledger,
		gate:    identity.NewGate(ctx, st, collab.Navigator, logger),
		collab:  collab,
		logger:  logger,
	}

	s.handlers = map[IntentKind]func(ctx context.Context, intent Intent) error{
		IntentAddItem:        s.addItem,
		IntentChangeQuantity: s.changeQuantity,
		IntentRemoveItem:     s.removeItem,
		IntentBeginCheckout:  s.beginCheckout,
		IntentSubmitContact:  s.submitContact,
		IntentSelectMethod:   s.selectMethod,
		IntentConfirmPayment: s.confirmPayment,
		IntentHandOff:        s.handOff,
		IntentCancelCheckout: s.cancelCheckout,
		IntentRegister:       s.register,
		IntentLogin:          s.login,
		IntentLogout:         s.logout,
	}

	return s
}

// Ledger exposes the cart ledger.
func (s *Session) Ledger() *cart.Ledger {
	return s.ledger
}

// Gate exposes the identity gate.
func (s *Session) Gate() *identity.Gate {
	return s.gate
}

// Checkout returns the active checkout attempt, or nil.
func (s *Session) Checkout() *checkout.Checkout {
	return s.attempt
}
