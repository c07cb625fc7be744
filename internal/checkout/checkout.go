// Package checkout implements the checkout state machine: contact
// capture, payment selection, order confirmation and the WhatsApp
// hand-off.
package checkout

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/cart"
	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/ui"
	"github.com/youriscent/storefront/pkg/errors"
)

// Config carries the storefront settings the checkout flow needs.
type Config struct {
	ShopName       string
	WhatsAppNumber string
	RequireLogin   bool
}

// Session is the slice of the identity gate the checkout consults.
type Session interface {
	IsLoggedIn() bool
}

// Checkout is one checkout attempt. It owns its state, the captured
// contact data and the payment selection; on confirmation it produces
// the immutable order snapshot.
//
// Not safe for concurrent use; the dispatcher serializes all calls.
type Checkout struct {
	id       uuid.UUID
	cfg      Config
	ledger   *cart.Ledger
	session  Session
	renderer ui.Renderer
	notifier ui.Notifier
	launcher ui.Launcher
	logger   *zap.Logger
	now      func() time.Time

	state        domain.CheckoutState
	contact      domain.CustomerContact
	method       domain.PaymentMethod
	channel      domain.PaymentChannel
	confirmation string
	snapshot     *domain.OrderSnapshot
}

// New creates a checkout attempt in the filling state.
func New(cfg Config, ledger *cart.Ledger, session Session, renderer ui.Renderer, notifier ui.Notifier, launcher ui.Launcher, logger *zap.Logger) *Checkout {
	return &Checkout{
		id:       uuid.New(),
		cfg:      cfg,
		ledger:   ledger,
		session:  session,
		renderer: renderer,
		notifier: notifier,
		launcher: launcher,
		logger:   logger,
		now:      time.Now,
		state:    domain.StateFilling,
	}
}

// ID returns the attempt identifier.
func (c *Checkout) ID() uuid.UUID {
	return c.id
}

// State returns the current checkout state.
func (c *Checkout) State() domain.CheckoutState {
	return c.state
}

// Begin checks the preconditions for starting checkout: a non-empty
// cart and, when the login gate is configured on, a live session.
func (c *Checkout) Begin(ctx context.Context) error {
	if c.ledger.IsEmpty() {
		c.notifier.Show("Keranjang Anda kosong", ui.SeverityWarning)
		return &errors.ErrValidation{Field: "cart", Message: "keranjang kosong"}
	}
	if c.cfg.RequireLogin && !c.session.IsLoggedIn() {
		c.notifier.Show("Silakan login terlebih dahulu", ui.SeverityWarning)
		return &errors.ErrAuth{Message: "login required for checkout"}
	}
	return nil
}

// SubmitContact validates the contact form and, on success, moves to
// payment-method selection. The validator is fail-fast: the first
// failing field is notified and focused, the rest are not inspected.
func (c *Checkout) SubmitContact(ctx context.Context, contact domain.CustomerContact) error {
	if c.state != domain.StateFilling {
		return &errors.ErrInvalidStateTransition{From: c.state, To: domain.StateAwaitingPaymentMethod}
	}
	if c.ledger.IsEmpty() {
		c.notifier.Show("Keranjang Anda kosong", ui.SeverityWarning)
		return &errors.ErrValidation{Field: "cart", Message: "keranjang kosong"}
	}

	if err := c.validateContact(contact); err != nil {
		return err
	}

	c.contact = contact
	c.state = domain.StateAwaitingPaymentMethod
	return nil
}

func (c *Checkout) validateContact(contact domain.CustomerContact) error {
	email := strings.TrimSpace(contact.Email)
	if email == "" || !strings.Contains(email, "@") {
		return c.rejectField("email", "Email tidak valid (harus ada @)")
	}
	phone := strings.TrimSpace(contact.Phone)
	if len(phone) < 10 {
		return c.rejectField("phone", "Nomor telepon min 10 digit")
	}
	if strings.TrimSpace(contact.FullName) == "" {
		return c.rejectField("fullname", "Nama harus diisi")
	}
	if strings.TrimSpace(contact.Address) == "" {
		return c.rejectField("address", "Alamat harus diisi")
	}
	if strings.TrimSpace(contact.City) == "" {
		return c.rejectField("city", "Kota harus diisi")
	}
	if contact.Province == "" {
		return c.rejectField("province", "Provinsi harus dipilih")
	}
	if strings.TrimSpace(contact.PostalCode) == "" {
		return c.rejectField("postalcode", "Kode pos harus diisi")
	}
	return nil
}

func (c *Checkout) rejectField(field, message string) error {
	c.notifier.Show(message, ui.SeverityError)
	c.renderer.FocusField(field)
	return &errors.ErrValidation{Field: field, Message: message}
}

// SelectMethod records the payment method and moves to detail
// selection. An empty or unknown method is rejected with a warning and
// no transition.
func (c *Checkout) SelectMethod(ctx context.Context, method domain.PaymentMethod) error {
	if c.state != domain.StateAwaitingPaymentMethod {
		return &errors.ErrInvalidStateTransition{From: c.state, To: domain.StateAwaitingPaymentDetail}
	}
	if !method.IsValid() {
		c.notifier.Show("Pilih metode pembayaran dulu!", ui.SeverityWarning)
		return &errors.ErrValidation{Field: "payment_method", Message: "metode pembayaran belum dipilih"}
	}

	c.method = method
	c.state = domain.StateAwaitingPaymentDetail
	return nil
}

// Confirm settles the payment detail and produces the order snapshot.
// QRIS and COD need no channel; e-wallet and bank transfers require a
// channel belonging to the selected method.
func (c *Checkout) Confirm(ctx context.Context, channel domain.PaymentChannel) error {
	if c.state != domain.StateAwaitingPaymentDetail {
		return &errors.ErrInvalidStateTransition{From: c.state, To: domain.StateConfirmed}
	}

	var paymentLabel string
	switch {
	case !c.method.RequiresChannel():
		paymentLabel = c.method.Label()
		if c.method == domain.PaymentQRIS {
			c.confirmation = "Mohon segera kirim bukti pembayaran QRIS dan alamat Anda ke WhatsApp kami."
		} else {
			c.confirmation = "Pesanan akan dikirim. Siapkan pembayaran tunai. Kirim alamat lengkap ke WhatsApp kami."
		}

	case channel == "":
		kind := "e-wallet"
		if c.method == domain.PaymentBank {
			kind = "bank"
		}
		c.notifier.Show("Pilih "+kind+" terlebih dahulu", ui.SeverityWarning)
		return &errors.ErrValidation{Field: "payment_channel", Message: kind + " belum dipilih"}

	case !channel.IsValid() || channel.Method() != c.method:
		c.notifier.Show("Metode pembayaran tidak sesuai", ui.SeverityWarning)
		return &errors.ErrValidation{Field: "payment_channel", Message: "channel tidak sesuai dengan metode"}

	default:
		c.channel = channel
		detail := channel.Detail()
		paymentLabel = detail.Name
		if c.method == domain.PaymentBank {
			paymentLabel = "Bank " + detail.Name
		}
		c.confirmation = "Transfer ke " + detail.Name + " (" + detail.Account + ") dan kirim bukti pembayaran + alamat ke WhatsApp kami."
	}

	now := c.now()
	totals := c.ledger.Totals()
	c.snapshot = &domain.OrderSnapshot{
		OrderID:     "YIS" + strconv.FormatInt(now.UnixMilli(), 10),
		Items:       c.ledger.Items(),
		Subtotal:    totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
		Payment:     paymentLabel,
		Contact:     c.contact,
		PlacedAt:    now,
	}
	c.state = domain.StateConfirmed

	c.logger.Info("Order confirmed",
		zap.String("attempt_id", c.id.String()),
		zap.String("order_id", c.snapshot.OrderID),
		zap.String("payment", paymentLabel),
		zap.Int64("total", totals.Total),
	)
	return nil
}

// Snapshot returns the confirmed order, or nil before confirmation.
func (c *Checkout) Snapshot() *domain.OrderSnapshot {
	return c.snapshot
}

// ConfirmationMessage returns the payment instruction shown after
// confirmation.
func (c *Checkout) ConfirmationMessage() string {
	return c.confirmation
}

// HandOff opens the pre-filled WhatsApp message for the confirmed
// order, clears the cart and persists the empty state. The hand-off is
// one-way; delivery is never confirmed.
func (c *Checkout) HandOff(ctx context.Context) error {
	if c.state != domain.StateConfirmed {
		return &errors.ErrInvalidStateTransition{From: c.state, To: domain.StateHandedOff}
	}

	c.launcher.OpenLink(HandOffLink(c.cfg.WhatsAppNumber, ComposeMessage(c.cfg.ShopName, *c.snapshot)))

	c.ledger.Clear(ctx)
	c.state = domain.StateHandedOff
	c.notifier.Show("Pesanan berhasil!", ui.SeveritySuccess)

	c.logger.Info("Order handed off",
		zap.String("attempt_id", c.id.String()),
		zap.String("order_id", c.snapshot.OrderID),
	)
	return nil
}

// Cancel abandons the attempt: selections are discarded and the state
// returns to filling. Cart mutations already committed stay committed.
// Cancelling a handed-off attempt is a no-op.
func (c *Checkout) Cancel() {
	if c.state.IsTerminal() {
		return
	}
	c.contact = domain.CustomerContact{}
	c.method = ""
	c.channel = ""
	c.confirmation = ""
	c.snapshot = nil
	c.state = domain.StateFilling
}
