package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/checkout"
	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/identity"
	"github.com/youriscent/storefront/internal/ui"
	"github.com/youriscent/storefront/pkg/errors"
)

// IntentKind names a discrete user intent.
type IntentKind string

const (
	IntentAddItem        IntentKind = "add-item"
	IntentChangeQuantity IntentKind = "change-quantity"
	IntentRemoveItem     IntentKind = "remove-item"
	IntentBeginCheckout  IntentKind = "begin-checkout"
	IntentSubmitContact  IntentKind = "submit-contact"
	IntentSelectMethod   IntentKind = "select-method"
	IntentConfirmPayment IntentKind = "confirm-payment"
	IntentHandOff        IntentKind = "hand-off"
	IntentCancelCheckout IntentKind = "cancel-checkout"
	IntentRegister       IntentKind = "register"
	IntentLogin          IntentKind = "login"
	IntentLogout         IntentKind = "logout"
)

// Intent is one translated user action. Only the fields relevant to
// the kind are read.
type Intent struct {
	Kind IntentKind

	ProductID int
	Size      string
	Delta     int

	Contact domain.CustomerContact
	Method  domain.PaymentMethod
	Channel domain.PaymentChannel

	Name     string
	Email    string
	Password string
	Phone    string
}

// Dispatch routes an intent to its handler. Unknown kinds are rejected.
func (s *Session) Dispatch(ctx context.Context, intent Intent) error {
	handler, ok := s.handlers[intent.Kind]
	if !ok {
		return &errors.ErrValidation{Field: "intent", Message: "unknown intent kind: " + string(intent.Kind)}
	}
	return handler(ctx, intent)
}

func (s *Session) addItem(ctx context.Context, intent Intent) error {
	product, err := s.catalog.Find(intent.ProductID)
	if err != nil {
		s.logger.Warn("Add-item intent for unknown product",
			zap.Int("product_id", intent.ProductID), zap.Error(err))
		return err
	}
	price, err := s.catalog.Price(intent.ProductID, intent.Size)
	if err != nil {
		s.logger.Warn("Add-item intent for unknown size",
			zap.Int("product_id", intent.ProductID), zap.String("size", intent.Size), zap.Error(err))
		return err
	}

	s.ledger.AddItem(ctx, product, intent.Size, price)
	return nil
}

func (s *Session) changeQuantity(ctx context.Context, intent Intent) error {
	s.ledger.ChangeQuantity(ctx, intent.ProductID, intent.Size, intent.Delta)
	return nil
}

func (s *Session) removeItem(ctx context.Context, intent Intent) error {
	s.ledger.RemoveItem(ctx, intent.ProductID, intent.Size)
	return nil
}

func (s *Session) beginCheckout(ctx context.Context, intent Intent) error {
	attempt := checkout.New(checkout.Config{
		ShopName:       s.cfg.Shop.Name,
		WhatsAppNumber: s.cfg.Shop.WhatsAppNumber,
		RequireLogin:   s.cfg.Checkout.RequireLogin,
	}, s.ledger, s.gate, s.collab.Renderer, s.collab.Notifier, s.collab.Launcher, s.logger)

	if err := attempt.Begin(ctx); err != nil {
		return err
	}
	s.attempt = attempt
	return nil
}

func (s *Session) submitContact(ctx context.Context, intent Intent) error {
	attempt, err := s.activeAttempt()
	if err != nil {
		return err
	}
	return attempt.SubmitContact(ctx, intent.Contact)
}

func (s *Session) selectMethod(ctx context.Context, intent Intent) error {
	attempt, err := s.activeAttempt()
	if err != nil {
		return err
	}
	return attempt.SelectMethod(ctx, intent.Method)
}

func (s *Session) confirmPayment(ctx context.Context, intent Intent) error {
	attempt, err := s.activeAttempt()
	if err != nil {
		return err
	}
	return attempt.Confirm(ctx, intent.Channel)
}

func (s *Session) handOff(ctx context.Context, intent Intent) error {
	attempt, err := s.activeAttempt()
	if err != nil {
		return err
	}
	if err := attempt.HandOff(ctx); err != nil {
		return err
	}
	s.attempt = nil
	return nil
}

func (s *Session) cancelCheckout(ctx context.Context, intent Intent) error {
	if s.attempt != nil {
		s.attempt.Cancel()
		s.attempt = nil
	}
	return nil
}

func (s *Session) register(ctx context.Context, intent Intent) error {
	_, err := s.gate.Register(ctx, intent.Name, intent.Email, intent.Password, intent.Phone)
	if err != nil {
		s.notifyFailure(err)
		return err
	}
	s.collab.Notifier.Show("Registrasi berhasil!", ui.SeveritySuccess)
	return nil
}

func (s *Session) login(ctx context.Context, intent Intent) error {
	_, err := s.gate.Login(ctx, intent.Email, intent.Password)
	if err != nil {
		s.notifyFailure(err)
		return err
	}
	s.collab.Notifier.Show("Login berhasil!", ui.SeveritySuccess)
	return nil
}

func (s *Session) logout(ctx context.Context, intent Intent) error {
	s.gate.Logout(ctx)
	return nil
}

func (s *Session) activeAttempt() (*checkout.Checkout, error) {
	if s.attempt == nil {
		return nil, &errors.ErrValidation{Field: "checkout", Message: "no active checkout"}
	}
	return s.attempt, nil
}

func (s *Session) notifyFailure(err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		s.collab.Notifier.Show(e.Message, ui.SeverityError)
	case *errors.ErrConflict:
		s.collab.Notifier.Show("Email sudah terdaftar!", ui.SeverityError)
	case *errors.ErrAuth:
		s.collab.Notifier.Show(e.Message, ui.SeverityError)
	default:
		s.logger.Error("Account operation failed", zap.Error(err))
		s.collab.Notifier.Show("Terjadi kesalahan, coba lagi", ui.SeverityError)
	}
}

var _ checkout.Session = (*identity.Gate)(nil)
