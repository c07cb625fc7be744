package domain

// CheckoutState represents where a pending purchase sits in the
// checkout flow.
type CheckoutState string

const (
	StateFilling               CheckoutState = "FILLING"
	StateAwaitingPaymentMethod CheckoutState = "AWAITING_PAYMENT_METHOD"
	StateAwaitingPaymentDetail CheckoutState = "AWAITING_PAYMENT_DETAIL"
	StateConfirmed             CheckoutState = "CONFIRMED"
	StateHandedOff             CheckoutState = "HANDED_OFF"
)

// IsValid checks if the checkout state is valid
func (s CheckoutState) IsValid() bool {
	switch s {
	case StateFilling,
		StateAwaitingPaymentMethod,
		StateAwaitingPaymentDetail,
		StateConfirmed,
		StateHandedOff:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a state transition is valid
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case StateFilling:
		return next == StateAwaitingPaymentMethod
	case StateAwaitingPaymentMethod:
		return next == StateAwaitingPaymentDetail
	case StateAwaitingPaymentDetail:
		return next == StateConfirmed
	case StateConfirmed:
		return next == StateHandedOff
	case StateHandedOff:
		return false // Terminal state
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s CheckoutState) IsTerminal() bool {
	return s == StateHandedOff
}

// PaymentMethod is the top-level payment choice.
type PaymentMethod string

const (
	PaymentEWallet PaymentMethod = "e-wallet"
	PaymentBank    PaymentMethod = "bank"
	PaymentQRIS    PaymentMethod = "qris"
	PaymentCOD     PaymentMethod = "cod"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentEWallet, PaymentBank, PaymentQRIS, PaymentCOD:
		return true
	default:
		return false
	}
}

// RequiresChannel reports whether the method needs a provider-level
// sub-selection before the order can be confirmed. QRIS and COD carry
// only instructional text.
func (m PaymentMethod) RequiresChannel() bool {
	return m == PaymentEWallet || m == PaymentBank
}

// Label returns the display name used on receipts.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentEWallet:
		return "E-Wallet"
	case PaymentBank:
		return "Bank Transfer"
	case PaymentQRIS:
		return "QRIS"
	case PaymentCOD:
		return "COD"
	default:
		return string(m)
	}
}
