package domain

import "time"

// LineItem is one (product, size) selection in the cart. The unit price
// is locked in when the item is added. ProductName and ImageRef are
// display-only and carry no invariants.
type LineItem struct {
	ProductID   int    `json:"id"`
	ProductName string `json:"name"`
	Size        string `json:"size"`
	UnitPrice   int64  `json:"price"`
	ImageRef    string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// Key returns the cart identity of the item. At most one line item per
// key may exist in a cart.
func (i LineItem) Key() ItemKey {
	return ItemKey{ProductID: i.ProductID, Size: i.Size}
}

// Total returns unit price times quantity.
func (i LineItem) Total() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// ItemKey identifies a line item within a cart.
type ItemKey struct {
	ProductID int
	Size      string
}

// CartTotals holds the derived amounts for the current cart. Always
// recomputed from the line items, never cached.
type CartTotals struct {
	Subtotal    int64
	ShippingFee int64
	Total       int64
}

// CustomerContact is captured once per checkout attempt and lives only
// inside the resulting order snapshot.
type CustomerContact struct {
	FullName   string
	Email      string
	Phone      string
	Address    string
	City       string
	Province   string
	PostalCode string
}

// FormatAddress renders the contact address the way the receipt shows it.
func (c CustomerContact) FormatAddress() string {
	return c.Address + ", " + c.City + ", " + c.Province + " " + c.PostalCode
}

// OrderSnapshot is the immutable record assembled when a checkout
// reaches the confirmed state. It is rendered as a receipt and embedded
// in the hand-off message; it is never mutated or persisted.
type OrderSnapshot struct {
	OrderID     string
	Items       []LineItem
	Subtotal    int64
	ShippingFee int64
	Total       int64
	Payment     string
	Contact     CustomerContact
	PlacedAt    time.Time
}

// UserAccount is a registered customer. PasswordHash is a bcrypt hash;
// the plaintext password is never stored.
type UserAccount struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
	Orders       []string  `json:"orders"`
	Wishlist     []int     `json:"wishlist"`
}
