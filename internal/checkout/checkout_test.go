package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youriscent/storefront/internal/cart"
	"github.com/youriscent/storefront/internal/catalog"
	"github.com/youriscent/storefront/internal/domain"
	"github.com/youriscent/storefront/internal/store"
	"github.com/youriscent/storefront/internal/ui"
	"github.com/youriscent/storefront/pkg/errors"
)

type fakeRenderer struct {
	focused []string
}

func (f *fakeRenderer) RenderCart(items []domain.LineItem, totals domain.CartTotals) {}

func (f *fakeRenderer) FocusField(field string) {
	f.focused = append(f.focused, field)
}

type fakeNotifier struct {
	messages   []string
	severities []ui.Severity
}

func (f *fakeNotifier) Show(message string, severity ui.Severity) {
	f.messages = append(f.messages, message)
	f.severities = append(f.severities, severity)
}

func (f *fakeNotifier) Hide() {}

func (f *fakeNotifier) last() string {
	if len(f.messages) == 0 {
		return ""
	}
	return f.messages[len(f.messages)-1]
}

type fakeLauncher struct {
	opened []string
}

func (f *fakeLauncher) OpenLink(url string) {
	f.opened = append(f.opened, url)
}

type fakeSession struct {
	loggedIn bool
}

func (f *fakeSession) IsLoggedIn() bool {
	return f.loggedIn
}

type fixture struct {
	checkout *Checkout
	ledger   *cart.Ledger
	store    *store.MemoryStore
	renderer *fakeRenderer
	notifier *fakeNotifier
	launcher *fakeLauncher
	session  *fakeSession
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()

	st := store.NewMemoryStore()
	renderer := &fakeRenderer{}
	notifier := &fakeNotifier{}
	launcher := &fakeLauncher{}
	session := &fakeSession{}

	ledger := cart.NewLedger(st, renderer, notifier, 15000, zap.NewNop())
	c := New(cfg, ledger, session, renderer, notifier, launcher, zap.NewNop())
	c.now = func() time.Time { return time.UnixMilli(1735689600000) }

	return &fixture{
		checkout: c,
		ledger:   ledger,
		store:    st,
		renderer: renderer,
		notifier: notifier,
		launcher: launcher,
		session:  session,
	}
}

func defaultConfig() Config {
	return Config{
		ShopName:       "your.i scent",
		WhatsAppNumber: "6281234567890",
	}
}

func validContact() domain.CustomerContact {
	return domain.CustomerContact{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		Phone:      "081234567890",
		Address:    "Jl. Melati No. 5",
		City:       "Bandung",
		Province:   "Jawa Barat",
		PostalCode: "40111",
	}
}

func addSampleItem(f *fixture) {
	f.ledger.AddItem(context.Background(), catalog.Product{ID: 1, Name: "Mykonos Sorrento"}, "5ml", 35000)
	f.ledger.AddItem(context.Background(), catalog.Product{ID: 1, Name: "Mykonos Sorrento"}, "5ml", 35000)
}

func advanceToMethodSelection(t *testing.T, f *fixture) {
	t.Helper()
	addSampleItem(f)
	require.NoError(t, f.checkout.Begin(context.Background()))
	require.NoError(t, f.checkout.SubmitContact(context.Background(), validContact()))
}

func TestBegin_EmptyCartRejected(t *testing.T) {
	f := newFixture(t, defaultConfig())

	err := f.checkout.Begin(context.Background())

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.StateFilling, f.checkout.State())
	assert.Equal(t, "Keranjang Anda kosong", f.notifier.last())
}

func TestBegin_LoginGateConfigurable(t *testing.T) {
	cfg := defaultConfig()
	cfg.RequireLogin = true

	f := newFixture(t, cfg)
	addSampleItem(f)

	var aErr *errors.ErrAuth
	require.ErrorAs(t, f.checkout.Begin(context.Background()), &aErr)

	f.session.loggedIn = true
	assert.NoError(t, f.checkout.Begin(context.Background()))
}

func TestBegin_LoginNotRequiredByDefault(t *testing.T) {
	f := newFixture(t, defaultConfig())
	addSampleItem(f)

	assert.NoError(t, f.checkout.Begin(context.Background()))
}

func TestSubmitContact_FailFastInFieldOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.CustomerContact)
		field   string
		message string
	}{
		{"email without at", func(c *domain.CustomerContact) { c.Email = "bad-email" }, "email", "Email tidak valid (harus ada @)"},
		{"empty email", func(c *domain.CustomerContact) { c.Email = "  " }, "email", "Email tidak valid (harus ada @)"},
		{"short phone", func(c *domain.CustomerContact) { c.Phone = "08123" }, "phone", "Nomor telepon min 10 digit"},
		{"empty name", func(c *domain.CustomerContact) { c.FullName = "" }, "fullname", "Nama harus diisi"},
		{"empty address", func(c *domain.CustomerContact) { c.Address = "" }, "address", "Alamat harus diisi"},
		{"empty city", func(c *domain.CustomerContact) { c.City = "" }, "city", "Kota harus diisi"},
		{"no province selected", func(c *domain.CustomerContact) { c.Province = "" }, "province", "Provinsi harus dipilih"},
		{"empty postal code", func(c *domain.CustomerContact) { c.PostalCode = "" }, "postalcode", "Kode pos harus diisi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, defaultConfig())
			addSampleItem(f)
			require.NoError(t, f.checkout.Begin(context.Background()))

			contact := validContact()
			tt.mutate(&contact)

			err := f.checkout.SubmitContact(context.Background(), contact)

			var vErr *errors.ErrValidation
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, f.notifier.last())
			require.Len(t, f.renderer.focused, 1)
			assert.Equal(t, tt.field, f.renderer.focused[0])
			assert.Equal(t, domain.StateFilling, f.checkout.State())
		})
	}
}

func TestSubmitContact_FirstFailureWins(t *testing.T) {
	f := newFixture(t, defaultConfig())
	addSampleItem(f)

	err := f.checkout.SubmitContact(context.Background(), domain.CustomerContact{})

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
	require.Len(t, f.renderer.focused, 1)
}

func TestSubmitContact_ValidAdvancesState(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)

	assert.Equal(t, domain.StateAwaitingPaymentMethod, f.checkout.State())
}

func TestSelectMethod_EmptyRejected(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)

	err := f.checkout.SelectMethod(context.Background(), "")

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Pilih metode pembayaran dulu!", f.notifier.last())
	assert.Equal(t, domain.StateAwaitingPaymentMethod, f.checkout.State())
}

func TestConfirm_QRISNeedsNoChannel(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentQRIS))

	require.NoError(t, f.checkout.Confirm(context.Background(), ""))

	assert.Equal(t, domain.StateConfirmed, f.checkout.State())
	assert.Contains(t, f.checkout.ConfirmationMessage(), "QRIS")

	snap := f.checkout.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, "YIS1735689600000", snap.OrderID)
	assert.Equal(t, "QRIS", snap.Payment)
	assert.Equal(t, int64(70000), snap.Subtotal)
	assert.Equal(t, int64(15000), snap.ShippingFee)
	assert.Equal(t, int64(85000), snap.Total)
	assert.Equal(t, validContact(), snap.Contact)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestConfirm_CODUsesCashInstruction(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentCOD))

	require.NoError(t, f.checkout.Confirm(context.Background(), ""))

	assert.Contains(t, f.checkout.ConfirmationMessage(), "tunai")
	assert.Equal(t, "COD", f.checkout.Snapshot().Payment)
}

func TestConfirm_BankRequiresChannel(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentBank))

	err := f.checkout.Confirm(context.Background(), "")

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Pilih bank terlebih dahulu", f.notifier.last())
	assert.Equal(t, domain.StateAwaitingPaymentDetail, f.checkout.State())
	assert.Nil(t, f.checkout.Snapshot())
}

func TestConfirm_ChannelMustMatchMethod(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentBank))

	err := f.checkout.Confirm(context.Background(), domain.ChannelGoPay)

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domain.StateAwaitingPaymentDetail, f.checkout.State())
}

func TestConfirm_BankChannelBuildsTransferInstruction(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentBank))

	require.NoError(t, f.checkout.Confirm(context.Background(), domain.ChannelBCA))

	assert.Equal(t, "Bank BCA", f.checkout.Snapshot().Payment)
	assert.Contains(t, f.checkout.ConfirmationMessage(), "Transfer ke BCA (1234567890)")
}

func TestHandOff_OpensLinkClearsCartAndPersists(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentEWallet))
	require.NoError(t, f.checkout.Confirm(context.Background(), domain.ChannelGoPay))

	require.NoError(t, f.checkout.HandOff(context.Background()))

	assert.Equal(t, domain.StateHandedOff, f.checkout.State())
	assert.True(t, f.checkout.State().IsTerminal())

	require.Len(t, f.launcher.opened, 1)
	assert.True(t, strings.HasPrefix(f.launcher.opened[0], "https://wa.me/6281234567890?text="))

	assert.True(t, f.ledger.IsEmpty())
	raw, err := f.store.Get(context.Background(), store.KeyCart)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	assert.Equal(t, "Pesanan berhasil!", f.notifier.last())
}

func TestHandOff_RequiresConfirmedState(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)

	err := f.checkout.HandOff(context.Background())

	var tErr *errors.ErrInvalidStateTransition
	require.ErrorAs(t, err, &tErr)
	assert.Empty(t, f.launcher.opened)
}

func TestCancel_ResetsWithoutTouchingCart(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)
	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentQRIS))
	require.NoError(t, f.checkout.Confirm(context.Background(), ""))

	f.checkout.Cancel()

	assert.Equal(t, domain.StateFilling, f.checkout.State())
	assert.Nil(t, f.checkout.Snapshot())
	assert.Equal(t, 2, f.ledger.ItemCount())
}

func TestSubmitContact_CartEmptiedAfterBeginRejected(t *testing.T) {
	f := newFixture(t, defaultConfig())
	addSampleItem(f)
	require.NoError(t, f.checkout.Begin(context.Background()))

	f.ledger.Clear(context.Background())

	err := f.checkout.SubmitContact(context.Background(), validContact())

	var vErr *errors.ErrValidation
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "cart", vErr.Field)
	assert.Equal(t, "Keranjang Anda kosong", f.notifier.last())
	assert.Equal(t, domain.StateFilling, f.checkout.State())
}

func TestID_StableWithinAttemptDistinctAcrossAttempts(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)

	id := f.checkout.ID()
	assert.NotEqual(t, uuid.Nil, id)

	require.NoError(t, f.checkout.SelectMethod(context.Background(), domain.PaymentQRIS))
	require.NoError(t, f.checkout.Confirm(context.Background(), ""))
	assert.Equal(t, id, f.checkout.ID())

	other := newFixture(t, defaultConfig())
	assert.NotEqual(t, id, other.checkout.ID())
}

func TestSubmitContact_OutOfOrderRejected(t *testing.T) {
	f := newFixture(t, defaultConfig())
	advanceToMethodSelection(t, f)

	err := f.checkout.SubmitContact(context.Background(), validContact())

	var tErr *errors.ErrInvalidStateTransition
	require.ErrorAs(t, err, &tErr)
}
