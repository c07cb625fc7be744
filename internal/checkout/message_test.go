package checkout

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youriscent/storefront/internal/domain"
)

func sampleSnapshot() domain.OrderSnapshot {
	return domain.OrderSnapshot{
		OrderID: "YIS1735689600000",
		Items: []domain.LineItem{
			{ProductID: 1, ProductName: "Mykonos Sorrento", Size: "5ml", UnitPrice: 35000, Quantity: 2},
			{ProductID: 3, ProductName: "Tom Ford Oud Wood", Size: "10ml", UnitPrice: 60000, Quantity: 1},
		},
		Subtotal:    130000,
		ShippingFee: 15000,
		Total:       145000,
		Payment:     "GoPay",
		Contact: domain.CustomerContact{
			FullName:   "Budi Santoso",
			Email:      "budi@example.com",
			Phone:      "081234567890",
			Address:    "Jl. Melati No. 5",
			City:       "Bandung",
			Province:   "Jawa Barat",
			PostalCode: "40111",
		},
		PlacedAt: time.UnixMilli(1735689600000),
	}
}

func TestComposeMessage(t *testing.T) {
	msg := ComposeMessage("your.i scent", sampleSnapshot())

	assert.True(t, strings.HasPrefix(msg, "Halo your.i scent! 👋\n"))
	assert.Contains(t, msg, "*Order ID:* YIS1735689600000")
	assert.Contains(t, msg, "*Metode Pembayaran:* GoPay")
	assert.Contains(t, msg, "- Mykonos Sorrento (5ml) x2 = Rp70.000")
	assert.Contains(t, msg, "- Tom Ford Oud Wood (10ml) x1 = Rp60.000")
	assert.Contains(t, msg, "*Subtotal:* Rp130.000")
	assert.Contains(t, msg, "*Ongkir:* Rp15.000")
	assert.Contains(t, msg, "*Total:* Rp145.000")
	assert.Contains(t, msg, "Nama: Budi Santoso")
	assert.Contains(t, msg, "Alamat: Jl. Melati No. 5, Bandung, Jawa Barat 40111")
	assert.True(t, strings.HasSuffix(msg, "Terima kasih! 🙏"))
}

func TestHandOffLink_EncodesMessage(t *testing.T) {
	link := HandOffLink("6281234567890", "Halo your.i scent! Total: Rp85.000")

	require.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Halo your.i scent! Total: Rp85.000", parsed.Query().Get("text"))
}
