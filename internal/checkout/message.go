package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/youriscent/storefront/internal/domain"
)

// ComposeMessage renders the human-readable order summary sent through
// the hand-off channel: order id, payment method, itemized lines,
// totals and the customer block.
func ComposeMessage(shopName string, snap domain.OrderSnapshot) string {
	var b strings.Builder

	b.WriteString("Halo " + shopName + "! 👋\n\n")
	b.WriteString("Saya sudah melakukan pemesanan:\n\n")
	b.WriteString("*Order ID:* " + snap.OrderID + "\n")
	b.WriteString("*Metode Pembayaran:* " + snap.Payment + "\n\n")

	b.WriteString("*Detail Pesanan:*\n")
	for _, item := range snap.Items {
		b.WriteString("- " + item.ProductName + " (" + item.Size + ") x" +
			strconv.Itoa(item.Quantity) + " = " + domain.FormatRupiah(item.Total()) + "\n")
	}

	b.WriteString("\n*Subtotal:* " + domain.FormatRupiah(snap.Subtotal) + "\n")
	b.WriteString("*Ongkir:* " + domain.FormatRupiah(snap.ShippingFee) + "\n")
	b.WriteString("*Total:* " + domain.FormatRupiah(snap.Total) + "\n\n")

	b.WriteString("*Data Pelanggan:*\n")
	b.WriteString("Nama: " + snap.Contact.FullName + "\n")
	b.WriteString("Email: " + snap.Contact.Email + "\n")
	b.WriteString("Telepon: " + snap.Contact.Phone + "\n")
	b.WriteString("Alamat: " + snap.Contact.FormatAddress() + "\n\n")

	b.WriteString("Mohon info lebih lanjut untuk pembayaran. Terima kasih! 🙏")

	return b.String()
}

// HandOffLink builds the wa.me deep link carrying the pre-filled
// message.
func HandOffLink(number, message string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}
