package tenancy

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kosmanager/backend/internal/domain/tenancy"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// BuildReminderLink builds a wa.me URL that opens a WhatsApp chat with
// the tenant and prefills an Indonesian payment reminder.
func BuildReminderLink(listing *tenancy.InvoiceListing) string {
	periodText := fmt.Sprintf("%s %d",
		indonesianMonths[int(listing.Period.Month())-1],
		listing.Period.Year(),
	)

	message := fmt.Sprintf(
		"Halo %s, ini adalah pengingat tagihan kos bulan %s sebesar %s. Mohon segera melakukan pembayaran. Terima kasih!",
		listing.TenantName,
		periodText,
		formatRupiah(listing.Amount),
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s",
		NormalizeWhatsAppNumber(listing.TenantPhone),
		url.QueryEscape(message),
	)
}

// NormalizeWhatsAppNumber strips non-digits and converts the local
// Indonesian prefix to the international one (08xx -> 628xx).
func NormalizeWhatsAppNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "62" + cleaned[1:]
	}
	return cleaned
}

// formatRupiah renders an amount as Indonesian currency with dot
// thousand separators, e.g. 1500000 -> "Rp 1.500.000".
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return "Rp " + b.String()
}
