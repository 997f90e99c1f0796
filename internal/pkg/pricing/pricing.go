package pricing

import (
	"math"
	"time"
)

// PlatformFeeRate is the share of the rental subtotal kept by the platform.
// Remittances apply the same fixed rate regardless of the owner's contract.
const PlatformFeeRate = 0.10

type Quote struct {
	NightlyRate float64 `json:"nightly_rate"`
	Nights      int     `json:"total_nights"`
	Subtotal    float64 `json:"subtotal"`
	CleaningFee float64 `json:"cleaning_fee"`
	PlatformFee float64 `json:"platform_fee"`
	Total       float64 `json:"total_amount"`
}

// QuoteBooking prices a stay: rate × nights + cleaning + 10% of the subtotal.
func QuoteBooking(nightlyRate float64, nights int, cleaningFee float64) Quote {
	subtotal := RoundCents(nightlyRate * float64(nights))
	platform := RoundCents(subtotal * PlatformFeeRate)
	return Quote{
		NightlyRate: nightlyRate,
		Nights:      nights,
		Subtotal:    subtotal,
		CleaningFee: cleaningFee,
		PlatformFee: platform,
		Total:       RoundCents(subtotal + cleaningFee + platform),
	}
}

// Nights counts started days between two dates.
func Nights(start, end time.Time) int {
	d := end.Sub(start).Hours() / 24
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d))
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
