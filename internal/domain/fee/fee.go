// Package fee computes the platform's cut of a payment.
package fee

// PlatformRateBasisPoints is the platform fee rate: 5% of every payment.
const PlatformRateBasisPoints int64 = 500

// Split divides a minor-unit amount into the platform fee and the net amount
// forwarded to the destination account. The fee is rounded half up so that
// fee + net == amount holds exactly for any non-negative amount.
func Split(amountCents int64) (feeCents, netCents int64) {
	feeCents = (amountCents*PlatformRateBasisPoints + 5000) / 10000
	netCents = amountCents - feeCents
	return feeCents, netCents
}
