// Package services – domain metrics.
//
// Counters for the donation and reconciliation flows, kept separate from
// the HTTP-level metrics middleware so dashboards can track business events
// rather than transport traffic.
package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// donationsSubmitted counts stored donations by payment method.
	donationsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_submitted_total",
			Help: "Total number of donations recorded, by payment method.",
		},
		[]string{"method"},
	)

	// paymentsSubmitted counts manual payment reports accepted into the
	// verification queue.
	paymentsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "manual_payments_submitted_total",
			Help: "Total number of manual payment reports accepted.",
		},
	)

	// paymentVerifications counts finalized manual payments by outcome.
	paymentVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manual_payment_verifications_total",
			Help: "Total number of manual payment verifications, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(donationsSubmitted, paymentsSubmitted, paymentVerifications)
}
