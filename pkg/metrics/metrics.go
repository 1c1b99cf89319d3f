package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorpay_webhook_events_total",
		Help: "Vendor webhook events processed, by type and outcome.",
	}, []string{"event_type", "outcome"})

	vendorAPICalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorpay_vendor_api_calls_total",
		Help: "Outbound vendor API calls, by path and outcome.",
	}, []string{"path", "outcome"})

	complianceEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "creatorpay_compliance_emails_total",
		Help: "Compliance notifications sent, by kind.",
	}, []string{"kind"})
)

// WebhookEvent records a processed webhook event.
func WebhookEvent(eventType, outcome string) {
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}

// VendorAPICall records an outbound vendor API call.
func VendorAPICall(path, outcome string) {
	vendorAPICalls.WithLabelValues(path, outcome).Inc()
}

// ComplianceEmail records a compliance notification.
func ComplianceEmail(kind string) {
	complianceEmails.WithLabelValues(kind).Inc()
}
