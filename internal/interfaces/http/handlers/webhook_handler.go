package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v74/webhook"

	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/interfaces/http/response"
	"creator-pay.backend/internal/usecases"
)

// WebhookHandler ingests vendor webhook events
type WebhookHandler struct {
	webhookUsecase *usecases.WebhookUsecase
	signingSecret  string
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookUsecase *usecases.WebhookUsecase, signingSecret string) *WebhookHandler {
	return &WebhookHandler{
		webhookUsecase: webhookUsecase,
		signingSecret:  signingSecret,
	}
}

// HandleVendorEvent verifies and processes a vendor webhook delivery.
// Non-2xx responses make the vendor retry the delivery.
// POST /api/v1/webhooks/vendor
func (h *WebhookHandler) HandleVendorEvent(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("unreadable payload"))
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.signingSecret)
	if err != nil {
		log.Printf("[WebhookHandler] signature verification failed: %v", err)
		response.Error(c, domainerrors.BadRequest("invalid signature"))
		return
	}

	vendorEvent := &usecases.VendorEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Account: event.Account,
		Data:    event.Data.Raw,
	}

	if err := h.webhookUsecase.ProcessVendorEvent(c.Request.Context(), vendorEvent); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"received": true})
}
