package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/usecases"
)

const testSigningSecret = "whsec_test_secret"

// signVendorPayload produces a Stripe-Signature header value accepted by
// webhook.ConstructEvent.
func signVendorPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

type webhookHandlerFixture struct {
	creatorRepo     *creatorRepoStub
	merchantRepo    *merchantRepoStub
	infoRequestRepo *infoRequestRepoStub
	eventRepo       *webhookEventRepoStub
	vendor          *vendorAPIStub
	notifier        *notifierStub
	handler         *WebhookHandler
}

func newWebhookHandlerFixture() *webhookHandlerFixture {
	f := &webhookHandlerFixture{
		creatorRepo:     &creatorRepoStub{},
		merchantRepo:    &merchantRepoStub{},
		infoRequestRepo: &infoRequestRepoStub{},
		eventRepo:       &webhookEventRepoStub{},
		vendor:          &vendorAPIStub{},
		notifier:        &notifierStub{},
	}
	uc := usecases.NewWebhookUsecase(
		f.creatorRepo, f.merchantRepo, f.infoRequestRepo, f.eventRepo, f.vendor, f.notifier, 0,
	)
	f.handler = NewWebhookHandler(uc, testSigningSecret)
	return f
}

func postWebhook(t *testing.T, handler *WebhookHandler, payload []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/webhooks/vendor", handler.HandleVendorEvent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/vendor", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_RejectsInvalidSignature(t *testing.T) {
	f := newWebhookHandlerFixture()
	payload := []byte(`{"id":"evt_1","type":"account.updated"}`)

	w := postWebhook(t, f.handler, payload, "t=1,v1=deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookHandler_ProcessesDeauthorization(t *testing.T) {
	f := newWebhookHandlerFixture()
	creatorID := uuid.New()
	accountID := uuid.New()

	f.merchantRepo.getByVendorIDFn = func(_ context.Context, vendorAccountID string) (*entities.MerchantAccount, error) {
		require.Equal(t, "acct_1", vendorAccountID)
		return &entities.MerchantAccount{
			ID:                        accountID,
			CreatorID:                 creatorID,
			VendorAccountID:           "acct_1",
			ChargeProcessorVerifiedAt: null.TimeFrom(time.Now()),
		}, nil
	}
	f.creatorRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*entities.Creator, error) {
		return &entities.Creator{ID: creatorID, State: entities.CreatorStateActive}, nil
	}

	payload := []byte(`{"id":"evt_deauth","api_version":"2022-11-15","type":"account.application.deauthorized","account":"acct_1","data":{"object":{"id":"ca_123"}}}`)
	w := postWebhook(t, f.handler, payload, signVendorPayload(payload, testSigningSecret))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookHandler_UnknownAccountIsRetryable(t *testing.T) {
	f := newWebhookHandlerFixture()

	payload := []byte(`{"id":"evt_unknown","api_version":"2022-11-15","type":"account.application.deauthorized","account":"acct_ghost","data":{"object":{"id":"ca_123"}}}`)
	w := postWebhook(t, f.handler, payload, signVendorPayload(payload, testSigningSecret))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
