package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/usecases"
	"creator-pay.backend/pkg/jwt"
)

type productHandlerFixture struct {
	creatorRepo  *creatorRepoStub
	merchantRepo *merchantRepoStub
	productRepo  *productRepoStub
	handler      *ProductHandler
}

func newProductHandlerFixture() *productHandlerFixture {
	f := &productHandlerFixture{
		creatorRepo:  &creatorRepoStub{},
		merchantRepo: &merchantRepoStub{},
		productRepo:  &productRepoStub{},
	}
	productUC := usecases.NewProductUsecase(f.productRepo, f.creatorRepo, f.merchantRepo)
	authUC := usecases.NewAuthUsecase(f.creatorRepo, jwt.NewJWTService("test-secret", time.Hour, 24*time.Hour), nil)
	f.handler = NewProductHandler(productUC, authUC)
	return f
}

func (f *productHandlerFixture) settingsRouter(requesterID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:id/settings", authAs(requesterID, "creator"), f.handler.GetSettings)
	return router
}

func TestProductHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newProductHandlerFixture()
	creatorID := uuid.New()

	var persisted *entities.Product
	f.productRepo.createFn = func(_ context.Context, product *entities.Product) error {
		persisted = product
		return nil
	}

	router := gin.New()
	router.POST("/products", authAs(creatorID, "creator"), f.handler.CreateProduct)

	body := `{"name":"Beat Pack Vol. 1","priceCents":1500,"currency":"usd","published":true}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, persisted)
	assert.Equal(t, creatorID, persisted.SellerID)
	assert.NotEqual(t, uuid.Nil, persisted.ID)
	assert.Equal(t, int64(1500), persisted.PriceCents)
}

func TestProductHandler_GetSettings_Owner(t *testing.T) {
	f := newProductHandlerFixture()
	sellerID := uuid.New()
	productID := uuid.New()

	f.creatorRepo.getByIDFn = func(_ context.Context, _ uuid.UUID) (*entities.Creator, error) {
		return &entities.Creator{
			ID:            sellerID,
			Name:          "Seller",
			Role:          entities.CreatorRoleCreator,
			State:         entities.CreatorStateActive,
			PayoutsPaused: true,
		}, nil
	}
	f.productRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*entities.Product, error) {
		return &entities.Product{
			ID:         id,
			SellerID:   sellerID,
			Name:       "Beat Pack Vol. 1",
			PriceCents: 1500,
			Currency:   "usd",
			Published:  true,
		}, nil
	}
	f.merchantRepo.getByCreatorFn = func(_ context.Context, _ uuid.UUID) (*entities.MerchantAccount, error) {
		return &entities.MerchantAccount{
			ID:                        uuid.New(),
			CreatorID:                 sellerID,
			VendorAccountID:           "acct_1",
			ChargeProcessorVerifiedAt: null.TimeFrom(time.Now()),
			ChargesEnabled:            true,
			PayoutsEnabled:            true,
		}, nil
	}

	router := f.settingsRouter(sellerID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String()+"/settings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view usecases.ProductSettingsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, productID.String(), view.ID)
	assert.Equal(t, "Beat Pack Vol. 1", view.Name)
	assert.True(t, view.Seller.PayoutsPaused)
	assert.True(t, view.Seller.ChargesEnabled)
	assert.True(t, view.Seller.PayoutsEnabled)
}

func TestProductHandler_GetSettings_StrangerForbidden(t *testing.T) {
	f := newProductHandlerFixture()
	sellerID := uuid.New()
	strangerID := uuid.New()
	productID := uuid.New()

	f.creatorRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*entities.Creator, error) {
		return &entities.Creator{
			ID:    id,
			Name:  "Someone Else",
			Role:  entities.CreatorRoleCreator,
			State: entities.CreatorStateActive,
		}, nil
	}
	f.productRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*entities.Product, error) {
		return &entities.Product{ID: id, SellerID: sellerID, Name: "Beat Pack Vol. 1"}, nil
	}

	router := f.settingsRouter(strangerID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String()+"/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProductHandler_GetSettings_InvalidID(t *testing.T) {
	f := newProductHandlerFixture()

	router := f.settingsRouter(uuid.New())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_GetSettings_MissingProduct(t *testing.T) {
	f := newProductHandlerFixture()
	requesterID := uuid.New()

	f.creatorRepo.getByIDFn = func(_ context.Context, id uuid.UUID) (*entities.Creator, error) {
		return &entities.Creator{ID: id, Role: entities.CreatorRoleCreator, State: entities.CreatorStateActive}, nil
	}

	router := f.settingsRouter(requesterID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString()+"/settings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
