package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/interfaces/http/middleware"
	"creator-pay.backend/internal/interfaces/http/response"
	"creator-pay.backend/internal/usecases"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
	authUsecase    *usecases.AuthUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase, authUsecase *usecases.AuthUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		authUsecase:    authUsecase,
	}
}

// CreateProductInput is the payload for creating a product
type CreateProductInput struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	Description      string `json:"description"`
	PriceCents       int64  `json:"priceCents" binding:"required,min=0"`
	Currency         string `json:"currency" binding:"required,len=3"`
	Published        bool   `json:"published"`
	Adult            bool   `json:"adult"`
	AffiliateEnabled bool   `json:"affiliateEnabled"`
}

// CreateProduct adds a product to the authenticated creator's catalog
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product := &entities.Product{
		SellerID:         creatorID,
		Name:             input.Name,
		Description:      input.Description,
		PriceCents:       input.PriceCents,
		Currency:         input.Currency,
		Published:        input.Published,
		Adult:            input.Adult,
		AffiliateEnabled: input.AffiliateEnabled,
	}
	if err := h.productUsecase.CreateProduct(c.Request.Context(), product); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// GetSettings renders the product settings document for its seller or an admin
// GET /api/v1/products/:id/settings
func (h *ProductHandler) GetSettings(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	requester, err := h.authUsecase.GetCreatorByID(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.productUsecase.GetSettings(c.Request.Context(), productID, requester)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}
