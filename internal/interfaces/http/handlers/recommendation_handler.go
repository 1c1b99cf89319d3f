package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/interfaces/http/response"
	"creator-pay.backend/internal/usecases"
)

// RecommendationHandler handles product recommendation endpoints
type RecommendationHandler struct {
	recommendationUsecase *usecases.RecommendationUsecase
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationUsecase *usecases.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUsecase: recommendationUsecase}
}

// RecommendationRequest describes the basket context for recommendations
type RecommendationRequest struct {
	ProductIDs       []uuid.UUID `json:"productIds" binding:"required,min=1"`
	AllowAdult       bool        `json:"allowAdult"`
	AffiliateContext bool        `json:"affiliateContext"`
	Limit            int         `json:"limit"`
}

// Recommend composes recommendations for a cart or receipt
// POST /api/v1/recommendations
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	products, err := h.recommendationUsecase.Compose(c.Request.Context(), usecases.RecommendationInput{
		BasketProductIDs: req.ProductIDs,
		AllowAdult:       req.AllowAdult,
		AffiliateContext: req.AffiliateContext,
		Limit:            req.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}
