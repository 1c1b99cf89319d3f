package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/interfaces/http/middleware"
	"creator-pay.backend/internal/interfaces/http/response"
	"creator-pay.backend/internal/usecases"
)

// MerchantHandler handles merchant account onboarding and maintenance
type MerchantHandler struct {
	provisioningUsecase *usecases.ProvisioningUsecase
	complianceUsecase   *usecases.ComplianceUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(
	provisioningUsecase *usecases.ProvisioningUsecase,
	complianceUsecase *usecases.ComplianceUsecase,
) *MerchantHandler {
	return &MerchantHandler{
		provisioningUsecase: provisioningUsecase,
		complianceUsecase:   complianceUsecase,
	}
}

// Onboard provisions a vendor merchant account for the authenticated creator
// POST /api/v1/merchant/onboard
func (h *MerchantHandler) Onboard(c *gin.Context) {
	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	account, err := h.provisioningUsecase.CreateAccount(c.Request.Context(), creatorID, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"account": account})
}

// Status returns the merchant account standing and outstanding requirements
// GET /api/v1/merchant/status
func (h *MerchantHandler) Status(c *gin.Context) {
	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	status, err := h.complianceUsecase.Status(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, status)
}

// Update pushes the creator's latest compliance snapshot to the vendor
// POST /api/v1/merchant/update
func (h *MerchantHandler) Update(c *gin.Context) {
	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	if err := h.provisioningUsecase.UpdateAccount(c.Request.Context(), creatorID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Merchant account updated"})
}

// SyncBank pushes the active bank account to the vendor when it differs
// POST /api/v1/merchant/bank/sync
func (h *MerchantHandler) SyncBank(c *gin.Context) {
	creatorID, ok := middleware.GetCreatorID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	if err := h.provisioningUsecase.SyncBankAccount(c.Request.Context(), creatorID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Bank account synchronized"})
}
