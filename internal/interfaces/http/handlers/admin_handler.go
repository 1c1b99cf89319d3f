package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/interfaces/http/response"
	"creator-pay.backend/internal/usecases"
	"creator-pay.backend/pkg/utils"
)

// AdminHandler handles administrative endpoints
type AdminHandler struct {
	provisioningUsecase *usecases.ProvisioningUsecase
	complianceUsecase   *usecases.ComplianceUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	provisioningUsecase *usecases.ProvisioningUsecase,
	complianceUsecase *usecases.ComplianceUsecase,
) *AdminHandler {
	return &AdminHandler{
		provisioningUsecase: provisioningUsecase,
		complianceUsecase:   complianceUsecase,
	}
}

// ResetMerchantAccount retires a creator's merchant account and provisions a
// replacement. This is the only path that tolerates an existing account.
// POST /api/v1/admin/creators/:id/merchant/reset
func (h *AdminHandler) ResetMerchantAccount(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid creator id"))
		return
	}

	account, err := h.provisioningUsecase.CreateAccount(c.Request.Context(), creatorID, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"account": account})
}

// ListComplianceRequests returns a creator's compliance info request history
// GET /api/v1/admin/creators/:id/compliance-requests
func (h *AdminHandler) ListComplianceRequests(c *gin.Context) {
	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid creator id"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	params := utils.GetPaginationParams(page, limit)

	requests, total, err := h.complianceUsecase.ListRequests(
		c.Request.Context(), creatorID, params.Limit, params.CalculateOffset(),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
