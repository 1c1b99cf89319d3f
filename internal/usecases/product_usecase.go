package usecases

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
	domainerrors "creator-pay.backend/internal/domain/errors"
	"creator-pay.backend/internal/domain/repositories"
)

// ProductUsecase handles product catalog and settings presentation.
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	creatorRepo  repositories.CreatorRepository
	merchantRepo repositories.MerchantAccountRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(
	productRepo repositories.ProductRepository,
	creatorRepo repositories.CreatorRepository,
	merchantRepo repositories.MerchantAccountRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		creatorRepo:  creatorRepo,
		merchantRepo: merchantRepo,
	}
}

// CreateProduct adds a product to the requester's catalog.
func (u *ProductUsecase) CreateProduct(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return u.productRepo.Create(ctx, product)
}

// ProductSettingsView is the settings presentation payload. It is rendered
// the same way for every authorized requester: the acting user is withheld
// from the presenter so owners and admins see the identical viewer-mode
// document.
type ProductSettingsView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	PriceCents       int64  `json:"priceCents"`
	Currency         string `json:"currency"`
	Published        bool   `json:"published"`
	Adult            bool   `json:"adult"`
	AffiliateEnabled bool   `json:"affiliateEnabled"`

	Seller ProductSellerView `json:"seller"`
}

// ProductSellerView summarizes the seller's payout standing on the settings
// page.
type ProductSellerView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PayoutsPaused  bool   `json:"payoutsPaused"`
	PayoutsEnabled bool   `json:"payoutsEnabled"`
	ChargesEnabled bool   `json:"chargesEnabled"`
}

// GetSettings authorizes the requester against the product and renders the
// settings presentation. Only the product's seller or an admin may view it.
func (u *ProductUsecase) GetSettings(ctx context.Context, productID uuid.UUID, requester *entities.Creator) (*ProductSettingsView, error) {
	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domainerrors.NotFound("product not found")
	}

	if requester == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if requester.ID != product.SellerID && requester.Role != entities.CreatorRoleAdmin {
		return nil, domainerrors.Forbidden("not authorized for this product")
	}

	seller, err := u.creatorRepo.GetByID(ctx, product.SellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domainerrors.NotFound("seller not found")
	}

	merchant, err := u.merchantRepo.GetByCreatorID(ctx, product.SellerID)
	if err != nil {
		return nil, err
	}

	return presentProductSettings(product, seller, merchant), nil
}

// presentProductSettings builds the viewer-mode document. The requester is
// deliberately not a parameter.
func presentProductSettings(
	product *entities.Product,
	seller *entities.Creator,
	merchant *entities.MerchantAccount,
) *ProductSettingsView {
	view := &ProductSettingsView{
		ID:               product.ID.String(),
		Name:             product.Name,
		Description:      product.Description,
		PriceCents:       product.PriceCents,
		Currency:         product.Currency,
		Published:        product.Published,
		Adult:            product.Adult,
		AffiliateEnabled: product.AffiliateEnabled,
		Seller: ProductSellerView{
			ID:            seller.ID.String(),
			Name:          seller.Name,
			PayoutsPaused: seller.PayoutsPaused,
		},
	}
	if merchant != nil && merchant.Active() {
		view.Seller.PayoutsEnabled = merchant.PayoutsEnabled
		view.Seller.ChargesEnabled = merchant.ChargesEnabled
	}
	return view
}
