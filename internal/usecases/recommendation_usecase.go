package usecases

import (
	"context"

	"github.com/google/uuid"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/domain/repositories"
)

// RecommendationScorer ranks candidate products against a basket. The real
// implementation sits in front of the search index; usecases only compose.
type RecommendationScorer interface {
	Score(ctx context.Context, candidateIDs, excludeIDs []uuid.UUID, limit int) ([]uuid.UUID, error)
}

// RecommendationUsecase composes product recommendations for a cart or
// receipt context.
type RecommendationUsecase struct {
	productRepo repositories.ProductRepository
	scorer      RecommendationScorer
}

// NewRecommendationUsecase creates a new recommendation usecase
func NewRecommendationUsecase(productRepo repositories.ProductRepository, scorer RecommendationScorer) *RecommendationUsecase {
	return &RecommendationUsecase{productRepo: productRepo, scorer: scorer}
}

// RecommendationInput describes the basket the recommendations accompany.
type RecommendationInput struct {
	// BasketProductIDs are the products already in the cart or on the receipt.
	// They seed the scorer and are always excluded from the results.
	BasketProductIDs []uuid.UUID
	// AllowAdult permits adult-flagged products in the results.
	AllowAdult bool
	// AffiliateContext restricts results to affiliate-enabled products.
	AffiliateContext bool
	Limit            int
}

const defaultRecommendationLimit = 8

// Compose gathers scored recommendations, filters them by visibility rules,
// and backfills from the basket sellers' own catalogs when under quota.
func (u *RecommendationUsecase) Compose(ctx context.Context, input RecommendationInput) ([]*entities.Product, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	scored, err := u.scorer.Score(ctx, input.BasketProductIDs, input.BasketProductIDs, limit)
	if err != nil {
		return nil, err
	}

	products, err := u.productRepo.ListByIDs(ctx, scored)
	if err != nil {
		return nil, err
	}

	picked := make([]*entities.Product, 0, limit)
	seen := make(map[uuid.UUID]bool, limit)
	for _, id := range input.BasketProductIDs {
		seen[id] = true
	}

	byID := make(map[uuid.UUID]*entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	// Preserve the scorer's ranking.
	for _, id := range scored {
		p, ok := byID[id]
		if !ok || seen[p.ID] || !u.eligible(p, input) {
			continue
		}
		seen[p.ID] = true
		picked = append(picked, p)
		if len(picked) == limit {
			return picked, nil
		}
	}

	return u.backfill(ctx, input, picked, seen, limit)
}

// backfill tops the result up from the catalogs of the sellers already in the
// basket.
func (u *RecommendationUsecase) backfill(
	ctx context.Context,
	input RecommendationInput,
	picked []*entities.Product,
	seen map[uuid.UUID]bool,
	limit int,
) ([]*entities.Product, error) {
	if len(picked) == limit || len(input.BasketProductIDs) == 0 {
		return picked, nil
	}

	basket, err := u.productRepo.ListByIDs(ctx, input.BasketProductIDs)
	if err != nil {
		return nil, err
	}

	sellerSeen := make(map[uuid.UUID]bool, len(basket))
	for _, item := range basket {
		if sellerSeen[item.SellerID] {
			continue
		}
		sellerSeen[item.SellerID] = true

		catalog, err := u.productRepo.ListBySellerID(ctx, item.SellerID, limit)
		if err != nil {
			return nil, err
		}
		for _, p := range catalog {
			if seen[p.ID] || !u.eligible(p, input) {
				continue
			}
			seen[p.ID] = true
			picked = append(picked, p)
			if len(picked) == limit {
				return picked, nil
			}
		}
	}
	return picked, nil
}

func (u *RecommendationUsecase) eligible(p *entities.Product, input RecommendationInput) bool {
	if !p.Visible() {
		return false
	}
	if p.Adult && !input.AllowAdult {
		return false
	}
	if input.AffiliateContext && !p.AffiliateEnabled {
		return false
	}
	return true
}
