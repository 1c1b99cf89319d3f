package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"creator-pay.backend/internal/domain/entities"
	"creator-pay.backend/internal/usecases"
)

func visibleProduct(sellerID uuid.UUID) *entities.Product {
	return &entities.Product{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Name:      "Widget",
		Published: true,
	}
}

func TestComposeFiltersAndPreservesRanking(t *testing.T) {
	productRepo := new(MockProductRepository)
	scorer := new(MockRecommendationScorer)
	u := usecases.NewRecommendationUsecase(productRepo, scorer)

	sellerID := uuid.New()
	basket := []uuid.UUID{uuid.New()}

	first := visibleProduct(sellerID)
	second := visibleProduct(sellerID)
	hidden := visibleProduct(sellerID)
	hidden.Published = false
	adult := visibleProduct(sellerID)
	adult.Adult = true

	scored := []uuid.UUID{hidden.ID, second.ID, adult.ID, first.ID}
	scorer.On("Score", mock.Anything, basket, basket, 3).Return(scored, nil)
	productRepo.On("ListByIDs", mock.Anything, scored).
		Return([]*entities.Product{first, second, hidden, adult}, nil)

	got, err := u.Compose(context.Background(), usecases.RecommendationInput{
		BasketProductIDs: basket,
		Limit:            3,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "scorer ranking is preserved")
	assert.Equal(t, first.ID, got[1].ID)
}

func TestComposeBackfillsFromSellerCatalog(t *testing.T) {
	productRepo := new(MockProductRepository)
	scorer := new(MockRecommendationScorer)
	u := usecases.NewRecommendationUsecase(productRepo, scorer)

	sellerID := uuid.New()
	basketItem := visibleProduct(sellerID)
	basket := []uuid.UUID{basketItem.ID}

	scorer.On("Score", mock.Anything, basket, basket, 2).Return([]uuid.UUID{}, nil)
	productRepo.On("ListByIDs", mock.Anything, []uuid.UUID{}).Return([]*entities.Product{}, nil)
	productRepo.On("ListByIDs", mock.Anything, basket).Return([]*entities.Product{basketItem}, nil)

	fillA := visibleProduct(sellerID)
	fillB := visibleProduct(sellerID)
	productRepo.On("ListBySellerID", mock.Anything, sellerID, 2).
		Return([]*entities.Product{basketItem, fillA, fillB}, nil)

	got, err := u.Compose(context.Background(), usecases.RecommendationInput{
		BasketProductIDs: basket,
		Limit:            2,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, fillA.ID, got[0].ID, "basket items are never recommended back")
	assert.Equal(t, fillB.ID, got[1].ID)
}

func TestComposeAffiliateContextRequiresAffiliateEnabled(t *testing.T) {
	productRepo := new(MockProductRepository)
	scorer := new(MockRecommendationScorer)
	u := usecases.NewRecommendationUsecase(productRepo, scorer)

	sellerID := uuid.New()
	plain := visibleProduct(sellerID)
	affiliate := visibleProduct(sellerID)
	affiliate.AffiliateEnabled = true

	scored := []uuid.UUID{plain.ID, affiliate.ID}
	scorer.On("Score", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(scored, nil)
	productRepo.On("ListByIDs", mock.Anything, scored).Return([]*entities.Product{plain, affiliate}, nil)

	got, err := u.Compose(context.Background(), usecases.RecommendationInput{
		AffiliateContext: true,
		Limit:            5,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, affiliate.ID, got[0].ID)
}

func TestComposeScorerErrorPropagates(t *testing.T) {
	productRepo := new(MockProductRepository)
	scorer := new(MockRecommendationScorer)
	u := usecases.NewRecommendationUsecase(productRepo, scorer)

	scorer.On("Score", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := u.Compose(context.Background(), usecases.RecommendationInput{Limit: 2})

	assert.ErrorIs(t, err, assert.AnError)
}
