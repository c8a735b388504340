package productrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/repository/productrepo"
)

func newCatalog(t *testing.T) *productrepo.ProductRepository {
	t.Helper()
	repo, err := productrepo.NewProductRepository(productrepo.SeedProducts(), logger.NewNop())
	require.NoError(t, err)
	return repo
}

func TestFindByID(t *testing.T) {
	repo := newCatalog(t)

	p, err := repo.FindByID(context.Background(), "6")
	require.NoError(t, err)
	assert.Equal(t, "PRD006", p.Code)
	assert.Equal(t, "48000", p.UnitPrice.String())

	_, err = repo.FindByID(context.Background(), "99")
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestFindAll_Filters(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	all, err := repo.FindAll(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 10)
	assert.Equal(t, "1", all[0].ID)

	creams, err := repo.FindAll(ctx, domain.ProductFilter{Category: "크림"})
	require.NoError(t, err)
	assert.Len(t, creams, 2)

	byEnglish, err := repo.FindAll(ctx, domain.ProductFilter{Keyword: "SERUM"})
	require.NoError(t, err)
	assert.Len(t, byEnglish, 2) // Cera Hyal ... Serum Toner, LactZe Serum

	byCode, err := repo.FindAll(ctx, domain.ProductFilter{Keyword: "prd010"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "10", byCode[0].ID)
}

func TestNewProductRepository_RejectsDuplicates(t *testing.T) {
	products := []domain.Product{
		{ID: "1", Code: "PRD001", Name: "a"},
		{ID: "1", Code: "PRD002", Name: "b"},
	}
	_, err := productrepo.NewProductRepository(products, logger.NewNop())
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestSeedStock_CoversAllProducts(t *testing.T) {
	products := productrepo.SeedProducts()
	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	records := productrepo.SeedStock(products, 30, at)

	require.Len(t, records, len(products))
	statuses := map[domain.StockStatus]bool{}
	for i, r := range records {
		assert.Equal(t, products[i].ID, r.ProductID)
		assert.Equal(t, 30, r.MinimumThreshold)
		statuses[r.Status()] = true
	}
	assert.Len(t, statuses, 3)
}
