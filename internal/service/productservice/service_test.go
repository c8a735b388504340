package productservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stockledger/internal/domain"
	apperror "stockledger/internal/errors"
	"stockledger/internal/pkg/logger"
	"stockledger/internal/service/productservice"
)

// MockProductRepository é uma implementação mock da interface ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func TestGetProductByID_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	expected := domain.Product{ID: "6", Code: "PRD006", Name: "락트제 세럼"}
	mockRepo.On("FindByID", mock.Anything, "6").Return(expected, nil)

	result, err := svc.GetProductByID(context.Background(), "6")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestGetProductByID_Fail_EmptyID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	_, err := svc.GetProductByID(context.Background(), "  ")

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetProductByID_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	mockRepo.On("FindByID", mock.Anything, "99").Return(domain.Product{}, apperror.NewNotFoundError("99"))

	_, err := svc.GetProductByID(context.Background(), "99")

	assert.IsType(t, &apperror.NotFoundError{}, err)
	assert.Contains(t, err.Error(), "não foi encontrado")
	mockRepo.AssertExpectations(t)
}

func TestListProducts_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	svc := productservice.NewService(mockRepo, logger.NewNop())

	filter := domain.ProductFilter{Category: "크림"}
	mockRepo.On("FindAll", mock.Anything, filter).Return([]domain.Product(nil), errors.New("boom"))

	_, err := svc.ListProducts(context.Background(), filter)

	assert.IsType(t, &apperror.InternalError{}, err)
	mockRepo.AssertExpectations(t)
}
