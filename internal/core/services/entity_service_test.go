package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Create(ctx context.Context, in domain.CreateExpenseInput) (*domain.Expense, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Update(ctx context.Context, id int64, in domain.UpdateExpenseInput) (*domain.Expense, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type EntityServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockExpenseRepository
	service  portssvc.EntitySvcFacade[dto.ExpenseResponse]
}

func (suite *EntityServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
}

func (suite *EntityServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func sampleExpense() *domain.Expense {
	return &domain.Expense{
		ID:         3,
		Amount:     decimal.RequireFromString("42.10"),
		Category:   "office",
		Vendor:     "Paper Co",
		IncurredAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *EntityServiceTestSuite) TestCreate_Success() {
	expected := domain.CreateExpenseInput{
		Amount:     decimal.RequireFromString("42.10"),
		Category:   "office",
		Vendor:     "Paper Co",
		IncurredAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockRepo.On("Create", suite.ctx, mock.MatchedBy(func(in domain.CreateExpenseInput) bool {
		return in.Amount.Equal(expected.Amount) && in.Category == expected.Category &&
			in.Vendor == expected.Vendor && in.IncurredAt.Equal(expected.IncurredAt) && in.Notes == nil
	})).Return(sampleExpense(), nil).Once()

	resp, err := suite.service.Create(suite.ctx, map[string]any{
		"amount": "42.10", "category": "office", "vendor": " Paper Co ", "incurredAt": "2024-02-01",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(3), resp.ID)
	suite.Equal("Paper Co", resp.Vendor)
}

func (suite *EntityServiceTestSuite) TestCreate_InvalidPayloadNeverReachesStorage() {
	_, err := suite.service.Create(suite.ctx, map[string]any{"amount": -1})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestUpdate_NoFields() {
	_, err := suite.service.Update(suite.ctx, 3, map[string]any{"unknown": 1})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("No fields provided for update", apperrors.Issues(err)[0].Message)
	suite.mockRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntityServiceTestSuite) TestUpdate_PassesNullThrough() {
	suite.mockRepo.On("Update", suite.ctx, int64(3), domain.UpdateExpenseInput{Notes: domain.NullOf[string]()}).
		Return(sampleExpense(), nil).Once()

	resp, err := suite.service.Update(suite.ctx, 3, map[string]any{"notes": nil})

	suite.Require().NoError(err)
	suite.Nil(resp.Notes)
}

func (suite *EntityServiceTestSuite) TestGetByID_NilRecordIsNotFound() {
	suite.mockRepo.On("GetByID", suite.ctx, int64(9)).Return(nil, nil).Once()

	_, err := suite.service.GetByID(suite.ctx, 9)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntityServiceTestSuite) TestGetByID_UnclassifiedErrorBecomesInternal() {
	cause := errors.New("connection refused")
	suite.mockRepo.On("GetByID", suite.ctx, int64(1)).Return(nil, cause).Once()

	_, err := suite.service.GetByID(suite.ctx, 1)

	suite.Require().ErrorIs(err, apperrors.ErrInternal)
	suite.Equal(apperrors.MsgInternal, apperrors.AsAppError(err).Message)
	suite.ErrorIs(err, cause)
}

func (suite *EntityServiceTestSuite) TestDelete_PropagatesNotFound() {
	suite.mockRepo.On("Delete", suite.ctx, int64(5)).Return(apperrors.NewNotFoundError("")).Once()

	err := suite.service.Delete(suite.ctx, 5)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EntityServiceTestSuite) TestList_EmptyIsNotNil() {
	suite.mockRepo.On("List", suite.ctx).Return([]domain.Expense{}, nil).Once()

	list, err := suite.service.List(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(list)
	suite.Empty(list)
}

func TestEntityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntityServiceTestSuite))
}
