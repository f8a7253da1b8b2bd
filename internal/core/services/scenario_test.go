package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite drives the services end to end on the in-memory store.
type ScenarioTestSuite struct {
	suite.Suite
	ctx context.Context
	svc *portssvc.ServiceContainer
}

func (suite *ScenarioTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.svc = services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))
}

func (suite *ScenarioTestSuite) TestIncomeScenario() {
	created, err := suite.svc.Income.Create(suite.ctx, map[string]any{
		"amount": 5500, "source": "Consulting", "receivedAt": "2024-01-10",
	})
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5500).Equal(created.Amount))
	suite.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), created.ReceivedAt)

	updated, err := suite.svc.Income.Update(suite.ctx, created.ID, map[string]any{"notes": "Paid by wire"})
	suite.Require().NoError(err)
	suite.Equal("Paid by wire", *updated.Notes)
	suite.Equal("Consulting", updated.Source)

	suite.Require().NoError(suite.svc.Income.Delete(suite.ctx, created.ID))
	_, err = suite.svc.Income.GetByID(suite.ctx, created.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.svc.Income.Delete(suite.ctx, created.ID), apperrors.ErrNotFound)
}

func (suite *ScenarioTestSuite) TestInvoiceRules() {
	payload := map[string]any{
		"number": "INV-100", "client": "Acme", "amount": "250.00",
		"issuedAt": "2024-03-01", "dueAt": "2024-03-01",
	}
	inv, err := suite.svc.Invoice.Create(suite.ctx, payload)
	suite.Require().NoError(err, "dueAt equal to issuedAt is allowed")
	suite.Equal(domain.InvoiceStatusPending, inv.Status)

	_, err = suite.svc.Invoice.Create(suite.ctx, payload)
	suite.ErrorIs(err, apperrors.ErrConflict)

	_, err = suite.svc.Invoice.Update(suite.ctx, inv.ID, map[string]any{"dueAt": "2024-02-01"})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("dueAt", apperrors.Issues(err)[0].Path)

	got, err := suite.svc.Invoice.GetByID(suite.ctx, inv.ID)
	suite.Require().NoError(err)
	suite.Equal(inv.DueAt, got.DueAt, "a rejected update leaves the record unchanged")
}

func (suite *ScenarioTestSuite) TestReferentialIntegrity() {
	_, err := suite.svc.Credit.Create(suite.ctx, map[string]any{
		"amount": 5, "reason": "goodwill", "issuedAt": "2024-01-02", "invoiceId": 12,
	})
	suite.Require().ErrorIs(err, apperrors.ErrBadRequest)

	list, err := suite.svc.Credit.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(list)

	inv, err := suite.svc.Invoice.Create(suite.ctx, map[string]any{
		"number": "INV-1", "client": "Acme", "amount": 100, "issuedAt": "2024-01-01", "dueAt": "2024-01-31",
	})
	suite.Require().NoError(err)

	credit, err := suite.svc.Credit.Create(suite.ctx, map[string]any{
		"amount": 5, "reason": "goodwill", "issuedAt": "2024-01-02", "invoiceId": inv.ID,
	})
	suite.Require().NoError(err)
	suite.Equal(inv.ID, *credit.InvoiceID)

	cleared, err := suite.svc.Credit.Update(suite.ctx, credit.ID, map[string]any{"invoiceId": nil})
	suite.Require().NoError(err)
	suite.Nil(cleared.InvoiceID)
}

func (suite *ScenarioTestSuite) TestListOrdering() {
	for _, d := range []string{"2024-01-05", "2024-03-01", "2024-02-01"} {
		_, err := suite.svc.Expense.Create(suite.ctx, map[string]any{
			"amount": 1, "category": "travel", "vendor": "Rail", "incurredAt": d,
		})
		suite.Require().NoError(err)
	}

	list, err := suite.svc.Expense.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal([]int64{2, 3, 1}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func (suite *ScenarioTestSuite) TestUpdateRequiresFieldsForEveryResource() {
	empty := map[string]any{}
	_, errInvoice := suite.svc.Invoice.Update(suite.ctx, 1, empty)
	_, errPayment := suite.svc.Payment.Update(suite.ctx, 1, empty)
	_, errCredit := suite.svc.Credit.Update(suite.ctx, 1, empty)
	_, errExpense := suite.svc.Expense.Update(suite.ctx, 1, empty)
	_, errIncome := suite.svc.Income.Update(suite.ctx, 1, empty)

	for _, err := range []error{errInvoice, errPayment, errCredit, errExpense, errIncome} {
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *ScenarioTestSuite) TestNonFiniteAmountIsValidationError() {
	_, err := suite.svc.Income.Create(suite.ctx, map[string]any{
		"amount": math.NaN(), "source": "Consulting", "receivedAt": "2024-01-10",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	created, err := suite.svc.Income.Create(suite.ctx, map[string]any{
		"amount": 10, "source": "Consulting", "receivedAt": "2024-01-10",
	})
	suite.Require().NoError(err)

	_, err = suite.svc.Income.Update(suite.ctx, created.ID, map[string]any{"amount": math.Inf(1)})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ScenarioTestSuite) TestSweepOverdue() {
	_, err := suite.svc.Invoice.Create(suite.ctx, map[string]any{
		"number": "OLD", "client": "Acme", "amount": 10, "issuedAt": "2024-01-01", "dueAt": "2024-01-15",
	})
	suite.Require().NoError(err)

	n, err := suite.svc.Overdue.SweepOverdue(suite.ctx, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	inv, err := suite.svc.Invoice.GetByID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusOverdue, inv.Status)
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}
