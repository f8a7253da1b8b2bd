package pgsql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledgerbook/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const migrationsPath = "file://../../../../migrations"

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// PgsqlIntegrationTestSuite runs against a disposable database named by TEST_PGSQL_URL.
type PgsqlIntegrationTestSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

func (suite *PgsqlIntegrationTestSuite) SetupSuite() {
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		suite.T().Skip("TEST_PGSQL_URL not set")
	}
	suite.ctx = context.Background()

	_, err := database.MigrateUp(url, migrationsPath)
	suite.Require().NoError(err)

	suite.pool, err = database.NewPgxPool(suite.ctx, url, true)
	suite.Require().NoError(err)
	suite.repos = pgsql.NewRepositoryProvider(suite.pool)
}

func (suite *PgsqlIntegrationTestSuite) TearDownSuite() {
	database.ClosePgxPool(suite.pool)
}

func (suite *PgsqlIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.repos.AdminRepo.ResetAll(suite.ctx))
}

func (suite *PgsqlIntegrationTestSuite) createInvoice(number string, issued, due time.Time) *domain.Invoice {
	inv, err := suite.repos.InvoiceRepo.Create(suite.ctx, domain.CreateInvoiceInput{
		Number:   number,
		Client:   "Acme",
		Amount:   decimal.RequireFromString("1200.50"),
		Status:   domain.InvoiceStatusPending,
		IssuedAt: issued,
		DueAt:    due,
	})
	suite.Require().NoError(err)
	return inv
}

func (suite *PgsqlIntegrationTestSuite) TestInvoiceLifecycle() {
	inv := suite.createInvoice("INV-1", day(1), day(31))
	suite.Equal(int64(1), inv.ID)
	suite.True(decimal.RequireFromString("1200.50").Equal(inv.Amount))
	suite.Nil(inv.Description)

	desc := "January retainer"
	updated, err := suite.repos.InvoiceRepo.Update(suite.ctx, inv.ID, domain.UpdateInvoiceInput{Description: domain.ValueOf(desc)})
	suite.Require().NoError(err)
	suite.Equal(desc, *updated.Description)
	suite.Equal(inv.Number, updated.Number)

	cleared, err := suite.repos.InvoiceRepo.Update(suite.ctx, inv.ID, domain.UpdateInvoiceInput{Description: domain.NullOf[string]()})
	suite.Require().NoError(err)
	suite.Nil(cleared.Description)

	suite.Require().NoError(suite.repos.InvoiceRepo.Delete(suite.ctx, inv.ID))
	suite.ErrorIs(suite.repos.InvoiceRepo.Delete(suite.ctx, inv.ID), apperrors.ErrNotFound)

	missing, err := suite.repos.InvoiceRepo.GetByID(suite.ctx, inv.ID)
	suite.NoError(err)
	suite.Nil(missing)
}

func (suite *PgsqlIntegrationTestSuite) TestInvoiceConstraints() {
	suite.createInvoice("INV-1", day(10), day(20))

	_, err := suite.repos.InvoiceRepo.Create(suite.ctx, domain.CreateInvoiceInput{
		Number: "INV-1", Client: "Other", Amount: decimal.NewFromInt(1), Status: domain.InvoiceStatusPending, IssuedAt: day(1), DueAt: day(1),
	})
	suite.ErrorIs(err, apperrors.ErrConflict)

	early := day(5)
	_, err = suite.repos.InvoiceRepo.Update(suite.ctx, 1, domain.UpdateInvoiceInput{DueAt: &early})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("dueAt", apperrors.Issues(err)[0].Path)

	_, err = suite.repos.InvoiceRepo.Update(suite.ctx, 99, domain.UpdateInvoiceInput{DueAt: &early})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgsqlIntegrationTestSuite) TestPaymentReferences() {
	dangling := int64(42)
	_, err := suite.repos.PaymentRepo.Create(suite.ctx, domain.CreatePaymentInput{
		Amount: decimal.NewFromInt(10), Method: domain.PaymentMethodCash, ReceivedAt: day(3), InvoiceID: &dangling,
	})
	suite.Require().ErrorIs(err, apperrors.ErrBadRequest)

	list, err := suite.repos.PaymentRepo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(list)

	inv := suite.createInvoice("INV-1", day(1), day(2))
	p, err := suite.repos.PaymentRepo.Create(suite.ctx, domain.CreatePaymentInput{
		Amount: decimal.NewFromInt(10), Method: domain.PaymentMethodCard, ReceivedAt: day(3), InvoiceID: &inv.ID,
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repos.InvoiceRepo.Delete(suite.ctx, inv.ID))
	got, err := suite.repos.PaymentRepo.GetByID(suite.ctx, p.ID)
	suite.Require().NoError(err)
	suite.Nil(got.InvoiceID)
}

func (suite *PgsqlIntegrationTestSuite) TestUpdateMissingRowWithDanglingInvoice() {
	dangling := domain.ValueOf(int64(42))

	_, err := suite.repos.PaymentRepo.Update(suite.ctx, 7, domain.UpdatePaymentInput{InvoiceID: dangling})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.CreditRepo.Update(suite.ctx, 7, domain.UpdateCreditInput{InvoiceID: dangling})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PgsqlIntegrationTestSuite) TestListOrderAndOverdue() {
	suite.createInvoice("C", day(1), day(20))
	suite.createInvoice("A", day(1), day(5))
	suite.createInvoice("B", day(1), day(5))

	list, err := suite.repos.InvoiceRepo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B", "C"}, []string{list[0].Number, list[1].Number, list[2].Number})

	n, err := suite.repos.InvoiceRepo.MarkOverdue(suite.ctx, day(10))
	suite.Require().NoError(err)
	suite.Equal(int64(2), n)
}

func TestPgsqlIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PgsqlIntegrationTestSuite))
}
