package pgsql

import (
	portsrepo "github.com/invoicerhq/invoicer_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository onto a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		ProjectRepo:   newPgxProjectRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		DashboardRepo: newDashboardRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
