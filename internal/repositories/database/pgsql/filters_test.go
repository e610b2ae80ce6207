package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func int64Ptr(n int64) *int64 {
	return &n
}

func TestInvoiceFilterClauses_Empty(t *testing.T) {
	clauses, args := invoiceFilterClauses(domain.DashboardFilter{})
	assert.Empty(t, clauses)
	assert.Empty(t, args)
	assert.Equal(t, "", whereSQL(clauses))
}

func TestInvoiceFilterClauses_AllFields(t *testing.T) {
	filter := domain.DashboardFilter{
		FromDate:  datePtr(2025, 8, 1),
		ToDate:    datePtr(2025, 8, 31),
		CompanyID: int64Ptr(4),
		ClientID:  int64Ptr(7),
		ProjectID: int64Ptr(11),
	}

	clauses, args := invoiceFilterClauses(filter)

	assert.Equal(t, []string{
		"i.issue_date >= $1",
		"i.issue_date <= $2",
		"EXISTS (SELECT 1 FROM projects p WHERE p.id = i.project_id AND p.company_id = $3)",
		"i.client_id = $4",
		"i.project_id = $5",
	}, clauses)
	assert.Equal(t, []any{*filter.FromDate, *filter.ToDate, int64(4), int64(7), int64(11)}, args)
}

func TestInvoiceFilterClauses_PlaceholdersStayDense(t *testing.T) {
	// Skipping fields must not leave gaps in the placeholder numbering.
	filter := domain.DashboardFilter{
		ToDate:    datePtr(2025, 8, 31),
		ProjectID: int64Ptr(11),
	}

	clauses, args := invoiceFilterClauses(filter)

	assert.Equal(t, []string{
		"i.issue_date <= $1",
		"i.project_id = $2",
	}, clauses)
	assert.Len(t, args, 2)
}

func TestPaymentFilterClauses_AllFields(t *testing.T) {
	filter := domain.DashboardFilter{
		FromDate:  datePtr(2025, 8, 1),
		ToDate:    datePtr(2025, 8, 31),
		CompanyID: int64Ptr(4),
		ClientID:  int64Ptr(7),
		ProjectID: int64Ptr(11),
	}

	clauses, args := paymentFilterClauses(filter)

	// Payments filter on their own columns; no project join involved.
	assert.Equal(t, []string{
		"p.payment_date >= $1",
		"p.payment_date <= $2",
		"p.company_id = $3",
		"p.client_id = $4",
		"p.project_id = $5",
	}, clauses)
	assert.Len(t, args, 5)
}

func TestWhereSQL(t *testing.T) {
	assert.Equal(t, "", whereSQL(nil))
	assert.Equal(t, " WHERE a = $1", whereSQL([]string{"a = $1"}))
	assert.Equal(t, " WHERE a = $1 AND b = $2", whereSQL([]string{"a = $1", "b = $2"}))
}
