package pgsql

import (
	"fmt"
	"strings"

	"github.com/invoicerhq/invoicer_backend/internal/core/domain"
)

// The dashboard filter set applies to invoices and payments with different
// column mappings, so each entity gets its own small clause builder. Both
// return AND-composable SQL fragments with positional placeholders and the
// matching argument list, starting at $1.

// invoiceFilterClauses maps a filter set onto the invoices table (aliased i).
// Date bounds are inclusive on issue_date; the company constraint goes
// through the invoice's project, since invoices have no company column.
func invoiceFilterClauses(f domain.DashboardFilter) ([]string, []any) {
	var clauses []string
	var args []any

	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		clauses = append(clauses, fmt.Sprintf("i.issue_date >= $%d", len(args)))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		clauses = append(clauses, fmt.Sprintf("i.issue_date <= $%d", len(args)))
	}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM projects p WHERE p.id = i.project_id AND p.company_id = $%d)", len(args)))
	}
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		clauses = append(clauses, fmt.Sprintf("i.client_id = $%d", len(args)))
	}
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		clauses = append(clauses, fmt.Sprintf("i.project_id = $%d", len(args)))
	}

	return clauses, args
}

// paymentFilterClauses maps a filter set onto the payments table (aliased p).
// Payments carry company, client and project references directly.
func paymentFilterClauses(f domain.DashboardFilter) ([]string, []any) {
	var clauses []string
	var args []any

	if f.FromDate != nil {
		args = append(args, *f.FromDate)
		clauses = append(clauses, fmt.Sprintf("p.payment_date >= $%d", len(args)))
	}
	if f.ToDate != nil {
		args = append(args, *f.ToDate)
		clauses = append(clauses, fmt.Sprintf("p.payment_date <= $%d", len(args)))
	}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		clauses = append(clauses, fmt.Sprintf("p.company_id = $%d", len(args)))
	}
	if f.ClientID != nil {
		args = append(args, *f.ClientID)
		clauses = append(clauses, fmt.Sprintf("p.client_id = $%d", len(args)))
	}
	if f.ProjectID != nil {
		args = append(args, *f.ProjectID)
		clauses = append(clauses, fmt.Sprintf("p.project_id = $%d", len(args)))
	}

	return clauses, args
}

// whereSQL joins clauses into a WHERE fragment, or returns the empty string
// when the filter set is empty.
func whereSQL(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}
