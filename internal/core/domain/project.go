package domain

import "time"

// Project belongs to a Company and a Client. Invoices and payments hang off
// projects; invoices carry no direct company reference, so company-scoped
// invoice queries go through the project.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Status    *string   `json:"status"`
	Notes     *string   `json:"notes"`
	CreatedBy *int64    `json:"created_by"`
	CompanyID int64     `json:"company_id"`
	ClientID  int64     `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}
