package domain

import "time"

// Client belongs to a Company and owns projects.
type Client struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address"`
	GSTPercent *int      `json:"gst_percent"`
	CreatedBy  *int64    `json:"created_by"`
	CompanyID  int64     `json:"company_id"` // Required, must reference an existing Company
	CreatedAt  time.Time `json:"created_at"`
}
