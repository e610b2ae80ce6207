package domain

import "time"

// Company is a billing entity that owns clients and projects.
type Company struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address"`
	GSTPercent *int      `json:"gst_percent"` // Stored tax rate used by clients to precompute invoice tax
	CreatedBy  *int64    `json:"created_by"`  // User reference, optional
	CreatedAt  time.Time `json:"created_at"`
}
