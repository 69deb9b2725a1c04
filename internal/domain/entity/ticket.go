package entity

import "time"

// Ticket tashqi trackerga yuboriladigan bir martalik yozuv.
// Built at submission time from a completed session; it has no local
// identity — the backend-assigned key is relayed to the user and dropped.
type Ticket struct {
	Summary     string
	Description string
	// Fields maps externally defined custom field IDs to values.
	Fields      map[string]string
	SubmittedAt time.Time
}
