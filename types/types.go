// Package types defines the data structures used in the link shortener core.
package types

import "time"

// LinkRecord is the stored pair behind a short link. A record is created
// exactly once per successful shorten request and never updated or deleted
// for the lifetime of the process.
type LinkRecord struct {
	Token       string
	OriginalURL string
	CreatedAt   time.Time
}
