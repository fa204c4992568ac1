package models

import "time"

type Post struct {
	ID          int       // Unique identifier
	Title       string    // Post title
	Content     string    // Post body (multi-line)
	UserID      int       // Author id
	Created     time.Time // Creation date, set once
	LastUpdated time.Time // Refreshed on every edit
	// Author data (from JOIN queries)
	Author string // Author's username
}
