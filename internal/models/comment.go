package models

import "time"

type Comment struct {
	ID      int       // Unique identifier
	PostID  int       // Post this comment belongs to
	Text    string    // Comment body
	UserID  int       // Author id
	Created time.Time // Creation date, set once
	// Author data (from JOIN queries)
	Author string // Author's username
}
