package models

import "time"

type User struct {
	ID      int       // Unique identifier
	Name    string    // Username (unique)
	PwHash  string    // Stored as "<salt>,<hexdigest>"
	Email   string    // Optional email
	Created time.Time // Registration date
}
