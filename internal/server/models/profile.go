package models

import "time"

// Profile is the remote preference record of one user. A row exists only
// after the user saved a theme while signed in.
type Profile struct {
	UserID    string
	Theme     string
	UpdatedAt time.Time
}
