package models

// User represents an authentication principal. Users are static
// configuration: nothing creates, updates or disables them at runtime.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	Disabled       bool   `json:"disabled"`
}
