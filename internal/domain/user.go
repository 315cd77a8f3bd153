package domain

// User represents a registered account. Usernames are unique and
// case-sensitive.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this via JSON
}
