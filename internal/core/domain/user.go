package domain

import "time"

// User models a registered account holder.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AbilityAll is the wildcard ability granted to every freshly minted token.
const AbilityAll = "*"

// AccessToken is an opaque bearer credential bound to a user and a device
// label. Only the sha256 of the secret is persisted; the plaintext form
// "<id>|<secret>" is handed to the client exactly once at creation.
type AccessToken struct {
	ID         int64
	UserID     int64
	Name       string
	TokenHash  string
	Abilities  []string
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Can reports whether the token grants the named ability. The wildcard
// ability grants everything.
func (t *AccessToken) Can(ability string) bool {
	for _, a := range t.Abilities {
		if a == AbilityAll || a == ability {
			return true
		}
	}
	return false
}

// Expired reports whether the token carries an expiry that has passed.
func (t *AccessToken) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
