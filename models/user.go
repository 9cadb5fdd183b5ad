package models

// User represents a chat account as returned by the server.
// It is an immutable snapshot: components never patch individual fields,
// the whole value is replaced when the server sends a newer one.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID string `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Email is the address the account was registered with.
	Email string `json:"email"`

	// AvatarURL points at the user's avatar image, if any.
	AvatarURL string `json:"avatarUrl"`
}

// Valid reports whether the snapshot carries a server identity.
// A restored session is only trusted when its user has a non-empty ID.
func (u User) Valid() bool {
	return u.ID != ""
}
