package models

import "time"

// Chat is a read-only projection of a server-side conversation, either a
// one-on-one chat or a group. The client never owns its canonical state.
type Chat struct {
	// ID is the server-assigned chat identifier.
	ID string `json:"id"`

	// Name is the group name for group chats; empty for one-on-one chats,
	// where the counterpart's display name is used instead.
	Name string `json:"name"`

	// AdminID identifies the group administrator. Empty for direct chats.
	AdminID string `json:"admin"`

	// IsGroupChat distinguishes groups from one-on-one conversations.
	IsGroupChat bool `json:"isGroupChat"`

	// Participants lists the members of the chat.
	Participants []User `json:"participants,omitempty"`

	// LastMessage is the preview text of the most recent message, if any.
	LastMessage string `json:"lastMessage,omitempty"`

	// LastMessageTime is when the most recent message was sent.
	LastMessageTime time.Time `json:"lastMessageTime,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName returns the human label for the chat: the group name for
// groups, otherwise the counterpart's name relative to viewerID.
func (c Chat) DisplayName(viewerID string) string {
	if c.IsGroupChat {
		return c.Name
	}

	for _, p := range c.Participants {
		if p.ID != viewerID {
			return p.Name
		}
	}
	return c.Name
}
