package models

import "time"

// Message is a read-only projection of a server-side chat message.
type Message struct {
	// ID is the server-assigned message identifier. It is the de-duplication
	// key: the REST acknowledgment of a send and the echoed push notification
	// for the same message may arrive in either order.
	ID string `json:"id"`

	// SenderID identifies the author.
	SenderID string `json:"senderId"`

	// Sender is a partial profile of the author (id, username, avatar).
	Sender User `json:"sender"`

	// ChatID identifies the conversation the message belongs to.
	ChatID string `json:"chat"`

	// Content is the text body. May be empty for attachment-only messages.
	Content string `json:"content"`

	// Attachments references the binary parts uploaded with the message.
	Attachments []Attachment `json:"attachments,omitempty"`

	SentAt    time.Time `json:"sentAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Attachment references a file stored by the server for a message.
type Attachment struct {
	// ID is the server-assigned attachment identifier.
	ID string `json:"_id"`

	// URL is the public location the attachment can be fetched from.
	URL string `json:"url"`

	// LocalPath is the server-side storage path. Informational only.
	LocalPath string `json:"localPath"`
}

// AttachmentFile is a binary part queued for upload with an outgoing message.
type AttachmentFile struct {
	// Name is the file name reported in the multipart form.
	Name string

	// Data is the raw file content.
	Data []byte
}

// OutgoingMessage is the client-side shape of a message before it is sent.
// Content is omitted from the request entirely when empty; every attachment
// is appended as a discrete multipart part.
type OutgoingMessage struct {
	Content     string
	Attachments []AttachmentFile
}
