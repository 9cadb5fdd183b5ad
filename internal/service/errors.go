package service

import "github.com/MKhiriev/go-chat-messenger/internal/request"

// ErrEmptyMessage is returned without a network round-trip when an outgoing
// message carries neither text nor attachments.
var ErrEmptyMessage = request.NewError(request.KindValidation, "message must contain text or at least one attachment")
